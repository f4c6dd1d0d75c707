package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyNameCyclesThroughPools(t *testing.T) {
	assert.Equal(t, companyPrefixes[0]+" "+companyMids[0]+" "+companySuffixes[0], CompanyName(0))

	// The prefix pool cycles fastest, then mids, then suffixes.
	n := len(companyPrefixes)
	assert.Equal(t, companyPrefixes[0]+" "+companyMids[1]+" "+companySuffixes[0], CompanyName(n))

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[CompanyName(i)] = true
	}
	assert.Len(t, seen, 1000, "company names are unique across a full customer master")
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, firstNames[0]+" "+lastNames[0], PersonName(0))
	assert.Equal(t, firstNames[0]+" "+lastNames[1], PersonName(len(firstNames)))
}

func TestNewAddressPairsCityAndState(t *testing.T) {
	src := NewSource(3)

	for i := 0; i < 50; i++ {
		addr := newAddress(i, src)
		assert.Equal(t, states[i%len(cities)], addr.State)
		assert.Equal(t, cities[i%len(cities)], addr.City)
		assert.Contains(t, addr.Street, ", ", "street carries a house number")
		assert.Len(t, addr.PINCode, 6)
	}
}

func TestGSTNumber(t *testing.T) {
	n := gstNumber("Maharashtra", 7)
	assert.Equal(t, gstStateCodes["Maharashtra"], n[:2])
	assert.True(t, strings.HasSuffix(n, "1ZZ"))
	assert.Contains(t, n, "ABCDE007")

	// Unknown states degrade to the sentinel code instead of failing.
	assert.Equal(t, "99", gstNumber("Atlantis", 7)[:2])
}
