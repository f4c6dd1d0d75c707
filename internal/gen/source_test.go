package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestIntBetween(t *testing.T) {
	src := NewSource(1)

	for i := 0; i < 1000; i++ {
		v := src.IntBetween(3, 8)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 8)
	}

	assert.Equal(t, 5, src.IntBetween(5, 5))
	assert.Equal(t, 5, src.IntBetween(5, 2), "inverted bounds collapse to min")
}

func TestDateBetween(t *testing.T) {
	src := NewSource(1)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		d := src.DateBetween(start, end)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))
		assert.Equal(t, 0, d.Hour())
	}

	assert.Equal(t, start, src.DateBetween(start, start))
	assert.Equal(t, end, src.DateBetween(end, start), "inverted bounds collapse to start")
}

func TestAmount(t *testing.T) {
	src := NewSource(1)

	for i := 0; i < 500; i++ {
		v := src.Amount(10_000, 100_000, 2)
		f, _ := v.Float64()
		assert.GreaterOrEqual(t, f, 10_000.0)
		assert.Less(t, f, 100_000.01)
		assert.LessOrEqual(t, int(v.Exponent())*-1, 2)
	}
}

func TestWeightedChoiceDistributesAndFallsBack(t *testing.T) {
	src := NewSource(7)
	values := []WeightedValue{
		{Value: "Net 30", Weight: 40},
		{Value: "Net 45", Weight: 30},
		{Value: "Net 60", Weight: 20},
		{Value: "Net 90", Weight: 10},
	}

	seen := make(map[string]int)
	for i := 0; i < 10_000; i++ {
		seen[src.WeightedChoice(values)]++
	}

	require.Len(t, seen, 4)
	assert.Greater(t, seen["Net 30"], seen["Net 90"])

	// Weights summing below the draw range still return the last value.
	short := []WeightedValue{{Value: "only", Weight: 0}}
	for i := 0; i < 100; i++ {
		assert.Equal(t, "only", src.WeightedChoice(short))
	}
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "CUST000007", FormatID("CUST", 7, 6))
	assert.Equal(t, "INV0000123", FormatID("INV", 123, 7))
	assert.Equal(t, "GL12345678", FormatID("GL", 12345678, 8))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 4, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2025, 4, 18, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 17, daysBetween(a, b))
	assert.Equal(t, -17, daysBetween(b, a))
}
