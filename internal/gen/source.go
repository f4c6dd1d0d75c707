package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Source is the seedable random source behind every probabilistic draw in the
// pipeline. Two sources built from the same seed produce identical streams, so
// a full generation run is reproducible byte for byte.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a source seeded with the given value.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns a uniform value in [0, n). n <= 0 yields 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntBetween returns a uniform value in [min, max]. max < min yields min.
func (s *Source) IntBetween(min, max int) int {
	if max < min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// DateBetween returns a calendar date (midnight UTC) uniformly drawn from
// [start, end] inclusive.
func (s *Source) DateBetween(start, end time.Time) time.Time {
	start = midnight(start)
	end = midnight(end)
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, s.rng.Intn(days+1))
}

// Amount returns a uniform monetary value in [min, max) rounded to the given
// number of decimal places.
func (s *Source) Amount(min, max float64, places int32) decimal.Decimal {
	v := min + s.rng.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(places)
}

// Pick returns a uniformly drawn element of values.
func (s *Source) Pick(values []string) string {
	return values[s.rng.Intn(len(values))]
}

// WeightedValue pairs a categorical value with its weight in percent.
type WeightedValue struct {
	Value  string
	Weight float64
}

// WeightedChoice draws one value from weighted percentages. Weights are not
// required to sum to exactly 100: a uniform draw in [0, 100) is matched against
// the cumulative weights, and if floating-point drift leaves no match the last
// value is returned. Callers rely on that last-value fallback.
func (s *Source) WeightedChoice(values []WeightedValue) string {
	draw := s.rng.Float64() * 100
	var cumulative float64
	for _, wv := range values {
		cumulative += wv.Weight
		if draw <= cumulative {
			return wv.Value
		}
	}
	return values[len(values)-1].Value
}

// FormatID builds an identifier from an alphabetic prefix and a zero-padded
// numeric suffix: FormatID("CUST", 7, 6) == "CUST000007".
func FormatID(prefix string, num, pad int) string {
	return fmt.Sprintf("%s%0*d", prefix, pad, num)
}

// midnight truncates a timestamp to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b (negative when b precedes a).
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}
