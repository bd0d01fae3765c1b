package calculator

import (
	"github.com/shopspring/decimal"

	"SensexBands/internal/model"
)

// Round2 rounds v to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CalculateDelta returns the percent change from prev to cur, rounded to 2 decimals.
// Returns false when prev is zero.
func CalculateDelta(prev, cur float64) (float64, bool) {
	if prev == 0 {
		return 0, false
	}
	return Round2((cur/prev - 1) * 100), true
}

// CalculateGamma returns reported - delta rounded to 2 decimals, or nil if either is missing.
func CalculateGamma(reported, delta *float64) *float64 {
	if reported == nil || delta == nil {
		return nil
	}
	g := Round2(*reported - *delta)
	return &g
}

// Derive returns a copy of the chronologically ordered records with Delta and
// Gamma filled in. The first record never has a Delta.
func Derive(records []model.Record) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)

	for i := range out {
		out[i].Delta = nil
		if i > 0 {
			if d, ok := CalculateDelta(out[i-1].Price, out[i].Price); ok {
				out[i].Delta = &d
			}
		}
		out[i].Gamma = CalculateGamma(out[i].ChangePct, out[i].Delta)
	}
	return out
}
