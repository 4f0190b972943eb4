// Package finmath provides the guarded arithmetic primitives shared by the
// damage modules.
//
// Two operations in the engine can legitimately see a zero on the wrong side
// of a division: ratios over frontage (a landlocked remainder has none) and
// capitalization over a market rate (an appraisal may carry no empirical cap
// rate). Both are funneled through this package so that no module performs a
// raw division on a quantity that can be zero.
package finmath

// DefaultCapitalizationMultiple approximates a market-standard capitalization
// when no empirical cap rate is available. A multiple of 10 corresponds to a
// 10% rate, a conservative figure for ongoing access and operating costs.
const DefaultCapitalizationMultiple = 10.0

// SafeDivide returns numerator/denominator, or def when the denominator is
// exactly zero. A zero denominator is an expected input (zero frontage, zero
// trips), not an error.
func SafeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 {
		return def
	}
	return numerator / denominator
}

// CapitalizeAnnualCost converts a recurring annual cost into an equivalent
// one-time present value.
//
// When capRate is positive the standard income-capitalization formula
// (annual / rate) applies. When capRate is zero or negative the cost is
// scaled by fallbackMultiple instead: a missing market rate must not crash
// the calculation or silently zero out a real, ongoing cost. Pass
// DefaultCapitalizationMultiple unless the configuration overrides it.
func CapitalizeAnnualCost(annualCost, capRate, fallbackMultiple float64) float64 {
	if capRate > 0 {
		return annualCost / capRate
	}
	return annualCost * fallbackMultiple
}
