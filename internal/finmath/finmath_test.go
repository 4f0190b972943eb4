package finmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		def         float64
		want        float64
	}{
		{
			name:        "ordinary division",
			numerator:   10,
			denominator: 4,
			want:        2.5,
		},
		{
			name:        "zero denominator returns default",
			numerator:   10,
			denominator: 0,
			def:         0,
			want:        0,
		},
		{
			name:        "zero denominator returns custom default",
			numerator:   10,
			denominator: 0,
			def:         1.5,
			want:        1.5,
		},
		{
			name:        "zero numerator",
			numerator:   0,
			denominator: 8,
			want:        0,
		},
		{
			name:        "negative values divide normally",
			numerator:   -9,
			denominator: 3,
			want:        -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDivide(tt.numerator, tt.denominator, tt.def)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCapitalizeAnnualCost(t *testing.T) {
	tests := []struct {
		name     string
		annual   float64
		capRate  float64
		multiple float64
		want     float64
	}{
		{
			name:     "positive rate divides",
			annual:   7000,
			capRate:  0.07,
			multiple: DefaultCapitalizationMultiple,
			want:     100000,
		},
		{
			name:     "zero rate uses fallback multiple",
			annual:   16666.67,
			capRate:  0,
			multiple: DefaultCapitalizationMultiple,
			want:     166666.7,
		},
		{
			name:     "negative rate also falls back",
			annual:   1200,
			capRate:  -0.05,
			multiple: DefaultCapitalizationMultiple,
			want:     12000,
		},
		{
			name:     "custom fallback multiple",
			annual:   500,
			capRate:  0,
			multiple: 12.5,
			want:     6250,
		},
		{
			name:     "zero annual cost capitalizes to zero",
			annual:   0,
			capRate:  0.06,
			multiple: DefaultCapitalizationMultiple,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapitalizeAnnualCost(tt.annual, tt.capRate, tt.multiple)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

// The reference figures from the circuitous-access capitalization scenario:
// 20 trips/day over 250 business days at 5 added minutes and $40/hour.
func TestCapitalizeAnnualCost_CircuitousAccessReference(t *testing.T) {
	annual := 20.0 * 250.0 * (5.0 / 60.0) * 40.0

	assert.InDelta(t, 16666.6667, annual, 0.01)
	assert.InDelta(t, 166666.667, CapitalizeAnnualCost(annual, 0, DefaultCapitalizationMultiple), 0.01)
	assert.InDelta(t, 238095.238, CapitalizeAnnualCost(annual, 0.07, DefaultCapitalizationMultiple), 0.01)
}
