package engine

import (
	"github.com/landquant/severance/internal/finmath"
	"github.com/landquant/severance/internal/parcel"
)

// ShapeDamages scores the remainder's geometric efficiency and prices the
// resulting value discount plus any development-yield loss. The efficiency
// index is always computed and reported so an appraiser can audit the tier
// selection even when no discount applies.
func (e *Engine) ShapeDamages(in *parcel.Input) ShapeDamages {
	var d ShapeDamages
	d.EfficiencyIndex = e.shapeEfficiencyIndex(&in.Remainder)

	if in.Taking.CreatesIrregularShape {
		d.DiscountRate = e.discountForIndex(d.EfficiencyIndex)
		remainderValue := in.Remainder.Acres * in.PropertyBefore.ValuePerAcre
		d.ShapeDiscountValue = remainderValue * d.DiscountRate
	}

	if in.Taking.ReducesDevelopmentPotential {
		d.DevelopmentYieldLoss = e.developmentYieldLoss(in)
	}

	d.TotalShapeDamages = d.ShapeDiscountValue + d.DevelopmentYieldLoss
	return d
}

// shapeEfficiencyIndex compares the remainder's frontage-to-depth ratio to
// the idealized square parcel of the same area, whose ratio is 1. The score
// is min(ratio, 1/ratio), which is 1 for a square and falls toward 0 as the
// parcel becomes a sliver in either direction.
//
// A landlocked or zero-frontage remainder bypasses the formula entirely and
// takes the configured fixed index: there is no meaningful frontage ratio to
// score, and the guard is definitional rather than a division workaround.
func (e *Engine) shapeEfficiencyIndex(rem *parcel.Remainder) float64 {
	if rem.AccessType == parcel.AccessLandlocked || rem.ShapeRatioFrontageDepth == 0 {
		return e.cfg.Shape.LandlockedEfficiencyIndex
	}

	ratio := rem.ShapeRatioFrontageDepth
	index := ratio
	if inverse := finmath.SafeDivide(1, ratio, 0); inverse < index {
		index = inverse
	}
	if index > 1 {
		index = 1
	}
	return index
}

// discountForIndex selects the first tier whose minimum index the parcel
// meets. Tiers are ordered from the highest minimum down and the last tier's
// minimum is 0, so every index matches exactly one tier.
func (e *Engine) discountForIndex(index float64) float64 {
	for _, tier := range e.cfg.Shape.DiscountTiers {
		if index >= tier.MinIndex {
			return tier.Discount
		}
	}
	return 0
}

// developmentYieldLoss prices the reduction in development capacity.
// Residential and agricultural parcels are counted in potential units;
// industrial and commercial in buildable square feet. A missing before or
// after figure contributes nothing, and growth in capacity is not a loss.
func (e *Engine) developmentYieldLoss(in *parcel.Input) float64 {
	dev := e.cfg.Development

	switch in.PropertyBefore.Use {
	case parcel.UseResidential:
		return unitDelta(in.PropertyBefore.DevelopmentPotentialUnits, in.Remainder.DevelopmentPotentialUnits) *
			dev.ResidentialValuePerUnit
	case parcel.UseAgricultural:
		return unitDelta(in.PropertyBefore.DevelopmentPotentialUnits, in.Remainder.DevelopmentPotentialUnits) *
			dev.AgriculturalValuePerUnit
	case parcel.UseCommercial:
		return unitDelta(in.PropertyBefore.BuildableAreaSF, in.Remainder.BuildableAreaSF) *
			dev.CommercialValuePerSF
	case parcel.UseIndustrial:
		return unitDelta(in.PropertyBefore.BuildableAreaSF, in.Remainder.BuildableAreaSF) *
			dev.IndustrialValuePerSF
	default:
		// Unknown uses are rejected by the validator before dispatch.
		return 0
	}
}

func unitDelta(before, after *int) float64 {
	if before == nil || after == nil {
		return 0
	}
	delta := *before - *after
	if delta < 0 {
		return 0
	}
	return float64(delta)
}
