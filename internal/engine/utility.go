package engine

import (
	"github.com/landquant/severance/internal/parcel"
)

// UtilityDamages prices site-servicing cost-to-cure when the taking severs
// utilities, plus any highest-and-best-use downgrade the caller has
// substantiated with a post-downgrade unit value. The module never infers
// market values: no supplied downgrade value means a zero downgrade
// component.
func (e *Engine) UtilityDamages(in *parcel.Input) UtilityDamages {
	var d UtilityDamages

	if in.Taking.SeversUtilities {
		length := e.cfg.Utility.DefaultRelocationLengthM
		if in.Taking.UtilityRelocationLengthM != nil {
			length = *in.Taking.UtilityRelocationLengthM
		}
		d.ServicingCostToCure = length*(e.cfg.Utility.WaterRelocationPerM+e.cfg.Utility.SewerRelocationPerM) +
			e.cfg.Utility.DrainageEngineeringFee
	}

	if in.Remainder.DowngradedValuePerAcre != nil {
		delta := in.PropertyBefore.ValuePerAcre - *in.Remainder.DowngradedValuePerAcre
		if delta > 0 {
			d.HBUDowngradeLoss = delta * in.Remainder.Acres
		}
	}

	d.TotalUtilityDamages = d.ServicingCostToCure + d.HBUDowngradeLoss
	return d
}
