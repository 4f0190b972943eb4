package engine

import (
	"github.com/landquant/severance/internal/config"
	"github.com/landquant/severance/internal/finmath"
	"github.com/landquant/severance/internal/parcel"
)

// FarmDamages prices agricultural operation disruption: field division,
// equipment-access complication, and irrigation repair.
//
// The module applies only to agricultural properties. Invoking it for any
// other use is a wiring error, not a runtime condition, and panics with a
// *ContractViolation; the orchestrator guards the dispatch so a correctly
// assembled pipeline can never hit it.
func (e *Engine) FarmDamages(in *parcel.Input, market config.ResolvedMarket) FarmDamages {
	if in.PropertyBefore.Use != parcel.UseAgricultural {
		panic(&ContractViolation{
			Msg: "farm module invoked for non-agricultural use " + string(in.PropertyBefore.Use),
		})
	}

	var d FarmDamages
	farm := e.cfg.Farm

	if in.Taking.BisectsFarm {
		d.FieldDivisionCost = e.fieldDivisionCost(&in.Remainder)

		// A bisected field forces equipment around the taking; the added
		// minutes per crossing come from the same circuitous-route figure
		// used for occupant travel.
		if in.Taking.CircuitousAccessAddedMinutes > 0 {
			d.EquipmentAccessAnnualCost = farm.EquipmentCrossingsPerYear *
				(in.Taking.CircuitousAccessAddedMinutes / minutesPerHour) *
				farm.EquipmentOperatorCostPerHour
			d.EquipmentAccessCost = finmath.CapitalizeAnnualCost(
				d.EquipmentAccessAnnualCost, market.CapRate, e.cfg.CapitalizationFallbackMultiple)
		}
	}

	if in.Taking.DisruptsIrrigation {
		d.IrrigationCost = farm.IrrigationRepairFixed
		if in.Remainder.IrrigationAcresAffected != nil {
			d.IrrigationCost += *in.Remainder.IrrigationAcresAffected * farm.IrrigationPremiumPerAcre
		}
	}

	d.TotalFarmDamages = d.FieldDivisionCost + d.EquipmentAccessCost + d.IrrigationCost
	return d
}

// fieldDivisionCost prices new fencing along the severance line and tile
// drainage replacement. The drainage engineering fee applies only when tile
// work is actually needed.
func (e *Engine) fieldDivisionCost(rem *parcel.Remainder) float64 {
	farm := e.cfg.Farm

	var cost float64
	if rem.RequiresNewFencingLinearMeters != nil {
		cost += *rem.RequiresNewFencingLinearMeters * farm.FencingCostPerM
	}
	if rem.TileDrainageLengthM != nil && *rem.TileDrainageLengthM > 0 {
		cost += *rem.TileDrainageLengthM*farm.TileDrainagePerM + farm.DrainageEngineeringFee
	}
	return cost
}
