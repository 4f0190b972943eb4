package engine

import (
	"github.com/landquant/severance/internal/config"
	"github.com/landquant/severance/internal/finmath"
	"github.com/landquant/severance/internal/parcel"
)

// minutesPerHour converts added travel minutes to the hourly travel-time
// value basis.
const minutesPerHour = 60.0

// AccessDamages prices frontage loss, circuitous access, and the cost to
// cure a landlocked remainder. Components that do not apply contribute
// exactly zero. The only failure path is an unconfigured rate-table
// combination, surfaced as a *config.RateLookupError.
func (e *Engine) AccessDamages(in *parcel.Input, market config.ResolvedMarket) (AccessDamages, error) {
	var d AccessDamages

	// Zero frontage lost means zero value and zero rate, with no table
	// lookup at all: a request that loses no frontage must not fail on an
	// unconfigured combination it never needed.
	if in.Taking.FrontageLostLinearFeet > 0 {
		rate, err := e.cfg.FrontageRatePerFoot(in.PropertyBefore.RoadClassification, in.PropertyBefore.Use)
		if err != nil {
			return AccessDamages{}, err
		}
		d.RatePerLinearFoot = rate
		d.FrontageLossValue = in.Taking.FrontageLostLinearFeet * rate
	}

	if in.Taking.EliminatesDirectAccess || in.Remainder.AccessType == parcel.AccessCircuitous {
		d.CircuitousAccessAnnualCost = float64(market.TripsPerDay) *
			float64(market.BusinessDaysPerYear) *
			(in.Taking.CircuitousAccessAddedMinutes / minutesPerHour) *
			market.TravelTimeValuePerHour
		d.CircuitousAccessCost = finmath.CapitalizeAnnualCost(
			d.CircuitousAccessAnnualCost, market.CapRate, e.cfg.CapitalizationFallbackMultiple)
	}

	if in.Remainder.AccessType == parcel.AccessLandlocked {
		d.LandlockedRemedyCost = e.landlockedRemedyCost(in.PropertyBefore.ValuePerAcre)
	}

	d.TotalAccessDamages = d.FrontageLossValue + d.CircuitousAccessCost + d.LandlockedRemedyCost
	return d, nil
}

// landlockedRemedyCost is the cost to cure: acquire an access easement at a
// percentage of fee value over the default corridor, plus fixed legal and
// survey work.
func (e *Engine) landlockedRemedyCost(valuePerAcre float64) float64 {
	ease := e.cfg.Easement
	easementAcres := ease.DefaultWidthM * ease.DefaultLengthM / config.SquareMetersPerAcre
	easementValue := easementAcres * valuePerAcre * ease.PercentageOfFee
	return easementValue + ease.LegalCost + ease.SurveyCost
}
