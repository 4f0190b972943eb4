// Package config holds every numeric constant the damage modules price with:
// the frontage rate table, easement and cost-to-cure figures, shape discount
// tiers, agricultural unit costs, and market-parameter defaults.
//
// An EngineConfig is built once, verified for table exhaustiveness, and then
// treated as immutable. It is passed into every module call rather than read
// from package state, so concurrent calculations (and parallel tests with
// overridden constants) never interfere with each other.
package config

import (
	"fmt"

	"github.com/landquant/severance/internal/parcel"
)

// SquareMetersPerAcre converts easement geometry in meters to acres.
const SquareMetersPerAcre = 4046.86

// EasementConfig prices the cost to cure a landlocked remainder: acquire an
// access easement at a percentage of fee value, plus fixed legal and survey
// work.
type EasementConfig struct {
	// DefaultWidthM and DefaultLengthM describe the assumed easement corridor
	// when the filing does not specify one.
	DefaultWidthM  float64 `yaml:"default_width_m"`
	DefaultLengthM float64 `yaml:"default_length_m"`
	// PercentageOfFee is the fraction of fee-simple value an access easement
	// typically commands.
	PercentageOfFee float64 `yaml:"percentage_of_fee"`
	LegalCost       float64 `yaml:"legal_cost"`
	SurveyCost      float64 `yaml:"survey_cost"`
}

// ShapeTier maps a minimum efficiency index to the value discount applied to
// the remainder's proportionate value. Tiers are ordered from the highest
// MinIndex down; the first tier whose MinIndex the parcel meets wins.
type ShapeTier struct {
	MinIndex float64 `yaml:"min_index"`
	Discount float64 `yaml:"discount"`
}

// ShapeConfig drives the shape-irregularity module.
type ShapeConfig struct {
	// LandlockedEfficiencyIndex is assigned to a zero-frontage remainder
	// outright, bypassing the general formula.
	LandlockedEfficiencyIndex float64     `yaml:"landlocked_efficiency_index"`
	DiscountTiers             []ShapeTier `yaml:"discount_tiers"`
}

// DevelopmentConfig prices development-yield loss per use category.
// Residential and agricultural losses are counted in units; industrial and
// commercial in buildable square feet.
type DevelopmentConfig struct {
	IndustrialValuePerSF     float64 `yaml:"industrial_value_per_sf"`
	CommercialValuePerSF     float64 `yaml:"commercial_value_per_sf"`
	ResidentialValuePerUnit  float64 `yaml:"residential_value_per_unit"`
	AgriculturalValuePerUnit float64 `yaml:"agricultural_value_per_unit"`
}

// UtilityConfig prices site-servicing cost-to-cure work.
type UtilityConfig struct {
	WaterRelocationPerM      float64 `yaml:"water_relocation_per_m"`
	SewerRelocationPerM      float64 `yaml:"sewer_relocation_per_m"`
	DrainageEngineeringFee   float64 `yaml:"drainage_engineering_fee"`
	DefaultRelocationLengthM float64 `yaml:"default_relocation_length_m"`
}

// FarmConfig prices agricultural operation disruption.
type FarmConfig struct {
	FencingCostPerM              float64 `yaml:"fencing_cost_per_m"`
	TileDrainagePerM             float64 `yaml:"tile_drainage_per_m"`
	DrainageEngineeringFee       float64 `yaml:"drainage_engineering_fee"`
	EquipmentCrossingsPerYear    float64 `yaml:"equipment_crossings_per_year"`
	EquipmentOperatorCostPerHour float64 `yaml:"equipment_operator_cost_per_hour"`
	IrrigationRepairFixed        float64 `yaml:"irrigation_repair_fixed"`
	IrrigationPremiumPerAcre     float64 `yaml:"irrigation_premium_per_acre"`
}

// MarketDefaults fills MarketParameters fields the caller leaves unset.
type MarketDefaults struct {
	CapRate                float64 `yaml:"cap_rate"`
	TravelTimeValuePerHour float64 `yaml:"travel_time_value_per_hour"`
	TripsPerDay            int     `yaml:"trips_per_day"`
	BusinessDaysPerYear    int     `yaml:"business_days_per_year"`
}

// EngineConfig is the complete constant set for one calculation. Read-only
// after New returns it; share freely across goroutines.
type EngineConfig struct {
	// FrontageRates is the $/linear-foot midpoint table keyed by road
	// classification then use. Every (classification, use) pair must be
	// present; New fails otherwise.
	FrontageRates map[parcel.RoadClassification]map[parcel.PropertyUse]float64 `yaml:"frontage_rates"`

	Easement    EasementConfig    `yaml:"easement"`
	Shape       ShapeConfig       `yaml:"shape"`
	Development DevelopmentConfig `yaml:"development"`
	Utility     UtilityConfig     `yaml:"utility"`
	Farm        FarmConfig        `yaml:"farm"`
	Market      MarketDefaults    `yaml:"market_defaults"`

	// CapitalizationFallbackMultiple stands in for a missing cap rate.
	CapitalizationFallbackMultiple float64 `yaml:"capitalization_fallback_multiple"`
}

// Default returns the published constant set. Frontage rates are midpoints
// of the published $/LF ranges (e.g. highway commercial $500-$1,500 gives
// $1,000/LF).
func Default() *EngineConfig {
	return &EngineConfig{
		FrontageRates: map[parcel.RoadClassification]map[parcel.PropertyUse]float64{
			parcel.RoadHighway: {
				parcel.UseIndustrial:   600,
				parcel.UseCommercial:   1000,
				parcel.UseResidential:  150,
				parcel.UseAgricultural: 75,
			},
			parcel.RoadArterial: {
				parcel.UseIndustrial:   400,
				parcel.UseCommercial:   600,
				parcel.UseResidential:  100,
				parcel.UseAgricultural: 50,
			},
			parcel.RoadCollector: {
				parcel.UseIndustrial:   250,
				parcel.UseCommercial:   350,
				parcel.UseResidential:  75,
				parcel.UseAgricultural: 40,
			},
			parcel.RoadLocal: {
				parcel.UseIndustrial:   150,
				parcel.UseCommercial:   200,
				parcel.UseResidential:  50,
				parcel.UseAgricultural: 25,
			},
		},
		Easement: EasementConfig{
			DefaultWidthM:   20,
			DefaultLengthM:  200,
			PercentageOfFee: 0.12,
			LegalCost:       25000,
			SurveyCost:      8000,
		},
		Shape: ShapeConfig{
			LandlockedEfficiencyIndex: 0.2,
			DiscountTiers: []ShapeTier{
				{MinIndex: 0.8, Discount: 0.02},
				{MinIndex: 0.6, Discount: 0.08},
				{MinIndex: 0.4, Discount: 0.15},
				{MinIndex: 0, Discount: 0.30},
			},
		},
		Development: DevelopmentConfig{
			IndustrialValuePerSF:     25,
			CommercialValuePerSF:     45,
			ResidentialValuePerUnit:  30000,
			AgriculturalValuePerUnit: 12000,
		},
		Utility: UtilityConfig{
			WaterRelocationPerM:      250,
			SewerRelocationPerM:      400,
			DrainageEngineeringFee:   15000,
			DefaultRelocationLengthM: 50,
		},
		Farm: FarmConfig{
			FencingCostPerM:              35,
			TileDrainagePerM:             45,
			DrainageEngineeringFee:       15000,
			EquipmentCrossingsPerYear:    250,
			EquipmentOperatorCostPerHour: 120,
			IrrigationRepairFixed:        18000,
			IrrigationPremiumPerAcre:     2500,
		},
		Market: MarketDefaults{
			CapRate:                0.06,
			TravelTimeValuePerHour: 35,
			TripsPerDay:            10,
			BusinessDaysPerYear:    250,
		},
		CapitalizationFallbackMultiple: 10,
	}
}

// New returns the default configuration after verifying the rate table is
// exhaustive over every enum combination.
func New() (*EngineConfig, error) {
	cfg := Default()
	if err := cfg.verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// verify is the startup self-test: a road classification or use added to the
// parcel package without a matching rate table entry fails construction
// immediately instead of surfacing as a lookup error mid-calculation.
func (c *EngineConfig) verify() error {
	for _, rc := range parcel.RoadClassifications() {
		byUse, ok := c.FrontageRates[rc]
		if !ok {
			return fmt.Errorf("frontage rate table: missing road classification %q", rc)
		}
		for _, use := range parcel.PropertyUses() {
			if _, ok := byUse[use]; !ok {
				return fmt.Errorf("frontage rate table: missing rate for %q x %q", rc, use)
			}
		}
	}
	if len(c.Shape.DiscountTiers) == 0 {
		return fmt.Errorf("shape config: no discount tiers")
	}
	return nil
}

// FrontageRatePerFoot looks up the $/linear-foot midpoint for the given road
// classification and use. An unconfigured combination is a RateLookupError,
// never a silent zero.
func (c *EngineConfig) FrontageRatePerFoot(rc parcel.RoadClassification, use parcel.PropertyUse) (float64, error) {
	byUse, ok := c.FrontageRates[rc]
	if !ok {
		return 0, &RateLookupError{RoadClassification: rc, Use: use}
	}
	rate, ok := byUse[use]
	if !ok {
		return 0, &RateLookupError{RoadClassification: rc, Use: use}
	}
	return rate, nil
}

// ResolveMarket fills absent market parameters with the configured defaults.
// A nil input yields the defaults wholesale. An explicit zero CapRate is
// preserved (it selects the capitalization fallback); only an absent rate
// takes the default.
func (c *EngineConfig) ResolveMarket(mp *parcel.MarketParameters) ResolvedMarket {
	resolved := ResolvedMarket{
		CapRate:                c.Market.CapRate,
		TravelTimeValuePerHour: c.Market.TravelTimeValuePerHour,
		TripsPerDay:            c.Market.TripsPerDay,
		BusinessDaysPerYear:    c.Market.BusinessDaysPerYear,
	}
	if mp == nil {
		return resolved
	}
	if mp.CapRate != nil {
		resolved.CapRate = *mp.CapRate
	}
	if mp.TravelTimeValuePerHour != nil {
		resolved.TravelTimeValuePerHour = *mp.TravelTimeValuePerHour
	}
	if mp.TripsPerDay != nil {
		resolved.TripsPerDay = *mp.TripsPerDay
	}
	if mp.BusinessDaysPerYear != nil {
		resolved.BusinessDaysPerYear = *mp.BusinessDaysPerYear
	}
	return resolved
}

// ResolvedMarket is a MarketParameters with every default applied; modules
// consume this, never the raw optional-field form.
type ResolvedMarket struct {
	CapRate                float64
	TravelTimeValuePerHour float64
	TripsPerDay            int
	BusinessDaysPerYear    int
}
