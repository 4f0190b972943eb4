// Package parcel defines the input records for a severance-damages
// calculation: the property as it stood before the taking, the taking
// itself, the remainder left behind, and the market parameters used to
// capitalize recurring costs.
//
// A fresh set of records is built per calculation request and never mutated
// afterward. Range and cross-field validation lives in the engine's
// validator, not in constructors, so a caller always receives the complete
// list of problems in one pass.
package parcel

// RoadClassification categorizes the road a parcel fronts onto.
type RoadClassification string

// Valid road classifications, highest traffic volume first.
const (
	RoadHighway   RoadClassification = "highway"
	RoadArterial  RoadClassification = "arterial"
	RoadCollector RoadClassification = "collector"
	RoadLocal     RoadClassification = "local"
)

// RoadClassifications lists every recognized classification, in table order.
func RoadClassifications() []RoadClassification {
	return []RoadClassification{RoadHighway, RoadArterial, RoadCollector, RoadLocal}
}

// PropertyUse is the highest-and-best-use category of a parcel.
type PropertyUse string

// Valid property uses.
const (
	UseIndustrial   PropertyUse = "industrial"
	UseCommercial   PropertyUse = "commercial"
	UseResidential  PropertyUse = "residential"
	UseAgricultural PropertyUse = "agricultural"
)

// PropertyUses lists every recognized use, in table order.
func PropertyUses() []PropertyUse {
	return []PropertyUse{UseIndustrial, UseCommercial, UseResidential, UseAgricultural}
}

// AccessType describes how the remainder reaches a public road.
type AccessType string

// Valid access types.
const (
	AccessDirect     AccessType = "direct"
	AccessCircuitous AccessType = "circuitous"
	AccessLandlocked AccessType = "landlocked"
)

// PropertyBefore describes the whole parcel immediately prior to the taking.
type PropertyBefore struct {
	// TotalAcres is the area of the whole parcel.
	TotalAcres float64 `json:"total_acres" validate:"required,gt=0"`
	// FrontageLinearFeet is road frontage in linear feet.
	FrontageLinearFeet float64 `json:"frontage_linear_feet" validate:"gte=0"`
	// RoadClassification keys the frontage rate table together with Use.
	RoadClassification RoadClassification `json:"road_classification" validate:"required,oneof=highway arterial collector local"`
	// ShapeRatioFrontageDepth is frontage divided by depth.
	ShapeRatioFrontageDepth float64 `json:"shape_ratio_frontage_depth" validate:"gte=0"`
	// ValuePerAcre is the market unit value of the whole parcel.
	ValuePerAcre float64 `json:"value_per_acre" validate:"required,gt=0"`
	// Use is the highest-and-best-use category.
	Use PropertyUse `json:"use" validate:"required,oneof=industrial commercial residential agricultural"`
	// DevelopmentPotentialUnits is the approved or plausible unit yield.
	DevelopmentPotentialUnits *int `json:"development_potential_units,omitempty" validate:"omitempty,gte=0"`
	// BuildableAreaSF is the developable floor area in square feet.
	BuildableAreaSF *int `json:"buildable_area_sf,omitempty" validate:"omitempty,gte=0"`
}

// Taking describes the part expropriated and the impairments it causes.
type Taking struct {
	// AreaTakenAcres is the land actually acquired.
	AreaTakenAcres float64 `json:"area_taken_acres" validate:"gte=0"`
	// FrontageLostLinearFeet is road frontage removed by the taking.
	FrontageLostLinearFeet float64 `json:"frontage_lost_linear_feet" validate:"gte=0"`

	CreatesLandlocked           bool `json:"creates_landlocked"`
	EliminatesDirectAccess      bool `json:"eliminates_direct_access"`
	CreatesIrregularShape       bool `json:"creates_irregular_shape"`
	SeversUtilities             bool `json:"severs_utilities"`
	ReducesDevelopmentPotential bool `json:"reduces_development_potential"`
	BisectsFarm                 bool `json:"bisects_farm"`
	DisruptsIrrigation          bool `json:"disrupts_irrigation"`

	// CircuitousAccessAddedMinutes is the extra one-way travel time the new
	// access route imposes.
	CircuitousAccessAddedMinutes float64 `json:"circuitous_access_added_minutes" validate:"gte=0,lte=120"`
	// UtilityRelocationLengthM overrides the configured default relocation
	// run when the filing measured it.
	UtilityRelocationLengthM *float64 `json:"utility_relocation_length_m,omitempty" validate:"omitempty,gte=0"`
}

// Remainder describes the parcel left after the taking.
type Remainder struct {
	// Acres is the remainder area; together with the taken area it must not
	// exceed the before total (rounding tolerance applies).
	Acres float64 `json:"acres" validate:"gte=0"`
	// FrontageRemainingLinearFeet is road frontage still held.
	FrontageRemainingLinearFeet float64 `json:"frontage_remaining_linear_feet" validate:"gte=0"`
	// ShapeRatioFrontageDepth is the remainder's frontage/depth ratio.
	ShapeRatioFrontageDepth float64 `json:"shape_ratio_frontage_depth" validate:"gte=0"`
	// AccessType must be consistent with the taking's access flags.
	AccessType AccessType `json:"access_type" validate:"required,oneof=direct circuitous landlocked"`

	BuildableAreaSF           *int `json:"buildable_area_sf,omitempty" validate:"omitempty,gte=0"`
	DevelopmentPotentialUnits *int `json:"development_potential_units,omitempty" validate:"omitempty,gte=0"`

	// RequiresNewFencingLinearMeters is agricultural-only field-division fencing.
	RequiresNewFencingLinearMeters *float64 `json:"requires_new_fencing_linear_meters,omitempty" validate:"omitempty,gte=0"`
	// IrrigationAcresAffected is agricultural-only irrigated area disturbed.
	IrrigationAcresAffected *float64 `json:"irrigation_acres_affected,omitempty" validate:"omitempty,gte=0"`
	// TileDrainageLengthM is agricultural-only tile replacement length.
	TileDrainageLengthM *float64 `json:"tile_drainage_length_m,omitempty" validate:"omitempty,gte=0"`
	// DowngradedValuePerAcre is the caller-supplied unit value after a
	// utility-driven highest-and-best-use downgrade. Absent means no
	// downgrade is claimed.
	DowngradedValuePerAcre *float64 `json:"downgraded_value_per_acre,omitempty" validate:"omitempty,gt=0"`
}

// MarketParameters carries the capitalization and travel-cost assumptions.
// Absent fields take the configured defaults.
type MarketParameters struct {
	// CapRate is the market capitalization rate. An explicit 0 selects the
	// fallback multiple instead of division; absent takes the configured
	// default.
	CapRate *float64 `json:"cap_rate,omitempty" validate:"omitempty,gte=0,lte=0.20"`
	// TravelTimeValuePerHour prices occupant travel time.
	TravelTimeValuePerHour *float64 `json:"travel_time_value_per_hour,omitempty" validate:"omitempty,gt=0"`
	// TripsPerDay is the round-trip count used for circuitous-access costing.
	TripsPerDay *int `json:"trips_per_day,omitempty" validate:"omitempty,gt=0"`
	// BusinessDaysPerYear caps at a calendar year.
	BusinessDaysPerYear *int `json:"business_days_per_year,omitempty" validate:"omitempty,gt=0,lte=365"`
}

// Input is the top-level calculation request.
type Input struct {
	PropertyBefore   PropertyBefore    `json:"property_before" validate:"required"`
	Taking           Taking            `json:"taking"`
	Remainder        Remainder         `json:"remainder"`
	MarketParameters *MarketParameters `json:"market_parameters,omitempty"`
}
