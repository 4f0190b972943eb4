// Package engine implements the severance-damages calculation: four damage
// modules (access, shape, utility, farm) over a validated before/taking/
// remainder record set, assembled into a before/after summary.
//
// Every calculation is a pure function of its inputs and the injected
// configuration. No state survives a call, so one Engine may serve any
// number of concurrent calculations.
package engine

// AccessDamages quantifies value loss from reduced or altered access.
// Sub-amounts that do not apply are exactly zero, never omitted.
type AccessDamages struct {
	// FrontageLossValue is frontage lost times the configured $/LF midpoint.
	FrontageLossValue float64 `json:"frontage_loss_value"`
	// RatePerLinearFoot is the looked-up rate; zero when no frontage was
	// lost (in which case no lookup happens at all).
	RatePerLinearFoot float64 `json:"rate_per_linear_foot"`
	// CircuitousAccessAnnualCost is the recurring travel-time cost before
	// capitalization.
	CircuitousAccessAnnualCost float64 `json:"circuitous_access_annual_cost"`
	// CircuitousAccessCost is the capitalized present value of the above.
	CircuitousAccessCost float64 `json:"circuitous_access_cost"`
	// LandlockedRemedyCost is the easement acquisition plus legal and survey
	// cost to cure a landlocked remainder.
	LandlockedRemedyCost float64 `json:"landlocked_remedy_cost"`
	// TotalAccessDamages sums the applicable components at assembly time.
	TotalAccessDamages float64 `json:"total_access_damages"`
}

// ShapeDamages quantifies value loss from geometric inefficiency of the
// remainder and from reduced development yield.
type ShapeDamages struct {
	// EfficiencyIndex is the [0,1] compactness score of the remainder.
	// Reported even when no discount applies, for audit.
	EfficiencyIndex float64 `json:"efficiency_index"`
	// DiscountRate is the tier discount applied to the remainder's
	// proportionate value; zero when the taking creates no irregular shape.
	DiscountRate float64 `json:"discount_rate"`
	// ShapeDiscountValue is the remainder's proportionate value times the
	// discount rate.
	ShapeDiscountValue float64 `json:"shape_discount_value"`
	// DevelopmentYieldLoss prices lost units or buildable square footage.
	DevelopmentYieldLoss float64 `json:"development_yield_loss"`
	TotalShapeDamages    float64 `json:"total_shape_damages"`
}

// UtilityDamages quantifies servicing cost-to-cure and any caller-supplied
// highest-and-best-use downgrade.
type UtilityDamages struct {
	ServicingCostToCure float64 `json:"servicing_cost_to_cure"`
	HBUDowngradeLoss    float64 `json:"hbu_downgrade_loss"`
	TotalUtilityDamages float64 `json:"total_utility_damages"`
}

// FarmDamages quantifies agricultural operation disruption. Produced only
// for agricultural properties; the orchestrator never invokes the farm
// module otherwise.
type FarmDamages struct {
	FieldDivisionCost float64 `json:"field_division_cost"`
	// EquipmentAccessAnnualCost is the recurring crossing-delay cost before
	// capitalization.
	EquipmentAccessAnnualCost float64 `json:"equipment_access_annual_cost"`
	EquipmentAccessCost       float64 `json:"equipment_access_cost"`
	IrrigationCost            float64 `json:"irrigation_cost"`
	TotalFarmDamages          float64 `json:"total_farm_damages"`
}

// Summary is the assembled result of one calculation. Built once by the
// orchestrator, read-only afterward, serialized as-is to the output
// boundary.
type Summary struct {
	AccessDamages  AccessDamages  `json:"access_damages"`
	ShapeDamages   ShapeDamages   `json:"shape_damages"`
	UtilityDamages UtilityDamages `json:"utility_damages"`
	// FarmDamages is null for non-agricultural properties.
	FarmDamages *FarmDamages `json:"farm_damages"`

	TotalSeveranceDamages             float64 `json:"total_severance_damages"`
	BeforeValueRemainderProportionate float64 `json:"before_value_remainder_proportionate"`
	AfterValueRemainder               float64 `json:"after_value_remainder"`
	BeforeValueTaken                  float64 `json:"before_value_taken"`

	// Warnings carries advisory conditions that are valid domain outcomes,
	// not errors (e.g. damages exceeding the remainder's value).
	Warnings []string `json:"warnings"`
}
