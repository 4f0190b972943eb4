package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/landquant/severance/internal/parcel"
)

// areaToleranceAcres absorbs survey rounding when checking that the taken
// area and the remainder reassemble the before parcel.
const areaToleranceAcres = 0.01

// structValidator drives the tag-declared range checks. It is configured to
// report every failing field, and field names are rewritten to their JSON
// tags so violations reference the wire-format path the caller submitted.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the input against the schema's structural and range rules
// plus the cross-field consistency rules, and returns every violation found.
// Modules assume validated input; the orchestrator refuses to dispatch when
// this list is non-empty.
func Validate(in *parcel.Input) []Violation {
	if in == nil {
		return []Violation{{Field: "", Message: "input is required"}}
	}

	var violations []Violation
	if err := structValidator.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				violations = append(violations, Violation{
					Field:   jsonPath(fe.Namespace()),
					Message: describeTag(fe),
				})
			}
		} else {
			violations = append(violations, Violation{Field: "", Message: err.Error()})
		}
	}

	violations = append(violations, crossFieldViolations(in)...)
	return violations
}

// jsonPath strips the root struct name from a validator namespace, leaving
// the dotted JSON path (e.g. "property_before.total_acres").
func jsonPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// crossFieldViolations enforces the consistency rules that tie the three
// records together. These belong to the validator, not the modules, so a
// module never has to second-guess its inputs.
func crossFieldViolations(in *parcel.Input) []Violation {
	var violations []Violation
	add := func(field, format string, args ...any) {
		violations = append(violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	before, taking, rem := &in.PropertyBefore, &in.Taking, &in.Remainder

	if taking.AreaTakenAcres > before.TotalAcres {
		add("taking.area_taken_acres", "cannot exceed property_before.total_acres (%g > %g)",
			taking.AreaTakenAcres, before.TotalAcres)
	}
	if rem.Acres+taking.AreaTakenAcres > before.TotalAcres+areaToleranceAcres {
		add("remainder.acres", "remainder plus taken area exceeds total acres (%g + %g > %g)",
			rem.Acres, taking.AreaTakenAcres, before.TotalAcres)
	}
	if taking.FrontageLostLinearFeet > before.FrontageLinearFeet {
		add("taking.frontage_lost_linear_feet", "cannot exceed property_before.frontage_linear_feet (%g > %g)",
			taking.FrontageLostLinearFeet, before.FrontageLinearFeet)
	}

	if taking.EliminatesDirectAccess && rem.AccessType == parcel.AccessDirect {
		add("remainder.access_type", "cannot be %q when taking.eliminates_direct_access is true",
			parcel.AccessDirect)
	}
	if taking.CreatesLandlocked && rem.AccessType != parcel.AccessLandlocked {
		add("remainder.access_type", "must be %q when taking.creates_landlocked is true",
			parcel.AccessLandlocked)
	}
	if !taking.CreatesLandlocked && rem.AccessType == parcel.AccessLandlocked {
		add("taking.creates_landlocked", "must be true when remainder.access_type is %q",
			parcel.AccessLandlocked)
	}

	if before.Use != parcel.UseAgricultural {
		if taking.BisectsFarm {
			add("taking.bisects_farm", "only valid for agricultural use, got %q", before.Use)
		}
		if taking.DisruptsIrrigation {
			add("taking.disrupts_irrigation", "only valid for agricultural use, got %q", before.Use)
		}
		if rem.RequiresNewFencingLinearMeters != nil {
			add("remainder.requires_new_fencing_linear_meters", "only valid for agricultural use, got %q", before.Use)
		}
		if rem.IrrigationAcresAffected != nil {
			add("remainder.irrigation_acres_affected", "only valid for agricultural use, got %q", before.Use)
		}
		if rem.TileDrainageLengthM != nil {
			add("remainder.tile_drainage_length_m", "only valid for agricultural use, got %q", before.Use)
		}
	}

	if rem.DowngradedValuePerAcre != nil {
		if !taking.SeversUtilities {
			add("remainder.downgraded_value_per_acre", "requires taking.severs_utilities to be true")
		}
		if *rem.DowngradedValuePerAcre >= before.ValuePerAcre {
			add("remainder.downgraded_value_per_acre", "must be below property_before.value_per_acre (%g >= %g)",
				*rem.DowngradedValuePerAcre, before.ValuePerAcre)
		}
	}

	return violations
}
