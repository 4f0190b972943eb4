package engine

import (
	"context"
	"fmt"

	"github.com/landquant/severance/internal/config"
	"github.com/landquant/severance/internal/logging"
	"github.com/landquant/severance/internal/parcel"
)

// damagesShareWarningThreshold flags calculations where severance damages
// consume more than this share of the remainder's proportionate value, so a
// reviewer takes a second look at the inputs. Advisory only.
const damagesShareWarningThreshold = 0.5

// Engine runs the severance-damages pipeline against one immutable
// configuration. It holds no per-calculation state; a single Engine may
// serve concurrent calculations without synchronization.
type Engine struct {
	cfg *config.EngineConfig
}

// New returns an engine bound to cfg. The configuration must already have
// passed config.New's exhaustiveness verification.
func New(cfg *config.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Calculate runs Validate, dispatches the damage modules, assembles the
// summary, and reconciles the before/after values.
//
// Validation failure halts before any module executes and returns a
// *ValidationError carrying every violation. A *config.RateLookupError from
// the access module propagates unmodified. All other paths are pure
// arithmetic.
func (e *Engine) Calculate(ctx context.Context, in *parcel.Input) (*Summary, error) {
	log := logging.FromContext(ctx)

	if violations := Validate(in); len(violations) > 0 {
		log.Debug().
			Str("component", "engine").
			Str("operation", "calculate").
			Int("violation_count", len(violations)).
			Msg("input rejected by validator")
		return nil, &ValidationError{Violations: violations}
	}

	market := e.cfg.ResolveMarket(in.MarketParameters)

	access, err := e.AccessDamages(in, market)
	if err != nil {
		return nil, err
	}
	shape := e.ShapeDamages(in)
	utility := e.UtilityDamages(in)

	var farm *FarmDamages
	if in.PropertyBefore.Use == parcel.UseAgricultural {
		f := e.FarmDamages(in, market)
		farm = &f
	}

	summary := assemble(in, access, shape, utility, farm)

	log.Debug().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("use", string(in.PropertyBefore.Use)).
		Float64("total_severance_damages", summary.TotalSeveranceDamages).
		Float64("after_value_remainder", summary.AfterValueRemainder).
		Int("warning_count", len(summary.Warnings)).
		Msg("calculation complete")

	return summary, nil
}

// assemble sums the category totals and performs the before/after
// reconciliation. A negative after value is a legitimate, reportable outcome
// (damages exceeding the remainder's worth) and passes through with an
// advisory warning rather than being clamped.
func assemble(in *parcel.Input, access AccessDamages, shape ShapeDamages, utility UtilityDamages, farm *FarmDamages) *Summary {
	total := access.TotalAccessDamages + shape.TotalShapeDamages + utility.TotalUtilityDamages
	if farm != nil {
		total += farm.TotalFarmDamages
	}

	beforeRemainder := in.Remainder.Acres * in.PropertyBefore.ValuePerAcre
	afterRemainder := beforeRemainder - total

	summary := &Summary{
		AccessDamages:                     access,
		ShapeDamages:                      shape,
		UtilityDamages:                    utility,
		FarmDamages:                       farm,
		TotalSeveranceDamages:             total,
		BeforeValueRemainderProportionate: beforeRemainder,
		AfterValueRemainder:               afterRemainder,
		BeforeValueTaken:                  in.Taking.AreaTakenAcres * in.PropertyBefore.ValuePerAcre,
		Warnings:                          []string{},
	}

	if afterRemainder < 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf(
			"severance damages (%.2f) exceed the remainder's proportionate value (%.2f); after value is negative",
			total, beforeRemainder))
	} else if beforeRemainder > 0 && total > beforeRemainder*damagesShareWarningThreshold {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf(
			"severance damages (%.2f) exceed %.0f%% of the remainder's proportionate value (%.2f)",
			total, damagesShareWarningThreshold*100, beforeRemainder))
	}

	return summary
}
