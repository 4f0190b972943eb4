package config

import (
	"errors"
	"fmt"

	"github.com/landquant/severance/internal/parcel"
)

// RateLookupError reports a frontage-rate lookup for an enum combination the
// table does not cover. It carries the offending key so the caller can
// extend the configuration rather than guess.
type RateLookupError struct {
	RoadClassification parcel.RoadClassification
	Use                parcel.PropertyUse
}

func (e *RateLookupError) Error() string {
	return fmt.Sprintf("no frontage rate configured for road classification %q and use %q",
		e.RoadClassification, e.Use)
}

// Override-file errors.
var (
	// ErrConfigVersionMissing means the override file has no version field.
	ErrConfigVersionMissing = errors.New("config file missing version")
	// ErrConfigVersionUnsupported means the override file targets a config
	// schema this build does not understand.
	ErrConfigVersionUnsupported = errors.New("unsupported config file version")
)
