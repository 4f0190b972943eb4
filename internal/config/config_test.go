package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landquant/severance/internal/parcel"
)

func TestNew_TableIsExhaustive(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	for _, rc := range parcel.RoadClassifications() {
		for _, use := range parcel.PropertyUses() {
			rate, err := cfg.FrontageRatePerFoot(rc, use)
			require.NoError(t, err, "missing rate for %s x %s", rc, use)
			assert.Greater(t, rate, 0.0)
		}
	}
}

func TestNew_FailsOnTableGap(t *testing.T) {
	cfg := Default()
	delete(cfg.FrontageRates[parcel.RoadCollector], parcel.UseResidential)

	err := cfg.verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collector")
}

func TestFrontageRatePerFoot(t *testing.T) {
	cfg := Default()

	t.Run("published midpoints", func(t *testing.T) {
		rate, err := cfg.FrontageRatePerFoot(parcel.RoadHighway, parcel.UseCommercial)
		require.NoError(t, err)
		assert.InDelta(t, 1000.0, rate, 1e-9)

		rate, err = cfg.FrontageRatePerFoot(parcel.RoadLocal, parcel.UseResidential)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, rate, 1e-9)
	})

	t.Run("unknown combination is a typed error", func(t *testing.T) {
		_, err := cfg.FrontageRatePerFoot(parcel.RoadClassification("cul-de-sac"), parcel.UseCommercial)
		require.Error(t, err)

		var lookupErr *RateLookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, parcel.RoadClassification("cul-de-sac"), lookupErr.RoadClassification)
	})
}

func TestResolveMarket(t *testing.T) {
	cfg := Default()

	t.Run("nil takes all defaults", func(t *testing.T) {
		m := cfg.ResolveMarket(nil)
		assert.InDelta(t, cfg.Market.CapRate, m.CapRate, 1e-9)
		assert.Equal(t, cfg.Market.TripsPerDay, m.TripsPerDay)
		assert.Equal(t, cfg.Market.BusinessDaysPerYear, m.BusinessDaysPerYear)
	})

	t.Run("explicit zero cap rate is preserved", func(t *testing.T) {
		zero := 0.0
		m := cfg.ResolveMarket(&parcel.MarketParameters{CapRate: &zero})
		assert.Zero(t, m.CapRate)
	})

	t.Run("partial overrides keep remaining defaults", func(t *testing.T) {
		trips := 20
		m := cfg.ResolveMarket(&parcel.MarketParameters{TripsPerDay: &trips})
		assert.Equal(t, 20, m.TripsPerDay)
		assert.InDelta(t, cfg.Market.TravelTimeValuePerHour, m.TravelTimeValuePerHour, 1e-9)
	})
}

func TestLoad(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "severance.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("overrides selected fields only", func(t *testing.T) {
		path := writeConfig(t, `
version: "1.0"
market_defaults:
  cap_rate: 0.08
  trips_per_day: 14
easement:
  legal_cost: 30000
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.InDelta(t, 0.08, cfg.Market.CapRate, 1e-9)
		assert.Equal(t, 14, cfg.Market.TripsPerDay)
		assert.InDelta(t, 30000.0, cfg.Easement.LegalCost, 1e-9)
		// Untouched fields keep their defaults.
		assert.InDelta(t, Default().Easement.SurveyCost, cfg.Easement.SurveyCost, 1e-9)
		assert.InDelta(t, Default().Farm.FencingCostPerM, cfg.Farm.FencingCostPerM, 1e-9)
	})

	t.Run("missing version is rejected", func(t *testing.T) {
		path := writeConfig(t, "market_defaults:\n  cap_rate: 0.08\n")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrConfigVersionMissing)
	})

	t.Run("future major version is rejected", func(t *testing.T) {
		path := writeConfig(t, "version: \"2.0\"\n")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrConfigVersionUnsupported)
	})

	t.Run("unparseable version is rejected", func(t *testing.T) {
		path := writeConfig(t, "version: \"not-a-version\"\n")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrConfigVersionUnsupported)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
