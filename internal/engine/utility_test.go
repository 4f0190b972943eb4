package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilityDamages_CostToCure(t *testing.T) {
	e := testEngine(t)

	t.Run("default relocation length", func(t *testing.T) {
		in := commercialTaking()
		in.Taking.SeversUtilities = true

		d := e.UtilityDamages(in)
		// 50m at $250 water + $400 sewer per meter, plus the $15,000
		// drainage engineering fee.
		assert.InDelta(t, 50*(250+400)+15000.0, d.ServicingCostToCure, 1e-6)
	})

	t.Run("input-supplied relocation length", func(t *testing.T) {
		in := commercialTaking()
		in.Taking.SeversUtilities = true
		in.Taking.UtilityRelocationLengthM = floatPtr(120)

		d := e.UtilityDamages(in)
		assert.InDelta(t, 120*(250+400)+15000.0, d.ServicingCostToCure, 1e-6)
	})

	t.Run("no severance means zero cost", func(t *testing.T) {
		d := e.UtilityDamages(commercialTaking())
		assert.Zero(t, d.ServicingCostToCure)
	})
}

func TestUtilityDamages_HBUDowngrade(t *testing.T) {
	e := testEngine(t)

	t.Run("caller-supplied downgrade value", func(t *testing.T) {
		in := commercialTaking()
		in.Taking.SeversUtilities = true
		in.Remainder.DowngradedValuePerAcre = floatPtr(90000)

		d := e.UtilityDamages(in)
		// (150,000 - 90,000) x 4.2 acres.
		assert.InDelta(t, 60000*4.2, d.HBUDowngradeLoss, 1e-6)
	})

	t.Run("absent downgrade value contributes zero", func(t *testing.T) {
		in := commercialTaking()
		in.Taking.SeversUtilities = true

		d := e.UtilityDamages(in)
		assert.Zero(t, d.HBUDowngradeLoss)
	})
}

func TestUtilityDamages_TotalSumsComponents(t *testing.T) {
	e := testEngine(t)

	in := commercialTaking()
	in.Taking.SeversUtilities = true
	in.Remainder.DowngradedValuePerAcre = floatPtr(100000)

	d := e.UtilityDamages(in)
	assert.InDelta(t, d.ServicingCostToCure+d.HBUDowngradeLoss, d.TotalUtilityDamages, 1e-9)
	assert.Positive(t, d.TotalUtilityDamages)
}
