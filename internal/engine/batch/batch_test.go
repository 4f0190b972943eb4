package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landquant/severance/internal/config"
	"github.com/landquant/severance/internal/engine"
	"github.com/landquant/severance/internal/parcel"
)

func testInput(valuePerAcre float64) *parcel.Input {
	return &parcel.Input{
		PropertyBefore: parcel.PropertyBefore{
			TotalAcres:              5,
			FrontageLinearFeet:      400,
			RoadClassification:      parcel.RoadHighway,
			ShapeRatioFrontageDepth: 0.8,
			ValuePerAcre:            valuePerAcre,
			Use:                     parcel.UseCommercial,
		},
		Taking: parcel.Taking{
			AreaTakenAcres:         0.8,
			FrontageLostLinearFeet: 100,
		},
		Remainder: parcel.Remainder{
			Acres:                       4.2,
			FrontageRemainingLinearFeet: 300,
			ShapeRatioFrontageDepth:     0.75,
			AccessType:                  parcel.AccessDirect,
		},
	}
}

func testRunner(t *testing.T, concurrency int) *Runner {
	t.Helper()
	cfg, err := config.New()
	require.NoError(t, err)
	runner, err := NewRunner(engine.New(cfg), concurrency)
	require.NoError(t, err)
	return runner
}

func TestNewRunner_RejectsBadConcurrency(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	_, err = NewRunner(engine.New(cfg), 0)
	require.ErrorIs(t, err, ErrInvalidConcurrency)

	_, err = NewRunner(engine.New(cfg), MaxConcurrency+1)
	require.ErrorIs(t, err, ErrInvalidConcurrency)
}

func TestRun_PreservesInputOrder(t *testing.T) {
	runner := testRunner(t, 8)

	values := []float64{100000, 150000, 200000, 250000, 300000}
	inputs := make([]*parcel.Input, len(values))
	for i, v := range values {
		inputs[i] = testInput(v)
	}

	results, err := runner.Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(values))

	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, i, res.Index)
		assert.InDelta(t, 0.8*values[i], res.Summary.BeforeValueTaken, 1e-6)
	}
}

func TestRun_IndividualFailuresDoNotAbortTheBatch(t *testing.T) {
	runner := testRunner(t, 2)

	bad := testInput(150000)
	bad.Taking.AreaTakenAcres = 100 // exceeds total acres

	results, err := runner.Run(context.Background(), []*parcel.Input{testInput(150000), bad})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)

	var valErr *engine.ValidationError
	assert.ErrorAs(t, results[1].Err, &valErr)
	assert.Nil(t, results[1].Summary)
}

func TestRun_CanceledContextStopsTheRun(t *testing.T) {
	runner := testRunner(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, []*parcel.Input{testInput(150000)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_EmptyBatch(t *testing.T) {
	runner := testRunner(t, 4)

	results, err := runner.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
