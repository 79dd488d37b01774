package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineLayout_FullPlan(t *testing.T) {
	// 25 badges of 68mm at 1mm spacing / 5mm margin: 11 per sheet, 3 pages.
	eng := New(model.NewGeometryConfig(68))
	result, err := eng.Layout(25, model.LayoutCompact, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 11, result.CapacityPerSheet)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 25, result.PlacedItems())
}

func TestEngineLayout_ModeDispatch(t *testing.T) {
	eng := New(model.NewGeometryConfig(32))

	grid := eng.SheetLayout(model.LayoutGrid, 2, 8)
	compact := eng.SheetLayout(model.LayoutCompact, 2, 8)

	assert.Equal(t, model.LayoutGrid, grid.Mode)
	assert.Equal(t, model.LayoutCompact, compact.Mode)
	assert.NotEqual(t, grid.Positions, compact.Positions)

	// Dispatch matches calling the calculators directly with converted units.
	assert.Equal(t, ComputeGrid(eng.Config, model.MmToPixels(2), model.MmToPixels(8)), grid)
	assert.Equal(t, ComputeCompact(eng.Config, model.MmToPixels(2), model.MmToPixels(8)), compact)
}

func TestEngineLayout_NoCapacityError(t *testing.T) {
	// A 170mm badge cannot fit an A4 width of 210mm minus 50mm margins.
	eng := New(model.NewGeometryConfig(170))
	_, err := eng.Layout(3, model.LayoutCompact, 2, 25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCapacity))
}

func TestEngineLayout_Deterministic(t *testing.T) {
	eng := New(model.NewGeometryConfig(58))
	a, errA := eng.Layout(40, model.LayoutCompact, 3, 6)
	b, errB := eng.Layout(40, model.LayoutCompact, 3, 6)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b, "identical inputs must produce identical plans")
}

func TestEngineLayout_ConcurrentCalls(t *testing.T) {
	// The engine holds no mutable state; concurrent queries must agree.
	eng := New(model.NewGeometryConfig(58))
	want, err := eng.Layout(30, model.LayoutGrid, 3, 6)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]model.MultiPageResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := eng.Layout(30, model.LayoutGrid, 3, 6)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
