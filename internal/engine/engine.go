// Package engine computes badge placements on print sheets: a uniform grid
// layout, a density-optimized staggered-column layout, and a multi-page plan
// that partitions any number of badges across sheets. Every computation is a
// pure function of its inputs; the engine holds no mutable state and is safe
// for concurrent use.
package engine

import (
	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// sheetCalculator computes a single-sheet layout for one placement strategy.
type sheetCalculator interface {
	Compute(cfg model.GeometryConfig, spacingPx, marginPx int) model.SheetLayout
}

type gridCalculator struct{}

func (gridCalculator) Compute(cfg model.GeometryConfig, spacingPx, marginPx int) model.SheetLayout {
	return ComputeGrid(cfg, spacingPx, marginPx)
}

type compactCalculator struct{}

func (compactCalculator) Compute(cfg model.GeometryConfig, spacingPx, marginPx int) model.SheetLayout {
	return ComputeCompact(cfg, spacingPx, marginPx)
}

func calculatorFor(mode model.LayoutMode) sheetCalculator {
	if mode == model.LayoutGrid {
		return gridCalculator{}
	}
	return compactCalculator{}
}

// Engine is the layout query surface. It converts millimeter parameters to
// device pixels once, computes the single-sheet layout for the requested
// mode, and partitions the items across pages.
type Engine struct {
	Config model.GeometryConfig
}

func New(cfg model.GeometryConfig) *Engine {
	return &Engine{Config: cfg}
}

// SheetLayout computes the single-sheet layout for the given mode and
// millimeter parameters.
func (e *Engine) SheetLayout(mode model.LayoutMode, spacingMM, marginMM float64) model.SheetLayout {
	spacingPx := model.MmToPixels(spacingMM)
	marginPx := model.MmToPixels(marginMM)
	return calculatorFor(mode).Compute(e.Config, spacingPx, marginPx)
}

// Layout computes the full multi-page plan for totalItems badges.
func (e *Engine) Layout(totalItems int, mode model.LayoutMode, spacingMM, marginMM float64) (model.MultiPageResult, error) {
	return Partition(totalItems, e.SheetLayout(mode, spacingMM, marginMM))
}
