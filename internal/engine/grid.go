package engine

import (
	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// ComputeGrid places badges on a uniform rows-by-columns grid. The occupied
// block is centered inside the printable area and every center-to-center
// distance is a multiple of the pitch (diameter + spacing), so the layout is
// overlap-free by construction.
func ComputeGrid(cfg model.GeometryConfig, spacingPx, marginPx int) model.SheetLayout {
	if spacingPx < 0 {
		spacingPx = 0
	}
	if marginPx < 0 {
		marginPx = 0
	}

	layout := model.SheetLayout{Mode: model.LayoutGrid, MarginPx: marginPx}

	d := cfg.BadgeDiameterPx
	// True half-diameter: BadgeRadiusPx truncates odd diameters by half a
	// pixel, which would skew every center off the block's symmetry axis.
	radius := float64(d) / 2
	availW := cfg.SheetWidthPx - 2*marginPx
	availH := cfg.SheetHeightPx - 2*marginPx
	if d <= 0 || d > availW || d > availH {
		return layout
	}

	pitch := d + spacingPx
	cols := availW / pitch
	if cols < 1 {
		cols = 1
	}
	rows := availH / pitch
	if rows < 1 {
		rows = 1
	}

	// Center the span actually occupied by circles: cols*pitch minus the
	// trailing gap. The forced single column/row keeps its circle inside
	// the printable area even when one full pitch would not fit.
	blockW := float64(cols*pitch - spacingPx)
	blockH := float64(rows*pitch - spacingPx)
	startX := float64(marginPx) + (float64(availW)-blockW)/2
	startY := float64(marginPx) + (float64(availH)-blockH)/2

	positions := make([]model.Position, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			positions = append(positions, model.Position{
				X: startX + float64(col*pitch) + radius,
				Y: startY + float64(row*pitch) + radius,
			})
		}
	}

	layout.Positions = positions
	layout.Columns = cols
	layout.Rows = rows
	layout.HorizontalPitchPx = float64(pitch)
	layout.VerticalPitchPx = float64(pitch)
	return layout
}
