package engine

import (
	"math"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// hexRatio is the horizontal pitch of a true hexagonal close-packing as a
// fraction of the circle diameter (sin 60°).
const hexRatio = 0.8660254037844386

// colSpacingRelaxation is the fraction of the requested spacing tolerated
// between columns when that buys one more column. The 0.5 value comes from
// printer tests on the original tool; treat it as a tuning knob, not a
// derived quantity.
const colSpacingRelaxation = 0.5

// ComputeCompact places badges in vertically staggered columns approximating
// hexagonal close-packing. It tries two column models and keeps the denser:
//
//   - uniform: as many columns as fit with evenly distributed gaps of at
//     least colSpacingRelaxation times the requested spacing, centered;
//   - hexagonal: columns at the theoretical hex pitch, packed flush against
//     the left margin to squeeze in one more column.
//
// Odd columns start half a vertical pitch lower than even ones, interleaving
// the rows into a honeycomb. Columns whose circles would cross the printable
// area are dropped entirely rather than clamped.
func ComputeCompact(cfg model.GeometryConfig, spacingPx, marginPx int) model.SheetLayout {
	if spacingPx < 0 {
		spacingPx = 0
	}
	if marginPx < 0 {
		marginPx = 0
	}

	layout := model.SheetLayout{Mode: model.LayoutCompact, MarginPx: marginPx}

	d := cfg.BadgeDiameterPx
	// True half-diameter; BadgeRadiusPx truncates odd diameters.
	radius := float64(d) / 2
	availW := cfg.SheetWidthPx - 2*marginPx
	availH := cfg.SheetHeightPx - 2*marginPx
	if d <= 0 || d > availW || d > availH {
		return layout
	}

	maxColsUniform, uniformPitch := searchUniformColumns(d, spacingPx, availW)

	hexPitch := float64(d)*hexRatio + float64(spacingPx)
	maxColsHex := int(math.Floor((float64(availW) + hexPitch) / hexPitch))
	if maxColsHex < 1 {
		maxColsHex = 1
	}

	var columns int
	var hPitch, startX float64
	if maxColsHex > maxColsUniform {
		// Hexagonal pitch wins. Pack flush left: the rightmost column is
		// dropped by the bounds check below if it does not fully fit.
		columns = maxColsHex
		hPitch = hexPitch
		startX = float64(marginPx) + radius
	} else {
		if maxColsUniform == 0 {
			return layout
		}
		columns = maxColsUniform
		hPitch = uniformPitch
		blockW := float64(d) + float64(columns-1)*hPitch
		startX = float64(marginPx) + (float64(availW)-blockW)/2 + radius
	}

	// Hex vertical spacing under-separates rows when the horizontal pitch
	// came from the uniform model; clamp to the minimum safe distance.
	vPitch := math.Max(hPitch*hexRatio, float64(d+spacingPx))

	minX := float64(marginPx)
	maxX := float64(cfg.SheetWidthPx - marginPx)
	maxY := float64(cfg.SheetHeightPx - marginPx)

	var positions []model.Position
	emittedCols := 0
	for col := 0; col < columns; col++ {
		x := startX + float64(col)*hPitch
		if x-radius < minX || x+radius > maxX {
			continue
		}
		yStart := float64(marginPx) + radius
		if col%2 == 1 {
			yStart += vPitch / 2
		}
		before := len(positions)
		for row := 0; ; row++ {
			y := yStart + float64(row)*vPitch
			if y+radius > maxY {
				break
			}
			positions = append(positions, model.Position{X: x, Y: y})
		}
		if len(positions) > before {
			emittedCols++
		}
	}

	layout.Positions = positions
	// Columns counts the columns that actually hold badges, not the column
	// grid that was attempted before the bounds check.
	layout.Columns = emittedCols
	layout.HorizontalPitchPx = hPitch
	layout.VerticalPitchPx = vPitch
	return layout
}

// searchUniformColumns finds the largest column count that fits the available
// width with evenly distributed inter-column gaps of at least
// colSpacingRelaxation*spacing, and the realized pitch for that count.
func searchUniformColumns(d, spacingPx, availW int) (int, float64) {
	best := 0
	bestPitch := 0.0
	for testCols := 1; testCols <= availW/d; testCols++ {
		if testCols == 1 {
			best = 1
			bestPitch = float64(d)
			continue
		}
		spaceForGaps := availW - testCols*d
		if spaceForGaps < 0 {
			break
		}
		perGap := float64(spaceForGaps) / float64(testCols-1)
		if perGap >= colSpacingRelaxation*float64(spacingPx) {
			best = testCols
			bestPitch = float64(d) + perGap
		}
	}
	return best, bestPitch
}
