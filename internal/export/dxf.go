package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// ExportDXF writes the single-sheet cutting pattern as a DXF drawing with one
// circle per badge position, in millimeters. DXF is Y-up, so the Y axis is
// flipped to match the printed sheet when opened in CAD.
func ExportDXF(path string, layout model.SheetLayout, cfg model.GeometryConfig) error {
	if layout.Capacity() == 0 {
		return fmt.Errorf("no positions to export")
	}

	d := dxf.NewDrawing()
	radius := model.PixelsToMm(cfg.BadgeRadiusPx)
	sheetHeight := model.PixelsToMm(cfg.SheetHeightPx)

	for _, pos := range layout.Positions {
		x := pxToMm(pos.X)
		y := sheetHeight - pxToMm(pos.Y)
		if _, err := d.Circle(x, y, 0.0, radius); err != nil {
			return fmt.Errorf("failed to add circle at (%.1f, %.1f): %w", x, y, err)
		}
	}

	return d.SaveAs(path)
}
