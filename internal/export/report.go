package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

const (
	summarySheet    = "Summary"
	placementsSheet = "Placements"
)

// ExportReport writes an XLSX workbook describing a layout plan: a Summary
// sheet with the job parameters and totals, and a Placements sheet listing
// every badge slot with its page and center coordinates in millimeters.
func ExportReport(path string, result model.MultiPageResult, cfg model.GeometryConfig, params LayoutParams) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("no pages to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := writeSummary(f, result, cfg, params); err != nil {
		return err
	}
	if _, err := f.NewSheet(placementsSheet); err != nil {
		return fmt.Errorf("failed to create placements sheet: %w", err)
	}
	if err := writePlacements(f, result); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, result model.MultiPageResult, cfg model.GeometryConfig, params LayoutParams) error {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Layout mode", params.Mode},
		{"Badge diameter (mm)", params.BadgeDiameterMM},
		{"Spacing (mm)", params.SpacingMM},
		{"Margin (mm)", params.MarginMM},
		{"Total badges", result.TotalItems},
		{"Badges per sheet", result.CapacityPerSheet},
		{"Total pages", result.TotalPages},
		{"Sheet efficiency (%)", result.SheetEfficiency(cfg)},
	}

	for i, row := range rows {
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to build summary cell: %w", err)
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return fmt.Errorf("failed to build summary cell: %w", err)
		}
		if err := f.SetCellValue(summarySheet, labelCell, row.label); err != nil {
			return fmt.Errorf("failed to write summary row %q: %w", row.label, err)
		}
		if err := f.SetCellValue(summarySheet, valueCell, row.value); err != nil {
			return fmt.Errorf("failed to write summary row %q: %w", row.label, err)
		}
	}
	return nil
}

func writePlacements(f *excelize.File, result model.MultiPageResult) error {
	headers := []string{"Page", "Slot", "Center X (mm)", "Center Y (mm)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(placementsSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	row := 2
	for _, page := range result.Pages {
		for slot, pos := range page.Positions {
			values := []interface{}{page.PageIndex + 1, slot + 1, pxToMm(pos.X), pxToMm(pos.Y)}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("failed to build placement cell: %w", err)
				}
				if err := f.SetCellValue(placementsSheet, cell, v); err != nil {
					return fmt.Errorf("failed to write placement row %d: %w", row, err)
				}
			}
			row++
		}
	}
	return nil
}
