package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// buildTestPlan creates a realistic two-page layout plan for testing: six
// badge slots per A4 sheet, ten badges total.
func buildTestPlan() (model.MultiPageResult, model.GeometryConfig) {
	cfg := model.NewGeometryConfig(58)

	var positions []model.Position
	for _, y := range []float64{400, 1120} {
		for _, x := range []float64{400, 1120, 1840} {
			positions = append(positions, model.Position{X: x, Y: y})
		}
	}

	return model.MultiPageResult{
		TotalItems:       10,
		CapacityPerSheet: len(positions),
		TotalPages:       2,
		Pages: []model.PageAssignment{
			{PageIndex: 0, ItemsOnPage: 6, Positions: positions},
			{PageIndex: 1, ItemsOnPage: 4, Positions: positions[:4]},
		},
	}, cfg
}

func buildTestParams() LayoutParams {
	return LayoutParams{Mode: "compact", BadgeDiameterMM: 58, SpacingMM: 3, MarginMM: 6}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badges.pdf")

	result, cfg := buildTestPlan()
	err := ExportPDF(path, result, cfg, buildTestParams())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	// Two pages with circles and QR tickets should be a reasonable size.
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	_, cfg := buildTestPlan()
	err := ExportPDF(path, model.MultiPageResult{}, cfg, buildTestParams())
	if err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}

func TestExportPDF_EmptyPlaceholderPage(t *testing.T) {
	// A zero-item plan still carries one empty page and must export cleanly.
	dir := t.TempDir()
	path := filepath.Join(dir, "placeholder.pdf")

	_, cfg := buildTestPlan()
	result := model.MultiPageResult{
		TotalItems:       0,
		CapacityPerSheet: 6,
		TotalPages:       1,
		Pages:            []model.PageAssignment{{PageIndex: 0}},
	}

	if err := ExportPDF(path, result, cfg, buildTestParams()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestPxToMm(t *testing.T) {
	// 300 pixels at 300 DPI is exactly one inch.
	if got := pxToMm(300); got != 25.4 {
		t.Errorf("pxToMm(300) = %v, want 25.4", got)
	}
}
