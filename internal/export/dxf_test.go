package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

func TestExportDXF_WritesOneCirclePerPosition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.dxf")

	result, cfg := buildTestPlan()
	layout := model.SheetLayout{Mode: model.LayoutCompact, Positions: result.Pages[0].Positions}

	if err := ExportDXF(path, layout, cfg); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	if got := strings.Count(string(data), "CIRCLE"); got != layout.Capacity() {
		t.Errorf("DXF contains %d CIRCLE entities, want %d", got, layout.Capacity())
	}
}

func TestExportDXF_EmptyLayout(t *testing.T) {
	dir := t.TempDir()
	_, cfg := buildTestPlan()

	err := ExportDXF(filepath.Join(dir, "empty.dxf"), model.SheetLayout{}, cfg)
	if err == nil {
		t.Fatal("expected error for empty layout, got nil")
	}
}
