package model

import "math"

// LayoutMode selects the placement strategy for a single sheet.
type LayoutMode int

const (
	LayoutGrid    LayoutMode = iota // Evenly spaced rows and columns
	LayoutCompact                   // Staggered columns approximating hexagonal close-packing
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutCompact:
		return "compact"
	default:
		return "grid"
	}
}

// ParseLayoutMode maps a stored mode name back to a LayoutMode.
// Unknown names fall back to LayoutCompact, the application default.
func ParseLayoutMode(s string) LayoutMode {
	if s == "grid" {
		return LayoutGrid
	}
	return LayoutCompact
}

// Position is the center of one placed badge in device pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance between two badge centers.
func (p Position) DistanceTo(q Position) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// SheetLayout is the placement result for a single sheet: every position a
// badge can occupy under the given geometry, spacing, and margin. The layout
// is immutable once computed; Capacity is the authoritative per-sheet count
// used by the multi-page planner.
type SheetLayout struct {
	Mode      LayoutMode `json:"mode"`
	Positions []Position `json:"positions"`

	// Columns and Rows describe the arrangement: grid layouts fill
	// Columns x Rows; compact layouts use Columns staggered columns with
	// per-column row counts, so Rows is zero there.
	Columns int `json:"columns"`
	Rows    int `json:"rows,omitempty"`

	HorizontalPitchPx float64 `json:"horizontal_pitch_px"`
	VerticalPitchPx   float64 `json:"vertical_pitch_px"`
	MarginPx          int     `json:"margin_px"`
}

// Capacity returns how many badges fit on one sheet under this layout.
func (l SheetLayout) Capacity() int {
	return len(l.Positions)
}

// PageAssignment maps a contiguous run of items onto one output page.
type PageAssignment struct {
	PageIndex   int        `json:"page_index"` // 0-based
	ItemsOnPage int        `json:"items_on_page"`
	Positions   []Position `json:"positions"`
}

// MultiPageResult is the full plan for laying out TotalItems badges across
// as many sheets as needed. Every page reuses the same single-sheet position
// set, sliced to its item count; only the last page may be partially filled.
type MultiPageResult struct {
	TotalItems       int              `json:"total_items"`
	CapacityPerSheet int              `json:"capacity_per_sheet"`
	TotalPages       int              `json:"total_pages"`
	Pages            []PageAssignment `json:"pages"`
}

// PlacedItems returns the number of items assigned across all pages.
func (r MultiPageResult) PlacedItems() int {
	total := 0
	for _, p := range r.Pages {
		total += p.ItemsOnPage
	}
	return total
}

// SheetEfficiency returns the share of sheet area covered by badge discs on
// a fully occupied sheet, as a percentage.
func (r MultiPageResult) SheetEfficiency(cfg GeometryConfig) float64 {
	sheetArea := float64(cfg.SheetWidthPx) * float64(cfg.SheetHeightPx)
	if sheetArea == 0 {
		return 0
	}
	radius := float64(cfg.BadgeDiameterPx) / 2
	badgeArea := math.Pi * radius * radius
	return float64(r.CapacityPerSheet) * badgeArea / sheetArea * 100.0
}
