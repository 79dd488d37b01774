package model

// GeometryConfig describes the fixed geometry of one layout query: the badge
// diameter and the sheet dimensions, all in device pixels at PrintDPI.
// A config is built fresh per query and never mutated; callers that change
// the diameter simply construct a new config and recompute.
type GeometryConfig struct {
	BadgeDiameterPx int `json:"badge_diameter_px"`
	BadgeRadiusPx   int `json:"badge_radius_px"`
	SheetWidthPx    int `json:"sheet_width_px"`
	SheetHeightPx   int `json:"sheet_height_px"`
}

// NewGeometryConfig builds a config for an A4 sheet and the given badge
// diameter in millimeters.
func NewGeometryConfig(badgeDiameterMM float64) GeometryConfig {
	d := MmToPixels(badgeDiameterMM)
	return GeometryConfig{
		BadgeDiameterPx: d,
		BadgeRadiusPx:   d / 2,
		SheetWidthPx:    A4WidthPx(),
		SheetHeightPx:   A4HeightPx(),
	}
}

// NewGeometryConfigPx builds a config from raw pixel dimensions. Used by
// tests and by callers that target a non-A4 sheet.
func NewGeometryConfigPx(badgeDiameterPx, sheetWidthPx, sheetHeightPx int) GeometryConfig {
	return GeometryConfig{
		BadgeDiameterPx: badgeDiameterPx,
		BadgeRadiusPx:   badgeDiameterPx / 2,
		SheetWidthPx:    sheetWidthPx,
		SheetHeightPx:   sheetHeightPx,
	}
}
