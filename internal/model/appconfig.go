package model

// Layout defaults and limits in millimeters. The margin limits come from
// printer hardware tests; margins below 5mm risk clipping on most consumer
// printers.
const (
	DefaultBadgeDiameterMM = 58.0
	DefaultBleedMM         = 5.0
	DefaultSpacingMM       = 3.0
	DefaultMarginMM        = 6.0

	MinBadgeDiameterMM = 20.0
	MaxBadgeDiameterMM = 100.0
	MinSpacingMM       = 0.0
	MaxSpacingMM       = 20.0
	MinMarginMM        = 5.0
	MaxMarginMM        = 30.0
)

// BadgePreset is a commonly manufactured badge size.
type BadgePreset struct {
	Name       string  `json:"name"`
	DiameterMM float64 `json:"diameter_mm"`
	BleedMM    float64 `json:"bleed_mm"`
}

// BadgePresets lists the built-in badge sizes offered in the UI.
var BadgePresets = []BadgePreset{
	{Name: "Small (32mm)", DiameterMM: 32, BleedMM: 5},
	{Name: "Standard (58mm)", DiameterMM: 58, BleedMM: 5},
	{Name: "Large (75mm)", DiameterMM: 75, BleedMM: 5},
}

// AppConfig holds user preferences and layout defaults. It is the single
// owner of parameter validation: values are clamped here before they reach
// the layout engine, which assumes sane inputs.
type AppConfig struct {
	BadgeDiameterMM float64 `json:"badge_diameter_mm"`
	BleedMM         float64 `json:"bleed_mm"`
	SpacingMM       float64 `json:"spacing_mm"`
	MarginMM        float64 `json:"margin_mm"`
	LayoutMode      string  `json:"layout_mode"`   // "grid" or "compact"
	ExportFormat    string  `json:"export_format"` // "pdf", "png", or "jpeg"

	RecentFiles []string `json:"recent_files"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns the configuration used on first launch.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		BadgeDiameterMM: DefaultBadgeDiameterMM,
		BleedMM:         DefaultBleedMM,
		SpacingMM:       DefaultSpacingMM,
		MarginMM:        DefaultMarginMM,
		LayoutMode:      LayoutCompact.String(),
		ExportFormat:    "pdf",
		RecentFiles:     []string{},
		Theme:           "system",
	}
}

// Clamp forces all layout parameters into their valid ranges.
func (c *AppConfig) Clamp() {
	c.BadgeDiameterMM = clamp(c.BadgeDiameterMM, MinBadgeDiameterMM, MaxBadgeDiameterMM)
	c.SpacingMM = clamp(c.SpacingMM, MinSpacingMM, MaxSpacingMM)
	c.MarginMM = clamp(c.MarginMM, MinMarginMM, MaxMarginMM)
}

// Geometry builds the immutable per-query geometry from the current diameter.
func (c AppConfig) Geometry() GeometryConfig {
	return NewGeometryConfig(c.BadgeDiameterMM)
}

// Mode returns the configured layout mode as a typed value.
func (c AppConfig) Mode() LayoutMode {
	return ParseLayoutMode(c.LayoutMode)
}

// AddRecentFile prepends a path to the recent-files list, removing any
// earlier occurrence and capping the list at ten entries.
func (c *AppConfig) AddRecentFile(path string) {
	recent := []string{path}
	for _, p := range c.RecentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	c.RecentFiles = recent
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
