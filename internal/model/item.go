package model

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageItem is one user-supplied picture destined for a badge slot, together
// with its crop parameters. The layout engine never sees items; it only
// counts them.
type ImageItem struct {
	ID       string  `json:"id"`
	FilePath string  `json:"file_path"`
	Scale    float64 `json:"scale"`    // 1.0 = fit the badge disc
	OffsetX  float64 `json:"offset_x"` // px at PrintDPI, relative to disc center
	OffsetY  float64 `json:"offset_y"`
	Rotation float64 `json:"rotation"` // degrees clockwise
}

// NewImageItem creates an item with default crop parameters.
func NewImageItem(path string) ImageItem {
	return ImageItem{
		ID:       uuid.New().String()[:8],
		FilePath: path,
		Scale:    1.0,
	}
}

// Filename returns the base name of the item's source file.
func (it ImageItem) Filename() string {
	return filepath.Base(it.FilePath)
}

// supportedImageExts lists the source formats accepted for import.
var supportedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
}

// IsSupportedImage reports whether the path has a recognized image extension.
func IsSupportedImage(path string) bool {
	return supportedImageExts[strings.ToLower(filepath.Ext(path))]
}
