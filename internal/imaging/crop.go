// Package imaging renders source pictures into circular badge discs at print
// resolution. The layout engine decides where discs go; this package decides
// what they look like.
package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// CircularCrop renders src into a circular disc of the given diameter.
// The image is scaled to cover the disc, then the user's crop parameters are
// applied: scale multiplies the cover fit, rotation is in degrees clockwise
// about the disc center, and the offsets shift the image center in disc
// pixels. Everything outside the circle is transparent.
func CircularCrop(src image.Image, diameterPx int, scale, offsetX, offsetY, rotationDeg float64) image.Image {
	dc := gg.NewContext(diameterPx, diameterPx)
	c := float64(diameterPx) / 2

	dc.DrawCircle(c, c, c)
	dc.Clip()

	bounds := src.Bounds()
	shortSide := math.Min(float64(bounds.Dx()), float64(bounds.Dy()))
	if shortSide <= 0 {
		return dc.Image()
	}
	if scale <= 0 {
		scale = 1
	}
	fit := float64(diameterPx) / shortSide * scale

	dc.RotateAbout(gg.Radians(rotationDeg), c, c)
	dc.ScaleAbout(fit, fit, c, c)
	dc.DrawImageAnchored(src, int(c+offsetX), int(c+offsetY), 0.5, 0.5)

	return dc.Image()
}

// RenderItem loads an item's source file and crops it into a badge disc.
func RenderItem(item model.ImageItem, diameterPx int) (image.Image, error) {
	src, err := gg.LoadImage(item.FilePath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", item.Filename(), err)
	}
	return CircularCrop(src, diameterPx, item.Scale, item.OffsetX, item.OffsetY, item.Rotation), nil
}

// PlaceholderDisc draws the empty-slot marker: a light gray circle outline
// on a transparent background, matching the preview style.
func PlaceholderDisc(diameterPx int) image.Image {
	dc := gg.NewContext(diameterPx, diameterPx)
	c := float64(diameterPx) / 2
	dc.SetRGBA255(220, 220, 220, 255)
	dc.SetLineWidth(2)
	dc.DrawCircle(c, c, c-1)
	dc.Stroke()
	return dc.Image()
}
