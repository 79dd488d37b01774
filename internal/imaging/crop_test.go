package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/fogleman/gg"
)

// solidImage builds a single-color test source.
func solidImage(w, h int, c color.Color) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(c)
	dc.Clear()
	return dc.Image()
}

func TestCircularCrop_MasksCorners(t *testing.T) {
	src := solidImage(200, 200, color.NRGBA{R: 255, A: 255})
	disc := CircularCrop(src, 100, 1, 0, 0, 0)

	b := disc.Bounds()
	if b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("disc bounds = %v, want 100x100", b)
	}

	// Center is inside the circle and keeps the source color.
	_, _, _, a := disc.At(50, 50).RGBA()
	if a == 0 {
		t.Error("center pixel should be opaque")
	}
	r, _, _, _ := disc.At(50, 50).RGBA()
	if r == 0 {
		t.Error("center pixel should keep the red source color")
	}

	// Corners are outside the circle and must be transparent.
	for _, pt := range []image.Point{{1, 1}, {98, 1}, {1, 98}, {98, 98}} {
		if _, _, _, a := disc.At(pt.X, pt.Y).RGBA(); a != 0 {
			t.Errorf("corner %v should be transparent", pt)
		}
	}
}

func TestCircularCrop_NonPositiveScaleFallsBack(t *testing.T) {
	src := solidImage(50, 50, color.NRGBA{G: 255, A: 255})
	disc := CircularCrop(src, 80, 0, 0, 0, 0)
	if _, _, _, a := disc.At(40, 40).RGBA(); a == 0 {
		t.Error("zero scale should fall back to cover fit, not an empty disc")
	}
}

func TestCircularCrop_RotationKeepsCoverage(t *testing.T) {
	src := solidImage(300, 200, color.NRGBA{B: 255, A: 255})
	disc := CircularCrop(src, 120, 1, 0, 0, 45)
	if _, _, _, a := disc.At(60, 60).RGBA(); a == 0 {
		t.Error("rotated crop should still cover the disc center")
	}
}

func TestPlaceholderDisc(t *testing.T) {
	disc := PlaceholderDisc(100)
	b := disc.Bounds()
	if b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("placeholder bounds = %v, want 100x100", b)
	}
	// Interior stays transparent; only the outline is drawn.
	if _, _, _, a := disc.At(50, 50).RGBA(); a != 0 {
		t.Error("placeholder interior should be transparent")
	}
	// A point on the ring is drawn.
	if _, _, _, a := disc.At(50, 1).RGBA(); a == 0 {
		t.Error("placeholder outline should be visible at the top of the ring")
	}
}
