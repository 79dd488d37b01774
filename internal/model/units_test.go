package model

import (
	"math"
	"testing"
)

func TestMmToPixels(t *testing.T) {
	tests := []struct {
		mm   float64
		want int
	}{
		{0, 0},
		{1, 11},
		{25.4, 300},
		{58, 685},
		{68, 803},
		{A4WidthMM, 2480},
		{A4HeightMM, 3507},
	}
	for _, tt := range tests {
		if got := MmToPixels(tt.mm); got != tt.want {
			t.Errorf("MmToPixels(%v) = %d, want %d", tt.mm, got, tt.want)
		}
	}
}

func TestPixelsToMmRoundTrip(t *testing.T) {
	for _, mm := range []float64{5, 32, 58, 75, 210} {
		px := MmToPixels(mm)
		back := PixelsToMm(px)
		// Truncation to whole pixels loses at most one pixel (~0.085mm)
		if math.Abs(back-mm) > 0.1 {
			t.Errorf("round trip %vmm -> %dpx -> %vmm drifted too far", mm, px, back)
		}
	}
}

func TestA4Dimensions(t *testing.T) {
	if A4WidthPx() != 2480 {
		t.Errorf("A4WidthPx() = %d, want 2480", A4WidthPx())
	}
	if A4HeightPx() != 3507 {
		t.Errorf("A4HeightPx() = %d, want 3507", A4HeightPx())
	}
}
