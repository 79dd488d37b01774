package model

// Print and screen resolution configuration. All layout math runs in device
// pixels at the print resolution; the preview scales down to screen DPI.
const (
	PrintDPI  = 300
	ScreenDPI = 96

	mmPerInch = 25.4
)

// ISO A4 sheet dimensions in millimeters.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// MmToPixels converts a length in millimeters to device pixels at PrintDPI.
func MmToPixels(mm float64) int {
	return int(mm * PrintDPI / mmPerInch)
}

// PixelsToMm converts device pixels at PrintDPI back to millimeters.
func PixelsToMm(px int) float64 {
	return float64(px) * mmPerInch / PrintDPI
}

// A4WidthPx returns the A4 sheet width in device pixels at PrintDPI.
func A4WidthPx() int { return MmToPixels(A4WidthMM) }

// A4HeightPx returns the A4 sheet height in device pixels at PrintDPI.
func A4HeightPx() int { return MmToPixels(A4HeightMM) }
