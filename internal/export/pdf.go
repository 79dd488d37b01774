// Package export writes badge layout plans to production formats: printable
// PDF sheets, raster page images, DXF cutting patterns, and XLSX placement
// reports.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// LayoutParams holds the settings a layout plan was computed with. They are
// printed in each page footer and encoded into the print-ticket QR code so a
// print shop can verify the job against the file.
type LayoutParams struct {
	Mode            string  `json:"mode"`
	BadgeDiameterMM float64 `json:"badge_diameter_mm"`
	SpacingMM       float64 `json:"spacing_mm"`
	MarginMM        float64 `json:"margin_mm"`
}

// ticketInfo is the JSON payload of the per-page print-ticket QR code.
type ticketInfo struct {
	LayoutParams
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Items      int `json:"items"`
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = model.A4WidthMM
	pageHeight   = model.A4HeightMM
	footerHeight = 6.0
	ticketSize   = 14.0 // print-ticket QR code size in mm
)

// pxToMm converts a fractional pixel coordinate at print resolution to mm.
func pxToMm(px float64) float64 {
	return px * 25.4 / model.PrintDPI
}

// ExportPDF generates the printable PDF for a layout plan. Each page of the
// plan is rendered at true scale on its own A4 page: one circle outline per
// badge slot with its slot number, a light rectangle marking the printable
// area, a footer describing the job, and a print-ticket QR code.
func ExportPDF(path string, result model.MultiPageResult, cfg model.GeometryConfig, params LayoutParams) error {
	if len(result.Pages) == 0 {
		return fmt.Errorf("no pages to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range result.Pages {
		pdf.AddPage()
		if err := renderBadgePage(pdf, page, cfg, params, result.TotalPages); err != nil {
			return err
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderBadgePage draws one page assignment on the current PDF page.
func renderBadgePage(pdf *fpdf.Fpdf, page model.PageAssignment, cfg model.GeometryConfig, params LayoutParams, totalPages int) error {
	radius := model.PixelsToMm(cfg.BadgeRadiusPx)

	// Printable area guide (cut along the outer circles, not this rectangle).
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(params.MarginMM, params.MarginMM,
		pageWidth-2*params.MarginMM, pageHeight-2*params.MarginMM, "D")

	// Badge outlines with slot numbers.
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	for i, pos := range page.Positions {
		x := pxToMm(pos.X)
		y := pxToMm(pos.Y)
		pdf.Circle(x, y, radius, "D")

		label := fmt.Sprintf("%d", i+1)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(x-labelW/2, y-2)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	// Footer: job parameters and page counter.
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(params.MarginMM, pageHeight-footerHeight)
	footer := fmt.Sprintf("%s layout | %.0fmm badges | spacing %.1fmm | margin %.1fmm | page %d/%d | %d badges",
		params.Mode, params.BadgeDiameterMM, params.SpacingMM, params.MarginMM,
		page.PageIndex+1, totalPages, page.ItemsOnPage)
	pdf.CellFormat(pageWidth-2*params.MarginMM, 4, footer, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return drawPrintTicket(pdf, page, params, totalPages)
}

// drawPrintTicket places the QR-coded job ticket in the bottom-right corner,
// inside the sheet margin so it never collides with badge circles.
func drawPrintTicket(pdf *fpdf.Fpdf, page model.PageAssignment, params LayoutParams, totalPages int) error {
	ticket := ticketInfo{
		LayoutParams: params,
		Page:         page.PageIndex + 1,
		TotalPages:   totalPages,
		Items:        page.ItemsOnPage,
	}

	data, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("failed to marshal print ticket: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate print ticket QR code: %w", err)
	}

	imgName := fmt.Sprintf("ticket_page_%d", page.PageIndex)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-ticketSize-2, pageHeight-ticketSize-2,
		ticketSize, ticketSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	return nil
}
