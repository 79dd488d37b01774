package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// PageCanvas renders a visual preview of one output page: the A4 sheet, the
// printable-area guide, and one circle per badge slot. All layout math is in
// print pixels; the widget scales down to fit its bounds.
type PageCanvas struct {
	widget.BaseWidget
	page      model.PageAssignment
	cfg       model.GeometryConfig
	marginPx  int
	maxWidth  float32
	maxHeight float32
}

func NewPageCanvas(page model.PageAssignment, cfg model.GeometryConfig, marginPx int, maxW, maxH float32) *PageCanvas {
	pc := &PageCanvas{
		page:      page,
		cfg:       cfg,
		marginPx:  marginPx,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *PageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newPageCanvasRenderer(pc)
}

type pageCanvasRenderer struct {
	pc      *PageCanvas
	objects []fyne.CanvasObject
}

func newPageCanvasRenderer(pc *PageCanvas) *pageCanvasRenderer {
	r := &pageCanvasRenderer{pc: pc}
	r.rebuild()
	return r
}

// scale returns the print-pixel to screen-point factor that fits the sheet
// within the widget bounds.
func (pc *PageCanvas) scale() float32 {
	sheetW := float32(pc.cfg.SheetWidthPx)
	sheetH := float32(pc.cfg.SheetHeightPx)
	scaleX := pc.maxWidth / sheetW
	scaleY := pc.maxHeight / sheetH
	if scaleY < scaleX {
		return scaleY
	}
	return scaleX
}

func (r *pageCanvasRenderer) rebuild() {
	r.objects = nil

	pc := r.pc
	scale := pc.scale()
	canvasW := float32(pc.cfg.SheetWidthPx) * scale
	canvasH := float32(pc.cfg.SheetHeightPx) * scale

	// Sheet background
	bg := canvas.NewRectangle(color.White)
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Sheet border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Printable-area guide
	m := float32(pc.marginPx) * scale
	guide := canvas.NewRectangle(color.Transparent)
	guide.StrokeColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	guide.StrokeWidth = 1
	guide.Resize(fyne.NewSize(canvasW-2*m, canvasH-2*m))
	guide.Move(fyne.NewPos(m, m))
	r.objects = append(r.objects, guide)

	// Badge slots
	radius := float32(pc.cfg.BadgeRadiusPx) * scale
	for i, pos := range pc.page.Positions {
		cx := float32(pos.X) * scale
		cy := float32(pos.Y) * scale

		circle := canvas.NewCircle(color.NRGBA{R: 33, G: 150, B: 243, A: 60})
		circle.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		circle.StrokeWidth = 1
		circle.Resize(fyne.NewSize(2*radius, 2*radius))
		circle.Move(fyne.NewPos(cx-radius, cy-radius))
		r.objects = append(r.objects, circle)

		// Slot number (only if big enough)
		if radius > 10 {
			label := canvas.NewText(fmt.Sprintf("%d", i+1), color.NRGBA{R: 80, G: 80, B: 80, A: 255})
			label.TextSize = 10
			label.Move(fyne.NewPos(cx-4, cy-7))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *pageCanvasRenderer) Layout(size fyne.Size)        {}
func (r *pageCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *pageCanvasRenderer) Destroy()                     {}
func (r *pageCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *pageCanvasRenderer) MinSize() fyne.Size {
	scale := r.pc.scale()
	return fyne.NewSize(
		float32(r.pc.cfg.SheetWidthPx)*scale,
		float32(r.pc.cfg.SheetHeightPx)*scale,
	)
}

// RenderPlanPages creates a scrollable container previewing every page of a
// layout plan.
func RenderPlanPages(result *model.MultiPageResult, cfg model.GeometryConfig, marginPx int) fyne.CanvasObject {
	if result == nil || len(result.Pages) == 0 {
		return widget.NewLabel("No layout yet. Adjust the parameters to compute one.")
	}

	var items []fyne.CanvasObject
	for _, page := range result.Pages {
		header := widget.NewLabel(fmt.Sprintf(
			"Page %d of %d — %d badges",
			page.PageIndex+1, result.TotalPages, page.ItemsOnPage,
		))
		header.TextStyle = fyne.TextStyle{Bold: true}

		pageCanvas := NewPageCanvas(page, cfg, marginPx, 420, 594)

		items = append(items, header, pageCanvas, widget.NewSeparator())
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Total: %d badges on %d pages, %d per sheet, %.1f%% sheet coverage",
		result.TotalItems, result.TotalPages, result.CapacityPerSheet,
		result.SheetEfficiency(cfg),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
