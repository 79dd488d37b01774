package ui

import (
	"fmt"
	"image"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fenglyu1314/BadgePatternTool/internal/engine"
	"github.com/fenglyu1314/BadgePatternTool/internal/export"
	"github.com/fenglyu1314/BadgePatternTool/internal/imaging"
	"github.com/fenglyu1314/BadgePatternTool/internal/model"
	"github.com/fenglyu1314/BadgePatternTool/internal/project"
	"github.com/fenglyu1314/BadgePatternTool/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window fyne.Window
	config model.AppConfig
	items  []model.ImageItem
	plan   *model.MultiPageResult
	tabs   *container.AppTabs

	// UI references for dynamic updates
	imagesContainer  *fyne.Container
	previewContainer *fyne.Container
	capacityLabel    *widget.Label
}

func NewApp(window fyne.Window, config model.AppConfig) *App {
	config.Clamp()
	return &App{
		window:        window,
		config:        config,
		capacityLabel: widget.NewLabel(""),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Add Image...", func() {
			a.addImage()
		}),
		fyne.NewMenuItem("Clear All Images", func() {
			a.items = nil
			a.refreshImagesList()
			a.recompute()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Page Images...", func() {
			a.exportImages()
		}),
		fyne.NewMenuItem("Export Cutting Pattern (DXF)...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItem("Export Placement Report (XLSX)...", func() {
			a.exportReport()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save Settings", func() {
			a.saveConfig()
		}),
		fyne.NewMenuItem("Quit", func() {
			a.saveConfig()
			a.window.Close()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About BadgePatternTool",
		"BadgePatternTool — Badge Layout Designer\n\n"+
			"A cross-platform desktop application for arranging\n"+
			"circular badges on A4 sheets and exporting\n"+
			"print-ready files.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	imagesTab := container.NewTabItem("Images", a.buildImagesPanel())
	settingsTab := container.NewTabItem("Layout", a.buildSettingsPanel())
	previewTab := container.NewTabItem("Preview", a.buildPreviewPanel())

	a.tabs = container.NewAppTabs(imagesTab, settingsTab, previewTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.recompute()
	return a.tabs
}

// ─── Images Panel ──────────────────────────────────────────

func (a *App) buildImagesPanel() fyne.CanvasObject {
	a.imagesContainer = container.NewVBox()
	a.refreshImagesList()

	addBtn := widget.NewButtonWithIcon("Add Image", theme.ContentAddIcon(), func() {
		a.addImage()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Badge Images", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.imagesContainer),
	)
}

func (a *App) refreshImagesList() {
	a.imagesContainer.RemoveAll()

	if len(a.items) == 0 {
		a.imagesContainer.Add(widget.NewLabel("No images added yet. Click 'Add Image' to begin."))
		return
	}

	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("File", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Scale", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Rotation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.imagesContainer.Add(header)
	a.imagesContainer.Add(widget.NewSeparator())

	for i := range a.items {
		idx := i // capture
		item := a.items[idx]
		row := container.NewGridWithColumns(5,
			widget.NewLabel(item.Filename()),
			widget.NewLabel(fmt.Sprintf("%.2f", item.Scale)),
			widget.NewLabel(fmt.Sprintf("%.0f°", item.Rotation)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditItemDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.items = append(a.items[:idx], a.items[idx+1:]...)
				a.refreshImagesList()
				a.recompute()
			}),
		)
		a.imagesContainer.Add(row)
	}
}

func (a *App) addImage() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		if !model.IsSupportedImage(path) {
			dialog.ShowError(fmt.Errorf("unsupported image format: %s", path), a.window)
			return
		}

		a.items = append(a.items, model.NewImageItem(path))
		a.config.AddRecentFile(path)
		a.refreshImagesList()
		a.recompute()
	}, a.window)
}

func (a *App) showEditItemDialog(idx int) {
	item := a.items[idx]

	scaleEntry := widget.NewEntry()
	scaleEntry.SetText(fmt.Sprintf("%.2f", item.Scale))

	offsetXEntry := widget.NewEntry()
	offsetXEntry.SetText(fmt.Sprintf("%.0f", item.OffsetX))

	offsetYEntry := widget.NewEntry()
	offsetYEntry.SetText(fmt.Sprintf("%.0f", item.OffsetY))

	rotationEntry := widget.NewEntry()
	rotationEntry.SetText(fmt.Sprintf("%.0f", item.Rotation))

	form := dialog.NewForm("Edit Badge Crop", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Scale", scaleEntry),
			widget.NewFormItem("Offset X (px)", offsetXEntry),
			widget.NewFormItem("Offset Y (px)", offsetYEntry),
			widget.NewFormItem("Rotation (deg)", rotationEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			s, _ := strconv.ParseFloat(scaleEntry.Text, 64)
			if s <= 0 {
				dialog.ShowError(fmt.Errorf("scale must be > 0"), a.window)
				return
			}
			ox, _ := strconv.ParseFloat(offsetXEntry.Text, 64)
			oy, _ := strconv.ParseFloat(offsetYEntry.Text, 64)
			rot, _ := strconv.ParseFloat(rotationEntry.Text, 64)
			a.items[idx].Scale = s
			a.items[idx].OffsetX = ox
			a.items[idx].OffsetY = oy
			a.items[idx].Rotation = rot
			a.refreshImagesList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 300))
	form.Show()
}

// ─── Layout Settings Panel ─────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	c := &a.config

	// Helper to create a float entry that recomputes the layout on change.
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
				a.recompute()
			}
		}
		return e
	}

	diameterEntry := floatEntry(&c.BadgeDiameterMM)

	// Preset dropdown fills the diameter entry with a standard badge size.
	presetNames := make([]string, 0, len(model.BadgePresets)+1)
	presetNames = append(presetNames, "Custom")
	for _, p := range model.BadgePresets {
		presetNames = append(presetNames, p.Name)
	}
	presetSelect := widget.NewSelect(presetNames, func(selected string) {
		for _, p := range model.BadgePresets {
			if p.Name == selected {
				diameterEntry.SetText(fmt.Sprintf("%.1f", p.DiameterMM))
				break
			}
		}
	})
	presetSelect.PlaceHolder = "Select a badge size..."

	modeSelect := widget.NewSelect([]string{"Compact (staggered)", "Grid (rows and columns)"}, func(selected string) {
		switch selected {
		case "Grid (rows and columns)":
			c.LayoutMode = model.LayoutGrid.String()
		default:
			c.LayoutMode = model.LayoutCompact.String()
		}
		a.recompute()
	})
	switch c.Mode() {
	case model.LayoutGrid:
		modeSelect.SetSelected("Grid (rows and columns)")
	default:
		modeSelect.SetSelected("Compact (staggered)")
	}

	formatSelect := widget.NewSelect([]string{"pdf", "png", "jpeg"}, func(selected string) {
		c.ExportFormat = selected
	})
	formatSelect.SetSelected(c.ExportFormat)

	badgeSection := widget.NewCard("Badge", "", container.NewGridWithColumns(2,
		widget.NewLabel("Preset Size"), presetSelect,
		widget.NewLabel("Diameter (mm)"), diameterEntry,
		widget.NewLabel("Bleed (mm)"), floatEntry(&c.BleedMM),
	))

	sheetSection := widget.NewCard("Sheet", "", container.NewGridWithColumns(2,
		widget.NewLabel("Layout Mode"), modeSelect,
		widget.NewLabel("Spacing (mm)"), floatEntry(&c.SpacingMM),
		widget.NewLabel("Margin (mm)"), floatEntry(&c.MarginMM),
		widget.NewLabel("Export Format"), formatSelect,
	))

	return container.NewVScroll(container.NewVBox(
		badgeSection,
		sheetSection,
		a.capacityLabel,
	))
}

// ─── Preview Panel ─────────────────────────────────────────

func (a *App) buildPreviewPanel() fyne.CanvasObject {
	a.previewContainer = container.NewStack(
		widget.NewLabel("No layout yet. Adjust the parameters to compute one."),
	)
	return a.previewContainer
}

func (a *App) refreshPreview() {
	if a.previewContainer == nil {
		return
	}
	a.previewContainer.RemoveAll()
	a.previewContainer.Add(widgets.RenderPlanPages(
		a.plan, a.config.Geometry(), model.MmToPixels(a.config.MarginMM)))
	a.previewContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

// recompute rebuilds the layout plan from the current config and item count.
func (a *App) recompute() {
	a.config.Clamp()

	eng := engine.New(a.config.Geometry())
	plan, err := eng.Layout(len(a.items), a.config.Mode(), a.config.SpacingMM, a.config.MarginMM)
	if err != nil {
		a.plan = nil
		a.capacityLabel.SetText(fmt.Sprintf("No badges fit the sheet: %v", err))
		a.refreshPreview()
		return
	}

	a.plan = &plan
	a.capacityLabel.SetText(fmt.Sprintf(
		"%d badges per sheet — %d badges on %d pages",
		plan.CapacityPerSheet, plan.TotalItems, plan.TotalPages,
	))
	a.refreshPreview()
}

func (a *App) saveConfig() {
	if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
		dialog.ShowError(err, a.window)
	}
}

// layoutParams snapshots the current settings for export metadata.
func (a *App) layoutParams() export.LayoutParams {
	return export.LayoutParams{
		Mode:            a.config.LayoutMode,
		BadgeDiameterMM: a.config.BadgeDiameterMM,
		SpacingMM:       a.config.SpacingMM,
		MarginMM:        a.config.MarginMM,
	}
}

// renderDiscs crops every item into a badge disc for raster export. Items
// whose source file fails to load fall back to the placeholder outline.
func (a *App) renderDiscs() []image.Image {
	diameter := a.config.Geometry().BadgeDiameterPx
	discs := make([]image.Image, len(a.items))
	for i, item := range a.items {
		disc, err := imaging.RenderItem(item, diameter)
		if err != nil {
			continue
		}
		discs[i] = disc
	}
	return discs
}

func (a *App) requirePlan() bool {
	if a.plan == nil || len(a.plan.Pages) == 0 {
		dialog.ShowInformation("No layout", "Compute a layout first by adding images or adjusting parameters.", a.window)
		return false
	}
	return true
}

func (a *App) exportPDF() {
	if !a.requirePlan() {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportPDF(path, *a.plan, a.config.Geometry(), a.layoutParams()); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("PDF saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("badges.pdf")
	d.Show()
}

func (a *App) exportImages() {
	if !a.requirePlan() {
		return
	}
	format := a.config.ExportFormat
	if format != "jpeg" {
		format = "png"
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		paths, err := export.ExportImages(path, format, *a.plan, a.config.Geometry(), a.renderDiscs())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("%d page image(s) saved", len(paths)), a.window)
	}, a.window)
	d.SetFileName("badges." + format)
	d.Show()
}

func (a *App) exportDXF() {
	eng := engine.New(a.config.Geometry())
	sheet := eng.SheetLayout(a.config.Mode(), a.config.SpacingMM, a.config.MarginMM)
	if sheet.Capacity() == 0 {
		dialog.ShowInformation("No layout", "The current parameters leave no room for badges.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportDXF(path, sheet, a.config.Geometry()); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Cutting pattern saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("pattern.dxf")
	d.Show()
}

func (a *App) exportReport() {
	if !a.requirePlan() {
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := export.ExportReport(path, *a.plan, a.config.Geometry(), a.layoutParams()); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Placement report saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("placements.xlsx")
	d.Show()
}
