// BadgePatternTool — Badge Layout Designer
//
// A cross-platform desktop application for arranging circular badges on A4
// sheets and exporting print-ready PDFs, page images, cutting patterns, and
// placement reports.
//
// Build:
//   go build -o badgepatterntool ./cmd/badgepatterntool
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o badgepatterntool.exe ./cmd/badgepatterntool
//   GOOS=darwin  GOARCH=amd64 go build -o badgepatterntool-darwin ./cmd/badgepatterntool
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
	"github.com/fenglyu1314/BadgePatternTool/internal/project"
	"github.com/fenglyu1314/BadgePatternTool/internal/ui"
)

func main() {
	application := app.NewWithID("com.fenglyu1314.badgepatterntool")
	application.Settings().SetTheme(ui.NewBadgeTheme())

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}

	window := application.NewWindow("BadgePatternTool — Badge Layout Designer")

	appUI := ui.NewApp(window, config)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.Show()

	application.Run()
}
