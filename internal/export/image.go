package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/fenglyu1314/BadgePatternTool/internal/imaging"
	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

const jpegQuality = 95

// RenderPage draws one page of a plan onto a white sheet-sized canvas at
// print resolution. discs supplies the rendered badge images for the page's
// items in order; missing or nil entries fall back to the empty-slot
// placeholder outline.
func RenderPage(page model.PageAssignment, cfg model.GeometryConfig, discs []image.Image) image.Image {
	dc := gg.NewContext(cfg.SheetWidthPx, cfg.SheetHeightPx)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, pos := range page.Positions {
		disc := imaging.PlaceholderDisc(cfg.BadgeDiameterPx)
		if i < len(discs) && discs[i] != nil {
			disc = discs[i]
		}
		dc.DrawImageAnchored(disc, int(pos.X), int(pos.Y), 0.5, 0.5)
	}
	return dc.Image()
}

// ExportImages renders every page of a plan and writes one raster file per
// page. format selects the encoder ("png" or "jpeg"); multi-page plans get a
// _pageN suffix before the extension. The written paths are returned in page
// order.
func ExportImages(path, format string, result model.MultiPageResult, cfg model.GeometryConfig, discs []image.Image) ([]string, error) {
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("no pages to export")
	}

	paths := make([]string, 0, len(result.Pages))
	offset := 0
	for _, page := range result.Pages {
		var pageDiscs []image.Image
		if offset < len(discs) {
			end := offset + page.ItemsOnPage
			if end > len(discs) {
				end = len(discs)
			}
			pageDiscs = discs[offset:end]
		}
		offset += page.ItemsOnPage

		out := pagePath(path, page.PageIndex, result.TotalPages)
		if err := writeImage(out, format, RenderPage(page, cfg, pageDiscs)); err != nil {
			return nil, err
		}
		paths = append(paths, out)
	}
	return paths, nil
}

// pagePath inserts a _pageN suffix before the extension for multi-page plans.
func pagePath(path string, pageIndex, totalPages int) string {
	if totalPages <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_page%d%s", strings.TrimSuffix(path, ext), pageIndex+1, ext)
}

func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return png.Encode(f, img)
	}
}
