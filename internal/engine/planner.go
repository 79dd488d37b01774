package engine

import (
	"errors"
	"fmt"

	"github.com/fenglyu1314/BadgePatternTool/internal/model"
)

// ErrNoCapacity is returned when items were requested but the sheet layout
// cannot hold a single badge. Callers surface this to the user ("nothing
// fits, reduce margin or badge size") instead of producing empty pages.
var ErrNoCapacity = errors.New("sheet layout has zero capacity")

// Partition splits totalItems across as many pages as needed, filling pages
// greedily from the single-sheet layout. Every page reuses the same position
// set sliced to its item count; geometry is never recomputed per page.
//
// Zero items yields a single empty page so callers can still render a
// placeholder preview.
func Partition(totalItems int, layout model.SheetLayout) (model.MultiPageResult, error) {
	capacity := layout.Capacity()

	result := model.MultiPageResult{
		TotalItems:       totalItems,
		CapacityPerSheet: capacity,
	}

	if totalItems <= 0 {
		result.TotalPages = 1
		result.Pages = []model.PageAssignment{{PageIndex: 0, ItemsOnPage: 0, Positions: nil}}
		return result, nil
	}
	if capacity == 0 {
		return model.MultiPageResult{}, fmt.Errorf("cannot place %d items: %w", totalItems, ErrNoCapacity)
	}

	totalPages := (totalItems + capacity - 1) / capacity
	pages := make([]model.PageAssignment, 0, totalPages)

	remaining := totalItems
	for page := 0; remaining > 0; page++ {
		onPage := capacity
		if remaining < onPage {
			onPage = remaining
		}
		pages = append(pages, model.PageAssignment{
			PageIndex:   page,
			ItemsOnPage: onPage,
			Positions:   layout.Positions[:onPage],
		})
		remaining -= onPage
	}

	result.TotalPages = totalPages
	result.Pages = pages
	return result, nil
}
