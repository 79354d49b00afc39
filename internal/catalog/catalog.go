// Package catalog filters and orders the task list shown on the home page.
package catalog

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/earnpro/internal/domain"
)

// SaveTab is the client-only tab listing saved tasks. It is parsed into
// Selection.SavedOnly and never compared with a task's category.
const SaveTab = "Save"

var Tabs = []string{
	string(domain.CategoryAll),
	string(domain.CategoryInstall),
	string(domain.CategoryGames),
	string(domain.CategorySignup),
	string(domain.CategoryOthers),
	SaveTab,
}

type SortMode string

const (
	SortNone      SortMode = "none"
	SortHighToLow SortMode = "h-l"
	SortLowToHigh SortMode = "l-h"
	SortMidFirst  SortMode = "mid"
)

var (
	ErrUnknownTab  = errors.New("unknown category tab")
	ErrUnknownSort = errors.New("unknown sort mode")
)

var (
	midLow  = decimal.NewFromInt(10)
	midHigh = decimal.NewFromInt(50)
)

type Selection struct {
	Category  domain.Category
	SavedOnly bool
}

// Tab returns the tab name the selection was parsed from.
func (s Selection) Tab() string {
	if s.SavedOnly {
		return SaveTab
	}
	return string(s.Category)
}

func ParseSelection(tab string) (Selection, error) {
	if tab == SaveTab {
		return Selection{SavedOnly: true}, nil
	}
	for _, t := range Tabs {
		if t == tab {
			return Selection{Category: domain.Category(tab)}, nil
		}
	}
	return Selection{}, ErrUnknownTab
}

func ParseSort(mode string) (SortMode, error) {
	switch m := SortMode(mode); m {
	case SortNone, SortHighToLow, SortLowToHigh, SortMidFirst:
		return m, nil
	case "":
		return SortNone, nil
	}
	return "", ErrUnknownSort
}

// Apply filters tasks by sel and orders the result by mode. The input slice is
// left untouched.
func Apply(tasks []domain.Task, sel Selection, mode SortMode, saved map[string]struct{}) []domain.Task {
	list := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t, sel, saved) {
			list = append(list, t)
		}
	}

	switch mode {
	case SortHighToLow:
		slices.SortStableFunc(list, func(a, b domain.Task) int { return b.Price.Cmp(a.Price) })
	case SortLowToHigh:
		slices.SortStableFunc(list, func(a, b domain.Task) int { return a.Price.Cmp(b.Price) })
	case SortMidFirst:
		slices.SortStableFunc(list, compareMid)
	}
	return list
}

func keep(t domain.Task, sel Selection, saved map[string]struct{}) bool {
	switch {
	case sel.SavedOnly:
		_, ok := saved[t.ID]
		return ok
	case sel.Category == domain.CategoryAll || sel.Category == "":
		return true
	default:
		return t.Category == sel.Category
	}
}

func isMid(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(midLow) && price.LessThanOrEqual(midHigh)
}

func compareMid(a, b domain.Task) int {
	aMid, bMid := isMid(a.Price), isMid(b.Price)
	switch {
	case aMid && !bMid:
		return -1
	case !aMid && bMid:
		return 1
	}
	return b.Price.Cmp(a.Price)
}
