package catalog

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// SortStrategy reorders a slice of items in place.
type SortStrategy interface {
	Sort(items []*Item)
}

// Comparator orders two items: negative when a sorts first, zero for ties.
// Sorting with a Comparator is stable.
type Comparator func(a, b *Item) int

func (c Comparator) Sort(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return c(items[i], items[j]) < 0
	})
}

var (
	ByName  = Comparator(compareNames)
	ByOwner = Comparator(compareOwners)
	ByYear  = Comparator(compareYears)
)

// Name and owner comparisons ignore case, the same way FindByName does.
func compareNames(a, b *Item) int {
	return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
}

func compareOwners(a, b *Item) int {
	return strings.Compare(strings.ToLower(a.owner), strings.ToLower(b.owner))
}

func compareYears(a, b *Item) int {
	return cmp.Compare(a.year, b.year)
}

// Descending reverses c. Ties still keep their input order.
func Descending(c Comparator) Comparator {
	return func(a, b *Item) int {
		return c(b, a)
	}
}

type SortField string

const (
	SortByName  SortField = "name"
	SortByOwner SortField = "owner"
	SortByYear  SortField = "year"
)

func SortFields() []SortField {
	return []SortField{SortByName, SortByOwner, SortByYear}
}

func StrategyFor(field SortField, descending bool) (SortStrategy, error) {
	var c Comparator

	switch field {
	case SortByName, "":
		c = ByName
	case SortByOwner:
		c = ByOwner
	case SortByYear:
		c = ByYear
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, field)
	}

	if descending {
		c = Descending(c)
	}
	return c, nil
}
