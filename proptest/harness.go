package proptest

import (
	"testing"

	"github.com/vunamdddddds/bookstore/internal/catalog"
	"pgregory.net/rapid"
)

const (
	minItems        = 0
	maxItems        = 20
	typicalMinItems = 1
	typicalMaxItems = 10
	minListeners    = 0
	maxListeners    = 5
)

type ItemGenOpt func(*itemGenConfig)

type itemGenConfig struct {
	name *string
	year *int
}

func WithName(name string) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.name = &name
	}
}

func WithYear(year int) ItemGenOpt {
	return func(c *itemGenConfig) {
		c.year = &year
	}
}

func GenItem(t *rapid.T, opts ...ItemGenOpt) *catalog.Item {
	cfg := &itemGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	name := nameGen().Draw(t, "name")
	if cfg.name != nil {
		name = *cfg.name
	}
	year := yearGen().Draw(t, "year")
	if cfg.year != nil {
		year = *cfg.year
	}

	return catalog.NewItem(name, ownerGen().Draw(t, "owner"), year)
}

type Harness struct {
	T *rapid.T
}

func (h *Harness) GenItem(opts ...ItemGenOpt) *catalog.Item {
	return GenItem(h.T, opts...)
}

func (h *Harness) GenItems(minCount, maxCount int) []*catalog.Item {
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numItems")
	items := make([]*catalog.Item, 0, n)
	for range n {
		items = append(items, h.GenItem())
	}
	return items
}

type CatalogHarness struct {
	Harness
	Catalog *catalog.Catalog
}

func (h *CatalogHarness) MustAdd(item *catalog.Item) {
	if err := h.Catalog.Add(item); err != nil {
		h.T.Fatalf("failed to add item: %v", err)
	}
}

func (h *CatalogHarness) AddItems(minCount, maxCount int) []*catalog.Item {
	items := h.GenItems(minCount, maxCount)
	for _, it := range items {
		h.MustAdd(it)
	}
	return items
}

func RunWithCatalog(t *testing.T, fn func(h *CatalogHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &CatalogHarness{
			Harness: Harness{T: rt},
			Catalog: catalog.New(),
		}
		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt})
	})
}
