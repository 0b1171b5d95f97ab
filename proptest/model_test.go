package proptest

import (
	"slices"
	"strings"

	"github.com/vunamdddddds/bookstore/internal/catalog"
	"pgregory.net/rapid"
)

// StateTracker is the reference model: a plain slice plus notification count.
type StateTracker struct {
	items     []*catalog.Item
	listeners int
	notified  int
}

func newStateTracker() *StateTracker {
	return &StateTracker{}
}

func (s *StateTracker) Add(item *catalog.Item) {
	s.items = append(s.items, item)
	s.notified += s.listeners
}

func (s *StateTracker) Remove(item *catalog.Item) {
	if i := slices.Index(s.items, item); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

func (s *StateTracker) FindByName(name string) (*catalog.Item, bool) {
	for _, it := range s.items {
		if strings.EqualFold(it.Name(), name) {
			return it, true
		}
	}
	return nil, false
}

func (s *StateTracker) Sort(field catalog.SortField, desc bool) {
	slices.SortStableFunc(s.items, func(a, b *catalog.Item) int {
		c := compareKeys(field, a, b)
		if desc {
			return -c
		}
		return c
	})
}

func (s *StateTracker) Items() []*catalog.Item {
	return slices.Clone(s.items)
}

type CheckedCatalog struct {
	real     *catalog.Catalog
	model    *StateTracker
	recorder *countingListener
	t        *rapid.T
}

type countingListener struct {
	count int
}

func (l *countingListener) Notify(*catalog.Item) error {
	l.count++
	return nil
}

func NewCheckedCatalog(t *rapid.T, cat *catalog.Catalog) *CheckedCatalog {
	return &CheckedCatalog{
		real:     cat,
		model:    newStateTracker(),
		recorder: &countingListener{},
		t:        t,
	}
}

func (c *CheckedCatalog) Model() *StateTracker {
	return c.model
}

func (c *CheckedCatalog) AddListener() {
	if err := c.real.AddListener(c.recorder); err != nil {
		c.t.Fatalf("AddListener: %v", err)
	}
	c.model.listeners++
}

func (c *CheckedCatalog) Add(item *catalog.Item) {
	if err := c.real.Add(item); err != nil {
		c.t.Fatalf("Add: %v", err)
	}
	c.model.Add(item)
	c.verify()
}

func (c *CheckedCatalog) Remove(item *catalog.Item) {
	c.real.Remove(item)
	c.model.Remove(item)
	c.verify()
}

func (c *CheckedCatalog) FindByName(name string) {
	realItem, realOK := c.real.FindByName(name)
	modelItem, modelOK := c.model.FindByName(name)
	if realOK != modelOK || realItem != modelItem {
		c.t.Fatalf("[%s] FindByName(%q) divergence: real=(%v,%v) model=(%v,%v)",
			InvModelConsistent, name, realItem, realOK, modelItem, modelOK)
	}
}

func (c *CheckedCatalog) Sort(field catalog.SortField, desc bool) {
	strategy, err := catalog.StrategyFor(field, desc)
	if err != nil {
		c.t.Fatalf("StrategyFor: %v", err)
	}
	c.real.SetSortStrategy(strategy)
	c.real.Sort()
	c.model.Sort(field, desc)
	c.verify()
}

func (c *CheckedCatalog) verify() {
	verifyStructuralInvariants(c.t, c.real)
	assertSameOrder(c.t, InvModelConsistent, c.model.Items(), c.real.Items())
	if c.recorder.count != c.model.notified {
		c.t.Fatalf("[%s] notifications: real=%d model=%d", InvModelConsistent, c.recorder.count, c.model.notified)
	}
}
