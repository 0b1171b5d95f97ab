package catalog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Catalog owns an ordered list of items, the listeners notified on every
// add, and the sort strategy applied by Sort. It is not safe for concurrent
// use.
type Catalog struct {
	items     []*Item
	listeners []Listener
	strategy  SortStrategy
	logger    *slog.Logger
}

type Option func(*Catalog)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(opts ...Option) *Catalog {
	c := &Catalog{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends item and then notifies every listener in registration order.
// A failing listener does not stop the others and does not undo the add;
// the failures are reported as a *NotifyError.
func (c *Catalog) Add(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidArgument)
	}

	c.items = append(c.items, item)
	c.logger.Debug("item added", "id", item.ID(), "name", item.Name(), "count", len(c.items))

	return c.notify(item)
}

func (c *Catalog) notify(item *Item) error {
	var failures []ListenerFailure

	for i, l := range c.listeners {
		if err := safeNotify(l, item); err != nil {
			c.logger.Error("listener failed",
				"listener", i,
				"item", item.Name(),
				"error", err,
			)
			failures = append(failures, ListenerFailure{Index: i, Err: err})
		}
	}

	if len(failures) > 0 {
		return &NotifyError{Item: item, Failures: failures}
	}
	return nil
}

// Remove deletes the first occurrence of item, compared by identity.
// Removing an item that is not in the catalog does nothing.
func (c *Catalog) Remove(item *Item) {
	for i, it := range c.items {
		if it == item {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.logger.Debug("item removed", "id", item.ID(), "name", item.Name())
			return
		}
	}
}

// FindByName returns the first item whose name matches, ignoring case.
func (c *Catalog) FindByName(name string) (*Item, bool) {
	for _, it := range c.items {
		if strings.EqualFold(it.name, name) {
			return it, true
		}
	}
	return nil, false
}

// SetSortStrategy takes effect on the next call to Sort.
func (c *Catalog) SetSortStrategy(s SortStrategy) {
	c.strategy = s
}

func (c *Catalog) Sort() {
	if c.strategy == nil {
		return
	}
	c.strategy.Sort(c.items)
	c.logger.Debug("items sorted", "count", len(c.items))
}

// AddListener registers l. Registering the same listener twice means it is
// notified twice per add.
func (c *Catalog) AddListener(l Listener) error {
	if l == nil {
		return fmt.Errorf("%w: listener is nil", ErrInvalidArgument)
	}
	c.listeners = append(c.listeners, l)
	return nil
}

func (c *Catalog) Cursor() *Cursor {
	return newCursor(c.items)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in their current order.
func (c *Catalog) Items() []*Item {
	items := make([]*Item, len(c.items))
	copy(items, c.items)
	return items
}
