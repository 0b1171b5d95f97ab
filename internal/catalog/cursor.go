package catalog

import "iter"

// Cursor walks a snapshot of the catalog taken when the cursor was created.
// Later changes to the catalog are not visible to it. A cursor is
// single-pass; ask the catalog for a new one to traverse again.
type Cursor struct {
	items    []*Item
	position int
}

func newCursor(items []*Item) *Cursor {
	snapshot := make([]*Item, len(items))
	copy(snapshot, items)
	return &Cursor{items: snapshot}
}

func (c *Cursor) HasNext() bool {
	return c.position < len(c.items)
}

// Next returns ErrOutOfRange once the cursor is exhausted.
func (c *Cursor) Next() (*Item, error) {
	if !c.HasNext() {
		return nil, ErrOutOfRange
	}
	item := c.items[c.position]
	c.position++
	return item, nil
}

func (c *Cursor) Remaining() int {
	return len(c.items) - c.position
}

// All drains the cursor. Breaking out of the loop leaves the cursor
// positioned after the last yielded item.
func (c *Cursor) All() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for c.HasNext() {
			item, _ := c.Next()
			if !yield(item) {
				return
			}
		}
	}
}
