package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is a single book in the catalog. It is immutable after construction
// and is passed around by pointer; the catalog compares items by identity.
type Item struct {
	id    string
	name  string
	owner string
	year  int
}

// NewItem accepts any values, including empty strings and negative years.
func NewItem(name, owner string, year int) *Item {
	return newItemWithID(uuid.New().String(), name, owner, year)
}

func newItemWithID(id, name, owner string, year int) *Item {
	return &Item{
		id:    id,
		name:  name,
		owner: owner,
		year:  year,
	}
}

func (i *Item) ID() string {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Owner() string {
	return i.owner
}

func (i *Item) Year() int {
	return i.year
}

func (i *Item) String() string {
	return fmt.Sprintf("%s by %s (%d)", i.name, i.owner, i.year)
}
