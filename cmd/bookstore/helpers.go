package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vunamdddddds/bookstore/cmd/bookstore/render"
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"github.com/vunamdddddds/bookstore/internal/notify"
)

type SortFlags struct {
	Sort string `short:"s" enum:"name,owner,year" default:"name" help:"Sort field (name, owner, year)"`
	Desc bool   `help:"Sort in descending order"`
}

func (f SortFlags) strategy() (catalog.SortStrategy, error) {
	return catalog.StrategyFor(catalog.SortField(f.Sort), f.Desc)
}

func builtinBooks() ([]*catalog.Item, error) {
	return []*catalog.Item{
		catalog.NewItem("Effective Java", "Joshua Bloch", 2008),
		catalog.NewItem("Clean Code", "Robert C. Martin", 2008),
		catalog.NewItem("Design Patterns", "Erich Gamma", 1994),
	}, nil
}

func booksLoader(path string) func() ([]*catalog.Item, error) {
	if path == "" {
		return builtinBooks
	}
	return func() ([]*catalog.Item, error) {
		return catalog.ReadItemsFile(path)
	}
}

// newCatalog returns an empty catalog that logs every add at debug level.
func newCatalog(g *Globals) *catalog.Catalog {
	cat := catalog.New(catalog.WithLogger(g.Log))
	debug := notify.NewLogListener(g.Log)
	debug.Level = slog.LevelDebug
	_ = cat.AddListener(debug)
	return cat
}

func addListeners(cat *catalog.Catalog, listeners ...catalog.Listener) error {
	for _, l := range listeners {
		if err := cat.AddListener(l); err != nil {
			return err
		}
	}
	return nil
}

func addItem(g *Globals, cat *catalog.Catalog, item *catalog.Item) error {
	err := cat.Add(item)
	if errors.Is(err, catalog.ErrListenerFailed) {
		g.Log.Warn("book added but not every listener was notified", "name", item.Name(), "error", err)
		return nil
	}
	return err
}

func fillCatalog(g *Globals, cat *catalog.Catalog) error {
	books, err := g.LoadBooks()
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}

	for _, b := range books {
		if err := addItem(g, cat, b); err != nil {
			return fmt.Errorf("failed to add book %q: %w", b.Name(), err)
		}
	}
	return nil
}

func sortCatalog(cat *catalog.Catalog, flags SortFlags) error {
	strategy, err := flags.strategy()
	if err != nil {
		return err
	}
	cat.SetSortStrategy(strategy)
	cat.Sort()
	return nil
}

func bookListView(cur *catalog.Cursor) render.BookListView {
	view := render.BookListView{Items: make([]render.BookListItem, 0, cur.Remaining())}
	for it := range cur.All() {
		view.Items = append(view.Items, render.BookListItem{
			Name:  it.Name(),
			Owner: it.Owner(),
			Year:  it.Year(),
		})
	}
	return view
}

func findBook(cat *catalog.Catalog, name string) (*catalog.Item, error) {
	item, ok := cat.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("no book found matching: %s", name)
	}
	return item, nil
}
