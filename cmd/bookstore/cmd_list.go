package main

import "fmt"

type ListCmd struct {
	Plain bool `short:"p" help:"Print one book per line"`
	SortFlags
}

func (cmd *ListCmd) Run(g *Globals) error {
	cat := newCatalog(g)
	if err := fillCatalog(g, cat); err != nil {
		return err
	}
	if err := sortCatalog(cat, cmd.SortFlags); err != nil {
		return err
	}

	if !cmd.Plain {
		fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView(cat.Cursor())))
		return nil
	}

	for it := range cat.Cursor().All() {
		fmt.Fprintln(g.Out, it)
	}
	return nil
}
