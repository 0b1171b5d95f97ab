package main

import "fmt"

type FindCmd struct {
	Name string `arg:"" help:"Book name (case-insensitive)"`
	ID   bool   `help:"Also print the book ID"`
}

func (cmd *FindCmd) Run(g *Globals) error {
	cat := newCatalog(g)
	if err := fillCatalog(g, cat); err != nil {
		return err
	}

	item, err := findBook(cat, cmd.Name)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "Name:   %s\n", item.Name())
	fmt.Fprintf(g.Out, "Author: %s\n", item.Owner())
	fmt.Fprintf(g.Out, "Year:   %d\n", item.Year())
	if cmd.ID {
		fmt.Fprintf(g.Out, "ID:     %s\n", item.ID())
	}
	return nil
}
