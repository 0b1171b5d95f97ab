package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"github.com/vunamdddddds/bookstore/internal/notify"
	"github.com/vunamdddddds/bookstore/internal/ui"
)

type AddCmd struct {
	Members []string `name:"member" short:"m" default:"Alice,Bob" help:"Members notified of the new book"`
	SortFlags
}

func (cmd *AddCmd) Run(g *Globals) error {
	cat := newCatalog(g)
	if err := fillCatalog(g, cat); err != nil {
		return err
	}

	var in ui.BookInput
	if err := g.RunForm(&in); err != nil {
		return handleFormError(err)
	}

	item, err := bookFromInput(in)
	if err != nil {
		return err
	}

	var listeners []catalog.Listener
	for _, name := range cmd.Members {
		listeners = append(listeners, notify.NewMember(name, g.Out))
	}
	if err := addListeners(cat, listeners...); err != nil {
		return err
	}

	if err := addItem(g, cat, item); err != nil {
		return err
	}

	fmt.Fprint(g.Out, ui.RenderWizard("Add a book", in.Fields(), -1))
	fmt.Fprint(g.Out, ui.RenderAdded(item.String(), cmd.Members))

	if err := sortCatalog(cat, cmd.SortFlags); err != nil {
		return err
	}
	fmt.Fprint(g.Out, g.Render.RenderBookList(bookListView(cat.Cursor())))
	return nil
}

func bookFromInput(in ui.BookInput) (*catalog.Item, error) {
	if err := ui.ValidateName(in.Name); err != nil {
		return nil, err
	}
	year, err := in.ParsedYear()
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(strings.TrimSpace(in.Name), strings.TrimSpace(in.Owner), year), nil
}

func handleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
