package main

import (
	"fmt"

	"github.com/vunamdddddds/bookstore/internal/notify"
)

type DemoCmd struct {
	Members []string `name:"member" short:"m" default:"Alice,Bob" help:"Members notified of new books"`
	SortFlags
}

func (cmd *DemoCmd) Run(g *Globals) error {
	cat := newCatalog(g)
	for _, name := range cmd.Members {
		if err := cat.AddListener(notify.NewMember(name, g.Out)); err != nil {
			return err
		}
	}

	if err := fillCatalog(g, cat); err != nil {
		return err
	}
	if err := sortCatalog(cat, cmd.SortFlags); err != nil {
		return err
	}

	cur := cat.Cursor()
	for cur.HasNext() {
		item, err := cur.Next()
		if err != nil {
			return err
		}
		fmt.Fprintln(g.Out, item)
	}
	return nil
}
