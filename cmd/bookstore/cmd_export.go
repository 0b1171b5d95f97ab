package main

import (
	"bytes"

	"github.com/vunamdddddds/bookstore/internal/catalog"
	"github.com/vunamdddddds/bookstore/internal/util"
)

type ExportCmd struct {
	SortFlags
}

func (cmd *ExportCmd) Run(g *Globals) error {
	cat := newCatalog(g)
	if err := fillCatalog(g, cat); err != nil {
		return err
	}
	if err := sortCatalog(cat, cmd.SortFlags); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := catalog.WriteItems(&buf, cat.Items()); err != nil {
		return err
	}
	assert.Success(g.Out.Write(buf.Bytes()))
	return nil
}
