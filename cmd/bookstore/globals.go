package main

import (
	"io"
	"log/slog"

	"github.com/vunamdddddds/bookstore/cmd/bookstore/render"
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"github.com/vunamdddddds/bookstore/internal/ui"
)

type Globals struct {
	Out    io.Writer
	Log    *slog.Logger
	Render render.Renderer
	// LoadBooks returns a fresh set of items on every call.
	LoadBooks func() ([]*catalog.Item, error)
	RunForm   func(in *ui.BookInput) error
}

func defaultRunForm(in *ui.BookInput) error {
	return ui.NewBookForm(in).Run()
}
