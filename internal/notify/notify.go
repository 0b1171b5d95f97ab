// Package notify holds the listeners registered on a catalog.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vunamdddddds/bookstore/internal/catalog"
)

// Member greets a named member whenever a book is added.
type Member struct {
	Name string
	Out  io.Writer
}

func NewMember(name string, out io.Writer) *Member {
	return &Member{Name: name, Out: out}
}

func (m *Member) Notify(item *catalog.Item) error {
	_, err := fmt.Fprintf(m.Out, "Hello %s, new book added: %s\n", m.Name, item)
	return err
}

// LogListener records every added book as a structured log line.
type LogListener struct {
	Logger *slog.Logger
	Level  slog.Level
}

func NewLogListener(logger *slog.Logger) *LogListener {
	return &LogListener{Logger: logger, Level: slog.LevelInfo}
}

func (l *LogListener) Notify(item *catalog.Item) error {
	l.Logger.Log(context.Background(), l.Level, "book added",
		"id", item.ID(),
		"name", item.Name(),
		"owner", item.Owner(),
		"year", item.Year(),
	)
	return nil
}

// Recorder keeps every item it is notified with, in order.
type Recorder struct {
	Items []*catalog.Item
}

func (r *Recorder) Notify(item *catalog.Item) error {
	r.Items = append(r.Items, item)
	return nil
}

func (r *Recorder) Count() int {
	return len(r.Items)
}
