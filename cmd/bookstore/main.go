package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/vunamdddddds/bookstore/cmd/bookstore/render"
	"github.com/vunamdddddds/bookstore/internal/config"
)

type CLI struct {
	Demo   DemoCmd   `cmd:"" default:"withargs" help:"Run the bookstore demo (default)"`
	List   ListCmd   `cmd:"" aliases:"ls" help:"List books in the catalog"`
	Find   FindCmd   `cmd:"" aliases:"f" help:"Find a book by name"`
	Export ExportCmd `cmd:"" help:"Write the sorted catalog as YAML"`
	Add    AddCmd    `cmd:"" aliases:"a" help:"Add a book interactively"`

	Books    string `name:"books" short:"b" env:"BOOKSTORE_BOOKS" help:"Path to a YAML book list"`
	LogLevel string `name:"log-level" env:"BOOKSTORE_LOG_LEVEL" enum:"debug,info,warn,error" default:"warn" help:"Log level for stderr output"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	level, err := config.ParseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}

	booksPath, err := config.BooksPath(c.Books)
	if err != nil {
		return fmt.Errorf("failed to resolve book list: %w", err)
	}

	globals := &Globals{
		Out:       os.Stdout,
		Log:       config.NewLogger(os.Stderr, level),
		Render:    render.NewLipglossRendererAuto(os.Stdout),
		LoadBooks: booksLoader(booksPath),
		RunForm:   defaultRunForm,
	}
	ctx.Bind(globals)
	return nil
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("bookstore"),
		kong.Description("In-memory book catalog demo"),
		kong.UsageOnError(),
	}, opts...)
	return kong.New(cli, opts...)
}

func main() {
	cli := CLI{}
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
