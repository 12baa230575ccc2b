package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/hadisler"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx              context.Context
	Stdout           io.Writer
	Stderr           io.Writer
	Logger           *slog.Logger
	DBPath           string
	Catalog          hadisler.CatalogService
	Preferences      hadisler.PreferenceService
	Renderer         hadisler.Renderer
	TerminalRenderer hadisler.Renderer
	Converter        hadisler.Converter
	Extractor        hadisler.TextExtractor
	Browse           func(ctx context.Context, session *hadisler.Session) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" type:"path" default:"${db}" help:"Catalog database file"`
	Config  string `name:"config" type:"path" default:"${config}" help:"Preferences file"`
	Log     string `name:"log" type:"path" help:"Append logs to this file"`
	Verbose bool   `short:"v" help:"Log debug output (to stderr for non-interactive commands)"`

	Browse   BrowseCmd   `cmd:"" default:"1" help:"Open the interactive reader (default)"`
	Chapters ChaptersCmd `cmd:"" help:"List chapters"`
	Topics   TopicsCmd   `cmd:"" help:"List the topics of a chapter"`
	Show     ShowCmd     `cmd:"" help:"Print the entries of a topic"`
	Search   SearchCmd   `cmd:"" help:"Search entry text, or look up an entry by number"`
	Export   ExportCmd   `cmd:"" help:"Export a topic or search result as HTML, Markdown or text"`
	Init     InitCmd     `cmd:"" help:"Create an empty catalog database"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct{}

// ChaptersCmd is the "chapters" subcommand.
type ChaptersCmd struct{}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct {
	Chapter string `arg:"" help:"Chapter name"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Topic string `arg:"" help:"Topic name"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" help:"Text or entry number to search for"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Topic    string `help:"Export the entries of this topic" xor:"source"`
	Search   string `help:"Export the entries matching this term" xor:"source"`
	Format   string `short:"f" enum:"html,markdown,text" default:"html" help:"Output format (html, markdown, text)"`
	Dark     bool   `help:"Use the dark theme"`
	FontSize int    `name:"font-size" default:"12" help:"Base font size"`
	Output   string `short:"o" type:"path" help:"Write to this file instead of stdout"`
}

// InitCmd is the "init" subcommand.
type InitCmd struct{}
