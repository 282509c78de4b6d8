// Package commands holds the kong command tree of the journalbuilder CLI.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/journalbuilder/internal/config"
)

// Global is shared state bound into every command.
type Global struct {
	Logger *slog.Logger
	level  *slog.LevelVar
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"journalbuilder.yaml" type:"path"`
	Root    string           `short:"r" help:"Corpus root (overrides corpus_root)" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Month   MonthCmd   `cmd:"" help:"Build the page of one month"`
	Year    YearCmd    `cmd:"" help:"Build the page of one year"`
	All     AllCmd     `cmd:"" help:"Build many month pages in one run"`
	Tags    TagsCmd    `cmd:"" help:"Build tag pages, the tag index and the master tag list"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	History HistoryCmd `cmd:"" help:"Show recorded runs from the run journal"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply(g *Global) error {
	g.level = new(slog.LevelVar)
	if c.Verbose {
		g.level.Set(slog.LevelDebug)
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: g.level}))
	slog.SetDefault(g.Logger)
	return nil
}

// BuildFlags override configuration values for one run.
type BuildFlags struct {
	SortOrder   string `name:"sort-order" help:"Entry order within a month (asc|desc)"`
	MaxChars    int    `name:"max-chars" help:"Preview character budget" default:"-1"`
	MinElements int    `name:"min-elements" help:"Elements always kept in a preview" default:"-1"`
	MaxElements int    `name:"max-elements" help:"Upper bound of preview elements" default:"-1"`
	NoBackup    bool   `name:"no-backup" help:"Do not keep a .bak copy of replaced pages"`
	Debug       bool   `name:"debug" help:"Log preview selection decisions"`
}

// Overrides converts the flags into configuration overrides. Negative numbers mean unset.
func (f BuildFlags) Overrides(root string) config.Overrides {
	o := config.Overrides{CorpusRoot: root, SortOrder: f.SortOrder}
	if f.MaxChars >= 0 {
		o.MaxChars = &f.MaxChars
	}
	if f.MinElements >= 0 {
		o.MinElements = &f.MinElements
	}
	if f.MaxElements >= 0 {
		o.MaxElements = &f.MaxElements
	}
	if f.NoBackup {
		backup := false
		o.CreateBackup = &backup
	}
	if f.Debug {
		debug := true
		o.Debug = &debug
	}
	return o
}
