// Package config resolves journalbuilder settings from built-in defaults, an
// optional YAML file and command-line overrides.
package config

import (
	"path/filepath"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/normalization"
	"git.home.luguber.info/inful/journalbuilder/internal/preview"
	"git.home.luguber.info/inful/journalbuilder/internal/taglist"
	"git.home.luguber.info/inful/journalbuilder/internal/tags"
)

// EntryOrder orders entries within a month and months within a year.
type EntryOrder string

const (
	OrderAsc  EntryOrder = "asc"
	OrderDesc EntryOrder = "desc"
)

var entryOrders = normalization.NewNormalizer(map[string]EntryOrder{
	"asc":        OrderAsc,
	"ascending":  OrderAsc,
	"desc":       OrderDesc,
	"descending": OrderDesc,
}, OrderDesc)

// Config is the resolved, immutable configuration of one run. It is passed by value.
type Config struct {
	CorpusRoot               string
	SortOrder                EntryOrder
	Debug                    bool
	CreateBackup             bool
	AdjacentMonthSearchRange int
	AdjacentYearSearchRange  int
	Truncate                 preview.Config
	Layout                   Layout
	Tags                     Tags
	Journal                  Journal
	Metrics                  Metrics
}

// Layout describes the corpus tree and the site paths derived from it.
type Layout struct {
	EntriesDir string
	Extension  string
	// URLPrefix is the site path of the corpus root, e.g. "/txt/zakki".
	URLPrefix   string
	Lang        string
	Stylesheets []string
	ReadMore    string
}

// Tags configures tag pages and the master tag list.
type Tags struct {
	OutputDir    string
	DefaultSort  tags.SortOrder
	UpdateMaster bool
	MasterPath   string
	MasterSort   taglist.Order
	Markers      taglist.Markers
	Definitions  map[string]TagDefinition
}

// TagDefinition carries per-tag settings.
type TagDefinition struct {
	Sort        tags.SortOrder
	Description string
}

// SortFor returns the page order for tag, falling back to the default.
func (t Tags) SortFor(tag string) tags.SortOrder {
	if d, ok := t.Definitions[tag]; ok && d.Sort != "" {
		return d.Sort
	}
	return t.DefaultSort
}

// Journal configures the SQLite run journal. An empty path disables it.
type Journal struct {
	Path string
}

// Metrics configures the Prometheus textfile. An empty path disables it.
type Metrics struct {
	Textfile string
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		CorpusRoot:               ".",
		SortOrder:                OrderDesc,
		CreateBackup:             true,
		AdjacentMonthSearchRange: 24,
		AdjacentYearSearchRange:  10,
		Truncate:                 preview.DefaultConfig(),
		Layout: Layout{
			EntriesDir: "days",
			Extension:  ".html",
			Lang:       "ja",
			ReadMore:   "Read more",
		},
		Tags: Tags{
			DefaultSort:  tags.DateDesc,
			UpdateMaster: true,
			MasterSort:   taglist.CountDesc,
			Markers:      taglist.DefaultMarkers(),
			Definitions:  map[string]TagDefinition{},
		},
	}
}

// TagOutputDir is the configured tag directory or <corpus_root>/tag.
func (c Config) TagOutputDir() string {
	if c.Tags.OutputDir != "" {
		return c.Tags.OutputDir
	}
	return filepath.Join(c.CorpusRoot, "tag")
}

// Preview returns the truncation bounds with the global debug flag applied.
func (c Config) Preview() preview.Config {
	p := c.Truncate
	p.Debug = p.Debug || c.Debug
	return p
}
