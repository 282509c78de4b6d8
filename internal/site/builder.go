// Package site assembles month, year and tag pages from a journal corpus and
// writes them next to the entries they summarise.
package site

import (
	"html/template"
	"log/slog"
	"path"

	"git.home.luguber.info/inful/journalbuilder/internal/config"
	"git.home.luguber.info/inful/journalbuilder/internal/eventstore"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/metrics"
	"git.home.luguber.info/inful/journalbuilder/internal/output"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
	"git.home.luguber.info/inful/journalbuilder/internal/preview"
	"git.home.luguber.info/inful/journalbuilder/internal/render"
	"git.home.luguber.info/inful/journalbuilder/internal/version"
)

// Builder runs page builds against one corpus. It is not safe for concurrent use.
type Builder struct {
	cfg         config.Config
	index       *period.Index
	writer      *output.Writer
	renderer    render.Renderer
	recorder    metrics.Recorder
	journal     *eventstore.Journal
	logger      *slog.Logger
	stopOnError bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRenderer replaces the embedded HTML renderer.
func WithRenderer(r render.Renderer) BuilderOption {
	return func(b *Builder) { b.renderer = r }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) BuilderOption {
	return func(b *Builder) { b.recorder = r }
}

// WithJournal sets the run journal.
func WithJournal(j *eventstore.Journal) BuilderOption {
	return func(b *Builder) { b.journal = j }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = l }
}

// WithStopOnError makes batch builds abort at the first failed unit.
func WithStopOnError(stop bool) BuilderOption {
	return func(b *Builder) { b.stopOnError = stop }
}

// NewBuilder creates a Builder for cfg.
func NewBuilder(cfg config.Config, options ...BuilderOption) (*Builder, error) {
	b := &Builder{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range options {
		opt(b)
	}
	if b.renderer == nil {
		r, err := render.NewHTMLRenderer()
		if err != nil {
			return nil, err
		}
		b.renderer = r
	}
	if b.journal == nil {
		b.journal = eventstore.NewJournal(nil, "", b.logger)
	}
	b.index = period.NewIndex(period.Layout{
		Root:       cfg.CorpusRoot,
		EntriesDir: cfg.Layout.EntriesDir,
		Extension:  cfg.Layout.Extension,
	})
	b.writer = output.NewWriter(cfg.CreateBackup, b.logger)
	return b, nil
}

// Index exposes the period index the builder reads from.
func (b *Builder) Index() *period.Index { return b.index }

func (b *Builder) readMore() preview.ReadMore {
	return preview.ReadMore{
		Prefix:     b.cfg.Layout.URLPrefix,
		EntriesDir: b.cfg.Layout.EntriesDir,
		Extension:  b.cfg.Layout.Extension,
		Label:      b.cfg.Layout.ReadMore,
	}
}

// url joins elements below the configured site prefix.
func (b *Builder) url(elem ...string) string {
	return path.Join(append([]string{"/", b.cfg.Layout.URLPrefix}, elem...)...)
}

func (b *Builder) chrome(title string, crumbs ...render.Link) render.Chrome {
	return render.Chrome{
		Title:       title,
		Lang:        b.cfg.Layout.Lang,
		Stylesheets: b.cfg.Layout.Stylesheets,
		Breadcrumbs: crumbs,
		Generator:   "journalbuilder " + version.Version,
	}
}

// describe renders a markdown tag description when the renderer supports it.
func (b *Builder) describe(src string) template.HTML {
	if src == "" {
		return ""
	}
	md, ok := b.renderer.(interface {
		Markdown(string) (template.HTML, error)
	})
	if !ok {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out, err := md.Markdown(src)
	if err != nil {
		b.logger.Warn("Cannot render tag description", logfields.Error(err))
		return template.HTML(template.HTMLEscapeString(src))
	}
	return out
}
