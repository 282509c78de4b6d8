package site

import (
	"context"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"git.home.luguber.info/inful/journalbuilder/internal/config"
	"git.home.luguber.info/inful/journalbuilder/internal/content"
	"git.home.luguber.info/inful/journalbuilder/internal/eventstore"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/metrics"
	"git.home.luguber.info/inful/journalbuilder/internal/output"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
	"git.home.luguber.info/inful/journalbuilder/internal/preview"
	"git.home.luguber.info/inful/journalbuilder/internal/render"
)

// MonthOutputPath is <root>/<yyyy>/<mm>/<yyyy>-<mm><ext>.
func (b *Builder) MonthOutputPath(k period.Key) string {
	return filepath.Join(b.index.MonthPath(k), k.String()+b.cfg.Layout.Extension)
}

// BuildMonth renders the month page of k. A month without an entries
// directory is an error; a month whose directory is empty still renders.
func (b *Builder) BuildMonth(ctx context.Context, k period.Key) (output.Result, error) {
	if k.IsYear() {
		return output.Result{}, errors.ValidationError("month build needs a month key").
			WithContext("period", k.String()).Build()
	}
	logger := b.logger.With(logfields.Period(k.String()))

	if fi, err := os.Stat(b.index.EntriesPath(k)); err != nil || !fi.IsDir() {
		err = errors.WrapError(period.ErrMissingPeriod, errors.CategoryNotFound, "entries directory not found").
			WithContext("path", b.index.EntriesPath(k)).
			Build()
		b.fail(ctx, metrics.PageMonth, k.String(), err)
		return output.Result{}, err
	}

	entries, err := b.previews(k, logger)
	if err != nil {
		b.fail(ctx, metrics.PageMonth, k.String(), err)
		return output.Result{}, err
	}
	if len(entries) == 0 {
		logger.Warn("Month has no entries, rendering an empty page")
	}

	prev, next := b.index.FindAdjacent(k, b.cfg.AdjacentMonthSearchRange)
	page := render.MonthPage{
		Chrome: b.chrome(k.String(),
			render.Link{Href: b.url(k.YearDir(), k.YearDir()+b.cfg.Layout.Extension), Label: k.YearDir()},
			render.Link{Href: b.url(k.YearDir(), k.MonthDir(), k.String()+b.cfg.Layout.Extension), Label: k.MonthDir()},
		),
		Key:     k,
		Count:   len(entries),
		Entries: entries,
		Prev:    b.monthLink(k, prev),
		Next:    b.monthLink(k, next),
	}
	doc, err := b.renderer.Month(page)
	if err != nil {
		err = errors.WrapError(err, errors.CategoryBuild, "render month page").WithContext("period", k.String()).Build()
		b.fail(ctx, metrics.PageMonth, k.String(), err)
		return output.Result{}, err
	}
	return b.write(ctx, metrics.PageMonth, k.String(), b.MonthOutputPath(k), doc)
}

// monthLink builds a navigation link relative to the page of from.
func (b *Builder) monthLink(from period.Key, to *period.Key) *render.Link {
	if to == nil {
		return nil
	}
	name := to.String() + b.cfg.Layout.Extension
	href := "../" + to.MonthDir() + "/" + name
	if to.Year != from.Year {
		href = "../../" + to.YearDir() + "/" + to.MonthDir() + "/" + name
	}
	return &render.Link{Href: href, Label: to.String()}
}

// previews loads and previews every entry of k in configured order.
// Entries that cannot be read or have no article are skipped.
func (b *Builder) previews(k period.Key, logger *slog.Logger) ([]template.HTML, error) {
	files, err := b.index.EntryFiles(k)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "list entries").
			WithContext("path", b.index.EntriesPath(k)).Build()
	}
	if b.cfg.SortOrder == config.OrderDesc {
		slices.Reverse(files)
	}

	cfg := b.cfg.Preview()
	rm := b.readMore()
	out := make([]template.HTML, 0, len(files))
	for _, file := range files {
		entry, err := content.LoadEntry(file)
		if err != nil {
			logger.Warn("Skipping entry", logfields.Path(file), logfields.Error(err))
			continue
		}
		p := preview.Apply(entry, cfg, rm, logger)
		b.recorder.ObservePreview(p.Result.TotalChars, len(p.Result.Elements), p.Passthrough)
		logger.Debug("Previewed entry",
			logfields.Entry(entry.Name),
			logfields.Chars(p.Result.TotalChars),
			logfields.Count(len(p.Result.Elements)))
		out = append(out, template.HTML(p.Markup()))
	}
	return out, nil
}

func (b *Builder) write(ctx context.Context, kind metrics.PageKind, target, path, doc string) (output.Result, error) {
	res, err := b.writer.Write(path, doc)
	if err != nil {
		b.fail(ctx, kind, target, err)
		return res, err
	}
	b.recorder.IncPage(kind, metrics.OutcomeWritten)
	b.journal.Record(ctx, eventstore.PageWritten{Kind: string(kind), Target: target, Path: path, BackedUp: res.BackedUp})
	b.logger.Info("Wrote page", logfields.Kind(string(kind)), slog.String("target", target), logfields.Path(path))
	return res, nil
}

func (b *Builder) fail(ctx context.Context, kind metrics.PageKind, target string, err error) {
	b.recorder.IncPage(kind, metrics.OutcomeFailed)
	b.journal.Record(ctx, eventstore.PageFailed{Kind: string(kind), Target: target, Error: err.Error()})
}

func (b *Builder) skip(ctx context.Context, kind metrics.PageKind, target, reason string) {
	b.recorder.IncPage(kind, metrics.OutcomeSkipped)
	b.journal.Record(ctx, eventstore.PageSkipped{Kind: string(kind), Target: target, Reason: reason})
}
