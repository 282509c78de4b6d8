package site

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"git.home.luguber.info/inful/journalbuilder/internal/config"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/metrics"
	"git.home.luguber.info/inful/journalbuilder/internal/output"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
	"git.home.luguber.info/inful/journalbuilder/internal/render"
)

// YearOutputPath is <root>/<yyyy>/<yyyy><ext>.
func (b *Builder) YearOutputPath(year int) string {
	k := period.YearKey(year)
	return filepath.Join(b.index.YearPath(k), k.YearDir()+b.cfg.Layout.Extension)
}

// BuildYear renders the year page from the entries of every month that has any.
func (b *Builder) BuildYear(ctx context.Context, year int) (output.Result, error) {
	k := period.YearKey(year)
	logger := b.logger.With(logfields.Period(k.String()))

	if fi, err := os.Stat(b.index.YearPath(k)); err != nil || !fi.IsDir() {
		err = errors.WrapError(period.ErrMissingPeriod, errors.CategoryNotFound, "year directory not found").
			WithContext("path", b.index.YearPath(k)).Build()
		b.fail(ctx, metrics.PageYear, k.String(), err)
		return output.Result{}, err
	}
	months := b.index.MonthsInYear(year)
	if len(months) == 0 {
		err := errors.WrapError(period.ErrNoEntries, errors.CategoryNotFound, "year has no entries").
			WithContext("period", k.String()).Build()
		b.fail(ctx, metrics.PageYear, k.String(), err)
		return output.Result{}, err
	}

	slots := make([]render.MonthSlot, 12)
	for m := range 12 {
		mk := period.MonthKey(year, m+1)
		slots[m] = render.MonthSlot{Key: mk, Count: b.index.CountEntries(mk)}
	}

	if b.cfg.SortOrder == config.OrderDesc {
		slices.Reverse(months)
	}
	page := render.YearPage{Year: year, Slots: slots}
	for _, mk := range months {
		entries, err := b.previews(mk, logger)
		if err != nil {
			b.fail(ctx, metrics.PageYear, k.String(), err)
			return output.Result{}, err
		}
		page.Total += len(entries)
		page.Sections = append(page.Sections, render.MonthSection{
			Key:     mk,
			Href:    mk.MonthDir() + "/" + mk.String() + b.cfg.Layout.Extension,
			Entries: entries,
		})
	}

	prev, next := b.index.FindAdjacent(k, b.cfg.AdjacentYearSearchRange)
	page.Prev, page.Next = b.yearLink(prev), b.yearLink(next)
	page.Chrome = b.chrome(k.String(),
		render.Link{Href: b.url(k.YearDir(), k.YearDir()+b.cfg.Layout.Extension), Label: k.YearDir()})

	doc, err := b.renderer.Year(page)
	if err != nil {
		err = errors.WrapError(err, errors.CategoryBuild, "render year page").WithContext("period", k.String()).Build()
		b.fail(ctx, metrics.PageYear, k.String(), err)
		return output.Result{}, err
	}
	return b.write(ctx, metrics.PageYear, k.String(), b.YearOutputPath(year), doc)
}

func (b *Builder) yearLink(to *period.Key) *render.Link {
	if to == nil {
		return nil
	}
	return &render.Link{Href: "../" + to.YearDir() + "/" + to.YearDir() + b.cfg.Layout.Extension, Label: to.YearDir()}
}
