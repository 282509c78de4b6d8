package site

import (
	"context"
	"html/template"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/journalbuilder/internal/eventstore"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/metrics"
	"git.home.luguber.info/inful/journalbuilder/internal/render"
	"git.home.luguber.info/inful/journalbuilder/internal/taglist"
	"git.home.luguber.info/inful/journalbuilder/internal/tags"
	"git.home.luguber.info/inful/journalbuilder/internal/util/sets"
)

// TagIndexName is the base name of the page listing every tag.
const TagIndexName = "tag_main"

// TagReport summarises a tag build.
type TagReport struct {
	Files    int
	Sections int
	Tags     int
	Skipped  []string
	Tally    Tally
	// MasterChanged is set when the master document was rewritten.
	MasterChanged bool
}

// TagOutputPath is <tag dir>/<tag><ext>.
func (b *Builder) TagOutputPath(tag string) string {
	return filepath.Join(b.cfg.TagOutputDir(), tag+b.cfg.Layout.Extension)
}

// BuildTags scans the corpus and writes one page per tag. With no filter it
// also writes the tag index and synchronises the master tag list. Unit
// failures are tallied; only a failed scan is returned as an error.
func (b *Builder) BuildTags(ctx context.Context, filter []string) (TagReport, error) {
	res, err := tags.NewScanner(b.index, b.logger).Scan()
	if err != nil {
		return TagReport{}, err
	}
	b.recorder.AddTaggedSections(res.Sections)
	report := TagReport{Files: res.Files, Sections: res.Sections, Tags: len(res.Index), Skipped: res.Skipped}

	names := res.Index.Names()
	if len(filter) > 0 {
		wanted := sets.New(filter...)
		names = slices.DeleteFunc(names, func(n string) bool { return !wanted.Has(n) })
		if len(names) == 0 {
			b.logger.Warn("No tags match the filter", logfields.Count(len(filter)))
			return report, nil
		}
	}

	for _, name := range names {
		if err := b.buildTag(ctx, name, res.Index[name]); err != nil {
			b.logger.Error("Tag page failed", logfields.Tag(name), logfields.Error(err))
			report.Tally.Failed = append(report.Tally.Failed, Failure{Target: name, Reason: "build failed", Err: err})
			if b.stopOnError {
				report.Tally.Stopped = true
				return report, nil
			}
			continue
		}
		report.Tally.Succeeded = append(report.Tally.Succeeded, name)
	}
	if len(filter) > 0 {
		return report, nil
	}

	if err := b.buildTagIndex(ctx, res.Index); err != nil {
		b.logger.Error("Tag index failed", logfields.Error(err))
		report.Tally.Failed = append(report.Tally.Failed, Failure{Target: TagIndexName, Reason: "build failed", Err: err})
	} else {
		report.Tally.Succeeded = append(report.Tally.Succeeded, TagIndexName)
	}

	if b.cfg.Tags.UpdateMaster && b.cfg.Tags.MasterPath != "" {
		changed, err := b.SyncMaster(ctx, res.Index)
		if err != nil {
			b.logger.Error("Master tag list not updated", logfields.Path(b.cfg.Tags.MasterPath), logfields.Error(err))
			report.Tally.Failed = append(report.Tally.Failed, Failure{Target: b.cfg.Tags.MasterPath, Reason: "sync failed", Err: err})
		} else {
			report.MasterChanged = changed
			report.Tally.Succeeded = append(report.Tally.Succeeded, b.cfg.Tags.MasterPath)
		}
	}
	return report, nil
}

func (b *Builder) buildTag(ctx context.Context, name string, entries []tags.Entry) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		err := errors.ValidationError("tag name cannot be used as a file name").WithContext("tag", name).Build()
		b.fail(ctx, metrics.PageTag, name, err)
		return err
	}
	order := b.cfg.Tags.SortFor(name)
	sorted := tags.Sort(entries, order)

	page := render.TagPage{
		Chrome: b.chrome("tag: "+name,
			render.Link{Href: b.url("tag", TagIndexName+b.cfg.Layout.Extension), Label: "tags"},
			render.Link{Href: b.tagHref(name), Label: name},
		),
		Tag:         name,
		Sort:        order,
		Description: b.describe(b.cfg.Tags.Definitions[name].Description),
		Stats:       tags.ComputeStats(entries),
	}
	for _, g := range tags.GroupByDate(sorted) {
		group := render.TagGroup{Date: g.Date, Href: b.entryURL(g.Date), Relevance: g.Relevance}
		for _, e := range g.Entries {
			group.Sections = append(group.Sections, template.HTML(e.Markup))
		}
		page.Groups = append(page.Groups, group)
	}

	doc, err := b.renderer.Tag(page)
	if err != nil {
		err = errors.WrapError(err, errors.CategoryBuild, "render tag page").WithContext("tag", name).Build()
		b.fail(ctx, metrics.PageTag, name, err)
		return err
	}
	_, err = b.write(ctx, metrics.PageTag, name, b.TagOutputPath(name), doc)
	return err
}

// entryURL links a YYYY-MM-DD date to its entry document, or "#" for other names.
func (b *Builder) entryURL(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "#"
	}
	return b.url(parts[0], parts[1], b.cfg.Layout.EntriesDir, date+b.cfg.Layout.Extension)
}

// tagHref links a tag page from a sibling page in the tag directory.
func (b *Builder) tagHref(name string) string {
	return url.PathEscape(name) + b.cfg.Layout.Extension
}

func (b *Builder) buildTagIndex(ctx context.Context, ix tags.Index) error {
	rows := make([]render.TagRow, 0, len(ix))
	for _, name := range ix.Names() {
		rows = append(rows, render.TagRow{
			Name:        name,
			Href:        b.tagHref(name),
			Stats:       tags.ComputeStats(ix[name]),
			Description: b.describe(b.cfg.Tags.Definitions[name].Description),
		})
	}
	slices.SortStableFunc(rows, func(a, c render.TagRow) int {
		if a.Stats.Count != c.Stats.Count {
			return c.Stats.Count - a.Stats.Count
		}
		return strings.Compare(a.Name, c.Name)
	})

	page := render.TagIndexPage{
		Chrome: b.chrome("tags",
			render.Link{Href: b.url("tag", TagIndexName+b.cfg.Layout.Extension), Label: "tags"}),
		Rows:     rows,
		Sections: ix.Sections(),
	}
	doc, err := b.renderer.TagIndex(page)
	if err != nil {
		err = errors.WrapError(err, errors.CategoryBuild, "render tag index").Build()
		b.fail(ctx, metrics.PageTagIndex, TagIndexName, err)
		return err
	}
	out := filepath.Join(b.cfg.TagOutputDir(), TagIndexName+b.cfg.Layout.Extension)
	_, err = b.write(ctx, metrics.PageTagIndex, TagIndexName, out, doc)
	return err
}

// Summaries counts the sections of every tag.
func Summaries(ix tags.Index) []taglist.Summary {
	out := make([]taglist.Summary, 0, len(ix))
	for _, name := range ix.Names() {
		out = append(out, taglist.Summary{Tag: name, Count: len(ix[name])})
	}
	return out
}

// SyncMaster rewrites the tag list region of the master document. The file is
// left untouched when the region is already current or the markers are unusable.
func (b *Builder) SyncMaster(ctx context.Context, ix tags.Index) (bool, error) {
	masterPath := b.cfg.Tags.MasterPath
	data, err := os.ReadFile(filepath.Clean(masterPath))
	if err != nil {
		code := errors.CategoryFileSystem
		if os.IsNotExist(err) {
			code = errors.CategoryNotFound
		}
		err = errors.WrapError(err, code, "read master document").WithContext("path", masterPath).Build()
		b.fail(ctx, metrics.PageMaster, masterPath, err)
		return false, err
	}

	r := taglist.DefaultRenderer()
	r.LinkPrefix = path.Join("/", b.cfg.Layout.URLPrefix, "tag")
	r.Extension = b.cfg.Layout.Extension
	updated, changed, err := taglist.Sync(string(data), Summaries(ix), b.cfg.Tags.MasterSort, b.cfg.Tags.Markers, r)
	if err != nil {
		err = errors.WrapError(err, errors.CategoryValidation, "synchronise master tag list").
			WithContext("path", masterPath).Build()
		b.fail(ctx, metrics.PageMaster, masterPath, err)
		return false, err
	}
	if !changed {
		b.recorder.IncPage(metrics.PageMaster, metrics.OutcomeUnchanged)
		b.journal.Record(ctx, eventstore.MasterSynced{Path: masterPath, Tags: len(ix), Changed: false})
		b.logger.Info("Master tag list already current", logfields.Path(masterPath))
		return false, nil
	}
	res, err := b.writer.WriteIfChanged(masterPath, updated)
	if err != nil {
		b.fail(ctx, metrics.PageMaster, masterPath, err)
		return false, err
	}
	b.recorder.IncPage(metrics.PageMaster, metrics.OutcomeWritten)
	b.journal.Record(ctx, eventstore.MasterSynced{Path: masterPath, Tags: len(ix), Changed: res.Written})
	b.logger.Info("Updated master tag list", logfields.Path(masterPath), logfields.Count(len(ix)))
	return res.Written, nil
}
