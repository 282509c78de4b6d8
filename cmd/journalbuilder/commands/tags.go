package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
)

// TagsCmd implements the 'tags' command.
type TagsCmd struct {
	Names       []string `arg:"" optional:"" help:"Only build these tags (skips the index and master list)"`
	Sort        string   `name:"sort" help:"Default tag page order (date-desc|date-asc|relevance-desc|relevance-asc)"`
	StopOnError bool     `name:"stop-on-error" help:"Abort at the first failed tag page"`
	NoBackup    bool     `name:"no-backup" help:"Do not keep a .bak copy of replaced pages"`
}

func (t *TagsCmd) Run(g *Global, root *CLI) error {
	ctx := context.Background()
	flags := BuildFlags{NoBackup: t.NoBackup, MaxChars: -1, MinElements: -1, MaxElements: -1}
	overrides := flags.Overrides(root.Root)
	overrides.TagSort = t.Sort
	s, err := openSession(ctx, g, root, "tags", overrides, t.Names, t.StopOnError)
	if err != nil {
		return err
	}

	report, err := s.builder.BuildTags(ctx, t.Names)
	if err != nil {
		s.close(ctx, 0, 1)
		return err
	}
	s.close(ctx, len(report.Tally.Succeeded), len(report.Tally.Failed))

	s.logger.Info("Tag scan complete",
		logfields.Count(report.Tags),
		slog.Int("sections", report.Sections),
		slog.Int("files", report.Files),
		slog.Int("skipped", len(report.Skipped)))
	if report.MasterChanged {
		fmt.Printf("Updated %s\n", s.cfg.Tags.MasterPath)
	}
	printTally(report.Tally)
	if !report.Tally.OK() {
		return fmt.Errorf("%d of %d units failed", len(report.Tally.Failed), report.Tally.Total())
	}
	return nil
}
