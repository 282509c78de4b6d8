package commands

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"git.home.luguber.info/inful/journalbuilder/internal/config"
	"git.home.luguber.info/inful/journalbuilder/internal/eventstore"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	RunID string `arg:"" optional:"" help:"Show one run in detail"`
	Limit int    `name:"limit" help:"Number of recent runs to list" default:"10"`
}

func (h *HistoryCmd) Run(g *Global, root *CLI) error {
	cfg, warnings, err := config.Load(root.Config, config.Overrides{CorpusRoot: root.Root})
	for _, w := range warnings {
		g.Logger.Warn(w)
	}
	if err != nil {
		return err
	}
	if cfg.Journal.Path == "" {
		return errors.ConfigError("journal.path is not configured").Build()
	}
	store, err := eventstore.NewSQLiteStore(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	ids := []string{h.RunID}
	if h.RunID == "" {
		if ids, err = store.RecentRuns(ctx, h.Limit); err != nil {
			return err
		}
	}
	for _, id := range ids {
		summary, err := eventstore.Summarize(ctx, store, id)
		if err != nil {
			return err
		}
		printSummary(os.Stdout, summary, h.RunID != "")
	}
	return nil
}

func printSummary(w io.Writer, s *eventstore.RunSummary, detail bool) {
	written := 0
	for _, n := range s.Written {
		written += n
	}
	_, _ = fmt.Fprintf(w, "%s  %-6s %-9s %s  written=%d skipped=%d failed=%d\n",
		s.StartedAt.Format("2006-01-02 15:04:05"), s.Command, s.Status, s.RunID,
		written, len(s.Skipped), len(s.Failures))
	if !detail {
		return
	}
	for _, kind := range slices.Sorted(maps.Keys(s.Written)) {
		_, _ = fmt.Fprintf(w, "  written %s: %d\n", kind, s.Written[kind])
	}
	if len(s.Skipped) > 0 {
		_, _ = fmt.Fprintf(w, "  skipped: %s\n", strings.Join(s.Skipped, ", "))
	}
	for _, f := range s.Failures {
		_, _ = fmt.Fprintf(w, "  failed: %s\n", f)
	}
	if s.MasterSync != nil {
		_, _ = fmt.Fprintf(w, "  master %s: %d tags, changed=%t\n", s.MasterSync.Path, s.MasterSync.Tags, s.MasterSync.Changed)
	}
}
