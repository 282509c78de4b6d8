package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/journalbuilder/internal/config"
	"git.home.luguber.info/inful/journalbuilder/internal/eventstore"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/metrics"
	"git.home.luguber.info/inful/journalbuilder/internal/site"
	"git.home.luguber.info/inful/journalbuilder/internal/version"
)

// session carries everything one command run needs: resolved configuration,
// run id, journal, metrics and the page builder.
type session struct {
	command string
	cfg     config.Config
	logger  *slog.Logger
	store   *eventstore.SQLiteStore
	journal *eventstore.Journal
	prom    *metrics.PrometheusRecorder
	builder *site.Builder
	started time.Time
}

func openSession(ctx context.Context, g *Global, root *CLI, command string, overrides config.Overrides, targets []string, stopOnError bool) (*session, error) {
	cfg, warnings, err := config.Load(root.Config, overrides)
	for _, w := range warnings {
		g.Logger.Warn(w)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Debug && g.level != nil {
		g.level.Set(slog.LevelDebug)
	}

	runID := uuid.NewString()
	s := &session{
		command: command,
		cfg:     cfg,
		logger:  g.Logger.With(logfields.RunID(runID), logfields.Command(command)),
		started: time.Now(),
	}

	var store eventstore.Store
	if cfg.Journal.Path != "" {
		s.store, err = eventstore.NewSQLiteStore(cfg.Journal.Path)
		if err != nil {
			s.logger.Warn("Run journal disabled", logfields.Path(cfg.Journal.Path), logfields.Error(err))
		} else {
			store = s.store
		}
	}
	s.journal = eventstore.NewJournal(store, runID, s.logger)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Textfile != "" {
		s.prom = metrics.NewPrometheusRecorder(nil)
		recorder = s.prom
	}

	s.builder, err = site.NewBuilder(cfg,
		site.WithLogger(s.logger),
		site.WithJournal(s.journal),
		site.WithRecorder(recorder),
		site.WithStopOnError(stopOnError),
	)
	if err != nil {
		s.close(ctx, 0, 1)
		return nil, err
	}
	s.journal.Record(ctx, eventstore.RunStarted{Command: command, Targets: targets, Version: version.Version})
	s.logger.Info("Run started", logfields.Path(cfg.CorpusRoot))
	return s, nil
}

// close records the end of the run and flushes metrics.
func (s *session) close(ctx context.Context, succeeded, failed int) {
	d := time.Since(s.started)
	s.journal.Record(ctx, eventstore.NewRunCompleted(succeeded, failed, d))
	if s.prom != nil {
		s.prom.ObserveRunDuration(s.command, d)
		if err := metrics.WriteTextfile(s.cfg.Metrics.Textfile, s.prom.Registry()); err != nil {
			s.logger.Warn("Cannot write metrics textfile", logfields.Path(s.cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("Cannot close run journal", logfields.Error(err))
		}
	}
	s.logger.Info("Run finished",
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
		logfields.DurationMS(float64(d.Microseconds())/1000))
}
