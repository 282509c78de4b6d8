package site

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
	"git.home.luguber.info/inful/journalbuilder/internal/metrics"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
)

// Failure is one unit of a batch that produced no page.
type Failure struct {
	Target string
	Reason string
	Err    error
}

// Tally summarises a batch.
type Tally struct {
	Succeeded []string
	Failed    []Failure
	// Stopped is set when the batch aborted before visiting every target.
	Stopped bool
}

// OK reports whether no unit failed.
func (t Tally) OK() bool { return len(t.Failed) == 0 }

// Total counts visited units.
func (t Tally) Total() int { return len(t.Succeeded) + len(t.Failed) }

// String renders the final tally line.
func (t Tally) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d succeeded, %d failed", len(t.Succeeded), len(t.Failed))
	if t.Stopped {
		b.WriteString(" (stopped at first error)")
	}
	return b.String()
}

// YearTargets lists the months of year that hold entries.
func (b *Builder) YearTargets(year int) []period.Key {
	return b.index.MonthsInYear(year)
}

// BuildMonths builds each month in order. Months without entries are skipped
// and counted as failures. Errors never abort the batch unless the builder was
// created with WithStopOnError.
func (b *Builder) BuildMonths(ctx context.Context, months []period.Key) Tally {
	var t Tally
	for i, k := range months {
		if err := ctx.Err(); err != nil {
			t.Stopped = true
			t.Failed = append(t.Failed, Failure{Target: k.String(), Reason: "cancelled", Err: err})
			return t
		}
		if !b.index.HasEntries(k) {
			reason := "no entries"
			b.logger.Warn("Skipping month", logfields.Period(k.String()), slog.String("reason", reason))
			b.skip(ctx, metrics.PageMonth, k.String(), reason)
			t.Failed = append(t.Failed, Failure{Target: k.String(), Reason: reason})
		} else if _, err := b.BuildMonth(ctx, k); err != nil {
			b.logger.Error("Month build failed", logfields.Period(k.String()), logfields.Error(err))
			t.Failed = append(t.Failed, Failure{Target: k.String(), Reason: "build failed", Err: err})
		} else {
			t.Succeeded = append(t.Succeeded, k.String())
			continue
		}
		if b.stopOnError {
			t.Stopped = i < len(months)-1
			return t
		}
	}
	return t
}
