package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
	"git.home.luguber.info/inful/journalbuilder/internal/site"
)

// AllCmd implements the 'all' batch command.
type AllCmd struct {
	BuildFlags  `embed:""`
	Year        string   `name:"year" help:"Build every month of a year that has entries" xor:"targets"`
	Months      []string `name:"months" help:"Comma separated months (YYYY-MM)" sep:"," xor:"targets"`
	Range       []string `name:"range" help:"First and last month, e.g. 2025-01,2025-06" sep:"," xor:"targets"`
	WithYear    bool     `name:"with-year" help:"Also build the year page (with --year)"`
	StopOnError bool     `name:"stop-on-error" help:"Abort at the first failed month"`
}

func (a *AllCmd) targets(s *session) ([]period.Key, *period.Key, error) {
	switch {
	case a.Year != "":
		k, err := period.ParseYear(a.Year)
		if err != nil {
			return nil, nil, err
		}
		return s.builder.YearTargets(k.Year), &k, nil
	case len(a.Months) > 0:
		keys := make([]period.Key, 0, len(a.Months))
		for _, m := range a.Months {
			k, err := period.ParseMonth(m)
			if err != nil {
				return nil, nil, err
			}
			keys = append(keys, k)
		}
		return keys, nil, nil
	case len(a.Range) > 0:
		if len(a.Range) != 2 {
			return nil, nil, fmt.Errorf("--range needs exactly two months, got %d", len(a.Range))
		}
		start, err := period.ParseMonth(a.Range[0])
		if err != nil {
			return nil, nil, err
		}
		end, err := period.ParseMonth(a.Range[1])
		if err != nil {
			return nil, nil, err
		}
		keys, err := period.MonthRange(start, end)
		return keys, nil, err
	default:
		return nil, nil, fmt.Errorf("one of --year, --months or --range is required")
	}
}

func (a *AllCmd) Run(g *Global, root *CLI) error {
	ctx := context.Background()
	s, err := openSession(ctx, g, root, "all", a.Overrides(root.Root), nil, a.StopOnError)
	if err != nil {
		return err
	}

	months, year, err := a.targets(s)
	if err != nil {
		s.close(ctx, 0, 0)
		return errors.WrapError(err, errors.CategoryValidation, "invalid batch targets").Build()
	}
	if len(months) == 0 {
		s.close(ctx, 0, 0)
		return errors.NotFoundError("no months to build").Build()
	}

	tally := s.builder.BuildMonths(ctx, months)
	if year != nil && a.WithYear {
		tally = a.buildYear(ctx, s, *year, tally)
	}
	s.close(ctx, len(tally.Succeeded), len(tally.Failed))

	printTally(tally)
	if !tally.OK() {
		return fmt.Errorf("%d of %d units failed", len(tally.Failed), tally.Total())
	}
	return nil
}

// buildYear adds the year page once at least one month of the batch succeeded.
func (a *AllCmd) buildYear(ctx context.Context, s *session, year period.Key, t site.Tally) site.Tally {
	if len(t.Succeeded) == 0 || (t.Stopped && a.StopOnError) {
		return t
	}
	if _, err := s.builder.BuildYear(ctx, year.Year); err != nil {
		t.Failed = append(t.Failed, site.Failure{Target: year.String(), Reason: "build failed", Err: err})
		return t
	}
	t.Succeeded = append(t.Succeeded, year.String())
	return t
}

func printTally(t site.Tally) {
	for _, f := range t.Failed {
		if f.Err != nil {
			fmt.Printf("  FAILED %s: %s (%v)\n", f.Target, f.Reason, f.Err)
		} else {
			fmt.Printf("  FAILED %s: %s\n", f.Target, f.Reason)
		}
	}
	fmt.Printf("Done: %s\n", t)
}
