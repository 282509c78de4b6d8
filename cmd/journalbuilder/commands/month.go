package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
)

// MonthCmd implements the 'month' command.
type MonthCmd struct {
	BuildFlags `embed:""`
	Month      string `arg:"" help:"Month to build (YYYY-MM)"`
}

func (m *MonthCmd) Run(g *Global, root *CLI) error {
	k, err := period.ParseMonth(m.Month)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid month").Build()
	}
	ctx := context.Background()
	s, err := openSession(ctx, g, root, "month", m.Overrides(root.Root), []string{k.String()}, false)
	if err != nil {
		return err
	}

	res, err := s.builder.BuildMonth(ctx, k)
	if err != nil {
		s.close(ctx, 0, 1)
		return err
	}
	s.close(ctx, 1, 0)
	fmt.Printf("Wrote %s\n", res.Path)
	return nil
}
