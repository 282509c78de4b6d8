package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/period"
)

// YearCmd implements the 'year' command.
type YearCmd struct {
	BuildFlags `embed:""`
	Year       string `arg:"" help:"Year to build (YYYY)"`
}

func (y *YearCmd) Run(g *Global, root *CLI) error {
	k, err := period.ParseYear(y.Year)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid year").Build()
	}
	ctx := context.Background()
	s, err := openSession(ctx, g, root, "year", y.Overrides(root.Root), []string{k.String()}, false)
	if err != nil {
		return err
	}

	res, err := s.builder.BuildYear(ctx, k.Year)
	if err != nil {
		s.close(ctx, 0, 1)
		return err
	}
	s.close(ctx, 1, 0)
	fmt.Printf("Wrote %s\n", res.Path)
	return nil
}
