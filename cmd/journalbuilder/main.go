package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/journalbuilder/cmd/journalbuilder/commands"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}
	ctx := kong.Parse(&cli,
		kong.Name("journalbuilder"),
		kong.Description("Build month, year and tag pages from a journal corpus"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)
	err := ctx.Run(global, &cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
