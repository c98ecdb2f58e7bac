package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vyckey/notesite/cmd/notesite/commands"
	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("notesite"),
		kong.Description("Build and emit the configuration of a technical-notes documentation site"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = kctx.Run(&commands.Global{Out: os.Stdout}, cli)
	os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err))
}
