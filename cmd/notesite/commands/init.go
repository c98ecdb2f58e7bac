package commands

import (
	"fmt"
	"log/slog"

	"github.com/vyckey/notesite/internal/config"
	"github.com/vyckey/notesite/internal/gitinfo"
	"github.com/vyckey/notesite/internal/logfields"
	"github.com/vyckey/notesite/internal/site"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force   bool   `help:"Overwrite existing configuration file"`
	FromGit bool   `name:"from-git" help:"Derive organization and project names from the origin remote"`
	Repo    string `help:"Repository used by --from-git" default:"." type:"path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	decl := site.Canonical()
	if i.FromGit {
		info, err := gitinfo.FromRepo(i.Repo)
		if err != nil {
			return err
		}
		info.Apply(&decl)
		slog.Info("Using repository identity", slog.String("owner", info.Owner), slog.String("name", info.Name), logfields.Path(i.Repo))
	}
	if err := config.Init(root.Config, i.Force, decl); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Wrote configuration to %s\n", root.Config)
	return nil
}
