package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/sverker84/fmeflowclient/internal/cmd/base"
	"github.com/sverker84/fmeflowclient/internal/cmd/commands/automations"
	"github.com/sverker84/fmeflowclient/internal/cmd/commands/healthcheck"
	"github.com/sverker84/fmeflowclient/internal/cmd/commands/report"
	"github.com/sverker84/fmeflowclient/internal/cmd/commands/version"
	"github.com/sverker84/fmeflowclient/internal/cmd/commands/workspaces"
)

// Commands is the mapping of all available fmeflowctl commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"automations": func() (cli.Command, error) {
			return &automations.Command{Command: baseCommand}, nil
		},
		"healthcheck": func() (cli.Command, error) {
			return &healthcheck.Command{Command: baseCommand}, nil
		},
		"report": func() (cli.Command, error) {
			return &report.Command{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: baseCommand}, nil
		},
		"workspaces": func() (cli.Command, error) {
			return &workspaces.Command{Command: baseCommand}, nil
		},
	}
}
