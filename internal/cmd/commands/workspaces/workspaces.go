package workspaces

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sverker84/fmeflowclient/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagTimeout time.Duration
	flagUser    string
}

func (c *Command) Synopsis() string {
	return "List workspaces across all repositories"
}

func (c *Command) Help() string {
	return `Usage: fmeflowctl workspaces [options]

  Lists every workspace on the server, walking all repositories.

Options:

  -user=<name>
    Only list workspaces owned by the given user.

  -timeout=<duration>
    Request timeout. Defaults to 30s.`
}

func (c *Command) Run(args []string) int {
	f := flag.NewFlagSet("workspaces", flag.ContinueOnError)
	f.DurationVar(&c.flagTimeout, "timeout", 0, "request timeout")
	f.StringVar(&c.flagUser, "user", "", "filter by owner")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewClient(c.flagTimeout)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	var workspaces []map[string]any
	if c.flagUser != "" {
		workspaces, err = client.Workspaces().ForUser(ctx, c.flagUser)
	} else {
		workspaces, err = client.Workspaces().All(ctx)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing workspaces: %v", err))
		return 1
	}

	for _, ws := range workspaces {
		c.UI.Output(fmt.Sprintf("%v/%v", ws["repositoryName"], ws["name"]))
	}
	c.UI.Info(fmt.Sprintf("Total workspaces: %d", len(workspaces)))
	return 0
}
