package automations

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
	return "List automation workflows"
}

func (c *Command) Help() string {
	return `Usage: fmeflowctl automations [options]

  Lists every automation workflow on the server.

Options:

  -user=<name>
    Only list automations owned by the given user.

  -timeout=<duration>
    Request timeout. Defaults to 30s.`
}

func (c *Command) Run(args []string) int {
	f := flag.NewFlagSet("automations", flag.ContinueOnError)
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
	var automations []map[string]any
	if c.flagUser != "" {
		automations, err = client.Automations().ForUser(ctx, c.flagUser)
	} else {
		automations, err = client.Automations().All(ctx)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing automations: %v", err))
		return 1
	}

	for _, automation := range automations {
		c.UI.Output(fmt.Sprintf("%v  %v", automation["id"], automation["name"]))
	}
	c.UI.Info(fmt.Sprintf("Total automations: %d", len(automations)))
	return 0
}
