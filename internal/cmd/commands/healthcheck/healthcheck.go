package healthcheck

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/sverker84/fmeflowclient/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagTimeout time.Duration
}

func (c *Command) Synopsis() string {
	return "Check the health of the FME Flow server"
}

func (c *Command) Help() string {
	return `Usage: fmeflowctl healthcheck [options]

  Calls the server's health check endpoint and prints the response.

Options:

  -timeout=<duration>
    Request timeout. Defaults to 30s.`
}

func (c *Command) Run(args []string) int {
	f := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	f.DurationVar(&c.flagTimeout, "timeout", 0, "request timeout")
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewClient(c.flagTimeout)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	status, err := client.Healthcheck(context.Background())
	if err != nil {
		c.UI.Error(fmt.Sprintf("health check failed: %v", err))
		return 1
	}

	out, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error rendering response: %v", err))
		return 1
	}
	c.UI.Output(string(out))
	return 0
}
