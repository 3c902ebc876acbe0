package version

import (
	"github.com/sverker84/fmeflowclient/internal/cmd/base"
	buildversion "github.com/sverker84/fmeflowclient/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: fmeflowctl version

  Prints the fmeflowctl version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(buildversion.Version)
	return 0
}
