// Package report implements the per-user usage report: for every account on
// the server it counts the workspaces, automations, and projects the user
// owns and prints them as a fixed-width table.
package report

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/sverker84/fmeflowclient/internal/cmd/base"
	"github.com/sverker84/fmeflowclient/pkg/fmeflow"
)

type Command struct {
	*base.Command

	flagTimeout time.Duration
}

func (c *Command) Synopsis() string {
	return "Print a per-user usage report"
}

func (c *Command) Help() string {
	return `Usage: fmeflowctl report [options]

  Fetches all users, workspaces, automations, and projects and prints a
  table of per-user ownership counts.

Options:

  -timeout=<duration>
    Request timeout. Defaults to 30s.`
}

func (c *Command) Run(args []string) int {
	f := flag.NewFlagSet("report", flag.ContinueOnError)
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

	report, err := Build(context.Background(), client)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error building report: %v", err))
		return 1
	}

	for _, line := range report.Render() {
		c.UI.Output(line)
	}
	return 0
}

// Row holds the ownership counts for one user.
type Row struct {
	User        string
	Type        string
	Workspaces  int
	Automations int
	Projects    int
}

// Report is a per-user ownership summary.
type Report struct {
	TotalWorkspaces  int
	TotalAutomations int
	TotalProjects    int
	Rows             []Row
}

// Build fetches users, workspaces, automations, and projects once and
// counts ownership per user.
func Build(ctx context.Context, client *fmeflow.Client) (*Report, error) {
	users, err := client.Users().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	workspaces, err := client.Workspaces().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	automations, err := client.Automations().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}

	projects, err := client.Projects().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	report := &Report{
		TotalWorkspaces:  len(workspaces),
		TotalAutomations: len(automations),
		TotalProjects:    len(projects),
	}
	for _, user := range users {
		report.Rows = append(report.Rows, Row{
			User:        user.Name,
			Type:        user.Type,
			Workspaces:  countOwnedBy(workspaces, user.Name),
			Automations: countOwnedBy(automations, user.Name),
			Projects:    countOwnedBy(projects, user.Name),
		})
	}

	return report, nil
}

// Render formats the report as output lines.
func (r *Report) Render() []string {
	lines := []string{
		fmt.Sprintf("Total workspaces: %d", r.TotalWorkspaces),
		fmt.Sprintf("Total automations: %d", r.TotalAutomations),
		fmt.Sprintf("Total projects: %d", r.TotalProjects),
		fmt.Sprintf("%-22s | %-15s | Workspaces | Automations | Projects", "User", "Type"),
		strings.Repeat("-", 80),
	}
	for _, row := range r.Rows {
		lines = append(lines, fmt.Sprintf("%-22s | %-15s | %10d | %11d | %8d",
			row.User, row.Type, row.Workspaces, row.Automations, row.Projects))
	}
	return lines
}

func countOwnedBy(records []map[string]any, username string) int {
	count := 0
	for _, record := range records {
		if record["userName"] == username {
			count++
		}
	}
	return count
}
