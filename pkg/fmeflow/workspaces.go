package fmeflow

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// WorkspaceManager accesses workspaces across every repository on the FME
// Flow server. The REST API only lists workspaces per repository, so All
// fans out over the repository listing.
type WorkspaceManager struct {
	client *Client
}

// All returns every workspace on the server by walking all repositories.
// When individual repositories fail to list, the workspaces of the
// remaining repositories are still returned together with a (multierror)
// error describing the failures.
func (m *WorkspaceManager) All(ctx context.Context) ([]map[string]any, error) {
	repositories, err := m.client.Repositories().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for workspaces: %w", err)
	}

	var result *multierror.Error
	var allWorkspaces []map[string]any
	for _, repository := range repositories {
		repositoryName, _ := repository["name"].(string)
		if repositoryName == "" {
			continue
		}

		workspaces, err := m.client.Repositories().Workspaces(ctx, repositoryName)
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("repository %q: %w", repositoryName, err))
			continue
		}
		allWorkspaces = append(allWorkspaces, workspaces...)
	}

	return allWorkspaces, result.ErrorOrNil()
}

// ForUser returns the workspaces owned by the given user.
func (m *WorkspaceManager) ForUser(ctx context.Context, username string) ([]map[string]any, error) {
	workspaces, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterByUserName(workspaces, username), nil
}
