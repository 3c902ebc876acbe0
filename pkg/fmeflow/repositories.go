package fmeflow

import (
	"context"
	"fmt"
	"net/url"
)

// repositoriesBase is the endpoint base for repositories.
const repositoriesBase = "/repositories"

// RepositoryManager accesses repositories on the FME Flow server.
type RepositoryManager struct {
	client *Client
}

// All returns every repository on the server.
func (m *RepositoryManager) All(ctx context.Context) ([]map[string]any, error) {
	repositories, err := m.client.getItems(ctx, repositoriesBase, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	return repositories, nil
}

// Get retrieves a repository by name.
func (m *RepositoryManager) Get(ctx context.Context, repositoryName string) (map[string]any, error) {
	path := repositoriesBase + "/" + url.PathEscape(repositoryName)

	var repository map[string]any
	if err := m.client.get(ctx, path, nil, &repository); err != nil {
		return nil, fmt.Errorf("failed to get repository: %w", err)
	}
	return repository, nil
}

// Workspaces returns the workspaces stored in the named repository.
func (m *RepositoryManager) Workspaces(ctx context.Context, repositoryName string) ([]map[string]any, error) {
	path := repositoriesBase + "/" + url.PathEscape(repositoryName) + "/items"

	query := url.Values{}
	query.Set("type", "WORKSPACE")

	workspaces, err := m.client.getItems(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list repository workspaces: %w", err)
	}
	return workspaces, nil
}
