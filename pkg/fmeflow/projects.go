package fmeflow

import (
	"context"
	"fmt"
	"net/url"
)

// projectsBase is the endpoint base for projects.
const projectsBase = "/projects/projects"

// ProjectManager accesses projects on the FME Flow server.
type ProjectManager struct {
	client *Client
}

// All returns every project on the server.
func (m *ProjectManager) All(ctx context.Context) ([]map[string]any, error) {
	projects, err := m.client.getItems(ctx, projectsBase, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get retrieves a project by ID.
func (m *ProjectManager) Get(ctx context.Context, projectID string) (map[string]any, error) {
	path := projectsBase + "/" + url.PathEscape(projectID)

	var project map[string]any
	if err := m.client.get(ctx, path, nil, &project); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ForUser returns the projects owned by the given user.
func (m *ProjectManager) ForUser(ctx context.Context, username string) ([]map[string]any, error) {
	projects, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterByUserName(projects, username), nil
}
