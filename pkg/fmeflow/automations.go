package fmeflow

import (
	"context"
	"fmt"
	"net/url"
)

// automationsBase is the endpoint base for automation workflows.
const automationsBase = "/automations/workflows"

// AutomationManager accesses automation workflows on the FME Flow server.
type AutomationManager struct {
	client *Client
}

// All returns every automation workflow on the server.
func (m *AutomationManager) All(ctx context.Context) ([]map[string]any, error) {
	automations, err := m.client.getItems(ctx, automationsBase, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", err)
	}
	return automations, nil
}

// Tags returns the tags defined across automation workflows.
func (m *AutomationManager) Tags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := m.client.get(ctx, automationsBase+"/tags", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to list automation tags: %w", err)
	}
	return tags, nil
}

// Get retrieves an automation workflow by ID.
func (m *AutomationManager) Get(ctx context.Context, workflowID string) (map[string]any, error) {
	path := automationsBase + "/" + url.PathEscape(workflowID)

	var automation map[string]any
	if err := m.client.get(ctx, path, nil, &automation); err != nil {
		return nil, fmt.Errorf("failed to get automation: %w", err)
	}
	return automation, nil
}

// Log retrieves the log of an automation workflow.
func (m *AutomationManager) Log(ctx context.Context, workflowID string) (map[string]any, error) {
	path := automationsBase + "/" + url.PathEscape(workflowID) + "/log"

	var log map[string]any
	if err := m.client.get(ctx, path, nil, &log); err != nil {
		return nil, fmt.Errorf("failed to get automation log: %w", err)
	}
	return log, nil
}

// Status retrieves the status of an automation workflow.
func (m *AutomationManager) Status(ctx context.Context, workflowID string) (map[string]any, error) {
	path := automationsBase + "/" + url.PathEscape(workflowID) + "/status"

	var status map[string]any
	if err := m.client.get(ctx, path, nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get automation status: %w", err)
	}
	return status, nil
}

// ForUser returns the automation workflows owned by the given user.
func (m *AutomationManager) ForUser(ctx context.Context, username string) ([]map[string]any, error) {
	automations, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterByUserName(automations, username), nil
}

// filterByUserName keeps the records whose userName field matches username.
func filterByUserName(records []map[string]any, username string) []map[string]any {
	var matched []map[string]any
	for _, record := range records {
		if record["userName"] == username {
			matched = append(matched, record)
		}
	}
	return matched
}
