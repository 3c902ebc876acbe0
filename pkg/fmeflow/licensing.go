package fmeflow

import (
	"context"
	"fmt"
)

// licensingBase is the endpoint base for licensing information.
const licensingBase = "/licensing"

// LicensingManager accesses licensing information on the FME Flow server.
type LicensingManager struct {
	client *Client
}

// Capabilities retrieves the capabilities of the active license.
func (m *LicensingManager) Capabilities(ctx context.Context) (map[string]any, error) {
	var capabilities map[string]any
	if err := m.client.get(ctx, licensingBase+"/license/capabilities", nil, &capabilities); err != nil {
		return nil, fmt.Errorf("failed to get license capabilities: %w", err)
	}
	return capabilities, nil
}

// Status retrieves the status of the active license.
func (m *LicensingManager) Status(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	if err := m.client.get(ctx, licensingBase+"/license/status", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get license status: %w", err)
	}
	return status, nil
}

// MachineKey retrieves the machine key of the server.
func (m *LicensingManager) MachineKey(ctx context.Context) (map[string]any, error) {
	var machineKey map[string]any
	if err := m.client.get(ctx, licensingBase+"/machinekey", nil, &machineKey); err != nil {
		return nil, fmt.Errorf("failed to get machine key: %w", err)
	}
	return machineKey, nil
}

// SystemCode retrieves the system code of the server.
func (m *LicensingManager) SystemCode(ctx context.Context) (string, error) {
	var response struct {
		SystemCode string `json:"systemCode"`
	}
	if err := m.client.get(ctx, licensingBase+"/systemcode", nil, &response); err != nil {
		return "", fmt.Errorf("failed to get system code: %w", err)
	}
	return response.SystemCode, nil
}
