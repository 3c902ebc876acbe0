package fmeflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// accountsEndpoint is the endpoint for user accounts.
const accountsEndpoint = "/security/accounts"

// UserManager accesses user accounts on the FME Flow server.
type UserManager struct {
	client *Client
}

// User is a user account on the FME Flow server.
type User struct {
	Name                   string   `mapstructure:"name"`
	FullName               string   `mapstructure:"fullName"`
	Email                  string   `mapstructure:"email"`
	IsPasswordExpired      bool     `mapstructure:"isPasswordExpired"`
	IsPasswordChangeNeeded bool     `mapstructure:"isPasswordChangeNeeded"`
	Enabled                bool     `mapstructure:"enabled"`
	SharingEnabled         bool     `mapstructure:"sharingEnabled"`
	Type                   string   `mapstructure:"type"`
	Roles                  []string `mapstructure:"roles"`

	client *Client
}

// All returns every user account on the server.
func (m *UserManager) All(ctx context.Context) ([]*User, error) {
	accounts, err := m.client.getItems(ctx, accountsEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list user accounts: %w", err)
	}

	users := make([]*User, 0, len(accounts))
	for _, account := range accounts {
		user := &User{client: m.client}
		if err := mapstructure.Decode(account, user); err != nil {
			return nil, fmt.Errorf("failed to decode user account: %w", err)
		}
		user.cleanupRoles()
		users = append(users, user)
	}

	return users, nil
}

// cleanupRoles drops the per-user roles the server synthesizes for every
// account ("user:<name>"), leaving only assigned roles.
func (u *User) cleanupRoles() {
	roles := u.Roles[:0]
	for _, role := range u.Roles {
		if !strings.HasPrefix(role, "user:") {
			roles = append(roles, role)
		}
	}
	u.Roles = roles
}

// String returns the account name.
func (u *User) String() string {
	return u.Name
}

// Workspaces returns the workspaces owned by this user.
func (u *User) Workspaces(ctx context.Context) ([]map[string]any, error) {
	return u.client.Workspaces().ForUser(ctx, u.Name)
}

// Projects returns the projects owned by this user.
func (u *User) Projects(ctx context.Context) ([]map[string]any, error) {
	return u.client.Projects().ForUser(ctx, u.Name)
}

// Automations returns the automation workflows owned by this user.
func (u *User) Automations(ctx context.Context) ([]map[string]any, error) {
	return u.client.Automations().ForUser(ctx, u.Name)
}
