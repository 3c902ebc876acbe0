// Package base carries the state shared by all fmeflowctl commands: the
// logger, the UI, and the environment-driven client construction.
package base

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/mitchellh/cli"

	"github.com/sverker84/fmeflowclient/pkg/fmeflow"
)

// Environment variables understood by every command.
const (
	EnvBaseURL   = "FMEFLOW_BASE_URL"
	EnvToken     = "FMEFLOW_TOKEN"
	EnvVerifySSL = "FMEFLOW_VERIFY_SSL"
)

// Command is embedded in all fmeflowctl commands.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewClient builds an FME Flow client from the environment. A .env file in
// the working directory is loaded first when present, matching how the
// connection settings are usually kept next to the tool.
func (c *Command) NewClient(timeout time.Duration) (*fmeflow.Client, error) {
	_ = godotenv.Load()

	cfg := fmeflow.DefaultConfig()
	cfg.BaseURL = os.Getenv(EnvBaseURL)
	cfg.Token = os.Getenv(EnvToken)
	cfg.Logger = c.Log

	if raw := os.Getenv(EnvVerifySSL); raw != "" {
		verify := isTruthy(raw)
		cfg.TLSVerify = &verify
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	if cfg.BaseURL == "" || cfg.Token == "" {
		return nil, fmt.Errorf("%s and %s must be set", EnvBaseURL, EnvToken)
	}

	client, err := fmeflow.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create FME Flow client: %w", err)
	}
	return client, nil
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
