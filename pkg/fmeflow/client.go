package fmeflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// apiPrefix is the path prefix of the FME Flow REST API v3.
const apiPrefix = "/fmerest/v3"

// Client is an HTTP client for the FME Flow REST API.
//
// Resource-specific operations are grouped behind accessor methods
// (Workspaces, Automations, ...); all of them share a single request
// helper that attaches the fmetoken Authorization header and decodes
// JSON responses.
type Client struct {
	config     *Config
	apiURL     string
	httpClient *http.Client
	logger     hclog.Logger

	automations  *AutomationManager
	licensing    *LicensingManager
	workspaces   *WorkspaceManager
	projects     *ProjectManager
	repositories *RepositoryManager
	users        *UserManager
}

// New creates a client for the FME Flow server described by cfg.
func New(cfg *Config) (*Client, error) {
	if cfg.TLSVerify == nil {
		defaults := DefaultConfig()
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid FME Flow client config: %w", err)
	}

	c := &Client{
		config:     cfg,
		apiURL:     strings.TrimRight(cfg.BaseURL, "/") + apiPrefix,
		httpClient: cfg.NewHTTPClient(),
		logger:     cfg.Logger.Named("fmeflow-client"),
	}

	c.automations = &AutomationManager{client: c}
	c.licensing = &LicensingManager{client: c}
	c.workspaces = &WorkspaceManager{client: c}
	c.projects = &ProjectManager{client: c}
	c.repositories = &RepositoryManager{client: c}
	c.users = &UserManager{client: c}

	return c, nil
}

// Automations returns the accessor for automation workflows.
func (c *Client) Automations() *AutomationManager { return c.automations }

// Licensing returns the accessor for licensing information.
func (c *Client) Licensing() *LicensingManager { return c.licensing }

// Workspaces returns the accessor for workspaces across all repositories.
func (c *Client) Workspaces() *WorkspaceManager { return c.workspaces }

// Projects returns the accessor for projects.
func (c *Client) Projects() *ProjectManager { return c.projects }

// Repositories returns the accessor for repositories.
func (c *Client) Repositories() *RepositoryManager { return c.repositories }

// Users returns the accessor for user accounts.
func (c *Client) Users() *UserManager { return c.users }

// Healthcheck performs a health check on the FME Flow server.
func (c *Client) Healthcheck(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	if err := c.get(ctx, "/healthcheck", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to check server health: %w", err)
	}
	return status, nil
}

// Info retrieves information about the FME Flow server.
func (c *Client) Info(ctx context.Context) (map[string]any, error) {
	var info map[string]any
	if err := c.get(ctx, "/info", nil, &info); err != nil {
		return nil, fmt.Errorf("failed to get server info: %w", err)
	}
	return info, nil
}

// FlowVersion retrieves the build version of the FME Flow server, or
// "UNKNOWN" when the server does not report one.
func (c *Client) FlowVersion(ctx context.Context) (string, error) {
	info, err := c.Info(ctx)
	if err != nil {
		return "", err
	}
	build, ok := info["build"].(string)
	if !ok {
		return "UNKNOWN", nil
	}
	return build, nil
}

// endpointURL joins the API URL with an endpoint path and optional query
// parameters. Trailing slashes are stripped the way the server expects.
func (c *Client) endpointURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	endpoint := strings.TrimRight(c.apiURL+path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// do executes an HTTP request against the FME Flow REST API and decodes the
// JSON response into result when result is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	endpoint := c.endpointURL(path, query)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "fmetoken token="+c.config.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request to FME Flow",
		"method", method,
		"path", path,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errBody); err == nil && errBody.Message != "" {
			apiErr.Message = errBody.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}

		return apiErr
	}

	if result != nil && resp.StatusCode != http.StatusNoContent && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// getItems fetches a list endpoint that wraps its records in an "items"
// array and unwraps it.
func (c *Client) getItems(ctx context.Context, path string, query url.Values) ([]map[string]any, error) {
	var listing struct {
		Items []map[string]any `json:"items"`
	}
	if err := c.get(ctx, path, query, &listing); err != nil {
		return nil, err
	}
	return listing.Items, nil
}
