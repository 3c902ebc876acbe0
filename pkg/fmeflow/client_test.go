package fmeflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a mock FME Flow server and returns a client pointed
// at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	mockServer := httptest.NewServer(handler)
	t.Cleanup(mockServer.Close)

	client, err := New(&Config{
		BaseURL: mockServer.URL,
		Token:   "secret-token",
	})
	require.NoError(t, err)

	return client
}

func TestClient_RequestHeaders(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/fmerest/v3/healthcheck", r.URL.Path)
		assert.Equal(t, "fmetoken token=secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	}))

	status, err := client.Healthcheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "ok"}, status)
}

func TestClient_Info(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fmerest/v3/info", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"build": "FME Flow 2024.1", "currentTime": "Thu-01-Aug-2024"}`))
	}))

	info, err := client.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FME Flow 2024.1", info["build"])

	version, err := client.FlowVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FME Flow 2024.1", version)
}

func TestClient_FlowVersionUnknown(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))

	version, err := client.FlowVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", version)
}

func TestClient_UnauthorizedSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Authentication failed: the token is invalid"}`))
	}))

	_, err := client.Healthcheck(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Authentication failed: the token is invalid", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "401")
}

func TestClient_ErrorWithoutJSONBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))

	_, err := client.Healthcheck(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestClient_MalformedJSONSurfacesDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": `))
	}))

	_, err := client.Healthcheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_EndpointURL(t *testing.T) {
	client, err := New(&Config{
		BaseURL: "https://fmeflow.example.com/",
		Token:   "secret-token",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://fmeflow.example.com/fmerest/v3/healthcheck",
		client.endpointURL("/healthcheck", nil))

	// Paths without a leading slash and with a trailing slash normalize.
	assert.Equal(t,
		"https://fmeflow.example.com/fmerest/v3/repositories",
		client.endpointURL("repositories/", nil))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: Config{BaseURL: "https://fmeflow.example.com", Token: "t"},
		},
		{
			name:    "missing base URL",
			config:  Config{Token: "t"},
			wantErr: true,
		},
		{
			name:    "missing token",
			config:  Config{BaseURL: "https://fmeflow.example.com"},
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			config:  Config{BaseURL: "ftp://fmeflow.example.com", Token: "t"},
			wantErr: true,
		},
		{
			name:    "no host",
			config:  Config{BaseURL: "https://", Token: "t"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{
		BaseURL: "https://fmeflow.example.com",
		Token:   "secret-token",
	}

	client, err := New(cfg)
	require.NoError(t, err)

	require.NotNil(t, cfg.TLSVerify)
	assert.True(t, *cfg.TLSVerify)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestConfig_TLSVerifyDisabled(t *testing.T) {
	tlsVerify := false
	cfg := &Config{
		BaseURL:   "https://fmeflow.example.com",
		Token:     "secret-token",
		TLSVerify: &tlsVerify,
		Timeout:   10 * time.Second,
	}

	httpClient := cfg.NewHTTPClient()
	transport, ok := httpClient.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}
