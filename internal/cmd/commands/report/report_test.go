package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sverker84/fmeflowclient/pkg/fmeflow"
)

func TestBuild(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/fmerest/v3/security/accounts":
			w.Write([]byte(`{"items": [
				{"name": "admin", "type": "LOCAL"},
				{"name": "etl", "type": "SAML"}
			]}`))
		case "/fmerest/v3/repositories":
			w.Write([]byte(`{"items": [{"name": "Samples"}]}`))
		case "/fmerest/v3/repositories/Samples/items":
			w.Write([]byte(`{"items": [
				{"name": "a.fmw", "userName": "admin"},
				{"name": "b.fmw", "userName": "admin"},
				{"name": "c.fmw", "userName": "etl"}
			]}`))
		case "/fmerest/v3/automations/workflows":
			w.Write([]byte(`{"items": [{"id": "wf-1", "userName": "etl"}]}`))
		case "/fmerest/v3/projects/projects":
			w.Write([]byte(`{"items": []}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer mockServer.Close()

	client, err := fmeflow.New(&fmeflow.Config{
		BaseURL: mockServer.URL,
		Token:   "secret-token",
	})
	require.NoError(t, err)

	result, err := Build(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalWorkspaces)
	assert.Equal(t, 1, result.TotalAutomations)
	assert.Equal(t, 0, result.TotalProjects)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, Row{User: "admin", Type: "LOCAL", Workspaces: 2}, result.Rows[0])
	assert.Equal(t, Row{User: "etl", Type: "SAML", Workspaces: 1, Automations: 1}, result.Rows[1])

	lines := result.Render()
	require.Greater(t, len(lines), 5)
	assert.Equal(t, "Total workspaces: 3", lines[0])
	assert.Contains(t, lines[5], "admin")
	assert.Contains(t, lines[5], "LOCAL")
}
