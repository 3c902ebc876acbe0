// Package fmeflow provides a client for the FME Flow REST API (v3).
//
// # Overview
//
// The client authenticates with an FME Flow API token and exposes the
// documented resource groups as accessor methods. Responses are passed
// through as generic JSON mappings; the service's JSON contract is
// authoritative and the client imposes no schema of its own.
//
//	client, err := fmeflow.New(&fmeflow.Config{
//	    BaseURL: "https://fmeflow.example.com",
//	    Token:   os.Getenv("FMEFLOW_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	workspaces, err := client.Workspaces().All(ctx)
//
// # API Endpoints Used
//
// All paths are relative to <base_url>/fmerest/v3:
//
// Automations:
//   - GET /automations/workflows
//   - GET /automations/workflows/tags
//   - GET /automations/workflows/:id
//   - GET /automations/workflows/:id/log
//   - GET /automations/workflows/:id/status
//
// Repositories and workspaces:
//   - GET /repositories
//   - GET /repositories/:name
//   - GET /repositories/:name/items?type=WORKSPACE
//
// Projects:
//   - GET /projects/projects
//   - GET /projects/projects/:id
//
// Licensing:
//   - GET /licensing/license/capabilities
//   - GET /licensing/license/status
//   - GET /licensing/machinekey
//   - GET /licensing/systemcode
//
// Users:
//   - GET /security/accounts
//
// Server:
//   - GET /healthcheck
//   - GET /info
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the HTTP status and
// the server's message. Connection and decode failures surface as wrapped
// errors from the underlying HTTP client and JSON decoder; the client adds
// no retry or recovery policy of its own.
//
// # Security
//
//   - Token authentication via the "fmetoken token=<token>" Authorization scheme
//   - TLS with certificate verification
//   - Token not logged or serialized to JSON
//   - Configurable TLS verification for dev/test environments
package fmeflow
