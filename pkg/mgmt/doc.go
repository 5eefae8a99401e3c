// Package mgmt is a client for the Actions endpoints of an identity platform's
// Management API.
//
// # Overview
//
// Each entity method validates its arguments and returns a *Request bound to
// an HTTP verb, a path and an optional JSON body. Nothing is sent until
// Execute is called:
//
//	client, err := mgmt.NewClient(&mgmt.Config{
//	  Domain:    "tenant.example-idp.com",
//	  AuthToken: os.Getenv("ACTIONS_API_TOKEN"),
//	})
//	req, err := client.Actions().Get("act_123")
//	action, err := req.Execute(ctx)
//
// # Endpoints
//
// Actions:
//   - GET    /api/v2/actions/actions
//   - GET    /api/v2/actions/actions/:id
//   - POST   /api/v2/actions/actions
//   - PATCH  /api/v2/actions/actions/:id
//   - DELETE /api/v2/actions/actions/:id?force=
//   - POST   /api/v2/actions/actions/:id/deploy
//   - POST   /api/v2/actions/actions/:id/test
//
// Versions:
//   - GET  /api/v2/actions/actions/:id/versions
//   - GET  /api/v2/actions/actions/:id/versions/:versionId
//   - POST /api/v2/actions/actions/:id/versions/:versionId/deploy
//
// Triggers and executions:
//   - GET   /api/v2/actions/triggers
//   - GET   /api/v2/actions/triggers/:triggerId/bindings
//   - PATCH /api/v2/actions/triggers/:triggerId/bindings
//   - GET   /api/v2/actions/executions/:id
//
// # Error Handling
//
// Blank identifiers and nil payloads fail before any request is built with an
// error wrapping ErrInvalidArgument. Non-2xx responses are returned as
// *APIError carrying the server's payload unmodified. Requests are never
// retried; a 429 response exposes the rate limit headers so callers can
// decide for themselves.
//
// # Security
//
//   - Bearer token authentication through golang.org/x/oauth2
//   - Auth token not logged or serialized to JSON
//   - Configurable TLS verification for dev/test environments
package mgmt
