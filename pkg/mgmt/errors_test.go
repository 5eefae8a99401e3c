package mgmt_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idpkit/actionsctl/pkg/mgmt"
)

func TestExecute_APIError(t *testing.T) {
	client, server := newTestClient(t)

	req, err := client.Actions().Get("missing")
	require.NoError(t, err)

	server.JSONResponse(`{"statusCode":404,"error":"Not Found","message":"The action does not exist.","errorCode":"inexistent_action"}`, http.StatusNotFound)
	action, err := req.Execute(context.Background())
	require.Error(t, err)
	assert.Nil(t, action)

	var apiErr *mgmt.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Name)
	assert.Equal(t, "inexistent_action", apiErr.ErrorCode)
	assert.Nil(t, apiErr.RateLimit)
	assert.Contains(t, err.Error(), "The action does not exist.")
	assert.True(t, mgmt.IsStatus(err, http.StatusNotFound))
	assert.False(t, mgmt.IsStatus(err, http.StatusConflict))
}

func TestExecute_APIErrorDescription(t *testing.T) {
	client, server := newTestClient(t)

	req, err := client.Actions().GetTriggers()
	require.NoError(t, err)

	server.JSONResponse(`{"error":"access_denied","error_description":"Unauthorized"}`, http.StatusUnauthorized)
	_, err = req.Execute(context.Background())

	var apiErr *mgmt.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestExecute_NonJSONError(t *testing.T) {
	client, server := newTestClient(t)

	req, err := client.Actions().GetTriggers()
	require.NoError(t, err)

	server.JSONResponse(`upstream unavailable`, http.StatusBadGateway)
	_, err = req.Execute(context.Background())

	var apiErr *mgmt.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream unavailable", apiErr.Body)
	assert.Contains(t, err.Error(), "status 502")
}

func TestExecute_RateLimited(t *testing.T) {
	client, server := newTestClient(t)

	req, err := client.Actions().GetTriggers()
	require.NoError(t, err)

	server.RateLimitResponse("100", "0", "1636466725")
	_, err = req.Execute(context.Background())
	require.Error(t, err)

	var apiErr *mgmt.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.NotNil(t, apiErr.RateLimit)
	assert.Equal(t, int64(100), apiErr.RateLimit.Limit)
	assert.Equal(t, int64(0), apiErr.RateLimit.Remaining)
	assert.Equal(t, time.Unix(1636466725, 0), apiErr.RateLimit.Reset)

	// No retries.
	server.TakeRequest(t)
	assert.Zero(t, server.RequestCount())
}

func TestExecute_RateLimitedWithoutHeaders(t *testing.T) {
	client, server := newTestClient(t)

	req, err := client.Actions().GetTriggers()
	require.NoError(t, err)

	server.JSONResponse(`{"statusCode":429}`, http.StatusTooManyRequests)
	_, err = req.Execute(context.Background())

	var apiErr *mgmt.APIError
	require.ErrorAs(t, err, &apiErr)
	require.NotNil(t, apiErr.RateLimit)
	assert.Equal(t, int64(-1), apiErr.RateLimit.Limit)
	assert.True(t, apiErr.RateLimit.Reset.IsZero())
}

func TestExecute_ContextCanceled(t *testing.T) {
	client, _ := newTestClient(t)

	req, err := client.Actions().GetTriggers()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = req.Execute(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecute_InvalidJSON(t *testing.T) {
	client, server := newTestClient(t)

	req, err := client.Actions().Get("action-id")
	require.NoError(t, err)

	server.JSONResponse(`{"id": 12`, http.StatusOK)
	_, err = req.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
