package mgmt

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/idpkit/actionsctl/pkg/mgmt/actions"
)

const actionsPath = "/api/v2/actions"

// ActionsEntity builds requests for the /api/v2/actions endpoints. Every
// method validates its arguments and returns a Request that has not been sent.
type ActionsEntity struct {
	client *Client
}

// ===================================================================
// Actions
// ===================================================================

// List returns a request for a page of actions matching filter. A nil filter
// lists with server defaults.
func (e *ActionsEntity) List(filter *ActionsFilter) (*Request[actions.ActionsPage], error) {
	req, err := newRequest[actions.ActionsPage](e.client, http.MethodGet, actionsPath+"/actions", nil)
	if err != nil {
		return nil, err
	}
	return req.withQuery(filter.values()), nil
}

// Get returns a request for a single action.
func (e *ActionsEntity) Get(actionID string) (*Request[actions.Action], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}

	return newRequest[actions.Action](e.client, http.MethodGet, actionPath(actionID), nil)
}

// Create returns a request that creates a new action. The action needs at
// least a name and one supported trigger on the server side.
func (e *ActionsEntity) Create(action *actions.Action) (*Request[actions.Action], error) {
	if err := requireNotNil("action", action); err != nil {
		return nil, err
	}

	return newRequest[actions.Action](e.client, http.MethodPost, actionsPath+"/actions", action)
}

// Update returns a request that patches an existing action. Only the fields
// set on action are sent.
func (e *ActionsEntity) Update(actionID string, action *actions.Action) (*Request[actions.Action], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}
	if err := requireNotNil("action", action); err != nil {
		return nil, err
	}

	return newRequest[actions.Action](e.client, http.MethodPatch, actionPath(actionID), action)
}

// Delete returns a request that deletes an action without forcing it off the
// triggers it is bound to.
func (e *ActionsEntity) Delete(actionID string) (*Request[NoContent], error) {
	return e.DeleteWithForce(actionID, false)
}

// DeleteWithForce returns a request that deletes an action. With force the
// action is also removed from every trigger binding.
func (e *ActionsEntity) DeleteWithForce(actionID string, force bool) (*Request[NoContent], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}

	req, err := newRequest[NoContent](e.client, http.MethodDelete, actionPath(actionID), nil)
	if err != nil {
		return nil, err
	}
	return req.withQuery(url.Values{"force": {strconv.FormatBool(force)}}), nil
}

// Deploy returns a request that snapshots the action into a new version and
// deploys it.
func (e *ActionsEntity) Deploy(actionID string) (*Request[actions.Version], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}

	return newRequest[actions.Version](e.client, http.MethodPost, actionPath(actionID)+"/deploy", nil)
}

// Test returns a request that runs the action's current code against payload.
func (e *ActionsEntity) Test(actionID string, payload map[string]any) (*Request[actions.TestResult], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}
	if err := requireNotNil("payload", payload); err != nil {
		return nil, err
	}

	body := &actions.TestRequest{Payload: payload}
	return newRequest[actions.TestResult](e.client, http.MethodPost, actionPath(actionID)+"/test", body)
}

// ===================================================================
// Versions
// ===================================================================

// GetVersion returns a request for one version of an action.
func (e *ActionsEntity) GetVersion(actionID, versionID string) (*Request[actions.Version], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}
	if err := requireValue("version ID", versionID); err != nil {
		return nil, err
	}

	return newRequest[actions.Version](e.client, http.MethodGet, versionPath(actionID, versionID), nil)
}

// ListVersions returns a request for a page of an action's versions.
func (e *ActionsEntity) ListVersions(actionID string, filter *PageFilter) (*Request[actions.VersionsPage], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}

	req, err := newRequest[actions.VersionsPage](e.client, http.MethodGet, actionPath(actionID)+"/versions", nil)
	if err != nil {
		return nil, err
	}
	return req.withQuery(filter.values()), nil
}

// RollbackDeployment returns a request that redeploys an earlier version. The
// server creates a new version from it and deploys that.
func (e *ActionsEntity) RollbackDeployment(actionID, versionID string) (*Request[actions.Version], error) {
	if err := requireValue("action ID", actionID); err != nil {
		return nil, err
	}
	if err := requireValue("version ID", versionID); err != nil {
		return nil, err
	}

	return newRequest[actions.Version](e.client, http.MethodPost, versionPath(actionID, versionID)+"/deploy", nil)
}

// ===================================================================
// Triggers and executions
// ===================================================================

// GetTriggers returns a request for every trigger actions can be bound to.
func (e *ActionsEntity) GetTriggers() (*Request[actions.Triggers], error) {
	return newRequest[actions.Triggers](e.client, http.MethodGet, actionsPath+"/triggers", nil)
}

// GetTriggerBindings returns a request for the ordered bindings of a trigger.
func (e *ActionsEntity) GetTriggerBindings(triggerID string, filter *PageFilter) (*Request[actions.BindingsPage], error) {
	if err := requireValue("trigger ID", triggerID); err != nil {
		return nil, err
	}

	req, err := newRequest[actions.BindingsPage](e.client, http.MethodGet, bindingsPath(triggerID), nil)
	if err != nil {
		return nil, err
	}
	return req.withQuery(filter.values()), nil
}

// UpdateTriggerBindings returns a request that replaces the bindings of a
// trigger with the list in update, in order.
func (e *ActionsEntity) UpdateTriggerBindings(triggerID string, update *actions.BindingsUpdateRequest) (*Request[actions.BindingsPage], error) {
	if err := requireValue("trigger ID", triggerID); err != nil {
		return nil, err
	}
	if err := requireNotNil("bindings update", update); err != nil {
		return nil, err
	}

	return newRequest[actions.BindingsPage](e.client, http.MethodPatch, bindingsPath(triggerID), update)
}

// GetExecution returns a request for the record of one trigger execution.
func (e *ActionsEntity) GetExecution(executionID string) (*Request[actions.Execution], error) {
	if err := requireValue("execution ID", executionID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/executions/%s", actionsPath, url.PathEscape(executionID))
	return newRequest[actions.Execution](e.client, http.MethodGet, path, nil)
}

func actionPath(actionID string) string {
	return fmt.Sprintf("%s/actions/%s", actionsPath, url.PathEscape(actionID))
}

func versionPath(actionID, versionID string) string {
	return fmt.Sprintf("%s/versions/%s", actionPath(actionID), url.PathEscape(versionID))
}

func bindingsPath(triggerID string) string {
	return fmt.Sprintf("%s/triggers/%s/bindings", actionsPath, url.PathEscape(triggerID))
}
