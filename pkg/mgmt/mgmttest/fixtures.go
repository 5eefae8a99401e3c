package mgmttest

// Action is a single action as returned by the server.
const Action = `{
  "id": "action-id",
  "name": "my action",
  "supported_triggers": [{"id": "post-login", "version": "v2"}],
  "code": "exports.onExecutePostLogin = async (event, api) => {};",
  "dependencies": [{"name": "lodash", "version": "4.17.21"}],
  "runtime": "node16",
  "secrets": [{"name": "secret-name", "updated_at": "2021-11-09T14:05:25.283Z"}],
  "deployed_version": {
    "id": "version-id",
    "action_id": "action-id",
    "deployed": true,
    "number": 3,
    "status": "built"
  },
  "status": "built",
  "all_changes_deployed": true,
  "created_at": "2021-11-08T15:59:17.837Z",
  "updated_at": "2021-11-09T14:05:25.283Z"
}`

// ActionVersion is a deployed version.
const ActionVersion = `{
  "id": "version-id",
  "action_id": "action-id",
  "code": "exports.onExecutePostLogin = async (event, api) => {};",
  "runtime": "node16",
  "dependencies": [],
  "secrets": [],
  "supported_triggers": [{"id": "post-login", "version": "v2"}],
  "deployed": true,
  "number": 4,
  "status": "built",
  "errors": [],
  "created_at": "2021-11-09T14:05:25.283Z",
  "updated_at": "2021-11-09T14:05:25.283Z",
  "built_at": "2021-11-09T14:05:26.102Z"
}`

// ActionVersions is one page of versions.
const ActionVersions = `{
  "versions": [
    {"id": "version-2", "action_id": "action-id", "number": 2, "deployed": true, "status": "built"},
    {"id": "version-1", "action_id": "action-id", "number": 1, "deployed": false, "status": "built"}
  ],
  "total": 2,
  "page": 0,
  "per_page": 20
}`

// ActionsList is one page of actions.
const ActionsList = `{
  "actions": [
    {"id": "action-1", "name": "first", "supported_triggers": [{"id": "post-login", "version": "v2"}]},
    {"id": "action-2", "name": "second", "supported_triggers": [{"id": "credentials-exchange", "version": "v2"}]}
  ],
  "total": 2,
  "page": 0,
  "per_page": 50
}`

// ActionExecution is a finished execution.
const ActionExecution = `{
  "id": "execution-id",
  "trigger_id": "post-login",
  "status": "final",
  "results": [
    {"action_name": "my action", "error": null, "started_at": "2021-11-09T14:05:25.283Z", "ended_at": "2021-11-09T14:05:25.301Z"}
  ],
  "created_at": "2021-11-09T14:05:25.283Z",
  "updated_at": "2021-11-09T14:05:25.301Z"
}`

// ActionTriggerBindings is the binding list of a trigger.
const ActionTriggerBindings = `{
  "bindings": [
    {"id": "binding-1", "trigger_id": "post-login", "display_name": "first", "action": {"id": "action-1", "name": "first"}},
    {"id": "binding-2", "trigger_id": "post-login", "display_name": "second", "action": {"id": "action-2", "name": "second"}}
  ],
  "total": 2,
  "page": 0,
  "per_page": 20
}`

// ActionTest is the result of testing an action.
const ActionTest = `{"payload": {"command": "allow", "user": {"user_id": "auth0|123"}}}`

// ActionTriggers lists every trigger.
const ActionTriggers = `{
  "triggers": [
    {"id": "post-login", "version": "v1", "status": "DEPRECATED", "runtimes": ["node12"], "default_runtime": "node12"},
    {"id": "post-login", "version": "v2", "status": "CURRENT", "runtimes": ["node12", "node16"], "default_runtime": "node16",
     "compatible_triggers": [{"id": "post-login", "version": "v1"}]},
    {"id": "credentials-exchange", "version": "v1", "status": "DEPRECATED", "runtimes": ["node12"], "default_runtime": "node12"},
    {"id": "credentials-exchange", "version": "v2", "status": "CURRENT", "runtimes": ["node12", "node16"], "default_runtime": "node16"},
    {"id": "pre-user-registration", "version": "v1", "status": "DEPRECATED", "runtimes": ["node12"], "default_runtime": "node12"},
    {"id": "pre-user-registration", "version": "v2", "status": "CURRENT", "runtimes": ["node12", "node16"], "default_runtime": "node16"},
    {"id": "post-user-registration", "version": "v1", "status": "DEPRECATED", "runtimes": ["node12"], "default_runtime": "node12"},
    {"id": "post-user-registration", "version": "v2", "status": "CURRENT", "runtimes": ["node12", "node16"], "default_runtime": "node16"},
    {"id": "post-change-password", "version": "v1", "status": "DEPRECATED", "runtimes": ["node12"], "default_runtime": "node12"},
    {"id": "post-change-password", "version": "v2", "status": "CURRENT", "runtimes": ["node12", "node16"], "default_runtime": "node16"},
    {"id": "send-phone-message", "version": "v1", "status": "DEPRECATED", "runtimes": ["node12"], "default_runtime": "node12"},
    {"id": "send-phone-message", "version": "v2", "status": "CURRENT", "runtimes": ["node12", "node16"], "default_runtime": "node16"}
  ]
}`
