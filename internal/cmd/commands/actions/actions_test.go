package actions

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/internal/config"
	"github.com/idpkit/actionsctl/pkg/mgmt/mgmttest"
)

const configPath = "/etc/actionsctl/config.hcl"

type fixture struct {
	base   *base.Command
	ui     *cli.MockUi
	fs     afero.Fs
	server *mgmttest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	t.Setenv(config.EnvDomain, "")
	t.Setenv(config.EnvAPIToken, "")

	server := mgmttest.NewServer(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, configPath, []byte(fmt.Sprintf(`
management {
  domain    = %q
  api_token = %q
}
`, server.URL, mgmttest.Token)), 0o600))

	ui := cli.NewMockUi()
	return &fixture{
		base:   &base.Command{Log: hclog.NewNullLogger(), UI: ui, Fs: fs},
		ui:     ui,
		fs:     fs,
		server: server,
	}
}

func (f *fixture) writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, name, []byte(content), 0o644))
}

func TestGetCommand(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.Action, http.StatusOK)

	cmd := &GetCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "action-id"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "GET", recorded.Method)
	assert.Equal(t, "/api/v2/actions/actions/action-id", recorded.Path)
	assert.Equal(t, "Bearer "+mgmttest.Token, recorded.Header.Get("Authorization"))

	assert.Contains(t, f.ui.OutputWriter.String(), `"id": "action-id"`)
}

func TestGetCommand_MissingID(t *testing.T) {
	f := newFixture(t)

	cmd := &GetCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath})
	assert.Equal(t, 1, code)
	assert.Contains(t, f.ui.ErrorWriter.String(), "id flag is required")
	assert.Zero(t, f.server.RequestCount())
}

func TestGetCommand_BadFlag(t *testing.T) {
	f := newFixture(t)

	cmd := &GetCommand{Command: f.base}
	code := cmd.Run([]string{"-unknown"})
	assert.Equal(t, 1, code)
	assert.Contains(t, f.ui.ErrorWriter.String(), "error parsing flags")
}

func TestGetCommand_APIError(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(`{"statusCode":404,"error":"Not Found","message":"The action does not exist."}`, http.StatusNotFound)

	cmd := &GetCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "missing"})
	assert.Equal(t, 1, code)
	assert.Contains(t, f.ui.ErrorWriter.String(), "The action does not exist.")
}

func TestGetCommand_MissingConfig(t *testing.T) {
	f := newFixture(t)

	cmd := &GetCommand{Command: f.base}
	code := cmd.Run([]string{"-config", "/nope.hcl", "-id", "action-id"})
	assert.Equal(t, 1, code)
	assert.Contains(t, f.ui.ErrorWriter.String(), "error creating client")
}

func TestListCommand(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.ActionsList, http.StatusOK)

	cmd := &ListCommand{Command: f.base}
	code := cmd.Run([]string{
		"-config", configPath,
		"-trigger", "post-login",
		"-deployed", "true",
		"-page", "0",
		"-per-page", "10",
	})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "/api/v2/actions/actions", recorded.Path)
	assert.Equal(t, []string{"post-login"}, recorded.Query["triggerId"])
	assert.Equal(t, []string{"true"}, recorded.Query["deployed"])
	assert.Equal(t, []string{"0"}, recorded.Query["page"])
	assert.Equal(t, []string{"10"}, recorded.Query["per_page"])
	assert.NotContains(t, recorded.Query, "installed")
}

func TestListCommand_PerPageOnly(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.ActionsList, http.StatusOK)

	cmd := &ListCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-per-page", "10"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, []string{"0"}, recorded.Query["page"])
	assert.Equal(t, []string{"10"}, recorded.Query["per_page"])
}

func TestPageArgs(t *testing.T) {
	tests := []struct {
		name          string
		page, perPage int
		wantPage      int
		wantPerPage   int
		wantOK        bool
	}{
		{"unset", -1, -1, 0, 0, false},
		{"page only", 2, -1, 2, 50, true},
		{"per-page only", -1, 10, 0, 10, true},
		{"both", 3, 5, 3, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage, ok := pageArgs(tt.page, tt.perPage, 50)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestListCommand_InvalidBool(t *testing.T) {
	f := newFixture(t)

	cmd := &ListCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-installed", "maybe"})
	assert.Equal(t, 1, code)
	assert.Contains(t, f.ui.ErrorWriter.String(), "invalid installed value")
}

func TestCreateCommand(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/work/action.yaml", `
name: my action
runtime: node16
code: some code
supported_triggers:
  - id: post-login
    version: v2
`)
	f.server.JSONResponse(mgmttest.Action, http.StatusCreated)

	cmd := &CreateCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-file", "/work/action.yaml"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "/api/v2/actions/actions", recorded.Path)

	body := recorded.BodyMap(t)
	assert.Len(t, body, 4)
	assert.Equal(t, "my action", body["name"])
	assert.Equal(t, "node16", body["runtime"])
}

func TestCreateCommand_InvalidDefinition(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/work/action.yaml", "code: some code\n")

	cmd := &CreateCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-file", "/work/action.yaml"})
	assert.Equal(t, 1, code)
	assert.Contains(t, f.ui.ErrorWriter.String(), "invalid action definition")
	assert.Zero(t, f.server.RequestCount())
}

func TestUpdateCommand(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/work/patch.json", `{"runtime": "node18"}`)
	f.server.JSONResponse(mgmttest.Action, http.StatusOK)

	cmd := &UpdateCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "action-id", "-file", "/work/patch.json"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "PATCH", recorded.Method)
	assert.Equal(t, "/api/v2/actions/actions/action-id", recorded.Path)
	assert.Equal(t, map[string]any{"runtime": "node18"}, recorded.BodyMap(t))
}

func TestDeleteCommand(t *testing.T) {
	for _, force := range []bool{false, true} {
		t.Run(fmt.Sprintf("force=%t", force), func(t *testing.T) {
			f := newFixture(t)
			f.server.EmptyResponse(http.StatusNoContent)

			args := []string{"-config", configPath, "-id", "action-id"}
			if force {
				args = append(args, "-force")
			}

			cmd := &DeleteCommand{Command: f.base}
			code := cmd.Run(args)
			require.Equal(t, 0, code, f.ui.ErrorWriter.String())

			recorded := f.server.TakeRequest(t)
			assert.Equal(t, "DELETE", recorded.Method)
			assert.Equal(t, []string{fmt.Sprint(force)}, recorded.Query["force"])
			assert.Contains(t, f.ui.OutputWriter.String(), "Deleted action action-id")
		})
	}
}

func TestDeployCommand(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.ActionVersion, http.StatusOK)

	cmd := &DeployCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "action-id"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "/api/v2/actions/actions/action-id/deploy", recorded.Path)
	assert.Contains(t, f.ui.OutputWriter.String(), `"number": 4`)
}

func TestTestCommand(t *testing.T) {
	f := newFixture(t)
	f.writeFile(t, "/work/event.json", `{"user": {"user_id": "auth0|123"}}`)
	f.server.JSONResponse(mgmttest.ActionTest, http.StatusOK)

	cmd := &TestCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "action-id", "-payload", "/work/event.json"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "/api/v2/actions/actions/action-id/test", recorded.Path)
	assert.Contains(t, recorded.BodyMap(t), "payload")
	assert.Contains(t, f.ui.OutputWriter.String(), `"command": "allow"`)
}

func TestTriggersCommand(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.ActionTriggers, http.StatusOK)

	cmd := &TriggersCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	assert.Equal(t, "/api/v2/actions/triggers", f.server.TakeRequest(t).Path)
	assert.Contains(t, f.ui.OutputWriter.String(), "send-phone-message")
}

func TestVersionsCommand(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newFixture(t)
		f.server.JSONResponse(mgmttest.ActionVersions, http.StatusOK)

		cmd := &VersionsCommand{Command: f.base}
		code := cmd.Run([]string{"-config", configPath, "-id", "action-id"})
		require.Equal(t, 0, code, f.ui.ErrorWriter.String())

		recorded := f.server.TakeRequest(t)
		assert.Equal(t, "/api/v2/actions/actions/action-id/versions", recorded.Path)
		assert.Empty(t, recorded.Query)
	})

	t.Run("show", func(t *testing.T) {
		f := newFixture(t)
		f.server.JSONResponse(mgmttest.ActionVersion, http.StatusOK)

		cmd := &VersionsCommand{Command: f.base}
		code := cmd.Run([]string{"-config", configPath, "-id", "action-id", "-version", "version-id"})
		require.Equal(t, 0, code, f.ui.ErrorWriter.String())

		assert.Equal(t, "/api/v2/actions/actions/action-id/versions/version-id", f.server.TakeRequest(t).Path)
	})

	t.Run("per-page only", func(t *testing.T) {
		f := newFixture(t)
		f.server.JSONResponse(mgmttest.ActionVersions, http.StatusOK)

		cmd := &VersionsCommand{Command: f.base}
		code := cmd.Run([]string{"-config", configPath, "-id", "action-id", "-per-page", "5"})
		require.Equal(t, 0, code, f.ui.ErrorWriter.String())

		recorded := f.server.TakeRequest(t)
		assert.Equal(t, []string{"0"}, recorded.Query["page"])
		assert.Equal(t, []string{"5"}, recorded.Query["per_page"])
	})
}

func TestRollbackCommand(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.ActionVersion, http.StatusOK)

	cmd := &RollbackCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "action-id", "-version", "version-1"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	recorded := f.server.TakeRequest(t)
	assert.Equal(t, "POST", recorded.Method)
	assert.Equal(t, "/api/v2/actions/actions/action-id/versions/version-1/deploy", recorded.Path)
}

func TestExecutionCommand(t *testing.T) {
	f := newFixture(t)
	f.server.JSONResponse(mgmttest.ActionExecution, http.StatusOK)

	cmd := &ExecutionCommand{Command: f.base}
	code := cmd.Run([]string{"-config", configPath, "-id", "execution-id"})
	require.Equal(t, 0, code, f.ui.ErrorWriter.String())

	assert.Equal(t, "/api/v2/actions/executions/execution-id", f.server.TakeRequest(t).Path)
	assert.Contains(t, f.ui.OutputWriter.String(), `"status": "final"`)
}

func TestBindingsCommand(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		f := newFixture(t)
		f.server.JSONResponse(mgmttest.ActionTriggerBindings, http.StatusOK)

		cmd := &BindingsCommand{Command: f.base}
		code := cmd.Run([]string{"-config", configPath, "-trigger", "post-login"})
		require.Equal(t, 0, code, f.ui.ErrorWriter.String())

		recorded := f.server.TakeRequest(t)
		assert.Equal(t, "GET", recorded.Method)
		assert.Equal(t, "/api/v2/actions/triggers/post-login/bindings", recorded.Path)
	})

	t.Run("replace", func(t *testing.T) {
		f := newFixture(t)
		f.writeFile(t, "/work/bindings.yaml", `
bindings:
  - ref:
      type: action_name
      value: my action
`)
		f.server.JSONResponse(mgmttest.ActionTriggerBindings, http.StatusOK)

		cmd := &BindingsCommand{Command: f.base}
		code := cmd.Run([]string{"-config", configPath, "-trigger", "post-login", "-file", "/work/bindings.yaml"})
		require.Equal(t, 0, code, f.ui.ErrorWriter.String())

		recorded := f.server.TakeRequest(t)
		assert.Equal(t, "PATCH", recorded.Method)
		assert.Equal(t, map[string]any{
			"bindings": []any{
				map[string]any{"ref": map[string]any{"type": "action_name", "value": "my action"}},
			},
		}, recorded.BodyMap(t))
	})
}

func TestCommand_Help(t *testing.T) {
	f := newFixture(t)

	cmd := &ListCommand{Command: f.base}
	help := cmd.Help()
	assert.Contains(t, help, "-config")
	assert.Contains(t, help, "-per-page=<int>\n    Number of actions per page. Defaults to 50 when -page is set.")
	assert.NotContains(t, help, "(default: -1)")
	assert.Equal(t, cli.RunResultHelp, (&Command{Command: f.base}).Run(nil))
}
