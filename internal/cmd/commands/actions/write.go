package actions

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/internal/definition"
	"github.com/idpkit/actionsctl/pkg/mgmt"
	"github.com/idpkit/actionsctl/pkg/mgmt/actions"
)

type CreateCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
}

func (c *CreateCommand) Synopsis() string {
	return "Create an action from a definition file"
}

func (c *CreateCommand) Help() string {
	return `Usage: actionsctl actions create -file=<definition>

  Create an action from a YAML or JSON definition. The action is created as a
  draft; run "actionsctl actions deploy" to make it live.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := newFlagSet("create", &c.flagConfig)
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to the action definition (.yaml, .yml or .json).")
	return f
}

func (c *CreateCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"file": &c.flagFile}) {
		return 1
	}

	action, err := definition.LoadAction(c.Fs, c.flagFile, true)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Action], error) {
			return a.Create(action)
		})
}

type UpdateCommand struct {
	*base.Command

	flagConfig string
	flagID     string
	flagFile   string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update an action from a definition file"
}

func (c *UpdateCommand) Help() string {
	return `Usage: actionsctl actions update -id=<action ID> -file=<definition>

  Update an action. Only the fields present in the definition are changed.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := newFlagSet("update", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to the action definition (.yaml, .yml or .json).")
	return f
}

func (c *UpdateCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID, "file": &c.flagFile}) {
		return 1
	}

	action, err := definition.LoadAction(c.Fs, c.flagFile, false)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Action], error) {
			return a.Update(c.flagID, action)
		})
}

type DeleteCommand struct {
	*base.Command

	flagConfig string
	flagID     string
	flagForce  bool
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete an action"
}

func (c *DeleteCommand) Help() string {
	return `Usage: actionsctl actions delete -id=<action ID> [-force]

  Delete an action. Without -force the server refuses to delete an action that
  is still bound to a trigger.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := newFlagSet("delete", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	f.BoolVar(&c.flagForce, "force", false, "Also remove the action from every trigger binding.")
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID}) {
		return 1
	}

	_, code := execute(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[mgmt.NoContent], error) {
			return a.DeleteWithForce(c.flagID, c.flagForce)
		})
	if code != 0 {
		return code
	}

	c.UI.Info(fmt.Sprintf("Deleted action %s", c.flagID))
	return 0
}

type DeployCommand struct {
	*base.Command

	flagConfig string
	flagID     string
}

func (c *DeployCommand) Synopsis() string {
	return "Deploy the current draft of an action"
}

func (c *DeployCommand) Help() string {
	return `Usage: actionsctl actions deploy -id=<action ID>

  Snapshot the action into a new version and deploy it. The new version is
  printed.` +
		c.Flags().Help()
}

func (c *DeployCommand) Flags() *base.FlagSet {
	f := newFlagSet("deploy", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	return f
}

func (c *DeployCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID}) {
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Version], error) {
			return a.Deploy(c.flagID)
		})
}

type TestCommand struct {
	*base.Command

	flagConfig  string
	flagID      string
	flagPayload string
}

func (c *TestCommand) Synopsis() string {
	return "Run an action's code against a sample event"
}

func (c *TestCommand) Help() string {
	return `Usage: actionsctl actions test -id=<action ID> -payload=<event.json>` +
		c.Flags().Help()
}

func (c *TestCommand) Flags() *base.FlagSet {
	f := newFlagSet("test", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	f.StringVar(&c.flagPayload, "payload", "", "(Required) Path to a JSON file with the event payload.")
	return f
}

func (c *TestCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID, "payload": &c.flagPayload}) {
		return 1
	}

	src, err := afero.ReadFile(c.Fs, c.flagPayload)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading payload file: %v", err))
		return 1
	}

	var payload map[string]any
	if err := json.Unmarshal(src, &payload); err != nil {
		c.UI.Error(fmt.Sprintf("error decoding payload file: %v", err))
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.TestResult], error) {
			return a.Test(c.flagID, payload)
		})
}
