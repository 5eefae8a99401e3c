package actions

import (
	"fmt"
	"strconv"

	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/pkg/mgmt"
	"github.com/idpkit/actionsctl/pkg/mgmt/actions"
)

type ListCommand struct {
	*base.Command

	flagConfig    string
	flagTriggerID string
	flagName      string
	flagDeployed  string
	flagInstalled string
	flagPage      int
	flagPerPage   int
}

func (c *ListCommand) Synopsis() string {
	return "List actions"
}

func (c *ListCommand) Help() string {
	return `Usage: actionsctl actions list [options]

  List the actions of the tenant, optionally filtered.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := newFlagSet("list", &c.flagConfig)

	f.StringVar(&c.flagTriggerID, "trigger", "", "Only list actions supporting this trigger ID.")
	f.StringVar(&c.flagName, "name", "", "Only list the action with this name.")
	f.StringVar(&c.flagDeployed, "deployed", "", "Filter on deployment state (true or false).")
	f.StringVar(&c.flagInstalled, "installed", "", "Filter on marketplace installation (true or false).")
	f.IntVar(&c.flagPage, "page", -1, "Zero-based page index.")
	f.IntVar(&c.flagPerPage, "per-page", -1, "Number of actions per page. Defaults to 50 when -page is set.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, nil) {
		return 1
	}

	filter := mgmt.NewActionsFilter()
	if c.flagTriggerID != "" {
		filter.WithTriggerID(c.flagTriggerID)
	}
	if c.flagName != "" {
		filter.WithActionName(c.flagName)
	}
	if c.flagDeployed != "" {
		deployed, err := strconv.ParseBool(c.flagDeployed)
		if err != nil {
			c.UI.Error(fmt.Sprintf("invalid deployed value %q", c.flagDeployed))
			return 1
		}
		filter.WithDeployed(deployed)
	}
	if c.flagInstalled != "" {
		installed, err := strconv.ParseBool(c.flagInstalled)
		if err != nil {
			c.UI.Error(fmt.Sprintf("invalid installed value %q", c.flagInstalled))
			return 1
		}
		filter.WithInstalled(installed)
	}
	if page, perPage, ok := pageArgs(c.flagPage, c.flagPerPage, 50); ok {
		filter.WithPage(page, perPage)
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.ActionsPage], error) {
			return a.List(filter)
		})
}

type GetCommand struct {
	*base.Command

	flagConfig string
	flagID     string
}

func (c *GetCommand) Synopsis() string {
	return "Show an action"
}

func (c *GetCommand) Help() string {
	return `Usage: actionsctl actions get -id=<action ID>` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := newFlagSet("get", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	return f
}

func (c *GetCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID}) {
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Action], error) {
			return a.Get(c.flagID)
		})
}

type TriggersCommand struct {
	*base.Command

	flagConfig string
}

func (c *TriggersCommand) Synopsis() string {
	return "List the triggers actions can be bound to"
}

func (c *TriggersCommand) Help() string {
	return `Usage: actionsctl actions triggers` +
		c.Flags().Help()
}

func (c *TriggersCommand) Flags() *base.FlagSet {
	return newFlagSet("triggers", &c.flagConfig)
}

func (c *TriggersCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, nil) {
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Triggers], error) {
			return a.GetTriggers()
		})
}

type ExecutionCommand struct {
	*base.Command

	flagConfig string
	flagID     string
}

func (c *ExecutionCommand) Synopsis() string {
	return "Show the result of a trigger execution"
}

func (c *ExecutionCommand) Help() string {
	return `Usage: actionsctl actions execution -id=<execution ID>` +
		c.Flags().Help()
}

func (c *ExecutionCommand) Flags() *base.FlagSet {
	f := newFlagSet("execution", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Execution ID.")
	return f
}

func (c *ExecutionCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID}) {
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Execution], error) {
			return a.GetExecution(c.flagID)
		})
}
