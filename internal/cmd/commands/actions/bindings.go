package actions

import (
	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/internal/definition"
	"github.com/idpkit/actionsctl/pkg/mgmt"
	"github.com/idpkit/actionsctl/pkg/mgmt/actions"
)

type BindingsCommand struct {
	*base.Command

	flagConfig  string
	flagTrigger string
	flagFile    string
}

func (c *BindingsCommand) Synopsis() string {
	return "Show or replace the actions bound to a trigger"
}

func (c *BindingsCommand) Help() string {
	return `Usage: actionsctl actions bindings -trigger=<trigger ID> [-file=<bindings>]

  Without -file, list the bindings of a trigger in execution order. With
  -file, replace them with the ordered list in the file:

    bindings:
      - ref:
          type: action_name
          value: enrich-profile
        display_name: Enrich profile` +
		c.Flags().Help()
}

func (c *BindingsCommand) Flags() *base.FlagSet {
	f := newFlagSet("bindings", &c.flagConfig)
	f.StringVar(&c.flagTrigger, "trigger", "", "(Required) Trigger ID, such as post-login.")
	f.StringVar(&c.flagFile, "file", "", "Path to a bindings definition (.yaml, .yml or .json).")
	return f
}

func (c *BindingsCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"trigger": &c.flagTrigger}) {
		return 1
	}

	if c.flagFile == "" {
		return executeAndPrint(c.Command, c.flagConfig,
			func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.BindingsPage], error) {
				return a.GetTriggerBindings(c.flagTrigger, nil)
			})
	}

	update, err := definition.LoadBindings(c.Fs, c.flagFile)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	c.Log.Info("replacing trigger bindings", "trigger", c.flagTrigger, "count", len(update.Bindings))

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.BindingsPage], error) {
			return a.UpdateTriggerBindings(c.flagTrigger, update)
		})
}
