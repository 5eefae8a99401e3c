package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/internal/cmd/commands/actions"
	"github.com/idpkit/actionsctl/internal/version"
)

// Commands returns the command factories of actionsctl.
func Commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := base.NewCommand(log, ui)

	return map[string]cli.CommandFactory{
		"actions": func() (cli.Command, error) {
			return &actions.Command{Command: b}, nil
		},
		"actions list": func() (cli.Command, error) {
			return &actions.ListCommand{Command: b}, nil
		},
		"actions get": func() (cli.Command, error) {
			return &actions.GetCommand{Command: b}, nil
		},
		"actions create": func() (cli.Command, error) {
			return &actions.CreateCommand{Command: b}, nil
		},
		"actions update": func() (cli.Command, error) {
			return &actions.UpdateCommand{Command: b}, nil
		},
		"actions delete": func() (cli.Command, error) {
			return &actions.DeleteCommand{Command: b}, nil
		},
		"actions deploy": func() (cli.Command, error) {
			return &actions.DeployCommand{Command: b}, nil
		},
		"actions test": func() (cli.Command, error) {
			return &actions.TestCommand{Command: b}, nil
		},
		"actions triggers": func() (cli.Command, error) {
			return &actions.TriggersCommand{Command: b}, nil
		},
		"actions versions": func() (cli.Command, error) {
			return &actions.VersionsCommand{Command: b}, nil
		},
		"actions rollback": func() (cli.Command, error) {
			return &actions.RollbackCommand{Command: b}, nil
		},
		"actions execution": func() (cli.Command, error) {
			return &actions.ExecutionCommand{Command: b}, nil
		},
		"actions bindings": func() (cli.Command, error) {
			return &actions.BindingsCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Command: b}, nil
		},
	}
}

type VersionCommand struct {
	*base.Command
}

func (c *VersionCommand) Synopsis() string {
	return "Print the actionsctl version"
}

func (c *VersionCommand) Help() string {
	return "Usage: actionsctl version"
}

func (c *VersionCommand) Run(args []string) int {
	c.UI.Output("actionsctl " + version.Version)
	return 0
}
