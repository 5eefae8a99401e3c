package actions

import (
	"flag"
	"fmt"
	"io"

	"github.com/mitchellh/cli"

	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/pkg/mgmt"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage actions, versions and trigger bindings"
}

func (c *Command) Help() string {
	return `Usage: actionsctl actions <subcommand> [options] [args]

  This command groups subcommands for working with the Actions endpoints of
  the Management API. Every subcommand accepts -config; ACTIONS_DOMAIN and
  ACTIONS_API_TOKEN override the values in the config file.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// newFlagSet returns a flag set with the -config flag every subcommand takes.
func newFlagSet(name string, configPath *string) *base.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := base.NewFlagSet(fs)
	f.StringVar(
		configPath, "config", "", "Path to actionsctl config file.",
	)
	return f
}

// pageArgs resolves the -page and -per-page flags, where a negative value
// means unset. ok is false when neither flag was given.
func pageArgs(page, perPage, defaultPerPage int) (int, int, bool) {
	if page < 0 && perPage < 0 {
		return 0, 0, false
	}
	if page < 0 {
		page = 0
	}
	if perPage < 0 {
		perPage = defaultPerPage
	}
	return page, perPage, true
}

// parse parses args and checks that every required flag value is set.
func parse(ui cli.Ui, f *base.FlagSet, args []string, required map[string]*string) bool {
	if err := f.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return false
	}

	for name, value := range required {
		if *value == "" {
			ui.Error(fmt.Sprintf("%s flag is required", name))
			return false
		}
	}

	return true
}

// execute builds a request against the configured tenant and sends it. The
// returned exit code is non-zero when result is nil.
func execute[T any](
	c *base.Command,
	configPath string,
	build func(a *mgmt.ActionsEntity) (*mgmt.Request[T], error),
) (*T, int) {
	client, err := c.Client(configPath)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return nil, 1
	}

	req, err := build(client.Actions())
	if err != nil {
		c.UI.Error(err.Error())
		return nil, 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	c.Log.Debug("sending request", "method", req.Method(), "url", req.URL())

	result, err := req.Execute(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error executing request: %v", err))
		return nil, 1
	}

	return result, 0
}

// executeAndPrint is execute followed by printing the result as JSON.
func executeAndPrint[T any](
	c *base.Command,
	configPath string,
	build func(a *mgmt.ActionsEntity) (*mgmt.Request[T], error),
) int {
	result, code := execute(c, configPath, build)
	if code != 0 {
		return code
	}
	return c.PrintJSON(result)
}
