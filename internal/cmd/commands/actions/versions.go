package actions

import (
	"github.com/idpkit/actionsctl/internal/cmd/base"
	"github.com/idpkit/actionsctl/pkg/mgmt"
	"github.com/idpkit/actionsctl/pkg/mgmt/actions"
)

type VersionsCommand struct {
	*base.Command

	flagConfig  string
	flagID      string
	flagVersion string
	flagPage    int
	flagPerPage int
}

func (c *VersionsCommand) Synopsis() string {
	return "List or show versions of an action"
}

func (c *VersionsCommand) Help() string {
	return `Usage: actionsctl actions versions -id=<action ID> [-version=<version ID>]

  Without -version, list the versions of an action. With -version, show that
  version.` +
		c.Flags().Help()
}

func (c *VersionsCommand) Flags() *base.FlagSet {
	f := newFlagSet("versions", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	f.StringVar(&c.flagVersion, "version", "", "Version ID to show.")
	f.IntVar(&c.flagPage, "page", -1, "Zero-based page index.")
	f.IntVar(&c.flagPerPage, "per-page", -1, "Number of versions per page. Defaults to 20 when -page is set.")
	return f
}

func (c *VersionsCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID}) {
		return 1
	}

	if c.flagVersion != "" {
		return executeAndPrint(c.Command, c.flagConfig,
			func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Version], error) {
				return a.GetVersion(c.flagID, c.flagVersion)
			})
	}

	var filter *mgmt.PageFilter
	if page, perPage, ok := pageArgs(c.flagPage, c.flagPerPage, 20); ok {
		filter = mgmt.NewPageFilter().WithPage(page, perPage)
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.VersionsPage], error) {
			return a.ListVersions(c.flagID, filter)
		})
}

type RollbackCommand struct {
	*base.Command

	flagConfig  string
	flagID      string
	flagVersion string
}

func (c *RollbackCommand) Synopsis() string {
	return "Redeploy an earlier version of an action"
}

func (c *RollbackCommand) Help() string {
	return `Usage: actionsctl actions rollback -id=<action ID> -version=<version ID>

  Redeploy an earlier version. The server creates a new version from it; the
  new version is printed.` +
		c.Flags().Help()
}

func (c *RollbackCommand) Flags() *base.FlagSet {
	f := newFlagSet("rollback", &c.flagConfig)
	f.StringVar(&c.flagID, "id", "", "(Required) Action ID.")
	f.StringVar(&c.flagVersion, "version", "", "(Required) Version ID to redeploy.")
	return f
}

func (c *RollbackCommand) Run(args []string) int {
	if !parse(c.UI, c.Flags(), args, map[string]*string{"id": &c.flagID, "version": &c.flagVersion}) {
		return 1
	}

	return executeAndPrint(c.Command, c.flagConfig,
		func(a *mgmt.ActionsEntity) (*mgmt.Request[actions.Version], error) {
			return a.RollbackDeployment(c.flagID, c.flagVersion)
		})
}
