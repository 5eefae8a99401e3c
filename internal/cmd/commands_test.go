package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idpkit/actionsctl/internal/version"
)

func TestCommands(t *testing.T) {
	ui := cli.NewMockUi()
	commands := Commands(hclog.NewNullLogger(), ui)

	for name, factory := range commands {
		t.Run(name, func(t *testing.T) {
			c, err := factory()
			require.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.NotEmpty(t, c.Help())
		})
	}

	c, err := commands["version"]()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), version.Version)
}
