package base

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/idpkit/actionsctl/internal/config"
	"github.com/idpkit/actionsctl/pkg/mgmt"
)

// Command is embedded by every actionsctl command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the filesystem config and definition files are read from.
	Fs afero.Fs
}

// NewCommand returns a Command reading files from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}
}

// Client builds a Management API client from the config file at path and the
// environment.
func (c *Command) Client(path string) (*mgmt.Client, error) {
	cfg, err := config.NewConfig(c.Fs, path)
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		level := hclog.LevelFromString(cfg.LogLevel)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("invalid log_level %q", cfg.LogLevel)
		}
		c.Log.SetLevel(level)
	}

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}

	return mgmt.NewClient(clientCfg)
}

// Context returns a context canceled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// PrintJSON writes v to the UI as indented JSON and returns the exit code.
func (c *Command) PrintJSON(v interface{}) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}
	c.UI.Output(string(out))
	return 0
}
