package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/idpkit/actionsctl/pkg/mgmt"
)

// Environment variables that override the config file.
const (
	EnvDomain   = "ACTIONS_DOMAIN"
	EnvAPIToken = "ACTIONS_API_TOKEN"
)

// Config contains the actionsctl configuration.
//
// Example configuration (HCL):
//
//	log_level = "info"
//
//	management {
//	  domain     = "tenant.example-idp.com"
//	  api_token  = env("ACTIONS_API_TOKEN")
//	  timeout    = "30s"
//	  tls_verify = true
//	}
type Config struct {
	// LogLevel is the level of the CLI logger (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	// Management configures the Management API client.
	Management *Management `hcl:"management,block"`
}

// Management configures the Management API client.
type Management struct {
	Domain    string `hcl:"domain,optional"`
	APIToken  string `hcl:"api_token,optional"`
	Timeout   string `hcl:"timeout,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
}

// NewConfig parses the config file at path, if any, and applies environment
// variable overrides.
func NewConfig(fs afero.Fs, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := hclsimple.Decode(path, src, evalContext(), cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if cfg.Management == nil {
		cfg.Management = &Management{}
	}

	if v, ok := os.LookupEnv(EnvDomain); ok && v != "" {
		cfg.Management.Domain = v
	}
	if v, ok := os.LookupEnv(EnvAPIToken); ok && v != "" {
		cfg.Management.APIToken = v
	}

	return cfg, nil
}

// ClientConfig converts the management block into a client configuration.
func (c *Config) ClientConfig(log hclog.Logger) (*mgmt.Config, error) {
	m := c.Management
	if m == nil {
		m = &Management{}
	}

	cfg := mgmt.DefaultConfig()
	cfg.Domain = m.Domain
	cfg.AuthToken = m.APIToken
	cfg.Logger = log

	if m.TLSVerify != nil {
		cfg.TLSVerify = m.TLSVerify
	}

	if m.Timeout != "" {
		timeout, err := time.ParseDuration(m.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", m.Timeout, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// evalContext exposes env() to config files so tokens can stay out of them.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(os.Getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}
