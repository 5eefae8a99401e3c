// Package actions contains the JSON models exchanged with the Actions
// endpoints of the Management API.
//
// Every field is optional on the wire. Empty fields are omitted when encoding
// so a partially populated Action can be sent as a PATCH body and only the
// fields the caller set are changed on the server. List fields are omitted
// only when nil; an empty non-nil slice is sent as [] and clears the list.
package actions

import "time"

// Action is a unit of custom code bound to one or more triggers.
type Action struct {
	ID                     string       `json:"id,omitempty" yaml:"id,omitempty"`
	Name                   string       `json:"name,omitempty" yaml:"name,omitempty"`
	SupportedTriggers      []Trigger    `json:"supported_triggers,omitzero" yaml:"supported_triggers,omitempty"`
	Code                   string       `json:"code,omitempty" yaml:"code,omitempty"`
	Runtime                string       `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Dependencies           []Dependency `json:"dependencies,omitzero" yaml:"dependencies,omitempty"`
	Secrets                []Secret     `json:"secrets,omitzero" yaml:"secrets,omitempty"`
	DeployedVersion        *Version     `json:"deployed_version,omitempty" yaml:"-"`
	InstalledIntegrationID string       `json:"installed_integration_id,omitempty" yaml:"-"`
	Status                 string       `json:"status,omitempty" yaml:"-"`
	AllChangesDeployed     *bool        `json:"all_changes_deployed,omitempty" yaml:"-"`
	CreatedAt              *time.Time   `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt              *time.Time   `json:"updated_at,omitempty" yaml:"-"`
}

// NewAction returns an Action with the fields required to create one.
func NewAction(name string, triggers ...Trigger) *Action {
	return &Action{
		Name:              name,
		SupportedTriggers: triggers,
	}
}

// Dependency is an npm package required by the action code.
type Dependency struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	RegistryURL string `json:"registry_url,omitempty" yaml:"registry_url,omitempty"`
}

// NewDependency returns a Dependency resolved from the default registry.
func NewDependency(name, version string) Dependency {
	return Dependency{Name: name, Version: version}
}

// Secret is a key/value pair made available to the action at runtime. The
// server never returns secret values, only names and update times.
type Secret struct {
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	Value     string     `json:"value,omitempty" yaml:"value,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"-"`
}

func NewSecret(name, value string) Secret {
	return Secret{Name: name, Value: value}
}

// ActionsPage is one page of the action list.
type ActionsPage struct {
	Actions []Action `json:"actions"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
}
