package actions

import "time"

// Binding attaches an action to a trigger. Bindings are ordered; the order of
// a BindingsPage is the order the actions run in.
type Binding struct {
	ID          string     `json:"id,omitempty"`
	TriggerID   string     `json:"trigger_id,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	Action      *Action    `json:"action,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type BindingsPage struct {
	Bindings []Binding `json:"bindings"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
}

// Binding reference types.
const (
	BindingRefActionID   = "action_id"
	BindingRefActionName = "action_name"
	BindingRefBindingID  = "binding_id"
)

// BindingReference identifies the action a binding points at.
type BindingReference struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// BindingUpdate is one entry of a BindingsUpdateRequest.
type BindingUpdate struct {
	Ref         BindingReference `json:"ref" yaml:"ref"`
	DisplayName string           `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Secrets     []Secret         `json:"secrets,omitzero" yaml:"secrets,omitempty"`
}

// BindingsUpdateRequest replaces the full ordered binding list of a trigger.
type BindingsUpdateRequest struct {
	Bindings []BindingUpdate `json:"bindings" yaml:"bindings"`
}
