package actions

import "time"

// Execution records one run of the actions bound to a trigger.
type Execution struct {
	ID        string            `json:"id,omitempty"`
	TriggerID string            `json:"trigger_id,omitempty"`
	Status    string            `json:"status,omitempty"`
	Results   []ExecutionResult `json:"results,omitempty"`
	CreatedAt *time.Time        `json:"created_at,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

// ExecutionResult is the outcome of a single action within an Execution.
type ExecutionResult struct {
	ActionName string         `json:"action_name,omitempty"`
	Error      map[string]any `json:"error,omitempty"`
	StartedAt  *time.Time     `json:"started_at,omitempty"`
	EndedAt    *time.Time     `json:"ended_at,omitempty"`
}

// TestRequest carries the event payload used to test an action's code.
type TestRequest struct {
	Payload map[string]any `json:"payload"`
}

// TestResult carries whatever the action returned for a test payload.
type TestResult struct {
	Payload map[string]any `json:"payload"`
}
