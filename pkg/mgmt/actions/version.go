package actions

import "time"

// Version is an immutable snapshot of an action, produced by a deploy.
type Version struct {
	ID                string         `json:"id,omitempty"`
	ActionID          string         `json:"action_id,omitempty"`
	Code              string         `json:"code,omitempty"`
	Runtime           string         `json:"runtime,omitempty"`
	Dependencies      []Dependency   `json:"dependencies,omitempty"`
	Secrets           []Secret       `json:"secrets,omitempty"`
	SupportedTriggers []Trigger      `json:"supported_triggers,omitempty"`
	Deployed          bool           `json:"deployed,omitempty"`
	Number            int            `json:"number,omitempty"`
	Status            string         `json:"status,omitempty"`
	Errors            []VersionError `json:"errors,omitempty"`
	Action            *Action        `json:"action,omitempty"`
	CreatedAt         *time.Time     `json:"created_at,omitempty"`
	UpdatedAt         *time.Time     `json:"updated_at,omitempty"`
	BuiltAt           *time.Time     `json:"built_at,omitempty"`
}

// VersionError describes why a version failed to build.
type VersionError struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"msg,omitempty"`
	URL     string `json:"url,omitempty"`
}

// VersionsPage is one page of an action's version history.
type VersionsPage struct {
	Versions []Version `json:"versions"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
}
