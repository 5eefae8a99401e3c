package actions

// Trigger is an extension point in the identity pipeline, such as
// post-login. When sent as part of an Action only ID and Version are set.
type Trigger struct {
	ID                 string              `json:"id,omitempty" yaml:"id,omitempty"`
	Version            string              `json:"version,omitempty" yaml:"version,omitempty"`
	Status             string              `json:"status,omitempty" yaml:"-"`
	Runtimes           []string            `json:"runtimes,omitempty" yaml:"-"`
	DefaultRuntime     string              `json:"default_runtime,omitempty" yaml:"-"`
	CompatibleTriggers []CompatibleTrigger `json:"compatible_triggers,omitempty" yaml:"-"`
}

// CompatibleTrigger names another trigger version an action can also run on.
type CompatibleTrigger struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// Triggers is the response of the trigger list endpoint.
type Triggers struct {
	Triggers []Trigger `json:"triggers"`
}
