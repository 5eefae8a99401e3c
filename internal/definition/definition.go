// Package definition loads action and trigger-binding definitions from YAML
// or JSON files.
//
// An action definition may point at its source with code_file instead of
// inlining code; the path is resolved relative to the definition file.
//
//	name: enrich-profile
//	runtime: node18
//	code_file: ./enrich-profile.js
//	supported_triggers:
//	  - id: post-login
//	    version: v3
//	dependencies:
//	  - name: lodash
//	    version: 4.17.21
//	secrets:
//	  - name: API_KEY
//	    value: s3cr3t
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/idpkit/actionsctl/pkg/mgmt/actions"
)

type actionFile struct {
	actions.Action `yaml:",inline"`

	CodeFile string `json:"code_file,omitempty" yaml:"code_file,omitempty"`
}

// LoadAction reads an action definition. With forCreate the fields the server
// needs to create an action are required.
func LoadAction(fs afero.Fs, filename string, forCreate bool) (*actions.Action, error) {
	var def actionFile
	if err := decodeFile(fs, filename, &def); err != nil {
		return nil, err
	}

	if def.CodeFile != "" {
		if def.Code != "" {
			return nil, fmt.Errorf("%s: code and code_file are mutually exclusive", filename)
		}

		codePath := def.CodeFile
		if !filepath.IsAbs(codePath) {
			codePath = filepath.Join(filepath.Dir(filename), codePath)
		}

		code, err := afero.ReadFile(fs, codePath)
		if err != nil {
			return nil, fmt.Errorf("error reading code file: %w", err)
		}
		def.Code = string(code)
	}

	action := def.Action
	if err := ValidateAction(&action, forCreate); err != nil {
		return nil, fmt.Errorf("invalid action definition %s: %w", filename, err)
	}

	return &action, nil
}

// LoadBindings reads the ordered binding list for a trigger.
func LoadBindings(fs afero.Fs, filename string) (*actions.BindingsUpdateRequest, error) {
	var req actions.BindingsUpdateRequest
	if err := decodeFile(fs, filename, &req); err != nil {
		return nil, err
	}

	if err := ValidateBindings(&req); err != nil {
		return nil, fmt.Errorf("invalid bindings definition %s: %w", filename, err)
	}

	return &req, nil
}

// ValidateAction checks an action before it is sent. Nested triggers,
// dependencies and secrets are always checked.
func ValidateAction(a *actions.Action, forCreate bool) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.When(forCreate, validation.Required)),
		validation.Field(&a.SupportedTriggers,
			validation.When(forCreate, validation.Required),
			validation.Each(validation.By(validateTrigger))),
		validation.Field(&a.Dependencies, validation.Each(validation.By(validateDependency))),
		validation.Field(&a.Secrets, validation.Each(validation.By(validateSecret))),
	)
}

// ValidateBindings checks every binding has a well-formed reference.
func ValidateBindings(req *actions.BindingsUpdateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Bindings, validation.Each(validation.By(validateBinding))),
	)
}

func validateTrigger(value interface{}) error {
	t, _ := value.(actions.Trigger)
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required),
	)
}

func validateDependency(value interface{}) error {
	d, _ := value.(actions.Dependency)
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Version, validation.Required),
	)
}

func validateSecret(value interface{}) error {
	s, _ := value.(actions.Secret)
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
	)
}

func validateBinding(value interface{}) error {
	b, _ := value.(actions.BindingUpdate)
	return validation.ValidateStruct(&b.Ref,
		validation.Field(&b.Ref.Type, validation.Required, validation.In(
			actions.BindingRefActionID,
			actions.BindingRefActionName,
			actions.BindingRefBindingID,
		)),
		validation.Field(&b.Ref.Value, validation.Required),
	)
}

func decodeFile(fs afero.Fs, filename string, target interface{}) error {
	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return fmt.Errorf("error reading definition file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(target); err != nil {
			return fmt.Errorf("error decoding YAML definition %s: %w", filename, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(target); err != nil {
			return fmt.Errorf("error decoding JSON definition %s: %w", filename, err)
		}
	default:
		return fmt.Errorf("unsupported definition file extension %q (want .yaml, .yml or .json)", ext)
	}

	return nil
}
