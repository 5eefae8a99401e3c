package mgmt

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// requireValue fails with ErrInvalidArgument when value is blank.
func requireValue(name, value string) error {
	if err := validation.Validate(value, validation.Required); err != nil {
		return fmt.Errorf("%w: %s %v", ErrInvalidArgument, name, err)
	}
	return nil
}

// requireNotNil fails with ErrInvalidArgument when value is a nil pointer.
func requireNotNil(name string, value interface{}) error {
	if err := validation.Validate(value, validation.NotNil); err != nil {
		return fmt.Errorf("%w: %s %v", ErrInvalidArgument, name, err)
	}
	return nil
}
