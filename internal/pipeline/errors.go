package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks errors caused by bad repository roots.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError names the path that failed validation.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: '%s'", e.Reason, e.Path)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
