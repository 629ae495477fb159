package profile

import "fmt"

// ConfigError reports a profile document that could not be used. Loaders
// log it and fall back to the built-in defaults.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid profile document: %v", e.Err)
	}
	return fmt.Sprintf("invalid profile document %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
