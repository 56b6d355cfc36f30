// Package config holds the runtime configuration for the paxconv tool.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries the settings for a batch CSV run.
type Config struct {
	// Column names in the input/output tables
	SourceColumn string `mapstructure:"source-column" validate:"required"`
	DestColumn   string `mapstructure:"dest-column"   validate:"required,nefield=SourceColumn"`

	// Common flags
	Parallel int `validate:"min=1"`
	Quiet    bool

	// Positional arguments
	Input  string `validate:"required"`
	Output string `validate:"required"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}
