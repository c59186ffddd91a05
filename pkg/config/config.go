// Package config holds the service configuration resolved at startup.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config carries everything the trigger service needs before it can accept
// requests. WebServerURL and DAGID have no safe defaults: a deployment must
// point at a real Composer 2 web server and an existing DAG, and a missing
// value fails at startup rather than at request time.
type Config struct {
	Port           int    `validate:"required,min=1,max=65535"`
	WebServerURL   string `validate:"required,http_url"`
	DAGID          string `validate:"required"`
	AuthScope      string `validate:"required,url"`
	TracingEnabled bool
}

// Validate checks the mandatory fields.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
