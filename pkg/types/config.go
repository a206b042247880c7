// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// HTTPConfig holds shared settings for outbound requests to the upstream APIs.
type HTTPConfig struct {
	// Timeout is the per-request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with upstream requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
}

// SourceConfig points a search backend at its upstream endpoint.
type SourceConfig struct {
	// BaseURL is the search endpoint, without query string.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
}

// ServerConfig holds settings for the browser UI server.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8501").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr" validate:"required"`

	// CORSOrigins lists origins allowed to call the JSON API.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" mapstructure:"cors_origins"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=console json"`
}

// Config groups all settings.
type Config struct {
	HTTP         HTTPConfig   `json:"http" yaml:"http" mapstructure:"http"`
	Courses      SourceConfig `json:"courses" yaml:"courses" mapstructure:"courses"`
	Universities SourceConfig `json:"universities" yaml:"universities" mapstructure:"universities"`
	Server       ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Log          LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings used when no config file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Timeout:   0,
			UserAgent: "student-guidance/dev",
		},
		Courses: SourceConfig{
			BaseURL: "https://api.coursera.org/api/courses.v1",
		},
		Universities: SourceConfig{
			BaseURL: "http://universities.hipolabs.com/search",
		},
		Server: ServerConfig{
			Addr:            ":8501",
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every violation in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
