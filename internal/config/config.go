// Package config loads and resolves boxctl configuration: a YAML file
// under the boxctl home directory plus BOXCTL_* environment overrides.
package config

import "fmt"

// DefaultBaseURL is the backend API root assumed when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns a Config with all defaults applied.
func Defaults() Config {
	return Config{
		Backend: BackendConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
			Style: "pretty",
		},
		History: HistoryConfig{
			Limit: 10,
		},
	}
}
