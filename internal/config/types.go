package config

// Config is the root configuration for boxctl.
type Config struct {
	Backend BackendConfig `yaml:"backend,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
}

// BackendConfig points the console at the agent backend.
type BackendConfig struct {
	BaseURL        string `yaml:"baseUrl,omitempty"` // e.g. http://localhost:8000/api/v1
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
	Token          string `yaml:"token,omitempty"` // bearer token, supports ${ENV_VAR}
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
	Style string `yaml:"style,omitempty"` // "pretty" | "json"
}

// HistoryConfig controls the local execution history database.
type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"` // defaults to true
	Path    string `yaml:"path,omitempty"`    // defaults to <base>/data/history.db
	Limit   int    `yaml:"limit,omitempty"`   // default listing limit
}

// HistoryEnabled reports whether local run history should be recorded.
func (c Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}
