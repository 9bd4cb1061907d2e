package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Nil(t, Validate(&cfg))
}

func TestValidateBadValues(t *testing.T) {
	cfg := Config{
		Backend: BackendConfig{BaseURL: "not a url", TimeoutSeconds: -1},
		Logging: LoggingConfig{Level: "loud", Style: "neon"},
		History: HistoryConfig{Limit: -5},
	}

	issues := Validate(&cfg)
	paths := make([]string, 0, len(issues))
	for _, i := range issues {
		paths = append(paths, i.Path)
	}

	assert.Contains(t, paths, "backend.baseUrl")
	assert.Contains(t, paths, "backend.timeoutSeconds")
	assert.Contains(t, paths, "logging.level")
	assert.Contains(t, paths, "logging.style")
	assert.Contains(t, paths, "history.limit")
}
