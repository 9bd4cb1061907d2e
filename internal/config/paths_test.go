package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOXCTL_HOME", dir)

	p, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, dir, p.Base)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), p.Config)
	assert.Equal(t, filepath.Join(dir, "data"), p.Data)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOXCTL_HOME", filepath.Join(dir, "nested"))

	p, err := ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, p.EnsureDirs())

	assert.DirExists(t, p.Data)
	assert.DirExists(t, p.Logs)
}

func TestHistoryDB(t *testing.T) {
	p := Paths{Data: "/home/u/.boxctl/data"}

	assert.Equal(t, filepath.Join(p.Data, "history.db"), p.HistoryDB(Config{}))

	cfg := Config{History: HistoryConfig{Path: "/custom/h.db"}}
	assert.Equal(t, "/custom/h.db", p.HistoryDB(cfg))
}

func TestParseConfigPath(t *testing.T) {
	path, err := ParseConfigPath("backend.baseUrl")
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "baseUrl"}, path)

	_, err = ParseConfigPath("")
	assert.Error(t, err)

	_, err = ParseConfigPath("backend..baseUrl")
	assert.Error(t, err)

	_, err = ParseConfigPath("__proto__.x")
	assert.Error(t, err)
}

func TestGetSetUnsetValueAtPath(t *testing.T) {
	root := map[string]any{}

	SetValueAtPath(root, []string{"backend", "baseUrl"}, "http://x")
	val, ok := GetValueAtPath(root, []string{"backend", "baseUrl"})
	require.True(t, ok)
	assert.Equal(t, "http://x", val)

	_, ok = GetValueAtPath(root, []string{"backend", "missing"})
	assert.False(t, ok)

	assert.True(t, UnsetValueAtPath(root, []string{"backend", "baseUrl"}))
	assert.False(t, UnsetValueAtPath(root, []string{"backend", "baseUrl"}))
}
