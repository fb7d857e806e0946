package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `version: "1.0"
input:
  source: api.yaml
  format: openapi
output: out
generations:
  - generator: typescript
    outputFile: client.ts
  - generator: python
    outputFile: client.py
    enabled: false
    options:
      includeServer: true
      routerName: apiRouter
hooks:
  beforeGenerate:
    - echo before
  afterGenerate:
    - echo after
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apigen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "api.yaml", cfg.Input.Source)
	assert.Equal(t, "openapi", cfg.Input.Format)
	assert.Equal(t, "out", cfg.Output)
	require.Len(t, cfg.Generations, 2)

	assert.True(t, cfg.Generations[0].IsEnabled(), "enabled defaults to true")
	assert.False(t, cfg.Generations[1].IsEnabled())

	assert.Equal(t, []string{"echo before"}, cfg.Hooks.BeforeGenerate)
	assert.Equal(t, []string{"echo after"}, cfg.Hooks.AfterGenerate)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "generations: [unclosed"))
	require.Error(t, err)
}

func TestGenerationOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	gen := cfg.Generations[1]
	assert.True(t, gen.BoolOption("includeServer", false))
	assert.False(t, gen.BoolOption("missing", false))
	assert.Equal(t, "apiRouter", gen.StringOption("routerName", "router"))
	assert.Equal(t, "fallback", gen.StringOption("missing", "fallback"))
}

func TestMergeFlags(t *testing.T) {
	cfg := Default()
	merged := MergeFlags(cfg, "spec.json", "dist")
	require.NotNil(t, merged.Input)
	assert.Equal(t, "spec.json", merged.Input.Source)
	assert.Equal(t, "dist", merged.Output)

	// flags override config values
	merged = MergeFlags(merged, "other.yaml", "")
	assert.Equal(t, "other.yaml", merged.Input.Source)
	assert.Equal(t, "dist", merged.Output)
}
