package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OPENAI_API_KEY", "DAF_LLM_PROVIDER", "DAF_LLM_MODEL", "DAF_LLM_BASE_URL",
		"DAF_FORCE_PROVIDER", "DAF_SERVER_ADDR", "DAF_LOG_MODE"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  addr: ":9090"
  generate_timeout: 15s
llm:
  provider: openai
  model: gpt-4o-mini
  base_url: https://api.example.com/v1
log:
  level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.GenerateTimeout)
	assert.Equal(t, "mock", cfg.Server.ForceProvider)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "https://api.example.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30*time.Minute, cfg.Server.CacheTTL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("DAF_LLM_PROVIDER", "deepseek")
	t.Setenv("DAF_SERVER_ADDR", ":7070")
	t.Setenv("DAF_FORCE_PROVIDER", "openai")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.Server.ForceProvider)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  addr: ""
log:
  level: verbose
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Server.Addr")
	assert.Contains(t, err.Error(), "Config.Log.Level")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server: [")
	_, err := LoadConfig(path)
	require.Error(t, err)
}
