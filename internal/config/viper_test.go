package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
	assert.Equal(t, 10, config.AI.HistoryLimit)
	assert.Equal(t, "finai.yaml", config.Session.File)
	assert.Equal(t, ",", config.Export.Delimiter)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"FINAI_LOG_LEVEL":        "debug",
		"FINAI_LOG_FORMAT":       "json",
		"FINAI_AI_MODEL":         "gemini-1.5-pro",
		"FINAI_AI_HISTORY_LIMIT": "25",
		"FINAI_SESSION_FILE":     "ledger.yaml",
		"FINAI_EXPORT_DELIMITER": ";",
		"GEMINI_API_KEY":         "test-api-key",
	}

	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, 25, config.AI.HistoryLimit)
	assert.Equal(t, "ledger.yaml", config.Session.File)
	assert.Equal(t, ";", config.Export.Delimiter)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
  format: "json"
ai:
  enabled: false
  model: "gemini-1.0-pro"
  timeout_seconds: 60
session:
  file: "my-session.yaml"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.0-pro", config.AI.Model)
	assert.Equal(t, 60, config.AI.TimeoutSeconds)
	assert.Equal(t, "my-session.yaml", config.Session.File)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
ai:
  timeout_seconds: 60
export:
  delimiter: "|"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("FINAI_LOG_LEVEL", "error")
	t.Setenv("FINAI_AI_TIMEOUT_SECONDS", "90")
	t.Setenv("GEMINI_API_KEY", "env-api-key")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	// Env vars override the config file; file overrides defaults.
	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, 90, config.AI.TimeoutSeconds)
	assert.Equal(t, "|", config.Export.Delimiter)
	assert.Equal(t, "env-api-key", config.AI.APIKey)
}

func TestInitializeConfig_MissingAPIKeyIsNotAnError(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Empty(t, config.AI.APIKey)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "invalid export delimiter",
			modifyConfig: func(c *Config) {
				c.Export.Delimiter = "abc"
			},
			expectError: "export delimiter must be a single character",
		},
		{
			name: "invalid timeout seconds",
			modifyConfig: func(c *Config) {
				c.AI.TimeoutSeconds = 0
			},
			expectError: "ai.timeout_seconds must be between 1 and 300",
		},
		{
			name: "invalid history limit",
			modifyConfig: func(c *Config) {
				c.AI.HistoryLimit = 0
			},
			expectError: "ai.history_limit must be at least 1",
		},
		{
			name: "empty session file",
			modifyConfig: func(c *Config) {
				c.Session.File = ""
			},
			expectError: "session.file must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnvVars(t)
			config, err := InitializeConfig()
			require.NoError(t, err)

			tt.modifyConfig(config)
			err = validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "text format info level", level: "info", format: "text"},
		{name: "json format debug level", level: "debug", format: "json"},
		{name: "invalid level falls back", level: "bogus", format: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			assert.NotNil(t, logger)
		})
	}
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"FINAI_LOG_LEVEL",
		"FINAI_LOG_FORMAT",
		"FINAI_AI_ENABLED",
		"FINAI_AI_MODEL",
		"FINAI_AI_TIMEOUT_SECONDS",
		"FINAI_AI_HISTORY_LIMIT",
		"FINAI_SESSION_FILE",
		"FINAI_EXPORT_DELIMITER",
		"GEMINI_API_KEY",
	}

	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			fmt.Printf("Warning: failed to unset environment variable %s: %v\n", envVar, err)
		}
	}
}
