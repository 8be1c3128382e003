package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BIOLAB_ADDR", "BIOLAB_TCP_PORT", "BIOLAB_RULES", "BIOLAB_PLAYER",
		"BIOLAB_SEED", "BIOLAB_LOG_LEVEL", "BIOLAB_NATS_URL", "BIOLAB_SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "7777", c.TCPPort)
	assert.Empty(t, c.RulesFile)
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, zapcore.InfoLevel, c.LogLevel)
	assert.Empty(t, c.NATSURL)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIOLAB_ADDR", ":9000")
	t.Setenv("BIOLAB_PLAYER", "Dr. Lee")
	t.Setenv("BIOLAB_SEED", "42")
	t.Setenv("BIOLAB_LOG_LEVEL", "DEBUG")
	t.Setenv("BIOLAB_NATS_URL", "nats://localhost:4222")
	t.Setenv("BIOLAB_SHUTDOWN_TIMEOUT", "3s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.HTTPAddr)
	assert.Equal(t, "Dr. Lee", c.Player)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, zapcore.DebugLevel, c.LogLevel)
	assert.Equal(t, "nats://localhost:4222", c.NATSURL)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		"BIOLAB_SEED":             "lots",
		"BIOLAB_LOG_LEVEL":        "chatty",
		"BIOLAB_SHUTDOWN_TIMEOUT": "soon",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestRules(t *testing.T) {
	rb, err := Config{}.Rules()
	require.NoError(t, err)
	assert.Equal(t, "Mr. Weitzel", rb.PlayerName())

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boss:\n  hp: 60\n"), 0o644))
	rb, err = Config{RulesFile: path}.Rules()
	require.NoError(t, err)
	assert.Equal(t, 60, rb.Boss.HP)

	_, err = Config{RulesFile: filepath.Join(t.TempDir(), "nope.yaml")}.Rules()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("BIOLAB_PLAYER")
	t.Setenv("BIOLAB_SEED", "9")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BIOLAB_PLAYER=Ms. Curie\nBIOLAB_SEED=1\n"), 0o644))
	require.NoError(t, LoadEnvFile(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Ms. Curie", cfg.Player)
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}
