package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/peterkuimelis/biolab/internal/game"
)

// Config is the process configuration shared by all biolab commands.
type Config struct {
	HTTPAddr        string
	TCPPort         string
	RulesFile       string // empty for the built-in rules
	Player          string // empty for the rules' player
	Seed            int64  // 0 for random
	LogLevel        zapcore.Level
	NATSURL         string // empty disables event publishing
	ShutdownTimeout time.Duration
}

// Load reads the configuration from BIOLAB_* environment variables.
func Load() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("BIOLAB_ADDR", ":8080"),
		TCPPort:         envOr("BIOLAB_TCP_PORT", "7777"),
		RulesFile:       os.Getenv("BIOLAB_RULES"),
		Player:          os.Getenv("BIOLAB_PLAYER"),
		NATSURL:         os.Getenv("BIOLAB_NATS_URL"),
		ShutdownTimeout: 10 * time.Second,
	}

	if v := os.Getenv("BIOLAB_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BIOLAB_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}

	if v := os.Getenv("BIOLAB_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BIOLAB_SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		c.ShutdownTimeout = d
	}

	level, err := parseLogLevel(envOr("BIOLAB_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// LoadEnvFile sets variables from a dotenv file. Variables already present
// in the environment win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Rules loads the configured rules file, or the built-in rules when none is set.
func (c Config) Rules() (*game.RuleBook, error) {
	if c.RulesFile == "" {
		return game.DefaultRuleBook(), nil
	}
	rb, err := game.LoadRuleBook(c.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", c.RulesFile, err)
	}
	return rb, nil
}

// NewLogger builds the process logger. Logs go to stderr so stdout stays
// free for terminal play and the MCP stdio transport.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("invalid BIOLAB_LOG_LEVEL %q", s)
	}
}
