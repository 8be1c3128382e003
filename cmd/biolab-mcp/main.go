package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/broker"
	"github.com/peterkuimelis/biolab/internal/config"
	biomcp "github.com/peterkuimelis/biolab/internal/mcp"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "path to rules YAML file (built-in rules when empty)")
	flag.StringVar(&cfg.Player, "player", cfg.Player, "default player name")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (0 for random)")
	flag.Parse()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rules, err := cfg.Rules()
	if err != nil {
		logger.Fatal("failed to load rules", zap.Error(err))
	}

	opts := biomcp.Options{
		Rules:  rules,
		Player: cfg.Player,
		Seed:   cfg.Seed,
		Logger: logger,
	}
	if cfg.NATSURL != "" {
		pub, err := broker.Connect(cfg.NATSURL, logger)
		if err != nil {
			logger.Fatal("failed to connect to NATS", zap.Error(err))
		}
		defer pub.Close()
		opts.Sinks = pub.Sinks()
	}

	s := server.NewMCPServer("biolab", "1.0.0")
	biomcp.NewController(opts).RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		logger.Error("stdio server stopped", zap.Error(err))
		os.Exit(1)
	}
}
