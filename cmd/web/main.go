package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/broker"
	"github.com/peterkuimelis/biolab/internal/config"
	"github.com/peterkuimelis/biolab/internal/web"
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
	flag.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP address to listen on")
	flag.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "path to rules YAML file (built-in rules when empty)")
	flag.StringVar(&cfg.Player, "player", cfg.Player, "name of the player the lab is dedicated to")
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

	opts := web.Options{
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
	srv := web.NewServer(opts)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := srv.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
