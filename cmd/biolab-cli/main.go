package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterkuimelis/biolab/internal/broker"
	"github.com/peterkuimelis/biolab/internal/config"
	"github.com/peterkuimelis/biolab/internal/log"
	labnet "github.com/peterkuimelis/biolab/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := config.LoadEnvFile(".env"); err != nil {
		fatal(err)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  biolab play [--rules FILE] [--player NAME] [--seed N] [--transcript FILE]")
	fmt.Println("  biolab host [--rules FILE] [--player NAME] [--seed N] [--port P]")
	fmt.Println("  biolab join [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play a lab in this terminal")
	fmt.Println("  host    Host labs for remote players over TCP")
	fmt.Println("  join    Connect to a hosted lab")
	fmt.Println()
	fmt.Println("Defaults come from BIOLAB_* environment variables.")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// gameFlags registers the flags shared by play and host.
func gameFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "path to rules YAML file (built-in rules when empty)")
	fs.StringVar(&cfg.Player, "player", cfg.Player, "name of the player the lab is dedicated to")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (0 for random)")
}

// newServer builds a lab server from cfg. The returned cleanup flushes the
// logger and closes the event publisher.
func newServer(cfg config.Config) (*labnet.Server, func(), error) {
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, nil, err
	}

	var sinks log.SinkFactory
	cleanup := func() { _ = logger.Sync() }
	if cfg.NATSURL != "" {
		pub, err := broker.Connect(cfg.NATSURL, logger)
		if err != nil {
			return nil, nil, err
		}
		sinks = pub.Sinks()
		cleanup = func() {
			pub.Close()
			_ = logger.Sync()
		}
	}

	srv := &labnet.Server{
		Port:   cfg.TCPPort,
		Rules:  rules,
		Player: cfg.Player,
		Seed:   cfg.Seed,
		Logger: logger,
		Sinks:  sinks,
	}
	return srv, cleanup, nil
}

// withTranscript adds text to the sinks of every session.
func withTranscript(sinks log.SinkFactory, text *log.TextLogger) log.SinkFactory {
	return func(session string) log.EventLogger {
		var extra log.EventLogger
		if sinks != nil {
			extra = sinks(session)
		}
		return log.NewMultiLogger(text, extra)
	}
}

func runPlay(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	gameFlags(fs, &cfg)
	transcript := fs.String("transcript", "", "write a text log of every game event to this file")
	fs.Parse(args)

	srv, cleanup, err := newServer(cfg)
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	if *transcript != "" {
		f, err := os.Create(*transcript)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		srv.Sinks = withTranscript(srv.Sinks, log.NewTextLogger(f))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := srv.Play(ctx, os.Stdin, os.Stdout); err != nil {
		fatal(err)
	}
}

func runHost(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	gameFlags(fs, &cfg)
	fs.StringVar(&cfg.TCPPort, "port", cfg.TCPPort, "TCP port to listen on")
	fs.Parse(args)

	srv, cleanup, err := newServer(cfg)
	if err != nil {
		fatal(err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		fatal(err)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:7777", "server address to connect to")
	fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := labnet.Connect(ctx, *addr); err != nil {
		fatal(err)
	}
}
