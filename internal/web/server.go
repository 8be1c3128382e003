package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
)

//go:embed static
var staticFiles embed.FS

// Options configures a web server.
type Options struct {
	Rules  *game.RuleBook // nil for the built-in rules
	Player string
	Seed   int64 // 0 for random
	Logger *zap.Logger
	Sinks  log.SinkFactory // optional extra event sink per websocket game
}

// Server is the biolab web UI server.
type Server struct {
	echo   *echo.Echo
	rules  *game.RuleBook
	player string
	seed   int64
	logger *zap.Logger
	sinks  log.SinkFactory

	sessions atomic.Int64 // websocket games started, offsets the seed
}

// NewServer creates a new web server.
func NewServer(opts Options) *Server {
	if opts.Rules == nil {
		opts.Rules = game.DefaultRuleBook()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		rules:  opts.Rules,
		player: opts.Player,
		seed:   opts.Seed,
		logger: opts.Logger,
		sinks:  opts.Sinks,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.Use(RequestIDMiddleware())
	s.echo.Use(LoggingMiddleware(s.logger))

	// Embedded static files
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.echo.GET("/", func(c echo.Context) error {
		data, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			return echo.ErrNotFound
		}
		return c.HTMLBlob(http.StatusOK, data)
	})
	s.echo.StaticFS("/static", staticFS)

	s.echo.GET("/healthz", s.handleHealthz)
	s.echo.GET("/api/catalog", s.handleCatalog)
	s.echo.GET("/api/awards", s.handleAwards)

	s.echo.GET("/ws", s.handleWebSocket)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting web server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
