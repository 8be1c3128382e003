package net

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
)

// Server hosts labs for TCP clients, one independent game per connection.
type Server struct {
	Port   string
	Rules  *game.RuleBook
	Player string
	Seed   int64 // 0 for random; each session offsets it by its number

	Logger *zap.Logger
	Sinks  log.SinkFactory // optional extra event sink per session

	mu       sync.Mutex
	sessions int
}

// Run listens on Port and serves connections until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := s.logger()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	logger.Info("waiting for lab assistants", zap.String("addr", ln.Addr().String()))

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			l := logger.With(zap.String("remote", conn.RemoteAddr().String()))
			l.Info("client connected")
			if err := s.ServeConn(ctx, conn); err != nil {
				l.Warn("session ended", zap.Error(err))
				return
			}
			l.Info("client disconnected")
		}()
	}
}

// ServeConn runs one game over conn until the client disconnects or ctx is
// cancelled. A clean disconnect returns nil.
func (s *Server) ServeConn(ctx context.Context, conn io.ReadWriteCloser) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	id := uuid.NewString()
	nc := NewNetworkController(conn)
	var sink log.EventLogger
	if s.Sinks != nil {
		sink = s.Sinks(id)
	}

	g := game.New(game.Config{
		Rules:      s.Rules,
		Logger:     log.NewMultiLogger(nc, sink),
		Seed:       s.nextSeed(),
		PlayerName: s.Player,
	})
	s.logger().Debug("game started", zap.String("session", id))

	if err := nc.Reply(ServerMessage{Type: "state", State: BuildStateView(g.Snapshot())}); err != nil {
		return fmt.Errorf("send state: %w", err)
	}

	for {
		msg, err := nc.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("recv: %w", err)
		}
		if err := nc.Reply(Dispatch(g, msg)); err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}
}

// Play runs a local game: the server side and a terminal REPL are joined
// by an in-memory pipe.
func (s *Server) Play(ctx context.Context, in io.Reader, out io.Writer) error {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	errCh := make(chan error, 1)
	go func() {
		defer serverConn.Close()
		errCh <- s.ServeConn(ctx, serverConn)
	}()

	client := NewClient(clientConn, in, out)
	if err := client.RunREPL(ctx); err != nil {
		return err
	}
	clientConn.Close()
	return <-errCh
}

func (s *Server) nextSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.sessions
	s.sessions++
	if s.Seed == 0 {
		return 0
	}
	return s.Seed + int64(n)
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
