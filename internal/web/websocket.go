package web

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
	labnet "github.com/peterkuimelis/biolab/internal/net"
)

// wsSession is one game bound to one websocket. It is the game's event
// sink, pushing every event to the browser as a "notify" message.
type wsSession struct {
	log.MemoryLogger

	id   string
	ctx  context.Context
	conn *websocket.Conn

	mu   sync.Mutex // guards game
	game *game.Game
}

func (s *Server) handleWebSocket(c echo.Context) error {
	wsConn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return nil
	}
	defer wsConn.CloseNow()

	sess := &wsSession{
		id:   uuid.NewString(),
		ctx:  c.Request().Context(),
		conn: wsConn,
	}
	logger := s.logger.With(zap.String("session", sess.id))

	var sink log.EventLogger
	if s.sinks != nil {
		sink = s.sinks(sess.id)
	}
	seed := s.seed
	if seed != 0 {
		seed += s.sessions.Add(1) - 1
	}
	sess.game = game.New(game.Config{
		Rules:      s.rules,
		Logger:     log.NewMultiLogger(sess, sink),
		Seed:       seed,
		PlayerName: s.player,
	})
	logger.Info("websocket game started")

	if err := sess.write(labnet.ServerMessage{Type: "state", State: labnet.BuildStateView(sess.game.Snapshot())}); err != nil {
		logger.Warn("websocket write", zap.Error(err))
		return nil
	}

	for {
		_, data, err := wsConn.Read(sess.ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
				logger.Debug("websocket read", zap.Error(err))
			}
			logger.Info("websocket game ended")
			return nil
		}

		var msg labnet.ClientMessage
		var reply labnet.ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			reply = labnet.ServerMessage{Type: "error", Error: "malformed message"}
		} else {
			reply = sess.dispatch(msg)
		}
		if err := sess.write(reply); err != nil {
			logger.Warn("websocket write", zap.Error(err))
			return nil
		}
	}
}

func (ws *wsSession) dispatch(msg labnet.ClientMessage) labnet.ServerMessage {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return labnet.Dispatch(ws.game, msg)
}

// Log implements log.EventLogger.
func (ws *wsSession) Log(event log.GameEvent) {
	ws.MemoryLogger.Log(event)
	_ = ws.write(labnet.ServerMessage{Type: "notify", Event: labnet.BuildEventView(ws.LastEvent())})
}

func (ws *wsSession) write(msg labnet.ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return ws.conn.Write(ws.ctx, websocket.MessageText, data)
}
