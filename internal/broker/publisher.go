// Package broker publishes game events to NATS so other services can follow
// a lab session live.
package broker

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/log"
)

// SubjectPrefix is prepended to the session id to form the event subject.
const SubjectPrefix = "biolab.events."

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
	Close()
}

// Event is the JSON payload published for each game event.
type Event struct {
	Session string    `json:"session"`
	Seq     int       `json:"seq"`
	Draws   int       `json:"draws"`
	Type    string    `json:"type"`
	Card    string    `json:"card,omitempty"`
	Details string    `json:"details"`
	Time    time.Time `json:"time"`
}

// Publisher fans game events out to NATS, one subject per session.
type Publisher struct {
	conn   Conn
	logger *zap.Logger
	now    func() time.Time
}

// Connect dials the NATS server at url.
func Connect(url string, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("biolab"),
		nats.Timeout(10 * time.Second),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(5),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}
	return NewPublisher(nc, logger), nil
}

// NewPublisher wraps an existing connection.
func NewPublisher(conn Conn, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{conn: conn, logger: logger, now: time.Now}
}

// Session returns an event sink publishing on the session's subject.
func (p *Publisher) Session(id string) log.EventLogger {
	return &sessionLogger{p: p, session: id}
}

// Sinks adapts the publisher for servers that attach one sink per session.
func (p *Publisher) Sinks() log.SinkFactory {
	return func(session string) log.EventLogger {
		return p.Session(session)
	}
}

// Close closes the underlying connection.
func (p *Publisher) Close() {
	p.conn.Close()
}

// Subject returns the subject events of a session are published on.
func Subject(session string) string {
	return SubjectPrefix + session
}

// Encode builds the JSON payload for one event.
func Encode(session string, e log.GameEvent, at time.Time) ([]byte, error) {
	return json.Marshal(Event{
		Session: session,
		Seq:     e.Seq,
		Draws:   e.Draws,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
		Time:    at.UTC(),
	})
}

func (p *Publisher) publish(session string, e log.GameEvent) {
	data, err := Encode(session, e, p.now())
	if err != nil {
		p.logger.Error("encode event", zap.String("session", session), zap.Error(err))
		return
	}
	if err := p.conn.Publish(Subject(session), data); err != nil {
		p.logger.Warn("publish event",
			zap.String("session", session),
			zap.String("type", e.Type.String()),
			zap.Error(err),
		)
	}
}

// sessionLogger keeps the session's events and publishes each one.
type sessionLogger struct {
	log.MemoryLogger
	p       *Publisher
	session string
}

func (s *sessionLogger) Log(event log.GameEvent) {
	seq := event.Seq
	s.MemoryLogger.Log(event)
	if seq == 0 {
		seq = s.LastEvent().Seq
	}
	event.Seq = seq
	s.p.publish(s.session, event)
}
