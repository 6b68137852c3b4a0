// Package socket is the WebSocket side-channel. Connected clients send
// JSON envelopes naming a task event; each task validates its payload and
// answers on the matching response event. Sessions are independent, there
// is no cross-session fanout.
package socket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	EventGetCountryRequest  = "get-country:request"
	EventGetCountryResponse = "get-country:response"
	EventError              = "error"

	writeTimeout = 5 * time.Second
)

type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type ErrorPayload struct {
	ErrorType string `json:"errorType"`
	Error     string `json:"error"`
}

type session struct {
	id   string
	conn *websocket.Conn
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session
	validate *validator.Validate
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		validate: validator.New(),
	}
}

// Handle upgrades the request and runs the read loop until the client
// disconnects.
func (m *Manager) Handle(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept already wrote the handshake failure response.
		return nil
	}

	sess := m.createSession(conn)
	defer m.deleteSession(sess.id)
	defer conn.Close(websocket.StatusNormalClosure, "")

	logrus.WithField("session_id", sess.id).Debug("socket client connected")

	ctx := c.Request().Context()
	for {
		var envelope Envelope
		if err := wsjson.Read(ctx, conn, &envelope); err != nil {
			logrus.WithField("session_id", sess.id).Debug("socket client disconnected")
			return nil
		}
		m.dispatch(ctx, sess, &envelope)
	}
}

func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) createSession(conn *websocket.Conn) *session {
	sess := &session{id: uuid.New().String(), conn: conn}
	m.mu.Lock()
	m.sessions[sess.id] = sess
	m.mu.Unlock()
	return sess
}

func (m *Manager) deleteSession(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) dispatch(ctx context.Context, sess *session, envelope *Envelope) {
	switch envelope.Event {
	case EventGetCountryRequest:
		m.runGetCountry(ctx, sess, envelope.Data)
	default:
		m.send(ctx, sess, EventError, ErrorPayload{
			ErrorType: "unknown event",
			Error:     envelope.Event,
		})
	}
}

func (m *Manager) send(ctx context.Context, sess *session, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("socket payload marshal failed")
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := wsjson.Write(writeCtx, sess.conn, Envelope{Event: event, Data: data}); err != nil {
		logrus.WithError(err).WithField("session_id", sess.id).Debug("socket write failed")
	}
}
