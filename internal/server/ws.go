package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/notify"
)

// Game is the part of the orchestrator the transport drives
type Game interface {
	HandleConnect(ctx context.Context, s notify.Socket)
	HandleLogin(ctx context.Context, sessionID, userID string) error
	HandleCommand(ctx context.Context, sessionID, raw string) error
	HandleDisconnect(ctx context.Context, sessionID string)
}

// ClientFrame is one message from a client
type ClientFrame struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Text  string `json:"text,omitempty"`
}

// errorPayload mirrors the body of chat:error
type errorPayload struct {
	Message string `json:"message"`
}

// ErrSendBufferFull is returned when a slow client cannot keep up
var ErrSendBufferFull = errors.New(ErrMsgSendBufferFull)

// wsSocket adapts a websocket connection to notify.Socket. Send only queues;
// the write pump owns the connection for writing.
type wsSocket struct {
	id   string
	conn *websocket.Conn
	send chan domain.Event
	done chan struct{}
	once sync.Once
}

func newSocket(conn *websocket.Conn) *wsSocket {
	return &wsSocket{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan domain.Event, SendBufferSize),
		done: make(chan struct{}),
	}
}

func (s *wsSocket) ID() string { return s.id }

func (s *wsSocket) Send(ev domain.Event) error {
	select {
	case <-s.done:
		return notify.ErrClosed
	default:
	}
	select {
	case s.send <- ev:
		return nil
	default:
		s.Close()
		return ErrSendBufferFull
	}
}

// Close asks the write pump to flush and hang up. It never blocks.
func (s *wsSocket) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *wsSocket) writePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case ev := <-s.send:
			if err := s.write(ev); err != nil {
				s.Close()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			// Events queued before Close, such as a remote logout, still go out
			for {
				select {
				case ev := <-s.send:
					if s.write(ev) != nil {
						return
					}
				default:
					_ = s.conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
						time.Now().Add(WriteWait))
					return
				}
			}
		}
	}
}

func (s *wsSocket) write(ev domain.Event) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(WriteWait))
	if err := s.conn.WriteJSON(ev); err != nil {
		logger.FromContext(context.Background()).Debug(LogMsgSocketWriteError, "session_id", s.id, "error", err)
		return err
	}
	return nil
}

// WSHandler upgrades /ws requests and runs one session per connection
type WSHandler struct {
	game     Game
	auth     Authenticator
	upgrader websocket.Upgrader
}

// NewWSHandler creates the websocket endpoint. An empty allowedOrigins accepts
// any origin.
func NewWSHandler(game Game, auth Authenticator, allowedOrigins []string) *WSHandler {
	if auth == nil {
		auth = TrustingAuthenticator{}
	}
	return &WSHandler{
		game: game,
		auth: auth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  ReadBufferSize,
			WriteBufferSize: WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug(LogMsgUpgradeFailed, "error", err)
		return
	}

	// The game outlives the request context for the disconnect path
	ctx := context.WithoutCancel(r.Context())
	s := newSocket(conn)
	go s.writePump()

	h.game.HandleConnect(ctx, s)
	log.Info(LogMsgSocketOpened, "session_id", s.id, "remote_addr", r.RemoteAddr)

	if token := r.URL.Query().Get(QueryParamToken); token != "" {
		h.login(ctx, s, token)
	}
	h.readPump(ctx, s)

	s.Close()
	h.game.HandleDisconnect(ctx, s.id)
	log.Info(LogMsgSocketClosed, "session_id", s.id)
}

func (h *WSHandler) readPump(ctx context.Context, s *wsSocket) {
	conn := s.conn
	conn.SetReadLimit(MaxFrameBytes)
	_ = conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.FromContext(ctx).Debug(LogMsgSocketReadError, "session_id", s.id, "error", err)
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			logger.FromContext(ctx).Debug(LogMsgBadFrame, "session_id", s.id, "error", err)
			h.reply(s, MsgBadFrame)
			continue
		}

		switch frame.Type {
		case FrameLogin:
			h.login(ctx, s, frame.Token)
		case FrameCommand:
			// The dispatcher already told the user what went wrong
			_ = h.game.HandleCommand(ctx, s.id, frame.Text)
		default:
			h.reply(s, fmt.Sprintf(MsgUnknownFrame, frame.Type))
		}
	}
}

func (h *WSHandler) login(ctx context.Context, s *wsSocket, token string) {
	userID, err := h.auth.Authenticate(ctx, token)
	if err == nil {
		err = h.game.HandleLogin(ctx, s.id, userID)
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgLoginFailed, "session_id", s.id, "error", err)
		h.reply(s, MsgLoginFailed)
	}
}

func (h *WSHandler) reply(s *wsSocket, msg string) {
	_ = s.Send(domain.Event{Type: domain.EventChatError, Payload: errorPayload{Message: msg}})
}
