package server

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/notify"
)

type wireEvent struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// fakeGame echoes commands back over the socket and records lifecycle calls
type fakeGame struct {
	mu           sync.Mutex
	sockets      map[string]notify.Socket
	logins       map[string]string
	commands     []string
	disconnected []string
	loginErr     error
}

func newFakeGame() *fakeGame {
	return &fakeGame{sockets: make(map[string]notify.Socket), logins: make(map[string]string)}
}

func (f *fakeGame) HandleConnect(_ context.Context, s notify.Socket) {
	f.mu.Lock()
	f.sockets[s.ID()] = s
	f.mu.Unlock()
	_ = s.Send(domain.Event{Type: domain.EventSessionWelcome, Payload: map[string]string{"sessionId": s.ID()}})
}

func (f *fakeGame) HandleLogin(_ context.Context, sessionID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return f.loginErr
	}
	f.logins[sessionID] = userID
	return f.sockets[sessionID].Send(domain.Event{Type: domain.EventChatInfo, Payload: map[string]string{"message": "hi " + userID}})
}

func (f *fakeGame) HandleCommand(_ context.Context, sessionID, raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, raw)
	return f.sockets[sessionID].Send(domain.Event{Type: domain.EventChatSay, Payload: map[string]string{"message": raw}})
}

func (f *fakeGame) HandleDisconnect(_ context.Context, sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnected = append(f.disconnected, sessionID)
}

func (f *fakeGame) socket(t *testing.T) notify.Socket {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.sockets, 1)
	for _, s := range f.sockets {
		return s
	}
	return nil
}

func (f *fakeGame) disconnects() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.disconnected)
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) wireEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev wireEvent
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func startWS(t *testing.T, g Game) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewWSHandler(g, nil, nil))
	t.Cleanup(srv.Close)
	return srv
}

func TestWS_ConnectLoginCommand(t *testing.T) {
	g := newFakeGame()
	conn := dial(t, startWS(t, g), "?token=Alice")

	assert.Equal(t, domain.EventSessionWelcome, readEvent(t, conn).Type)
	login := readEvent(t, conn)
	assert.Equal(t, domain.EventChatInfo, login.Type)
	assert.Equal(t, "hi alice", login.Payload["message"])

	require.NoError(t, conn.WriteJSON(ClientFrame{Type: FrameCommand, Text: "/say hello"}))
	echo := readEvent(t, conn)
	assert.Equal(t, domain.EventChatSay, echo.Type)
	assert.Equal(t, "/say hello", echo.Payload["message"])
}

func TestWS_LoginFrame(t *testing.T) {
	g := newFakeGame()
	conn := dial(t, startWS(t, g), "")
	readEvent(t, conn)

	require.NoError(t, conn.WriteJSON(ClientFrame{Type: FrameLogin, Token: "bob"}))
	assert.Equal(t, "hi bob", readEvent(t, conn).Payload["message"])

	t.Run("empty token", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(ClientFrame{Type: FrameLogin, Token: "  "}))
		ev := readEvent(t, conn)
		assert.Equal(t, domain.EventChatError, ev.Type)
		assert.Equal(t, MsgLoginFailed, ev.Payload["message"])
	})
}

func TestWS_LoginRejectedByGame(t *testing.T) {
	g := newFakeGame()
	g.loginErr = errors.New("boom")
	conn := dial(t, startWS(t, g), "?token=alice")
	readEvent(t, conn)

	ev := readEvent(t, conn)
	assert.Equal(t, domain.EventChatError, ev.Type)
	assert.Equal(t, MsgLoginFailed, ev.Payload["message"])
}

func TestWS_BadFrames(t *testing.T) {
	g := newFakeGame()
	conn := dial(t, startWS(t, g), "")
	readEvent(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, MsgBadFrame, readEvent(t, conn).Payload["message"])

	require.NoError(t, conn.WriteJSON(ClientFrame{Type: "dance"}))
	assert.Equal(t, `Unknown message type "dance".`, readEvent(t, conn).Payload["message"])

	g.mu.Lock()
	defer g.mu.Unlock()
	assert.Empty(t, g.commands)
}

func TestWS_ClientCloseDisconnects(t *testing.T) {
	g := newFakeGame()
	conn := dial(t, startWS(t, g), "")
	readEvent(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	require.Eventually(t, func() bool { return g.disconnects() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWS_ServerCloseFlushesQueuedEvents(t *testing.T) {
	g := newFakeGame()
	conn := dial(t, startWS(t, g), "")
	readEvent(t, conn)

	s := g.socket(t)
	require.NoError(t, s.Send(domain.Event{Type: domain.EventSessionRemoteLogout, Payload: map[string]string{"reason": "x"}}))
	s.Close()

	assert.Equal(t, domain.EventSessionRemoteLogout, readEvent(t, conn).Type)

	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	assert.ErrorIs(t, s.Send(domain.Event{Type: domain.EventChatInfo}), notify.ErrClosed)
	require.Eventually(t, func() bool { return g.disconnects() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestSocket_SendBufferFull(t *testing.T) {
	s := &wsSocket{id: "slow", send: make(chan domain.Event, 1), done: make(chan struct{})}

	require.NoError(t, s.Send(domain.Event{Type: "a"}))
	assert.ErrorIs(t, s.Send(domain.Event{Type: "b"}), ErrSendBufferFull)
	assert.ErrorIs(t, s.Send(domain.Event{Type: "c"}), notify.ErrClosed)

	s.Close()
}

func TestTrustingAuthenticator(t *testing.T) {
	auth := TrustingAuthenticator{}

	userID, err := auth.Authenticate(context.Background(), "  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)

	_, err = auth.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidParam)
}
