package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/game"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(t *testing.T, s *Server, method, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s := NewServer(Config{Port: 0}, newFakeGame(), nil, nil, nil)

	rec := serve(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))

	assert.Equal(t, http.StatusOK, serve(t, s, http.MethodGet, "/readyz", nil).Code)
}

func TestServer_ReadyzStorageDown(t *testing.T) {
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	s := NewServer(Config{}, newFakeGame(), nil, nil, down)

	rec := serve(t, s, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "unavailable", body.Status)
}

func TestServer_Metrics(t *testing.T) {
	s := NewServer(Config{}, newFakeGame(), nil, nil, nil)
	serve(t, s, http.MethodGet, "/healthz", nil)

	rec := serve(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestServer_EventsGuard(t *testing.T) {
	events := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("open without key", func(t *testing.T) {
		s := NewServer(Config{}, newFakeGame(), nil, events, nil)
		assert.Equal(t, http.StatusOK, serve(t, s, http.MethodGet, "/events", nil).Code)
	})

	t.Run("keyed", func(t *testing.T) {
		s := NewServer(Config{ObserverAPIKey: "k"}, newFakeGame(), nil, events, nil)
		assert.Equal(t, http.StatusUnauthorized, serve(t, s, http.MethodGet, "/events", nil).Code)
		assert.Equal(t, http.StatusOK, serve(t, s, http.MethodGet, "/events", map[string]string{HeaderAPIKey: "k"}).Code)
	})

	t.Run("absent when not wired", func(t *testing.T) {
		s := NewServer(Config{}, newFakeGame(), nil, nil, nil)
		assert.Equal(t, http.StatusNotFound, serve(t, s, http.MethodGet, "/events", nil).Code)
	})
}

// TestServer_PlaysOverWebsocket drives the real game through the router
func TestServer_PlaysOverWebsocket(t *testing.T) {
	g := game.New(game.Config{
		CommandPrefix: "/",
		Cooldowns:     map[string]int{domain.ActionChat: 2},
		StartingCash:  10,
		Capacity:      5,
		StartLocation: domain.LocationKey{MapID: "town", Y: 2, X: 3},
		ItemsPath:     "../../configs/items.json",
		ShopsPath:     "../../configs/shops.json",
		Seed:          7,
	}, game.Deps{})
	require.NoError(t, g.Boot(context.Background()))
	t.Cleanup(func() { _ = g.Shutdown(context.Background()) })

	srv := httptest.NewServer(NewServer(Config{}, g, TrustingAuthenticator{}, nil, nil).Handler())
	t.Cleanup(srv.Close)

	alice := dial(t, srv, "/ws?token=alice")
	readUntil(t, alice, domain.EventWorldLook)
	bob := dial(t, srv, "/ws?token=bob")
	readUntil(t, bob, domain.EventWorldLook)

	require.NoError(t, alice.WriteJSON(ClientFrame{Type: FrameCommand, Text: "/say fresh bread!"}))

	ev := readUntil(t, bob, domain.EventChatSay)
	assert.Equal(t, "alice", ev.Payload["from"])
	assert.Equal(t, "fresh bread!", ev.Payload["message"])

	require.NoError(t, alice.WriteJSON(ClientFrame{Type: FrameCommand, Text: "/buy 0 bread"}))
	inv := readUntil(t, alice, domain.EventInventoryUpdate)
	assert.EqualValues(t, 5, inv.Payload["cash"])
}

func readUntil(t *testing.T, conn *websocket.Conn, typ string) wireEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev := readEvent(t, conn)
		if ev.Type == typ {
			return ev
		}
	}
	t.Fatalf("no %s event", typ)
	return wireEvent{}
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte(strings.Repeat("x", 3)))

	assert.Equal(t, http.StatusTeapot, rw.statusCode)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
