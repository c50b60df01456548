package game

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/character"
	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/notify"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

var (
	bakeryLoc = domain.LocationKey{MapID: "town", Y: 2, X: 3}
	smithyLoc = domain.LocationKey{MapID: "town", Y: 4, X: 1}
)

type fakeSocket struct {
	id     string
	mu     sync.Mutex
	events []domain.Event
	closed bool
}

func newFakeSocket(id string) *fakeSocket {
	return &fakeSocket{id: id}
}

func (s *fakeSocket) ID() string { return s.id }

func (s *fakeSocket) Send(ev domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return notify.ErrClosed
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *fakeSocket) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *fakeSocket) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *fakeSocket) ofType(typ string) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Event
	for _, ev := range s.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func (s *fakeSocket) last(t *testing.T, typ string) domain.Event {
	t.Helper()
	evs := s.ofType(typ)
	require.NotEmpty(t, evs, "no %s event on %s", typ, s.id)
	return evs[len(evs)-1]
}

func (s *fakeSocket) lastError(t *testing.T) string {
	t.Helper()
	payload, ok := s.last(t, domain.EventChatError).Payload.(command.ErrorPayload)
	require.True(t, ok)
	return payload.Message
}

func (s *fakeSocket) reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}

func testConfig() Config {
	return Config{
		CommandPrefix: "/",
		Cooldowns: map[string]int{
			domain.ActionChat:   2,
			domain.ActionGlobal: 10,
			domain.ActionTake:   1,
		},
		ContrabandSubtypes: []string{"contraband"},
		ContrabandExp:      5,
		Capacity:           5,
		StartingCash:       10,
		StartLocation:      bakeryLoc,
		ItemsPath:          "../../configs/items.json",
		ShopsPath:          "../../configs/shops.json",
		Cache:              character.CacheConfig{Size: 16},
		Seed:               42,
	}
}

func newTestGame(t *testing.T, cfg Config, repo repository.Items) *Game {
	t.Helper()
	g := New(cfg, Deps{Items: repo})
	require.NoError(t, g.Boot(context.Background()))
	t.Cleanup(func() { _ = g.Shutdown(context.Background()) })
	return g
}

// login connects a fresh session for userID and clears its greeting events
func login(t *testing.T, g *Game, userID string) *fakeSocket {
	t.Helper()
	s := newFakeSocket("sess-" + userID)
	g.HandleConnect(context.Background(), s)
	require.NoError(t, g.HandleLogin(context.Background(), s.ID(), userID))
	s.reset()
	return s
}

func run(g *Game, s *fakeSocket, raw string) error {
	return g.HandleCommand(context.Background(), s.ID(), raw)
}

func onlinePlayer(t *testing.T, g *Game, userID string) *character.Player {
	t.Helper()
	p, ok := g.characters.Online(userID)
	require.True(t, ok, "%s is not online", userID)
	return p
}
