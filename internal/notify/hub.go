// Package notify routes events to connected sessions.
package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Socket is one client connection. Send must not block for long; a returned
// error marks the socket dead.
type Socket interface {
	ID() string
	Send(ev domain.Event) error
	Close()
}

// Observer receives a copy of every server-wide event
type Observer interface {
	Broadcast(ev domain.Event)
}

// RemoteLogoutPayload is sent to a session displaced by a newer login
type RemoteLogoutPayload struct {
	Reason string `json:"reason"`
}

type session struct {
	socket Socket
	userID string
	room   domain.LocationKey
}

// Hub tracks sessions, their rooms and per-user ignore lists
type Hub struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	users     map[string]string
	ignores   map[string]map[string]bool
	observers []Observer
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*session),
		users:    make(map[string]string),
		ignores:  make(map[string]map[string]bool),
	}
}

// AddObserver mirrors server-wide events to o
func (h *Hub) AddObserver(o Observer) {
	h.mu.Lock()
	h.observers = append(h.observers, o)
	h.mu.Unlock()
}

// Connect registers an anonymous session
func (h *Hub) Connect(s Socket) {
	h.mu.Lock()
	h.sessions[s.ID()] = &session{socket: s}
	h.mu.Unlock()
	slog.Default().Debug(LogMsgSessionConnected, "session_id", s.ID())
}

// Authenticate binds a session to userID in room. An existing session for the
// same account is sent a remote-logout and closed first.
func (h *Hub) Authenticate(sessionID, userID string, room domain.LocationKey) error {
	if userID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidParam, ErrMsgEmptyUserID)
	}

	h.mu.Lock()
	sess, ok := h.sessions[sessionID]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, ErrMsgUnknownSession, sessionID)
	}
	var prior Socket
	if priorID, exists := h.users[userID]; exists && priorID != sessionID {
		if p, ok := h.sessions[priorID]; ok {
			prior = p.socket
			delete(h.sessions, priorID)
		}
	}
	sess.userID = userID
	sess.room = room
	h.users[userID] = sessionID
	h.mu.Unlock()

	if prior != nil {
		err := prior.Send(domain.Event{
			Type:    domain.EventSessionRemoteLogout,
			Payload: RemoteLogoutPayload{Reason: RemoteLogoutReason},
		})
		if err != nil {
			slog.Default().Debug(LogMsgRemoteLogoutFailed, "session_id", prior.ID(), "error", err)
		}
		prior.Close()
		slog.Default().Info(LogMsgSessionReplaced, "user_id", userID, "old_session", prior.ID(), "new_session", sessionID)
	}
	slog.Default().Info(LogMsgSessionAuthenticated, "user_id", userID, "session_id", sessionID)
	return nil
}

// Move changes the room of an authenticated session
func (h *Hub) Move(sessionID string, room domain.LocationKey) {
	h.mu.Lock()
	if sess, ok := h.sessions[sessionID]; ok {
		sess.room = room
	}
	h.mu.Unlock()
}

// Disconnect forgets a session. Later deliveries to it are dropped silently.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	h.removeLocked(sessionID)
	h.mu.Unlock()
	slog.Default().Debug(LogMsgSessionDisconnected, "session_id", sessionID)
}

// UserSession returns the session currently bound to userID
func (h *Hub) UserSession(userID string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	id, ok := h.users[userID]
	return id, ok
}

// SessionCount is the number of open sessions, anonymous included
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Ignore makes userID stop receiving events sent by target
func (h *Hub) Ignore(userID, target string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.ignores[userID]
	if !ok {
		set = make(map[string]bool)
		h.ignores[userID] = set
	}
	set[target] = true
}

// Unignore reverses Ignore
func (h *Hub) Unignore(userID, target string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.ignores[userID], target)
}

// Ignoring reports whether userID ignores target
func (h *Hub) Ignoring(userID, target string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ignores[userID][target]
}

// ToSocket sends to one session
func (h *Hub) ToSocket(sessionID string, ev domain.Event) {
	h.Notify(domain.NotifySocket(sessionID, ev))
}

// ToUser sends to the user's current session, if any
func (h *Hub) ToUser(userID string, ev domain.Event) {
	h.Notify(domain.NotifyUser(userID, ev))
}

// ToRoom sends to every authenticated session in room except ignore
func (h *Hub) ToRoom(room domain.LocationKey, ev domain.Event, ignore ...string) {
	h.Notify(domain.NotifyRoom(room, ev, ignore...))
}

// ToServer sends to every session except ignore and mirrors to observers
func (h *Hub) ToServer(ev domain.Event, ignore ...string) {
	h.Notify(domain.NotifyServer(ev, ignore...))
}

// Notify routes n by its audience. Sends happen outside the hub lock.
func (h *Hub) Notify(n domain.Notification) {
	targets, observers := h.targets(n)
	for _, s := range targets {
		if err := s.Send(n.Event); err != nil {
			slog.Default().Debug(LogMsgSendFailed, "session_id", s.ID(), "type", n.Event.Type, "error", err)
			h.drop(s)
		}
	}
	for _, o := range observers {
		o.Broadcast(n.Event)
	}
}

func (h *Hub) targets(n domain.Notification) ([]Socket, []Observer) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []Socket
	add := func(sess *session) {
		if sess == nil || slices.Contains(n.Ignore, sess.socket.ID()) {
			return
		}
		if n.From != "" && sess.userID != "" && h.ignores[sess.userID][n.From] {
			return
		}
		out = append(out, sess.socket)
	}

	switch n.Audience {
	case domain.AudienceSocket:
		add(h.sessions[n.SocketID])
	case domain.AudienceUser:
		if id, ok := h.users[n.UserID]; ok {
			add(h.sessions[id])
		}
	case domain.AudienceRoom:
		for _, sess := range h.sessions {
			if sess.userID != "" && sess.room == n.Room {
				add(sess)
			}
		}
	case domain.AudienceServer:
		for _, sess := range h.sessions {
			add(sess)
		}
		return out, slices.Clone(h.observers)
	}
	return out, nil
}

// drop removes a session whose socket rejected a send, unless it was
// already replaced
func (h *Hub) drop(s Socket) {
	h.mu.Lock()
	if sess, ok := h.sessions[s.ID()]; ok && sess.socket == s {
		h.removeLocked(s.ID())
	}
	h.mu.Unlock()
	s.Close()
}

func (h *Hub) removeLocked(sessionID string) {
	sess, ok := h.sessions[sessionID]
	if !ok {
		return
	}
	delete(h.sessions, sessionID)
	if sess.userID != "" && h.users[sess.userID] == sessionID {
		delete(h.users, sess.userID)
	}
}

// ErrClosed is what sockets return once closed
var ErrClosed = errors.New("socket closed")
