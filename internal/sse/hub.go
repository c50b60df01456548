// Package sse mirrors server-wide game events to read-only observers over
// server-sent events.
package sse

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Frame is one game event as seen by observers. Seq increases by one per
// event accepted by the hub.
type Frame struct {
	Seq     uint64 `json:"seq"`
	Type    string `json:"type"`
	At      int64  `json:"at"`
	Payload any    `json:"payload"`
}

// Subscriber receives frames until it is unsubscribed or the hub stops,
// at which point Frames is closed.
type Subscriber struct {
	ID     string
	Frames chan Frame
	types  map[string]bool
}

func (s *Subscriber) wants(eventType string) bool {
	return len(s.types) == 0 || s.types[eventType]
}

// Hub fans game events out to observers. Broadcast never blocks, so it is
// safe to call with the game lock held.
type Hub struct {
	inbox    chan domain.Event
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once

	mu      sync.Mutex
	subs    map[string]*Subscriber
	backlog []Frame
	seq     uint64
	closed  bool
	now     func() time.Time
}

// NewHub creates a stopped hub; call Start to begin delivery
func NewHub() *Hub {
	return &Hub{
		inbox: make(chan domain.Event, InboxSize),
		quit:  make(chan struct{}),
		subs:  make(map[string]*Subscriber),
		now:   time.Now,
	}
}

// Start runs the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends delivery and closes every subscriber. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.quit)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.closed = true
		for id, s := range h.subs {
			close(s.Frames)
			delete(h.subs, id)
		}
	})
}

// Broadcast queues a server-wide game event. It satisfies notify.Observer.
func (h *Hub) Broadcast(ev domain.Event) {
	select {
	case h.inbox <- ev:
	default:
		slog.Default().Debug(LogMsgInboxFull, "type", ev.Type)
	}
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case ev := <-h.inbox:
			h.deliver(ev)
		case <-h.quit:
			return
		}
	}
}

func (h *Hub) deliver(ev domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	f := Frame{Seq: h.seq, Type: ev.Type, At: h.now().Unix(), Payload: ev.Payload}

	h.backlog = append(h.backlog, f)
	if len(h.backlog) > BacklogSize {
		h.backlog = h.backlog[len(h.backlog)-BacklogSize:]
	}

	for _, s := range h.subs {
		if !s.wants(f.Type) {
			continue
		}
		select {
		case s.Frames <- f:
		default:
			slog.Default().Debug(LogMsgSubscriberLagging, "subscriber", s.ID, "seq", f.Seq)
		}
	}
}

// Subscribe registers an observer for the given event types, all types when
// empty. Backlog frames with Seq above after are queued first.
func (h *Hub) Subscribe(types []string, after uint64) *Subscriber {
	s := &Subscriber{
		ID:     uuid.NewString(),
		Frames: make(chan Frame, SubscriberBuffer),
	}
	if len(types) > 0 {
		s.types = make(map[string]bool, len(types))
		for _, t := range types {
			s.types[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(s.Frames)
		return s
	}
	for _, f := range h.backlog {
		if f.Seq > after && s.wants(f.Type) {
			s.Frames <- f
		}
	}
	h.subs[s.ID] = s
	return s
}

// Unsubscribe removes an observer and closes its channel
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.subs[id]; ok {
		close(s.Frames)
		delete(h.subs, id)
	}
}

// Count returns the number of connected observers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
