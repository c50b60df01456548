package character

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// ProfileSource provides the starting state of a character
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (Profile, error)
}

// RecordDecoder rebuilds an item instance from its stored record
type RecordDecoder interface {
	FromRecord(rec domain.ItemRecord, persistenceKey *string) (*domain.Item, bool)
}

// DefaultProfiles hands every user a fresh character at the start location.
// Account storage is out of scope, so any user id is accepted.
type DefaultProfiles struct {
	Cash     int
	Location domain.LocationKey
	Capacity int
}

func (d DefaultProfiles) Profile(_ context.Context, userID string) (Profile, error) {
	return Profile{
		ID:       userID,
		Name:     userID,
		Cash:     d.Cash,
		Location: d.Location,
		Capacity: d.Capacity,
	}, nil
}

// StoredProfiles overlays saved cash, exp and location onto Defaults. A user
// with no saved profile starts fresh.
type StoredProfiles struct {
	Store    repository.Profiles
	Defaults DefaultProfiles
}

func (s StoredProfiles) Profile(ctx context.Context, userID string) (Profile, error) {
	profile, _ := s.Defaults.Profile(ctx, userID)
	rec, err := s.Store.Load(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return profile, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	profile.Cash = rec.Cash
	profile.Exp = rec.Exp
	if rec.Location.MapID != "" {
		profile.Location = rec.Location
	}
	return profile, nil
}

// Service is the authority for loaded characters. Online players are pinned;
// offline ones live in a bounded cache whose entries expire.
type Service struct {
	profiles ProfileSource
	items    repository.Items
	decoder  RecordDecoder
	cache    *playerCache

	mu     sync.RWMutex
	online map[string]*Player
}

// NewService creates a character service
func NewService(profiles ProfileSource, items repository.Items, decoder RecordDecoder, cache CacheConfig) *Service {
	return &Service{
		profiles: profiles,
		items:    items,
		decoder:  decoder,
		cache:    newPlayerCache(cache),
		online:   make(map[string]*Player),
	}
}

// Get returns the character for userID, loading its inventory on first use
func (s *Service) Get(ctx context.Context, userID string) (*Player, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParam, ErrMsgEmptyUserID)
	}
	log := logger.FromContext(ctx)

	s.mu.RLock()
	p, ok := s.online[userID]
	s.mu.RUnlock()
	if ok {
		return p, nil
	}
	if p, ok := s.cache.Get(userID); ok {
		log.Debug(LogMsgCacheHit, "user", userID)
		return p, nil
	}

	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Another caller may have loaded the same character meanwhile
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.online[userID]; ok {
		return existing, nil
	}
	if existing, ok := s.cache.Get(userID); ok {
		return existing, nil
	}
	s.cache.Set(p)
	log.Info(LogMsgCharacterLoaded, "user", userID, "items", len(p.inventory))
	return p, nil
}

func (s *Service) load(ctx context.Context, userID string) (*Player, error) {
	profile, err := s.profiles.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf(ErrFmtCharacterUnknown, domain.ErrNotFound, userID)
		}
		return nil, fmt.Errorf(ErrMsgLoadProfile, userID, err)
	}
	p := NewPlayer(profile)
	if s.items == nil {
		return p, nil
	}

	stored, err := s.items.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadInventory, userID, fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}
	items := make([]*domain.Item, 0, len(stored))
	for _, rec := range stored {
		key := rec.Key
		it, ok := s.decoder.FromRecord(rec.Record, &key)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgRecordUndecodable, "user", userID, "template", rec.Record.TemplateID, "key", key)
			continue
		}
		items = append(items, it)
	}
	p.load(items)
	return p, nil
}

// SetOnline pins p so it can be found by name and is never evicted
func (s *Service) SetOnline(p *Player) {
	s.mu.Lock()
	s.online[p.ID()] = p
	s.mu.Unlock()
	s.cache.Invalidate(p.ID())
}

// SetOffline unpins the character and returns it to the cache
func (s *Service) SetOffline(userID string) {
	s.mu.Lock()
	p, ok := s.online[userID]
	delete(s.online, userID)
	s.mu.Unlock()
	if ok {
		s.cache.Set(p)
	}
}

// Online finds an online character by name: exact match first, then a
// unique prefix, both case-insensitive.
func (s *Service) Online(name string) (*Player, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var prefixed []*Player
	for _, p := range s.online {
		lower := strings.ToLower(p.Name())
		if lower == query {
			return p, true
		}
		if strings.HasPrefix(lower, query) {
			prefixed = append(prefixed, p)
		}
	}
	if len(prefixed) == 1 {
		return prefixed[0], true
	}
	return nil, false
}

// OnlinePlayers returns every online character ordered by id
func (s *Service) OnlinePlayers() []*Player {
	s.mu.RLock()
	players := make([]*Player, 0, len(s.online))
	for _, p := range s.online {
		players = append(players, p)
	}
	s.mu.RUnlock()
	sort.Slice(players, func(i, j int) bool { return players[i].ID() < players[j].ID() })
	return players
}

// CacheStats reports the offline cache counters
func (s *Service) CacheStats() CacheStats {
	return s.cache.Stats()
}
