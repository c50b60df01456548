package character

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Profile(ctx context.Context, userID string) (Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(Profile), args.Error(1)
}

// stubDecoder knows only "bread" and "short_sword"
type stubDecoder struct{}

func (stubDecoder) FromRecord(rec domain.ItemRecord, key *string) (*domain.Item, bool) {
	switch rec.TemplateID {
	case "bread":
		it := bread("fp-"+*key, rec.Durability)
		it.PersistenceKey = key
		return it, true
	case "short_sword":
		it := sword("fp-" + *key)
		it.PersistenceKey = key
		return it, true
	}
	return nil, false
}

func newService(t *testing.T, items repository.Items) *Service {
	t.Helper()
	start := domain.LocationKey{MapID: "town"}
	return NewService(DefaultProfiles{Cash: 50, Location: start}, items, stubDecoder{}, CacheConfig{Size: 10, TTL: time.Minute})
}

func TestService_GetLoadsInventory(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryItems()
	_, err := repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: "bread", Durability: 3})
	require.NoError(t, err)
	_, err = repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: "retired_item"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, "alice", domain.ItemRecord{TemplateID: "short_sword"})
	require.NoError(t, err)

	svc := newService(t, repo)
	p, err := svc.Get(ctx, "alice")
	require.NoError(t, err)

	inv := p.Inventory()
	require.Len(t, inv, 2, "undecodable records are skipped")
	assert.Equal(t, "bread", inv[0].ID)
	assert.Equal(t, 3, inv[0].Durability)
	assert.True(t, inv[0].Persisted())
	assert.Equal(t, 50, p.Cash())

	again, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, p, again)
	assert.Equal(t, int64(1), svc.CacheStats().Hits)
}

func TestService_GetErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id", func(t *testing.T) {
		_, err := newService(t, nil).Get(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidParam)
	})

	t.Run("unknown profile", func(t *testing.T) {
		profiles := &MockProfiles{}
		profiles.On("Profile", mock.Anything, "ghost").Return(Profile{}, domain.ErrNotFound)
		svc := NewService(profiles, nil, stubDecoder{}, CacheConfig{})

		_, err := svc.Get(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		profiles.AssertExpectations(t)
	})

	t.Run("profile failure", func(t *testing.T) {
		profiles := &MockProfiles{}
		profiles.On("Profile", mock.Anything, "bob").Return(Profile{}, errors.New("boom"))
		svc := NewService(profiles, nil, stubDecoder{}, CacheConfig{})

		_, err := svc.Get(ctx, "bob")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_Online(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, nil)

	alice, err := svc.Get(ctx, "Alice")
	require.NoError(t, err)
	alfred, err := svc.Get(ctx, "Alfred")
	require.NoError(t, err)
	bob, err := svc.Get(ctx, "Bob")
	require.NoError(t, err)

	_, ok := svc.Online("alice")
	assert.False(t, ok, "loaded but not online")

	svc.SetOnline(alice)
	svc.SetOnline(alfred)
	svc.SetOnline(bob)

	tests := []struct {
		query string
		want  *Player
	}{
		{"alice", alice},
		{"ALFRED", alfred},
		{"b", bob},
		{"ali", alice},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := svc.Online(tt.query)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}

	_, ok = svc.Online("al")
	assert.False(t, ok, "ambiguous prefix")
	_, ok = svc.Online("")
	assert.False(t, ok)

	assert.Len(t, svc.OnlinePlayers(), 3)

	svc.SetOffline(bob.ID())
	_, ok = svc.Online("bob")
	assert.False(t, ok)

	cached, err := svc.Get(ctx, "Bob")
	require.NoError(t, err)
	assert.Same(t, bob, cached, "offline characters return to the cache")
}

type failingProfiles struct{}

func (failingProfiles) Load(context.Context, string) (domain.ProfileRecord, error) {
	return domain.ProfileRecord{}, errors.New("disk gone")
}

func (failingProfiles) Save(context.Context, string, domain.ProfileRecord) error {
	return errors.New("disk gone")
}

func TestStoredProfiles_Profile(t *testing.T) {
	ctx := context.Background()
	start := domain.LocationKey{MapID: "town"}
	defaults := DefaultProfiles{Cash: 50, Location: start, Capacity: 8}

	t.Run("fresh user gets defaults", func(t *testing.T) {
		src := StoredProfiles{Store: repository.NewMemoryProfiles(), Defaults: defaults}
		p, err := src.Profile(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 50, p.Cash)
		assert.Equal(t, start, p.Location)
	})

	t.Run("saved state wins", func(t *testing.T) {
		store := repository.NewMemoryProfiles()
		field := domain.LocationKey{MapID: "field", Y: 1, X: 1}
		require.NoError(t, store.Save(ctx, "alice", domain.ProfileRecord{Cash: 0, Exp: 12, Location: field}))

		p, err := StoredProfiles{Store: store, Defaults: defaults}.Profile(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 0, p.Cash, "spent cash is not refilled")
		assert.Equal(t, 12, p.Exp)
		assert.Equal(t, field, p.Location)
		assert.Equal(t, 8, p.Capacity)
	})

	t.Run("store failure", func(t *testing.T) {
		_, err := StoredProfiles{Store: failingProfiles{}, Defaults: defaults}.Profile(ctx, "alice")
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}
