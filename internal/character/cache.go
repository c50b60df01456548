package character

import (
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheConfig sizes the offline character cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

type cachedPlayer struct {
	Version  string
	Player   *Player
	CachedAt time.Time
}

// playerCache keeps recently seen characters keyed by user id. Entries older
// than ttl are dropped when next read, so the cache owns no goroutine.
type playerCache struct {
	lru    *lru.Cache[string, *cachedPlayer]
	ttl    time.Duration
	now    func() time.Time
	hits   atomic.Int64
	misses atomic.Int64
}

func newPlayerCache(config CacheConfig) *playerCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, *cachedPlayer](config.Size)
	return &playerCache{
		lru: cache,
		ttl: config.TTL,
		now: time.Now,
	}
}

func (c *playerCache) Get(userID string) (*Player, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion || c.now().Sub(entry.CachedAt) > c.ttl {
		c.lru.Remove(userID)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.Player, true
}

func (c *playerCache) Set(p *Player) {
	c.lru.Add(p.ID(), &cachedPlayer{
		Version:  CacheSchemaVersion,
		Player:   p,
		CachedAt: c.now(),
	})
}

func (c *playerCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}

func (c *playerCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
