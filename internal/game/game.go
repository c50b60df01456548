// Package game wires the world, the command pipeline and the session hub into
// one server. Commands and clock ticks run under a single game lock; storage
// is only touched from the persistence worker pool.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/osse101/TextRealm_Go/internal/character"
	"github.com/osse101/TextRealm_Go/internal/command"
	"github.com/osse101/TextRealm_Go/internal/cooldown"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/item"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/metrics"
	"github.com/osse101/TextRealm_Go/internal/notify"
	"github.com/osse101/TextRealm_Go/internal/repository"
	"github.com/osse101/TextRealm_Go/internal/scheduler"
	"github.com/osse101/TextRealm_Go/internal/shop"
	"github.com/osse101/TextRealm_Go/internal/worker"
)

// Config holds game settings. The *Every intervals count clock ticks; zero
// disables the job.
type Config struct {
	CommandPrefix string
	// TickDuration <= 0 leaves the clock off; Tick can still be driven directly.
	TickDuration time.Duration
	Cooldowns    map[string]int
	DevMode      bool

	ResupplyEvery  int
	ReshuffleEvery int
	AutosaveEvery  int

	ContrabandSubtypes []string
	ContrabandExp      int

	Capacity      int
	StartingCash  int
	StartLocation domain.LocationKey

	ItemsPath string
	ShopsPath string

	Workers   int
	QueueSize int
	Cache     character.CacheConfig

	// Seed fixes the world RNG. Zero picks a random seed.
	Seed uint64
}

// Deps are collaborators owned outside the game. Nil fields get in-memory defaults.
// Profiles, when set, replaces the ProfileStore overlay for loading characters;
// saves still go to ProfileStore.
type Deps struct {
	Items        repository.Items
	ProfileStore repository.Profiles
	Profiles     character.ProfileSource
	Bus          event.Bus
	Hub          *notify.Hub
	Recorder     command.Recorder
	ItemLoader   item.Loader
	ShopLoader   shop.Loader
}

type session struct {
	userID string
	player *character.Player
}

// Game is the orchestrator
type Game struct {
	cfg Config

	mu         sync.Mutex
	catalog    *item.Catalog
	shops      *shop.Registry
	engine     *shop.Engine
	cooldowns  *cooldown.Tracker
	registry   *command.Registry
	dispatcher *command.Dispatcher
	characters *character.Service
	hub        *notify.Hub
	bus        event.Bus
	items      repository.Items
	profiles   character.ProfileSource
	itemLoader item.Loader
	shopLoader shop.Loader

	profileStore repository.Profiles

	persistence *worker.Pool
	clockPool   *worker.Pool
	clock       *scheduler.Scheduler
	rng         *rand.Rand

	sessions      map[string]*session
	pendingCreate map[string]bool
	ticks         int
	booted        bool
}

// New creates a game. Nothing is loaded until Boot.
func New(cfg Config, deps Deps) *Game {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = character.DefaultCapacity
	}
	if deps.Items == nil {
		deps.Items = repository.NewMemoryItems()
	}
	if deps.ProfileStore == nil {
		deps.ProfileStore = repository.NewMemoryProfiles()
	}
	if deps.Profiles == nil {
		deps.Profiles = character.StoredProfiles{
			Store: deps.ProfileStore,
			Defaults: character.DefaultProfiles{
				Cash:     cfg.StartingCash,
				Location: cfg.StartLocation,
				Capacity: cfg.Capacity,
			},
		}
	}
	if deps.Bus == nil {
		deps.Bus = event.NewMemoryBus()
	}
	if deps.Hub == nil {
		deps.Hub = notify.NewHub()
	}
	if deps.ItemLoader == nil {
		deps.ItemLoader = item.NewLoader()
	}
	if deps.ShopLoader == nil {
		deps.ShopLoader = shop.NewLoader()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	registry := command.NewRegistry(cfg.CommandPrefix)
	g := &Game{
		cfg: cfg,
		cooldowns: cooldown.NewTracker(cooldown.Config{
			DevMode:      cfg.DevMode,
			TickDuration: cfg.TickDuration,
			Defaults:     cfg.Cooldowns,
		}),
		registry:      registry,
		dispatcher:    command.NewDispatcher(registry, deps.Hub, deps.Recorder),
		hub:           deps.Hub,
		bus:           deps.Bus,
		items:         deps.Items,
		profiles:      deps.Profiles,
		profileStore:  deps.ProfileStore,
		itemLoader:    deps.ItemLoader,
		shopLoader:    deps.ShopLoader,
		persistence:   worker.NewPool(cfg.Workers, cfg.QueueSize),
		clockPool:     worker.NewPool(1, 1),
		rng:           rand.New(rand.NewPCG(seed, seed>>1|1)),
		sessions:      make(map[string]*session),
		pendingCreate: make(map[string]bool),
	}
	g.persistence.OnError(metrics.RecordPersistenceError)
	return g
}

// Boot loads the world, registers commands, stocks the shops and starts the clock
func (g *Game) Boot(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBooting, "items", g.cfg.ItemsPath, "shops", g.cfg.ShopsPath)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.booted {
		return nil
	}

	// 1. Templates
	catalog, err := item.LoadCatalog(ctx, g.itemLoader, g.cfg.ItemsPath)
	if err != nil {
		return fmt.Errorf(ErrFmtLoadCatalog, err)
	}

	// 2. Shops
	shops, err := shop.LoadRegistry(ctx, g.shopLoader, g.cfg.ShopsPath, catalog)
	if err != nil {
		return fmt.Errorf(ErrFmtLoadShops, err)
	}
	g.catalog = catalog
	g.shops = shops
	g.engine = shop.NewEngine(catalog, g.bus, shop.EngineConfig{
		ContrabandSubtypes: g.cfg.ContrabandSubtypes,
		ContrabandExp:      g.cfg.ContrabandExp,
	})
	log.Info(LogMsgWorldLoaded, "templates", len(catalog.Templates()), "shops", len(shops.All()))

	// 3. Characters rebuild stored items through the catalog
	g.characters = character.NewService(g.profiles, g.items, catalog, g.cfg.Cache)

	// 4. Commands; resolvers first so rules can be checked at registration
	g.registry.RegisterResolver(command.RuleOnline, g.resolveOnline)
	if err := g.registry.Register(g.commands()...); err != nil {
		return err
	}

	// 5. Initial stock
	g.resupplyAll(ctx)

	// 6. Workers and clock
	g.persistence.Start()
	if g.cfg.TickDuration > 0 {
		g.clockPool.Start()
		g.clock = scheduler.New(g.clockPool)
		g.clock.Schedule(ClockJobName, g.cfg.TickDuration, worker.JobFunc(g.Tick))
		log.Info(LogMsgClockStarted, "tick", g.cfg.TickDuration)
	} else {
		log.Info(LogMsgClockDisabled)
	}

	g.booted = true
	log.Info(LogMsgBooted, "commands", len(g.registry.Definitions()))
	return nil
}

// Shutdown stops the clock, saves online characters and drains the persistence queue
func (g *Game) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	g.mu.Lock()
	clock := g.clock
	g.clock = nil
	g.mu.Unlock()

	// A queued tick takes the game lock, so the clock drains unlocked
	if clock != nil {
		clock.Stop()
	}
	g.clockPool.Stop()

	g.mu.Lock()
	if g.booted {
		g.saveAll(ctx)
	}
	g.booted = false
	g.mu.Unlock()

	done := make(chan struct{})
	go func() {
		g.persistence.Stop()
		close(done)
	}()
	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrFmtShutdownTimeout, ctx.Err())
	}
}

// Tick advances the game clock by one tick
func (g *Game) Tick(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.booted {
		return errors.New(ErrMsgNotBooted)
	}

	g.ticks++
	g.cooldowns.Tick()

	if every(g.ticks, g.cfg.ResupplyEvery) {
		g.resupplyAll(ctx)
		logger.FromContext(ctx).Debug(LogMsgResupplied, "tick", g.ticks)
	}
	if every(g.ticks, g.cfg.ReshuffleEvery) {
		g.reshuffle(ctx)
	}
	if every(g.ticks, g.cfg.AutosaveEvery) {
		g.saveAll(ctx)
	}
	return nil
}

func every(tick, interval int) bool {
	return interval > 0 && tick%interval == 0
}

func (g *Game) resupplyAll(ctx context.Context) {
	for _, s := range g.shops.All() {
		for _, n := range g.engine.Resupply(ctx, s, g.rng) {
			g.hub.Notify(n)
		}
	}
}

// reshuffle redraws template prices and re-broadcasts every open sell list
func (g *Game) reshuffle(ctx context.Context) {
	changed := g.catalog.ReshufflePrices(g.rng)
	logger.FromContext(ctx).Debug(LogMsgPricesReshuffled, "templates", changed)
	if changed == 0 {
		return
	}
	for _, s := range g.shops.All() {
		if !s.Sell.Enabled {
			continue
		}
		g.EventToRoom(s.Location, domain.Event{
			Type:    domain.EventShopList,
			Payload: shop.SellListPayload(ctx, s, g.catalog),
		})
	}
}

// EventToSocket sends ev to one session
func (g *Game) EventToSocket(sessionID string, ev domain.Event) {
	g.hub.ToSocket(sessionID, ev)
}

// EventToUser sends ev to the user's current session, if online
func (g *Game) EventToUser(userID string, ev domain.Event) {
	g.hub.ToUser(userID, ev)
}

// EventToRoom sends ev to every player at loc except the ignored sessions
func (g *Game) EventToRoom(loc domain.LocationKey, ev domain.Event, ignore ...string) {
	g.hub.ToRoom(loc, ev, ignore...)
}

// EventToServer sends ev to every session except the ignored ones
func (g *Game) EventToServer(ev domain.Event, ignore ...string) {
	g.hub.ToServer(ev, ignore...)
}

// Hub exposes the session hub for transports that need room or session counts
func (g *Game) Hub() *notify.Hub {
	return g.hub
}

// HandleConnect registers a new anonymous session
func (g *Game) HandleConnect(ctx context.Context, s notify.Socket) {
	g.hub.Connect(s)
	g.mu.Lock()
	g.sessions[s.ID()] = &session{}
	g.mu.Unlock()

	prefix := g.registry.Prefix()
	g.EventToSocket(s.ID(), domain.Event{
		Type: domain.EventSessionWelcome,
		Payload: WelcomePayload{
			SessionID: s.ID(),
			Prefix:    prefix,
			Message:   fmt.Sprintf(MsgWelcome, prefix),
		},
	})
	logger.FromContext(ctx).Debug(LogMsgSessionOpened, "session_id", s.ID())
	g.publishSession(ctx, event.SessionOpened, s.ID(), "")
}

// HandleLogin binds a session to userID. Any other session of the same
// account is sent a remote-logout and closed.
func (g *Game) HandleLogin(ctx context.Context, sessionID, userID string) error {
	log := logger.FromContext(ctx).With("session_id", sessionID, "user_id", userID)

	g.mu.Lock()
	characters := g.characters
	g.mu.Unlock()
	if characters == nil {
		return errors.New(ErrMsgNotBooted)
	}

	// Loading may wait on storage, so it runs outside the game lock
	p, err := characters.Get(ctx, userID)
	if err != nil {
		log.Warn(LogMsgLoginFailed, "error", err)
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	sess, ok := g.sessions[sessionID]
	if !ok {
		return fmt.Errorf(ErrFmtUnknownSession, domain.ErrNotFound, sessionID)
	}
	if sess.player != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidParam, ErrMsgAlreadyLoggedIn)
	}
	if err := g.hub.Authenticate(sessionID, userID, p.LocationID()); err != nil {
		return err
	}
	for id, other := range g.sessions {
		if id != sessionID && other.userID == userID {
			other.userID = ""
			other.player = nil
		}
	}
	characters.SetOnline(p)
	sess.userID = userID
	sess.player = p
	log.Info(LogMsgLogin, "location", p.LocationID().String())

	g.EventToSocket(sessionID, infoEvent(MsgWelcomeBack, p.Name()))
	g.EventToSocket(sessionID, inventoryEvent(p))
	g.EventToSocket(sessionID, domain.Event{Type: domain.EventWorldLook, Payload: g.lookPayload(p.LocationID())})
	return nil
}

// HandleCommand runs one line of input from sessionID
func (g *Game) HandleCommand(ctx context.Context, sessionID, raw string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	sess, ok := g.sessions[sessionID]
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgUnknownSessionCmd, "session_id", sessionID)
		return fmt.Errorf(ErrFmtUnknownSession, domain.ErrNotFound, sessionID)
	}
	actor := command.Actor{SessionID: sessionID, UserID: sess.userID}
	if sess.player != nil {
		actor.Character = sess.player
	}
	return g.dispatcher.Dispatch(ctx, actor, raw)
}

// HandleDisconnect forgets sessionID. The character goes offline and is saved
// unless a newer session of the same account is still bound.
func (g *Game) HandleDisconnect(ctx context.Context, sessionID string) {
	g.mu.Lock()
	sess, ok := g.sessions[sessionID]
	delete(g.sessions, sessionID)
	g.hub.Disconnect(sessionID)

	userID := ""
	if ok && sess.player != nil {
		userID = sess.userID
		if _, bound := g.hub.UserSession(userID); !bound {
			g.saveCharacter(sess.player)
			g.characters.SetOffline(userID)
			g.EventToRoom(sess.player.LocationID(), infoEvent(MsgLeaves, sess.player.Name()))
		}
	}
	g.mu.Unlock()

	if !ok {
		return
	}
	logger.FromContext(ctx).Debug(LogMsgSessionClosed, "session_id", sessionID, "user_id", userID)
	g.publishSession(ctx, event.SessionClosed, sessionID, userID)
}

func (g *Game) publishSession(ctx context.Context, t event.Type, sessionID, userID string) {
	if err := g.bus.Publish(ctx, event.NewSessionEvent(t, sessionID, userID)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", t, "error", err)
	}
}

func (g *Game) resolveOnline(_ context.Context, _ command.Actor, raw string) (any, error) {
	p, ok := g.characters.Online(raw)
	if !ok {
		return nil, fmt.Errorf(ErrFmtPlayerOffline, domain.ErrNotFound, raw)
	}
	return p, nil
}
