package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/metrics"
	"github.com/osse101/TextRealm_Go/internal/worker"
)

// Persistence runs after the in-memory commit. Every helper here is called
// with the game lock held and only queues work; jobs re-take the lock when
// they need to touch live items.

// persist queues a save of an inventory item. Unsaved items are created once,
// saved ones are updated.
func (g *Game) persist(owner domain.Character, it *domain.Item) {
	if it == nil {
		return
	}
	if it.PersistenceKey != nil {
		g.enqueue(opUpdate, g.updateJob(owner.ID(), *it.PersistenceKey, g.catalog.Export(it)))
		return
	}
	// The create job reconciles any change made while it is in flight
	if g.pendingCreate[it.Fingerprint] {
		return
	}
	g.pendingCreate[it.Fingerprint] = true
	if !g.enqueue(opCreate, g.createJob(owner, it.Fingerprint, g.catalog.Export(it))) {
		delete(g.pendingCreate, it.Fingerprint)
	}
}

// release queues deletion of a record whose item left the inventory
func (g *Game) release(owner domain.Character, key *string) {
	if key == nil {
		return
	}
	g.enqueue(opDelete, g.deleteJob(owner.ID(), *key))
}

// saveProfile queues a snapshot of cash, exp and location
func (g *Game) saveProfile(owner domain.Character) {
	g.enqueue(opProfile, g.profileJob(owner.ID(), domain.ProfileRecord{
		Cash:     owner.Cash(),
		Exp:      owner.Exp(),
		Location: owner.LocationID(),
	}))
}

func (g *Game) saveCharacter(owner domain.Character) {
	g.saveProfile(owner)
	for _, it := range owner.Inventory() {
		g.persist(owner, it)
	}
}

func (g *Game) saveAll(ctx context.Context) {
	players := g.characters.OnlinePlayers()
	for _, p := range players {
		g.saveCharacter(p)
	}
	logger.FromContext(ctx).Debug(LogMsgAutosave, "characters", len(players))
}

func (g *Game) enqueue(op string, job worker.Job) bool {
	if err := g.persistence.TryEnqueue(job); err != nil {
		err = fmt.Errorf(ErrFmtPersistEnqueue, op, persistenceErr(err))
		slog.Default().Error(LogMsgPersistQueueFull, "op", op, "error", err)
		metrics.RecordPersistenceError(err)
		return false
	}
	return true
}

func (g *Game) createJob(owner domain.Character, fingerprint string, rec domain.ItemRecord) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		key, err := g.items.Create(ctx, owner.ID(), rec)

		g.mu.Lock()
		delete(g.pendingCreate, fingerprint)
		if err != nil {
			g.mu.Unlock()
			return fmt.Errorf(ErrFmtPersistCreate, owner.ID(), persistenceErr(err))
		}
		if held, ok := owner.FindItem(fingerprint); ok && held.PersistenceKey == nil {
			held.PersistenceKey = &key
			current := g.catalog.Export(held)
			g.mu.Unlock()

			// Changes made while the create was in flight are written here,
			// ahead of any later job for this item
			if reflect.DeepEqual(current, rec) {
				return nil
			}
			if err := g.items.Update(ctx, owner.ID(), key, current); err != nil {
				return fmt.Errorf(ErrFmtPersistUpdate, key, persistenceErr(err))
			}
			return nil
		}
		g.mu.Unlock()

		logger.FromContext(ctx).Debug(LogMsgOrphanRecord, "user", owner.ID(), "key", key)
		if err := g.items.Delete(ctx, owner.ID(), key); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf(ErrFmtPersistDelete, key, persistenceErr(err))
		}
		return nil
	})
}

func (g *Game) updateJob(ownerID, key string, rec domain.ItemRecord) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		if err := g.items.Update(ctx, ownerID, key, rec); err != nil {
			return fmt.Errorf(ErrFmtPersistUpdate, key, persistenceErr(err))
		}
		return nil
	})
}

func (g *Game) deleteJob(ownerID, key string) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		err := g.items.Delete(ctx, ownerID, key)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf(ErrFmtPersistDelete, key, persistenceErr(err))
		}
		return nil
	})
}

func (g *Game) profileJob(ownerID string, rec domain.ProfileRecord) worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		if err := g.profileStore.Save(ctx, ownerID, rec); err != nil {
			return fmt.Errorf(ErrFmtPersistProfile, ownerID, persistenceErr(err))
		}
		return nil
	})
}

func persistenceErr(err error) error {
	if errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}
