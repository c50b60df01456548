// Package bolt stores character items in an embedded bbolt file.
package bolt

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// entry is the stored value. Seq preserves creation order.
type entry struct {
	Seq    uint64            `json:"seq"`
	Record domain.ItemRecord `json:"record"`
}

// ItemRepository implements repository.Items on a bbolt file
type ItemRepository struct {
	db *bbolt.DB
}

var _ repository.Items = (*ItemRepository)(nil)

// Open opens or creates the database at path
func Open(path string) (*ItemRepository, error) {
	db, err := bbolt.Open(path, FileMode, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed, path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{RootBucket, ProfileBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(ErrMsgInitFailed, err)
	}
	return &ItemRepository{db: db}, nil
}

// Close releases the database file
func (r *ItemRepository) Close() error {
	return r.db.Close()
}

// Create stores a record under a new key
func (r *ItemRepository) Create(_ context.Context, characterID string, rec domain.ItemRecord) (string, error) {
	key := uuid.NewString()
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.Bucket([]byte(RootBucket)).CreateBucketIfNotExists([]byte(characterID))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		data, err := json.Marshal(entry{Seq: seq, Record: rec})
		if err != nil {
			return fmt.Errorf(ErrMsgEncodeFailed, err)
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return "", fmt.Errorf(ErrMsgCreateItemFailed, err)
	}
	return key, nil
}

// Update rewrites a record in place, keeping its creation order
func (r *ItemRepository) Update(_ context.Context, characterID, key string, rec domain.ItemRecord) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RootBucket)).Bucket([]byte(characterID))
		if b == nil {
			return domain.ErrNotFound
		}
		raw := b.Get([]byte(key))
		if raw == nil {
			return domain.ErrNotFound
		}
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf(ErrMsgDecodeFailed, key, err)
		}
		e.Record = rec
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf(ErrMsgEncodeFailed, err)
		}
		return b.Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, key, err)
	}
	return nil
}

// Delete removes a record
func (r *ItemRepository) Delete(_ context.Context, characterID, key string) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RootBucket)).Bucket([]byte(characterID))
		if b == nil || b.Get([]byte(key)) == nil {
			return domain.ErrNotFound
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteItemFailed, key, err)
	}
	return nil
}

// List returns a character's records in creation order
func (r *ItemRepository) List(_ context.Context, characterID string) ([]repository.StoredItem, error) {
	type seqItem struct {
		seq  uint64
		item repository.StoredItem
	}
	var found []seqItem

	err := r.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(RootBucket)).Bucket([]byte(characterID))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var e entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf(ErrMsgDecodeFailed, string(k), err)
			}
			found = append(found, seqItem{seq: e.Seq, item: repository.StoredItem{Key: string(k), Record: e.Record}})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, characterID, err)
	}

	// Keys are random, so order by the per-character sequence
	slices.SortFunc(found, func(a, b seqItem) int { return cmp.Compare(a.seq, b.seq) })
	ordered := make([]repository.StoredItem, len(found))
	for i, f := range found {
		ordered[i] = f.item
	}
	return ordered, nil
}
