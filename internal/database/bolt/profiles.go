package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	bbolt "go.etcd.io/bbolt"

	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// ProfileRepository implements repository.Profiles in the same file as the items
type ProfileRepository struct {
	db *bbolt.DB
}

var _ repository.Profiles = (*ProfileRepository)(nil)

// Profiles returns the profile store sharing this database
func (r *ItemRepository) Profiles() *ProfileRepository {
	return &ProfileRepository{db: r.db}
}

// Load reads a profile, failing with domain.ErrNotFound when none was saved
func (r *ProfileRepository) Load(_ context.Context, characterID string) (domain.ProfileRecord, error) {
	var rec domain.ProfileRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(ProfileBucket)).Get([]byte(characterID))
		if raw == nil {
			return domain.ErrNotFound
		}
		return json.Unmarshal(raw, &rec)
	})
	if err != nil {
		return domain.ProfileRecord{}, fmt.Errorf(ErrMsgLoadProfileFailed, characterID, err)
	}
	return rec, nil
}

// Save upserts a profile
func (r *ProfileRepository) Save(_ context.Context, characterID string, rec domain.ProfileRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf(ErrMsgSaveProfileFailed, characterID, err)
	}
	err = r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(ProfileBucket)).Put([]byte(characterID), data)
	})
	if err != nil {
		return fmt.Errorf(ErrMsgSaveProfileFailed, characterID, err)
	}
	return nil
}
