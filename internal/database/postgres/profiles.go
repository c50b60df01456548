package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TextRealm_Go/internal/database/generated"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// ProfileRepository implements repository.Profiles on the character_profiles table
type ProfileRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

var _ repository.Profiles = (*ProfileRepository)(nil)

// Load reads a profile, failing with domain.ErrNotFound when none was saved
func (r *ProfileRepository) Load(ctx context.Context, characterID string) (domain.ProfileRecord, error) {
	row, err := r.q.GetProfile(ctx, characterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ProfileRecord{}, fmt.Errorf(ErrMsgLoadProfileFailed, characterID, domain.ErrNotFound)
		}
		return domain.ProfileRecord{}, fmt.Errorf(ErrMsgLoadProfileFailed, characterID, err)
	}
	return domain.ProfileRecord{
		Cash: int(row.Cash),
		Exp:  int(row.Exp),
		Location: domain.LocationKey{
			MapID: row.MapID,
			Y:     int(row.PosY),
			X:     int(row.PosX),
		},
	}, nil
}

// Save upserts a profile
func (r *ProfileRepository) Save(ctx context.Context, characterID string, rec domain.ProfileRecord) error {
	err := r.q.UpsertProfile(ctx, generated.UpsertProfileParams{
		CharacterID: characterID,
		Cash:        int32(rec.Cash),
		Exp:         int32(rec.Exp),
		MapID:       rec.Location.MapID,
		PosY:        int32(rec.Location.Y),
		PosX:        int32(rec.Location.X),
	})
	if err != nil {
		return fmt.Errorf(ErrMsgSaveProfileFailed, characterID, err)
	}
	return nil
}
