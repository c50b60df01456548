package repository

import (
	"context"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// StoredItem is an item record together with its persistence key
type StoredItem struct {
	Key    string
	Record domain.ItemRecord
}

// Items stores the item records owned by characters. Update and Delete return
// domain.ErrNotFound when the referenced record no longer exists.
type Items interface {
	Create(ctx context.Context, characterID string, rec domain.ItemRecord) (string, error)
	Update(ctx context.Context, characterID, key string, rec domain.ItemRecord) error
	Delete(ctx context.Context, characterID, key string) error
	List(ctx context.Context, characterID string) ([]StoredItem, error)
}
