package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TextRealm_Go/internal/database/generated"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// ItemRepository implements repository.Items on the character_items table using sqlc
type ItemRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

var _ repository.Items = (*ItemRepository)(nil)

// Create inserts a record and returns its new key
func (r *ItemRepository) Create(ctx context.Context, characterID string, rec domain.ItemRecord) (string, error) {
	mods, err := encodeModifiers(rec.Modifiers)
	if err != nil {
		return "", fmt.Errorf(ErrMsgInsertItemFailed, err)
	}
	key := uuid.New()
	err = r.q.InsertItem(ctx, generated.InsertItemParams{
		ItemKey:     key,
		CharacterID: characterID,
		TemplateID:  rec.TemplateID,
		Modifiers:   mods,
		Durability:  int32(rec.Durability),
		Slot:        ptrToText(rec.Slot),
	})
	if err != nil {
		return "", fmt.Errorf(ErrMsgInsertItemFailed, err)
	}
	return key.String(), nil
}

// Update rewrites a record, failing with domain.ErrNotFound when it is gone
func (r *ItemRepository) Update(ctx context.Context, characterID, key string, rec domain.ItemRecord) error {
	id, ok := parseKey(key)
	if !ok {
		return fmt.Errorf(ErrMsgUpdateItemFailed, key, domain.ErrNotFound)
	}
	mods, err := encodeModifiers(rec.Modifiers)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, key, err)
	}
	affected, err := r.q.UpdateItem(ctx, generated.UpdateItemParams{
		ItemKey:     id,
		CharacterID: characterID,
		TemplateID:  rec.TemplateID,
		Modifiers:   mods,
		Durability:  int32(rec.Durability),
		Slot:        ptrToText(rec.Slot),
	})
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateItemFailed, key, err)
	}
	if affected == 0 {
		return fmt.Errorf(ErrMsgUpdateItemFailed, key, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a record, failing with domain.ErrNotFound when it is gone
func (r *ItemRepository) Delete(ctx context.Context, characterID, key string) error {
	id, ok := parseKey(key)
	if !ok {
		return fmt.Errorf(ErrMsgDeleteItemFailed, key, domain.ErrNotFound)
	}
	affected, err := r.q.DeleteItem(ctx, generated.DeleteItemParams{ItemKey: id, CharacterID: characterID})
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteItemFailed, key, err)
	}
	if affected == 0 {
		return fmt.Errorf(ErrMsgDeleteItemFailed, key, domain.ErrNotFound)
	}
	return nil
}

// List returns a character's records in creation order
func (r *ItemRepository) List(ctx context.Context, characterID string) ([]repository.StoredItem, error) {
	rows, err := r.q.ListItems(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, characterID, err)
	}

	items := make([]repository.StoredItem, 0, len(rows))
	for _, row := range rows {
		mods, err := decodeModifiers(row.Modifiers)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanItemFailed, err)
		}
		items = append(items, repository.StoredItem{
			Key: row.ItemKey.String(),
			Record: domain.ItemRecord{
				TemplateID: row.TemplateID,
				Modifiers:  mods,
				Durability: int(row.Durability),
				Slot:       textToPtr(row.Slot),
			},
		})
	}
	return items, nil
}
