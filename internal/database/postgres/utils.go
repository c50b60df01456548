package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// encodeModifiers stores nil as an empty object so the column stays NOT NULL
func encodeModifiers(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEncodeModifiersFailed, err)
	}
	return data, nil
}

func decodeModifiers(data []byte) (map[string]any, error) {
	m := map[string]any{}
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeModifiersFailed, err)
	}
	return m, nil
}

// parseKey reports false for keys that cannot name a stored row
func parseKey(key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(key)
	return id, err == nil
}
