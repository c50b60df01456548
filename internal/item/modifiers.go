package item

import (
	"encoding/json"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// statFields are the Stats JSON names a modifier may override
var statFields = map[string]struct{}{
	"price": {}, "priceMin": {}, "priceMax": {},
	"stackable": {}, "equipable": {},
	"durabilityMin": {}, "durabilityMax": {},
	"damage": {}, "defense": {}, "useEffect": {},
}

// applyModifiers overlays it.Modifiers onto its fields. Unknown keys stay in
// Modifiers but change nothing.
func applyModifiers(it *domain.Item) {
	if len(it.Modifiers) == 0 {
		return
	}

	overrides := make(map[string]any)
	for key, value := range it.Modifiers {
		switch key {
		case ModifierDurability:
			if n, ok := toInt(value); ok {
				it.Durability = n
			}
		case ModifierName:
			if s, ok := value.(string); ok {
				it.Name = s
			}
		case ModifierDescription:
			if s, ok := value.(string); ok {
				it.Description = s
			}
		default:
			if _, ok := statFields[key]; ok {
				overrides[key] = value
			}
		}
	}
	if len(overrides) == 0 {
		return
	}

	raw, err := json.Marshal(overrides)
	if err == nil {
		// A mistyped field is skipped; the rest still apply.
		err = json.Unmarshal(raw, &it.Stats)
	}
	if err != nil {
		slog.Debug(LogMsgModifierIgnored, "item", it.ID, "error", err)
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	default:
		return 0, false
	}
}
