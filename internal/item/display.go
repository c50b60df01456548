package item

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// DisplayName renders an item for chat, e.g. "Bread x3" for stacks
func DisplayName(it *domain.Item) string {
	name := Title(it.Name)
	if it.Stackable() && it.Durability != 1 {
		return fmt.Sprintf("%s x%d", name, it.Durability)
	}
	return name
}

// Title capitalises each word of a name
func Title(name string) string {
	// Casers carry state, so one is built per call.
	return cases.Title(language.English).String(name)
}
