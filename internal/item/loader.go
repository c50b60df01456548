package item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/TextRealm_Go/configs"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/validation"
)

// ErrInvalidConfig is returned for item configuration that fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item template in the JSON
type Def struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        string       `json:"type"`
	Subtype     string       `json:"subtype"`
	Stats       domain.Stats `json:"stats"`
}

// Template converts the definition into a catalog template
func (d Def) Template() domain.Template {
	return domain.Template{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Type:        d.Type,
		Subtype:     d.Subtype,
		Stats:       d.Stats,
	}
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidatorFS(configs.Schemas),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateDef(i, &config.Items[i], seen); err != nil {
			return err
		}
	}

	return nil
}

func validateDef(index int, def *Def, seen map[string]bool) error {
	id := normalizeID(def.ID)
	if id == "" {
		return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidConfig, index)
	}

	if seen[id] {
		return fmt.Errorf(ErrFmtDuplicateTemplate, ErrDuplicateID, id)
	}
	seen[id] = true

	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf(ErrFmtItemHasEmptyName, ErrInvalidConfig, id)
	}

	s := def.Stats
	if s.Price < 0 {
		return fmt.Errorf(ErrFmtItemNegativePrice, ErrInvalidConfig, id)
	}
	if s.PriceMax > 0 && s.PriceMin > s.PriceMax {
		return fmt.Errorf(ErrFmtItemPriceRange, ErrInvalidConfig, id)
	}
	if s.DurabilityMax > 0 && s.DurabilityMin > s.DurabilityMax {
		return fmt.Errorf(ErrFmtItemDurabilityRange, ErrInvalidConfig, id)
	}

	return nil
}

// LoadCatalog loads, validates and registers the templates at path
func LoadCatalog(ctx context.Context, loader Loader, path string) (*Catalog, error) {
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	catalog := NewCatalog()
	templates := make([]domain.Template, 0, len(config.Items))
	for _, def := range config.Items {
		templates = append(templates, def.Template())
	}
	if err := catalog.Register(templates...); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgTemplatesLoaded, "path", path, "count", len(templates))
	return catalog, nil
}
