package shop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/osse101/TextRealm_Go/configs"
	"github.com/osse101/TextRealm_Go/internal/domain"
	"github.com/osse101/TextRealm_Go/internal/logger"
	"github.com/osse101/TextRealm_Go/internal/validation"
)

// ErrInvalidConfig is returned for shop configuration that fails validation
var ErrInvalidConfig = errors.New("invalid shop configuration")

// Config represents the JSON configuration for shops
type Config struct {
	Version string `json:"version"`
	Shops   []Def  `json:"shops"`
}

// Def represents a single shop in the JSON
type Def struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Location domain.LocationKey `json:"location"`
	Sell     SellDef            `json:"sell"`
	Buy      BuyDef             `json:"buy"`
	Supply   *SupplyDef         `json:"supply,omitempty"`
}

// SellDef configures the sell side
type SellDef struct {
	Enabled         bool       `json:"enabled"`
	PriceMultiplier float64    `json:"priceMultiplier"`
	Items           []EntryDef `json:"items"`
}

// EntryDef is a static sell-list entry
type EntryDef struct {
	ID           string         `json:"id"`
	ShopQuantity *int           `json:"shopQuantity,omitempty"`
	ExpRequired  int            `json:"expRequired"`
	Modifiers    map[string]any `json:"modifiers,omitempty"`
}

// BuyDef configures the buy side
type BuyDef struct {
	Enabled         bool     `json:"enabled"`
	PriceMultiplier float64  `json:"priceMultiplier"`
	List            []string `json:"list"`
	IgnoreType      []string `json:"ignoreType"`
	IgnoreSubtype   []string `json:"ignoreSubtype"`
	Resell          bool     `json:"resell"`
}

// SupplyDef configures restocking
type SupplyDef struct {
	Items         []SupplyItem `json:"items"`
	NumberOfItems Range        `json:"numberOfItems"`
	UniqueItems   bool         `json:"uniqueItems"`
}

// Loader handles loading and validating shop configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config, catalog Catalog) error
}

type shopLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &shopLoader{
		schemaValidator: validation.NewSchemaValidatorFS(configs.Schemas),
	}
}

// Load reads and parses a shops JSON file
func (l *shopLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, ShopsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	return &config, nil
}

// Validate checks cross-references the schema cannot express
func (l *shopLoader) Validate(config *Config, catalog Catalog) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	ids := make(map[string]bool, len(config.Shops))
	for i, def := range config.Shops {
		if def.ID == "" {
			return fmt.Errorf(ErrFmtShopAtIndexEmpty, ErrInvalidConfig, i)
		}
		if ids[def.ID] {
			return fmt.Errorf(ErrFmtDuplicateShop, ErrInvalidConfig, def.ID)
		}
		ids[def.ID] = true

		if err := validateDef(def, catalog); err != nil {
			return err
		}
	}
	return nil
}

func validateDef(def Def, catalog Catalog) error {
	known := func(id string) error {
		if _, ok := catalog.Template(id); !ok {
			return fmt.Errorf(ErrFmtUnknownTemplate, ErrInvalidConfig, def.ID, id)
		}
		return nil
	}

	for _, entry := range def.Sell.Items {
		if err := known(entry.ID); err != nil {
			return err
		}
		// Zero would list an entry that can never be bought
		if q := entry.ShopQuantity; q != nil && (*q < domain.InfiniteQuantity || *q == 0) {
			return fmt.Errorf(ErrFmtBadShopQuantity, ErrInvalidConfig, def.ID, entry.ID, *entry.ShopQuantity)
		}
	}

	if def.Supply == nil {
		return nil
	}
	if !def.Supply.NumberOfItems.Valid() {
		return fmt.Errorf(ErrFmtBadRange, ErrInvalidConfig, def.ID, "numberOfItems", def.Supply.NumberOfItems)
	}
	for _, candidate := range def.Supply.Items {
		if err := known(candidate.ID); err != nil {
			return err
		}
		if !candidate.Quantity.Valid() || candidate.Quantity.Min() < 1 {
			return fmt.Errorf(ErrFmtBadRange, ErrInvalidConfig, def.ID, "quantity", candidate.Quantity)
		}
	}
	return nil
}

// Build instantiates every shop definition into a registry
func Build(config *Config, catalog Catalog) (*Registry, error) {
	registry := NewRegistry()
	for _, def := range config.Shops {
		s := &Shop{
			ID:          def.ID,
			Fingerprint: uuid.NewString(),
			Name:        def.Name,
			Location:    def.Location,
			Sell: SellConfig{
				Enabled:         def.Sell.Enabled,
				PriceMultiplier: multiplierOrDefault(def.Sell.PriceMultiplier),
			},
			Buy: BuyConfig{
				Enabled:         def.Buy.Enabled,
				PriceMultiplier: multiplierOrDefault(def.Buy.PriceMultiplier),
				List:            def.Buy.List,
				IgnoreType:      def.Buy.IgnoreType,
				IgnoreSubtype:   def.Buy.IgnoreSubtype,
				Resell:          def.Buy.Resell,
			},
		}

		for _, entry := range def.Sell.Items {
			it, ok := catalog.Instantiate(entry.ID, entry.Modifiers, nil)
			if !ok {
				return nil, fmt.Errorf(ErrFmtUnknownTemplate, ErrInvalidConfig, def.ID, entry.ID)
			}
			it.ShopQuantity = domain.InfiniteQuantity
			if entry.ShopQuantity != nil {
				it.ShopQuantity = *entry.ShopQuantity
			}
			it.ExpRequired = entry.ExpRequired
			s.Sell.List = append(s.Sell.List, it)
		}

		if def.Supply != nil {
			s.Supply = &SupplyConfig{
				Items:         def.Supply.Items,
				NumberOfItems: def.Supply.NumberOfItems,
				UniqueItems:   def.Supply.UniqueItems,
			}
		}

		if err := registry.Add(s); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// LoadRegistry loads, validates and builds the shops at path
func LoadRegistry(ctx context.Context, loader Loader, path string, catalog Catalog) (*Registry, error) {
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config, catalog); err != nil {
		return nil, err
	}
	registry, err := Build(config, catalog)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgShopsLoaded, "path", path, "count", len(registry.All()))
	return registry, nil
}

func multiplierOrDefault(m float64) float64 {
	if m <= 0 {
		return DefaultPriceMultiplier
	}
	return m
}
