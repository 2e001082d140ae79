package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rapjournal/internal/ledger"
)

// ItemKind says what a cosmetic does once owned.
type ItemKind string

const (
	// KindTheme items recolor the whole interface via `rj theme`.
	KindTheme ItemKind = "theme"
	// KindGear items are toggleable decorations (ENABLED_GEAR lines).
	KindGear ItemKind = "gear"
)

func (k ItemKind) IsValid() bool {
	return k == KindTheme || k == KindGear
}

// Item is one purchasable shop entry.
type Item struct {
	Name        string   `yaml:"name"`
	Price       int      `yaml:"price"`
	Kind        ItemKind `yaml:"kind"`
	Description string   `yaml:"description"`
}

// DefaultCatalog returns the built-in shop.
func DefaultCatalog() []Item {
	return []Item{
		{Name: "Neon Layout", Price: 150, Kind: KindTheme, Description: "Green-on-black studio glow"},
		{Name: "Gold Studio", Price: 1000, Kind: KindTheme, Description: "Everything gold"},
		{Name: "Studio Cat", Price: 300, Kind: KindGear, Description: "A cat chilling in your dashboard"},
		{Name: "Chrome Mic", Price: 250, Kind: KindGear, Description: "Shiny mic next to the prompt"},
		{Name: "Vinyl Wall", Price: 400, Kind: KindGear, Description: "Record wall behind the timeline"},
	}
}

// LoadCatalog reads a catalog override from a YAML file: a list of items
// replacing the built-in shop. Prices paid stay derived from the active
// catalog, so edits re-price the whole ledger consistently.
func LoadCatalog(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for i, it := range items {
		if it.Name == "" || it.Price < 0 {
			return nil, fmt.Errorf("catalog %s: item %d is invalid", path, i)
		}
		if !it.Kind.IsValid() {
			items[i].Kind = KindGear
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog %s: no items", path)
	}
	return items, nil
}

// FindItem looks an item up by name.
func FindItem(catalog []Item, name string) (Item, bool) {
	for _, it := range catalog {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Price returns an item's price, 0 for items no longer in the catalog
// (purchases of retired items never charge).
func Price(catalog []Item, name string) int {
	it, ok := FindItem(catalog, name)
	if !ok {
		return 0
	}
	return it.Price
}

// ApplyPurchase validates and records a purchase against the freshly
// recomputed balance. Owning the item already is the idempotent no-op case;
// unknown items and insufficient funds are rejected with nothing mutated.
func ApplyPurchase(l *ledger.Ledger, catalog []Item, name string) (Item, error) {
	it, ok := FindItem(catalog, name)
	if !ok {
		return Item{}, fmt.Errorf("unknown item '%s'", name)
	}
	if l.HasPurchase(name) {
		return it, nil
	}
	_, _, balance := Balance(l, catalog)
	if it.Price > balance {
		return Item{}, InsufficientFundsError{Item: name, Price: it.Price, Balance: balance}
	}
	l.AddPurchase(name)
	return it, nil
}
