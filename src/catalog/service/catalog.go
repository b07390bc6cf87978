package catalog_service

import (
	"fmt"

	catalog_entity "github.com/dexel-inc/ia-cc-test/src/catalog/entity"
	"github.com/dexel-inc/ia-cc-test/src/validators"
)

// The catalog is fixed at process start and read-only for the process
// lifetime. Entries keep the order they are declared in.
var defaultCatalog = []catalog_entity.CatalogEntry{
	{
		Item:     "ajedrez",
		Synonyms: []string{"ajedrez", "juego de ajedrez", "chess", "tablero de ajedrez"},
		Shop:     catalog_entity.ShopLocation{Name: "Juguetes para Niños", Floor: 3, Unit: "101"},
	},
	{
		Item:     "lego",
		Synonyms: []string{"lego", "bloques lego"},
		Shop:     catalog_entity.ShopLocation{Name: "Juguetes para Niños", Floor: 3, Unit: "101"},
	},
	{
		Item:     "raqueta de tenis",
		Synonyms: []string{"raqueta", "raqueta de tenis", "tenis"},
		Shop:     catalog_entity.ShopLocation{Name: "Deportes Max", Floor: 2, Unit: "220"},
	},
}

// All returns the product catalog in declaration order. Callers get a copy,
// so the catalog itself is never mutated.
func All() []catalog_entity.CatalogEntry {
	entries := make([]catalog_entity.CatalogEntry, len(defaultCatalog))
	copy(entries, defaultCatalog)
	return entries
}

// Validate checks every entry against its struct constraints and rejects
// duplicate item names. Meant to run once at startup.
func Validate(entries []catalog_entity.CatalogEntry) error {
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if err := validators.Validator().Struct(&entry); err != nil {
			return fmt.Errorf("catalog entry %q: %w", entry.Item, err)
		}
		if previous, ok := seen[entry.SlugID()]; ok {
			return fmt.Errorf("catalog entries %q and %q share the id %q", previous, entry.Item, entry.SlugID())
		}
		seen[entry.SlugID()] = entry.Item
	}
	return nil
}
