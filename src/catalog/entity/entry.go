package catalog_entity

import "github.com/gosimple/slug"

// ShopLocation points a customer at a physical shop inside the mall.
type ShopLocation struct {
	Name  string `json:"name" validate:"required"`
	Floor int    `json:"floor" validate:"required,gt=0"`
	Unit  string `json:"unit" validate:"required"`
}

// CatalogEntry is one sellable product and the shop that carries it.
// Synonyms are the phrases customers use for the product; they are handed to
// the language model as matching context and never consulted locally.
type CatalogEntry struct {
	Item     string       `json:"item" validate:"required"`
	Synonyms []string     `json:"synonyms" validate:"required,min=1,dive,required"`
	Shop     ShopLocation `json:"shop"`
}

// SlugID is the stable identifier derived from the canonical item name. It is
// used in log lines and to anchor model output back to catalog values.
func (e CatalogEntry) SlugID() string {
	return slug.Make(e.Item)
}
