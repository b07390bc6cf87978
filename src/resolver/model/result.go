package resolver_model

import (
	catalog_entity "github.com/dexel-inc/ia-cc-test/src/catalog/entity"
)

// Result is the outcome of resolving customer text against the catalog.
// Matches keeps the order the model returned; an empty Matches slice is the
// canonical no-match state, so an "empty but matched" result cannot exist.
type Result struct {
	Matches []catalog_entity.CatalogEntry
}

// NoMatch is the result for text that names no catalog product.
func NoMatch() Result {
	return Result{}
}

// Matched wraps one or more candidate entries in model order.
func Matched(entries []catalog_entity.CatalogEntry) Result {
	if len(entries) == 0 {
		return NoMatch()
	}
	return Result{Matches: entries}
}

// IsNoMatch reports whether no catalog entry corresponds to the text.
func (r Result) IsNoMatch() bool {
	return len(r.Matches) == 0
}

// First returns the best candidate. Only valid when IsNoMatch is false.
func (r Result) First() catalog_entity.CatalogEntry {
	return r.Matches[0]
}
