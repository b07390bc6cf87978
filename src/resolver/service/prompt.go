package resolver_service

import (
	"encoding/json"
	"fmt"

	catalog_entity "github.com/dexel-inc/ia-cc-test/src/catalog/entity"
)

// buildInstructions serializes the catalog into the system instruction handed
// to the model. The wording is the response contract: a JSON array of catalog
// entries, or literal null, and nothing else.
func buildInstructions(entries []catalog_entity.CatalogEntry) (string, error) {
	serialized, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("serialize catalog: %w", err)
	}

	return fmt.Sprintf(`You are a shopping mall assistant that locates products in a fixed catalog.

CATALOG:
%s

Select the catalog entries relevant to the customer's text, using the item names and synonyms as matching context. Respond with a JSON array containing the matching entries exactly as they appear in the catalog, ordered from most to least relevant. If nothing in the catalog matches, respond with the literal value null.

IMPORTANT: Your response MUST be the JSON array or null and nothing else. Do not add commentary, explanations or formatting.`, serialized), nil
}

func userMessage(customerText string) string {
	return fmt.Sprintf(`Texto del cliente: """%s"""`, customerText)
}
