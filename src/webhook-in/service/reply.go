package webhook_service

import (
	"fmt"

	catalog_entity "github.com/dexel-inc/ia-cc-test/src/catalog/entity"
	resolver_model "github.com/dexel-inc/ia-cc-test/src/resolver/model"
)

// The user-facing vocabulary is a closed set of sentences. Raw model output
// or provider errors never appear in a reply.
const (
	UnderstandingTroubleReply = "Tuve un problema entendiendo el producto. ¿Puedes escribirlo de otra forma? (ej: 'ajedrez')"
	HighDemandReply           = "Estoy con alta demanda en IA. Dime el producto exacto (ej: 'ajedrez') y te digo el local."
)

// MatchReply tells the customer where to find the best candidate. When the
// model returned several candidates, the reply mentions how many more exist.
func MatchReply(matches []catalog_entity.CatalogEntry) string {
	first := matches[0]
	reply := fmt.Sprintf(
		"Debes dirigirte al piso %d, local %s, llamado %q y preguntar por %q.",
		first.Shop.Floor,
		first.Shop.Unit,
		first.Shop.Name,
		first.Item,
	)
	if len(matches) > 1 {
		reply += fmt.Sprintf(" También encontré %d producto(s) más que podrían coincidir.", len(matches)-1)
	}
	return reply
}

// NoMatchReply echoes the customer text and asks for a more specific term.
func NoMatchReply(customerText string) string {
	return fmt.Sprintf("No encontré %q. ¿Puedes darme otra pista? (ej: 'ajedrez')", customerText)
}

// ErrorReply maps a resolution failure onto an apology. Throttling gets its
// own sentence; every other failure shares the generic one.
func ErrorReply(err error) string {
	if resolver_model.IsRateLimited(err) {
		return HighDemandReply
	}
	return UnderstandingTroubleReply
}
