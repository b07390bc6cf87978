package main

import (
	"fmt"

	catalog_service "github.com/dexel-inc/ia-cc-test/src/catalog/service"
	"github.com/dexel-inc/ia-cc-test/src/config/env"
	message_service "github.com/dexel-inc/ia-cc-test/src/message/service"
	resolver_service "github.com/dexel-inc/ia-cc-test/src/resolver/service"
	"github.com/dexel-inc/ia-cc-test/src/server"
	"github.com/dexel-inc/ia-cc-test/src/validators"
	webhook_handler "github.com/dexel-inc/ia-cc-test/src/webhook-in/handler"
	"github.com/pterm/pterm"
)

func main() {
	env.Load()
	validators.InitValidators()

	entries := catalog_service.All()
	if err := catalog_service.Validate(entries); err != nil {
		pterm.DefaultLogger.Fatal(
			fmt.Sprintf("Invalid product catalog: %s", err),
		)
	}
	pterm.DefaultLogger.Info(
		fmt.Sprintf("Catalog loaded with %d products", len(entries)),
	)

	resolver, err := resolver_service.New(env.OpenAIAPIKey, env.OpenAIModel, entries)
	if err != nil {
		pterm.DefaultLogger.Fatal(
			fmt.Sprintf("Unable to build resolver: %s", err),
		)
	}

	sender := message_service.NewSender(env.WhatsAppToken, env.PhoneNumberID)
	hook := webhook_handler.New(env.MetaVerifyToken, resolver, sender)

	server.Serve(env.ServerPort, hook)
}
