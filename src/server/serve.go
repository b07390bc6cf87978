package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	webhook_handler "github.com/dexel-inc/ia-cc-test/src/webhook-in/handler"
	webhook_router "github.com/dexel-inc/ia-cc-test/src/webhook-in/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/pterm/pterm"
)

// New assembles the Fiber app with the webhook routes.
func New(hook *webhook_handler.Webhook) *fiber.App {
	app := fiber.New()
	app.Use(cors.New())

	webhook_router.Route(app, hook)

	return app
}

// Serve runs the app until a shutdown signal arrives.
func Serve(port string, hook *webhook_handler.Webhook) {
	app := New(hook)

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping server...")
		app.Shutdown()
	}()

	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		pterm.DefaultLogger.Fatal(
			fmt.Sprintf("%v", err),
		)
	}
}
