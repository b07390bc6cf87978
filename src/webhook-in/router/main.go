package webhook_router

import (
	webhook_handler "github.com/dexel-inc/ia-cc-test/src/webhook-in/handler"
	"github.com/gofiber/fiber/v2"
)

// Route registers the Meta webhook endpoints. Methods other than the
// verification GET and the event POST are rejected with 405.
func Route(app *fiber.App, hook *webhook_handler.Webhook) {
	app.Get("/webhook", hook.Verify)
	app.Post("/webhook", hook.Message)
	app.All("/webhook", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusMethodNotAllowed)
	})
}
