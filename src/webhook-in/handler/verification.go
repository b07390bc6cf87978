package webhook_handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

const subscribeMode = "subscribe"

// Verify answers the Meta webhook subscription handshake: echo the challenge
// when the mode and token check out, 403 otherwise. Exactly one response per
// call and no side effects.
func (h *Webhook) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != subscribeMode || token != h.verifyToken {
		pterm.DefaultLogger.Warn("Webhook verification rejected")
		return c.SendStatus(fiber.StatusForbidden)
	}

	pterm.DefaultLogger.Info("Webhook verification succeeded")
	return c.Status(fiber.StatusOK).SendString(challenge)
}
