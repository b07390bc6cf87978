package webhook_handler

import (
	"context"
	"fmt"

	resolver_model "github.com/dexel-inc/ia-cc-test/src/resolver/model"
	webhook_model "github.com/dexel-inc/ia-cc-test/src/webhook-in/model"
	webhook_service "github.com/dexel-inc/ia-cc-test/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// ProductResolver maps customer text onto catalog entries.
type ProductResolver interface {
	Resolve(ctx context.Context, customerText string) (resolver_model.Result, error)
}

// ReplySender delivers a reply to one recipient.
type ReplySender interface {
	SendText(ctx context.Context, to, body string) error
}

// Webhook handles the inbound Meta webhook endpoints.
type Webhook struct {
	verifyToken string
	resolver    ProductResolver
	sender      ReplySender
}

func New(verifyToken string, resolver ProductResolver, sender ReplySender) *Webhook {
	return &Webhook{
		verifyToken: verifyToken,
		resolver:    resolver,
		sender:      sender,
	}
}

// Message handles an inbound event delivery. Meta requires exactly one
// success acknowledgment per delivery attempt, so the handler always answers
// 200 once the body has been read: resolution and delivery failures are
// converted to apologies or logged, never surfaced as an error status.
func (h *Webhook) Message(c *fiber.Ctx) error {
	eventID := uuid.NewString()

	var payload webhook_model.Payload
	if err := c.BodyParser(&payload); err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Event %s carried an unreadable body: %s", eventID, err),
		)
		return ack(c)
	}

	messages := payload.TextMessages()
	if len(messages) == 0 {
		// Status updates and unsupported message kinds are acknowledged
		// without further action.
		pterm.DefaultLogger.Info(
			fmt.Sprintf("Event %s carried no text message", eventID),
		)
		return ack(c)
	}

	ctx := c.UserContext()
	var eg errgroup.Group
	for _, message := range messages {
		message := message
		eg.Go(func() error {
			h.answer(ctx, eventID, message)
			return nil
		})
	}
	_ = eg.Wait()

	return ack(c)
}

// answer runs one message through the resolver and dispatches the reply.
func (h *Webhook) answer(ctx context.Context, eventID string, message webhook_model.Message) {
	result, err := h.resolver.Resolve(ctx, message.Text.Body)

	var reply string
	switch {
	case err != nil:
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Event %s: resolution failed: %s", eventID, err),
		)
		reply = webhook_service.ErrorReply(err)
	case result.IsNoMatch():
		pterm.DefaultLogger.Info(
			fmt.Sprintf("Event %s: no catalog match", eventID),
		)
		reply = webhook_service.NoMatchReply(message.Text.Body)
	default:
		pterm.DefaultLogger.Info(
			fmt.Sprintf("Event %s: matched %s", eventID, result.First().SlugID()),
		)
		reply = webhook_service.MatchReply(result.Matches)
	}

	// A failed delivery never changes the inbound acknowledgment.
	if err := h.sender.SendText(ctx, message.From, reply); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Event %s: unable to deliver reply: %s", eventID, err),
		)
	}
}

func ack(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}
