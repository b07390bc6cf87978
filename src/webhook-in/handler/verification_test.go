package webhook_handler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dexel-inc/ia-cc-test/src/server"
	webhook_handler "github.com/dexel-inc/ia-cc-test/src/webhook-in/handler"
	"github.com/gofiber/fiber/v2"
)

func newApp(resolver *stubResolver, sender *stubSender) *fiber.App {
	hook := webhook_handler.New("secret-token", resolver, sender)
	return server.New(hook)
}

func TestVerify_EchoesChallenge(t *testing.T) {
	app := newApp(&stubResolver{}, &stubSender{})

	request := httptest.NewRequest("GET", "/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=123", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	body, _ := io.ReadAll(response.Body)
	if string(body) != "123" {
		t.Fatalf("expected challenge echo, got %q", string(body))
	}
}

func TestVerify_WrongTokenIsForbidden(t *testing.T) {
	app := newApp(&stubResolver{}, &stubSender{})

	request := httptest.NewRequest("GET", "/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=123", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != 403 {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
}

func TestVerify_WrongModeIsForbidden(t *testing.T) {
	app := newApp(&stubResolver{}, &stubSender{})

	request := httptest.NewRequest("GET", "/webhook?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=123", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != 403 {
		t.Fatalf("expected 403, got %d", response.StatusCode)
	}
}

func TestWebhook_OtherMethodsNotAllowed(t *testing.T) {
	app := newApp(&stubResolver{}, &stubSender{})

	request := httptest.NewRequest("DELETE", "/webhook", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != 405 {
		t.Fatalf("expected 405, got %d", response.StatusCode)
	}
}
