package message_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	message_model "github.com/dexel-inc/ia-cc-test/src/message/model"
	"github.com/pterm/pterm"
)

const (
	graphAPIVersion = "v19.0"
	defaultBaseURL  = "https://graph.facebook.com"
)

// Sender delivers replies through the WhatsApp Cloud API messages endpoint.
type Sender struct {
	BaseURL       string
	Token         string
	PhoneNumberID string
	Client        *http.Client
}

// NewSender builds a sender for the configured phone number.
func NewSender(token, phoneNumberID string) *Sender {
	return &Sender{
		BaseURL:       defaultBaseURL,
		Token:         token,
		PhoneNumberID: phoneNumberID,
		Client:        &http.Client{Timeout: 15 * time.Second},
	}
}

// SendText posts a text message to the recipient. A non-2xx status from the
// Graph API is returned as an error carrying the response body.
func (s *Sender) SendText(ctx context.Context, to, body string) error {
	payload, err := json.Marshal(message_model.NewTextMessage(to, body))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/%s/messages", s.BaseURL, graphAPIVersion, s.PhoneNumberID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+s.Token)

	response, err := s.Client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(response.Body)
		return fmt.Errorf("graph API returned %d: %s", response.StatusCode, string(responseBody))
	}

	var ack message_model.SendResponse
	if err := json.NewDecoder(response.Body).Decode(&ack); err == nil && len(ack.Messages) > 0 {
		pterm.DefaultLogger.Info(
			fmt.Sprintf("Message delivered to %s with id %s", to, ack.Messages[0].ID),
		)
	}

	return nil
}
