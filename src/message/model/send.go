package message_model

// Text is the body of a WhatsApp text message.
type Text struct {
	Body string `json:"body"`
}

// SendTextMessage is the Cloud API payload for a plain text message.
type SendTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             Text   `json:"text"`
}

// NewTextMessage builds the payload for one recipient.
func NewTextMessage(to, body string) SendTextMessage {
	return SendTextMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             Text{Body: body},
	}
}

// SendResponse is the Graph API acknowledgment for a sent message.
type SendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}
