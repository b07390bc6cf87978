package webhook_model

import "encoding/json"

// Payload is the Meta webhook event body. Every nesting level is optional on
// the wire, so extraction treats missing levels as "nothing to process".
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

type Value struct {
	Messages []Message `json:"messages"`
	// Delivery and read receipts; acknowledged but not processed.
	Statuses []json.RawMessage `json:"statuses"`
}

// Message is one inbound customer message. Text is present only for the
// "text" kind.
type Message struct {
	From string `json:"from"`
	Type string `json:"type"`
	Text *Text  `json:"text"`
}

type Text struct {
	Body string `json:"body"`
}

// IsText reports whether the message carries a text body.
func (m Message) IsText() bool {
	return m.Type == "text" && m.Text != nil
}

// TextMessages collects every text message in the payload, in wire order.
// Missing entries, changes or messages simply yield an empty slice.
func (p Payload) TextMessages() []Message {
	var messages []Message
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				if message.IsText() {
					messages = append(messages, message)
				}
			}
		}
	}
	return messages
}
