package wacloud

import (
	"bytes"
	"encoding/json"

	"github.com/wacloud/client-go/internal/signature"
)

// webhookObject is the top-level object type of every delivery for this
// account kind. Payloads carrying anything else are rejected.
const webhookObject = "whatsapp_business_account"

// EventKind discriminates webhook event payloads.
type EventKind string

// Webhook event kinds.
const (
	// EventMessage is an inbound user message delivery.
	EventMessage EventKind = "message"
	// EventStatus is a delivery/read status update for a sent message.
	EventStatus EventKind = "status"
	// EventAccount is any other account-level notification.
	EventAccount EventKind = "account"
)

// WebhookEvent is a parsed webhook delivery. Kind reflects the first
// recognized change in the payload; Entries carries the full decoded
// entry list for callers that need everything.
//
// A WebhookEvent says nothing about authenticity. Verify the signature
// header with VerifyWebhookSignature before trusting the payload.
type WebhookEvent struct {
	Kind    EventKind
	Object  string
	Entries []Entry
}

// Entry is one entry in a webhook delivery.
type Entry struct {
	ID      string   `json:"id"`
	Time    int64    `json:"time,omitempty"`
	Changes []Change `json:"changes"`
}

// Change is one field change inside an entry.
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue is the value block of a change. Messages and Statuses are
// mutually exclusive in practice; both empty means an account-level
// notification.
type ChangeValue struct {
	MessagingProduct    string            `json:"messaging_product,omitempty"`
	Metadata            *WebhookMetadata  `json:"metadata,omitempty"`
	Contacts            []WebhookContact  `json:"contacts,omitempty"`
	Messages            []IncomingMessage `json:"messages,omitempty"`
	Statuses            []MessageStatus   `json:"statuses,omitempty"`
	Event               string            `json:"event,omitempty"`
	MessageTemplateID   int64             `json:"message_template_id,omitempty"`
	MessageTemplateName string            `json:"message_template_name,omitempty"`
}

// WebhookMetadata identifies the receiving phone number.
type WebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// WebhookContact is the sender profile attached to inbound messages.
type WebhookContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// IncomingMessage is one inbound user message.
type IncomingMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *struct {
		Body string `json:"body"`
	} `json:"text,omitempty"`
	Image    *MediaContent `json:"image,omitempty"`
	Audio    *MediaContent `json:"audio,omitempty"`
	Video    *MediaContent `json:"video,omitempty"`
	Document *MediaContent `json:"document,omitempty"`
	Sticker  *MediaContent `json:"sticker,omitempty"`
	Location *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name,omitempty"`
		Address   string  `json:"address,omitempty"`
	} `json:"location,omitempty"`
	Reaction *struct {
		MessageID string `json:"message_id"`
		Emoji     string `json:"emoji"`
	} `json:"reaction,omitempty"`
	Interactive *struct {
		Type        string `json:"type"`
		ButtonReply *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"button_reply,omitempty"`
		ListReply *struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description,omitempty"`
		} `json:"list_reply,omitempty"`
	} `json:"interactive,omitempty"`
	Context *struct {
		From string `json:"from"`
		ID   string `json:"id"`
	} `json:"context,omitempty"`
	Errors []struct {
		Code    int    `json:"code"`
		Title   string `json:"title"`
		Message string `json:"message,omitempty"`
	} `json:"errors,omitempty"`
}

// MediaContent is an inbound media attachment reference.
type MediaContent struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// MessageStatus is a delivery status update for a previously sent message.
type MessageStatus struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	RecipientID  string `json:"recipient_id"`
	Conversation *struct {
		ID     string `json:"id"`
		Origin *struct {
			Type string `json:"type"`
		} `json:"origin,omitempty"`
	} `json:"conversation,omitempty"`
	Errors []struct {
		Code    int    `json:"code"`
		Title   string `json:"title"`
		Message string `json:"message,omitempty"`
	} `json:"errors,omitempty"`
}

// SchemaValidator validates the raw webhook payload against a full
// schema. When supplied to ParseWebhook, it replaces the built-in
// minimal shape check and its failure is propagated unchanged.
type SchemaValidator interface {
	Validate(payload []byte) error
}

// ParseOption configures ParseWebhook.
type ParseOption func(*parseConfig)

type parseConfig struct {
	validator SchemaValidator
}

// WithValidator delegates structural validation to v.
func WithValidator(v SchemaValidator) ParseOption {
	return func(c *parseConfig) {
		c.validator = v
	}
}

// webhookEnvelope is the raw top-level delivery shape. Entry is kept as
// raw JSON so that the array check happens before element decoding.
type webhookEnvelope struct {
	Object string          `json:"object"`
	Entry  json.RawMessage `json:"entry"`
}

// ParseWebhook decodes a webhook delivery body into a WebhookEvent.
//
// It rejects with a *ValidationError when the payload is not a JSON
// object, the object field is not "whatsapp_business_account", or entry
// is missing or not an array. ParseWebhook performs no signature check;
// authenticate the raw body with VerifyWebhookSignature first.
func ParseWebhook(payload []byte, opts ...ParseOption) (*WebhookEvent, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.validator != nil {
		if err := cfg.validator.Validate(payload); err != nil {
			return nil, err
		}
	} else {
		if err := checkWebhookShape(payload); err != nil {
			return nil, err
		}
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, &ValidationError{Field: "payload", Message: "webhook payload is not a JSON object"}
	}

	var entries []Entry
	if len(envelope.Entry) > 0 {
		if err := json.Unmarshal(envelope.Entry, &entries); err != nil {
			return nil, &ValidationError{Field: "entry", Message: "entry elements have unexpected shape"}
		}
	}

	return &WebhookEvent{
		Kind:    classifyEvent(entries),
		Object:  envelope.Object,
		Entries: entries,
	}, nil
}

// checkWebhookShape is the built-in minimal shape check: top-level JSON
// object, the expected object string, and entry present as an array.
func checkWebhookShape(payload []byte) error {
	var shape struct {
		Object string          `json:"object"`
		Entry  json.RawMessage `json:"entry"`
	}
	if err := json.Unmarshal(payload, &shape); err != nil {
		return &ValidationError{Field: "payload", Message: "webhook payload is not a JSON object"}
	}
	if shape.Object != webhookObject {
		return &ValidationError{Field: "object", Message: "unexpected webhook object: " + shape.Object}
	}
	// A JSON null unmarshals into a raw-message slice without error, so
	// it has to be rejected before the array check.
	entryRaw := bytes.TrimSpace(shape.Entry)
	if len(entryRaw) == 0 || string(entryRaw) == "null" {
		return &ValidationError{Field: "entry", Message: "entry is missing"}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(entryRaw, &entries); err != nil {
		return &ValidationError{Field: "entry", Message: "entry is not an array"}
	}
	return nil
}

// classifyEvent picks the event kind from the first recognized change.
func classifyEvent(entries []Entry) EventKind {
	for _, entry := range entries {
		for _, change := range entry.Changes {
			if len(change.Value.Messages) > 0 {
				return EventMessage
			}
			if len(change.Value.Statuses) > 0 {
				return EventStatus
			}
		}
	}
	return EventAccount
}

// VerifyWebhookSignature reports whether signatureHeader is a valid
// HMAC-SHA256 signature of rawBody under appSecret. The header may carry
// the "sha256=" prefix. rawBody must be the exact received request body
// bytes; re-serialized JSON will not match.
//
// Verification fails closed: malformed input yields false, never an
// error. A false return means reject the webhook.
func VerifyWebhookSignature(rawBody []byte, signatureHeader, appSecret string) bool {
	return signature.Verify(rawBody, signatureHeader, appSecret)
}

// SignWebhookPayload computes the "sha256="-prefixed signature header
// value for a payload. Useful for tests and for signing outbound
// callbacks.
func SignWebhookPayload(payload []byte, appSecret string) string {
	return signature.Prefix + signature.Sign(payload, appSecret)
}

// VerifyWebhookChallenge handles the webhook subscription handshake.
// The provider sends GET ?hub.mode=subscribe&hub.verify_token=...&
// hub.challenge=...; when mode is "subscribe" and the token matches,
// the challenge string must be echoed back. Returns the challenge and
// true on success, "" and false otherwise.
func VerifyWebhookChallenge(mode, token, verifyToken, challenge string) (string, bool) {
	if mode != "subscribe" || verifyToken == "" || token != verifyToken {
		return "", false
	}
	return challenge, true
}
