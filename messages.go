package wacloud

import (
	"context"

	"github.com/wacloud/client-go/internal/api"
)

// Structural message content is shared with the transport layer; the
// aliases keep one JSON shape while exposing constructible public names.
type (
	// Contact is one contact card in a contacts message.
	Contact = api.ContactCard
	// ContactName is the structured name of a contact.
	ContactName = api.ContactName
	// ContactPhone is one phone entry on a contact card.
	ContactPhone = api.ContactPhone
	// ContactEmail is one email entry on a contact card.
	ContactEmail = api.ContactEmail
	// ContactOrg is the organization block on a contact card.
	ContactOrg = api.ContactOrg

	// Interactive is the envelope for interactive (button/list) messages.
	Interactive = api.InteractiveObject
	// InteractiveHeader is the optional header of an interactive message.
	InteractiveHeader = api.InteractiveHeader
	// InteractiveText is a plain text block inside an interactive message.
	InteractiveText = api.InteractiveText
	// InteractiveAction holds the buttons or list sections.
	InteractiveAction = api.InteractiveAction
	// InteractiveButton is one reply button.
	InteractiveButton = api.InteractiveButton
	// ButtonReply is the id/title pair of a reply button.
	ButtonReply = api.ButtonReply
	// ListSection is one section of a list message.
	ListSection = api.ListSection
	// ListRow is one selectable row in a list section.
	ListRow = api.ListRow

	// TemplateComponent is one component of a template send.
	TemplateComponent = api.TemplateComponent
	// TemplateParameter is one substitution value in a template component.
	TemplateParameter = api.TemplateParameter
	// CurrencyParam is a localized currency template value.
	CurrencyParam = api.CurrencyParam
	// DateTimeParam is a localized date template value.
	DateTimeParam = api.DateTimeParam
)

// Media references media to attach to a message, either by the id of a
// previously uploaded object or by a public link. Caption applies to
// image, video and document messages; Filename to documents only.
type Media struct {
	ID       string
	Link     string
	Caption  string
	Filename string
}

func (m Media) ref() *api.MediaRef {
	return &api.MediaRef{ID: m.ID, Link: m.Link, Caption: m.Caption, Filename: m.Filename}
}

// Location is the content of a location message.
type Location struct {
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

// SendResult identifies an accepted outbound message.
type SendResult struct {
	// MessageID is the provider-assigned message id ("wamid...").
	MessageID string
	// RecipientWaID is the normalized WhatsApp id of the recipient.
	RecipientWaID string
}

// SendOption configures an outbound message.
type SendOption func(*sendConfig)

type sendConfig struct {
	previewURL bool
	replyTo    string
}

// WithPreviewURL enables URL previews in a text message.
func WithPreviewURL() SendOption {
	return func(c *sendConfig) {
		c.previewURL = true
	}
}

// WithReplyTo sends the message as a reply to an earlier message.
func WithReplyTo(messageID string) SendOption {
	return func(c *sendConfig) {
		c.replyTo = messageID
	}
}

// newMessageRequest builds the common request envelope.
func newMessageRequest(to, messageType string, cfg *sendConfig) *api.MessageRequest {
	req := &api.MessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             messageType,
	}
	if cfg.replyTo != "" {
		req.Context = &api.MessageContext{MessageID: cfg.replyTo}
	}
	return req
}

// send performs the shared validation and dispatch for all message kinds.
func (c *Client) send(ctx context.Context, req *api.MessageRequest) (*SendResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if req.To == "" {
		return nil, &ValidationError{Field: "to", Message: "recipient is required"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.SendMessage(ctx, phoneNumberID, req)
	if err != nil {
		return nil, wrapError(err)
	}

	result := &SendResult{}
	if len(resp.Messages) > 0 {
		result.MessageID = resp.Messages[0].ID
	}
	if len(resp.Contacts) > 0 {
		result.RecipientWaID = resp.Contacts[0].WaID
	}
	return result, nil
}

func applySendOptions(opts []SendOption) *sendConfig {
	cfg := &sendConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// SendText sends a plain text message.
func (c *Client) SendText(ctx context.Context, to, body string, opts ...SendOption) (*SendResult, error) {
	if body == "" {
		return nil, &ValidationError{Field: "body", Message: "text body is required"}
	}
	cfg := applySendOptions(opts)
	req := newMessageRequest(to, "text", cfg)
	req.Text = &api.TextContent{Body: body, PreviewURL: cfg.previewURL}
	return c.send(ctx, req)
}

// SendImage sends an image message.
func (c *Client) SendImage(ctx context.Context, to string, image Media, opts ...SendOption) (*SendResult, error) {
	if err := validateMedia("image", image); err != nil {
		return nil, err
	}
	req := newMessageRequest(to, "image", applySendOptions(opts))
	req.Image = image.ref()
	return c.send(ctx, req)
}

// SendAudio sends an audio message.
func (c *Client) SendAudio(ctx context.Context, to string, audio Media, opts ...SendOption) (*SendResult, error) {
	if err := validateMedia("audio", audio); err != nil {
		return nil, err
	}
	req := newMessageRequest(to, "audio", applySendOptions(opts))
	req.Audio = audio.ref()
	return c.send(ctx, req)
}

// SendVideo sends a video message.
func (c *Client) SendVideo(ctx context.Context, to string, video Media, opts ...SendOption) (*SendResult, error) {
	if err := validateMedia("video", video); err != nil {
		return nil, err
	}
	req := newMessageRequest(to, "video", applySendOptions(opts))
	req.Video = video.ref()
	return c.send(ctx, req)
}

// SendDocument sends a document message.
func (c *Client) SendDocument(ctx context.Context, to string, document Media, opts ...SendOption) (*SendResult, error) {
	if err := validateMedia("document", document); err != nil {
		return nil, err
	}
	req := newMessageRequest(to, "document", applySendOptions(opts))
	req.Document = document.ref()
	return c.send(ctx, req)
}

// SendSticker sends a sticker message.
func (c *Client) SendSticker(ctx context.Context, to string, sticker Media, opts ...SendOption) (*SendResult, error) {
	if err := validateMedia("sticker", sticker); err != nil {
		return nil, err
	}
	req := newMessageRequest(to, "sticker", applySendOptions(opts))
	req.Sticker = sticker.ref()
	return c.send(ctx, req)
}

// SendLocation sends a location message.
func (c *Client) SendLocation(ctx context.Context, to string, location Location, opts ...SendOption) (*SendResult, error) {
	req := newMessageRequest(to, "location", applySendOptions(opts))
	req.Location = &api.LocationContent{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Name:      location.Name,
		Address:   location.Address,
	}
	return c.send(ctx, req)
}

// SendContacts sends one or more contact cards.
func (c *Client) SendContacts(ctx context.Context, to string, contacts []Contact, opts ...SendOption) (*SendResult, error) {
	if len(contacts) == 0 {
		return nil, &ValidationError{Field: "contacts", Message: "at least one contact is required"}
	}
	req := newMessageRequest(to, "contacts", applySendOptions(opts))
	req.Contacts = contacts
	return c.send(ctx, req)
}

// SendReaction reacts to an earlier message with an emoji. An empty
// emoji removes a previous reaction.
func (c *Client) SendReaction(ctx context.Context, to, messageID, emoji string) (*SendResult, error) {
	if messageID == "" {
		return nil, &ValidationError{Field: "message_id", Message: "message id is required"}
	}
	req := newMessageRequest(to, "reaction", &sendConfig{})
	req.Reaction = &api.ReactionContent{MessageID: messageID, Emoji: emoji}
	return c.send(ctx, req)
}

// SendInteractive sends an interactive message (reply buttons or a list).
func (c *Client) SendInteractive(ctx context.Context, to string, interactive *Interactive, opts ...SendOption) (*SendResult, error) {
	if interactive == nil {
		return nil, &ValidationError{Field: "interactive", Message: "interactive content is required"}
	}
	req := newMessageRequest(to, "interactive", applySendOptions(opts))
	req.Interactive = interactive
	return c.send(ctx, req)
}

// SendTemplate sends a pre-approved message template.
func (c *Client) SendTemplate(ctx context.Context, to, name, languageCode string, components []TemplateComponent, opts ...SendOption) (*SendResult, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "template name is required"}
	}
	if languageCode == "" {
		return nil, &ValidationError{Field: "language", Message: "template language code is required"}
	}
	req := newMessageRequest(to, "template", applySendOptions(opts))
	req.Template = &api.TemplateRef{
		Name:       name,
		Language:   api.TemplateLanguage{Code: languageCode},
		Components: components,
	}
	return c.send(ctx, req)
}

// MarkMessageRead marks an inbound message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if messageID == "" {
		return &ValidationError{Field: "message_id", Message: "message id is required"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.MarkMessageRead(ctx, phoneNumberID, messageID))
}

// validateMedia checks that media points at exactly one source.
func validateMedia(field string, m Media) error {
	if m.ID == "" && m.Link == "" {
		return &ValidationError{Field: field, Message: "media requires an id or a link"}
	}
	if m.ID != "" && m.Link != "" {
		return &ValidationError{Field: field, Message: "media id and link are mutually exclusive"}
	}
	return nil
}
