package api

// MessageRequest is the request envelope for POST /{phone_number_id}/messages.
// Exactly one content field matching Type is populated.
type MessageRequest struct {
	MessagingProduct string             `json:"messaging_product"`
	RecipientType    string             `json:"recipient_type,omitempty"`
	To               string             `json:"to"`
	Type             string             `json:"type"`
	Context          *MessageContext    `json:"context,omitempty"`
	Text             *TextContent       `json:"text,omitempty"`
	Image            *MediaRef          `json:"image,omitempty"`
	Audio            *MediaRef          `json:"audio,omitempty"`
	Video            *MediaRef          `json:"video,omitempty"`
	Document         *MediaRef          `json:"document,omitempty"`
	Sticker          *MediaRef          `json:"sticker,omitempty"`
	Location         *LocationContent   `json:"location,omitempty"`
	Contacts         []ContactCard      `json:"contacts,omitempty"`
	Reaction         *ReactionContent   `json:"reaction,omitempty"`
	Interactive      *InteractiveObject `json:"interactive,omitempty"`
	Template         *TemplateRef       `json:"template,omitempty"`
}

// MessageContext references the message being replied to.
type MessageContext struct {
	MessageID string `json:"message_id"`
}

// TextContent holds a text message body.
type TextContent struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

// MediaRef points at media either by uploaded id or by link. Caption and
// filename apply only to the media kinds that support them.
type MediaRef struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// LocationContent holds a location message.
type LocationContent struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// ContactCard is a single contact in a contacts message.
type ContactCard struct {
	Name   ContactName    `json:"name"`
	Phones []ContactPhone `json:"phones,omitempty"`
	Emails []ContactEmail `json:"emails,omitempty"`
	Org    *ContactOrg    `json:"org,omitempty"`
}

// ContactName holds the structured name of a contact.
type ContactName struct {
	FormattedName string `json:"formatted_name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
}

// ContactPhone is one phone entry on a contact card.
type ContactPhone struct {
	Phone string `json:"phone"`
	Type  string `json:"type,omitempty"`
	WaID  string `json:"wa_id,omitempty"`
}

// ContactEmail is one email entry on a contact card.
type ContactEmail struct {
	Email string `json:"email"`
	Type  string `json:"type,omitempty"`
}

// ContactOrg is the organization block on a contact card.
type ContactOrg struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

// ReactionContent holds an emoji reaction to a previous message. An empty
// emoji removes the reaction.
type ReactionContent struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// InteractiveObject is the envelope for interactive (button/list) messages.
type InteractiveObject struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveText   `json:"body,omitempty"`
	Footer *InteractiveText   `json:"footer,omitempty"`
	Action *InteractiveAction `json:"action,omitempty"`
}

// InteractiveHeader is the optional header of an interactive message.
type InteractiveHeader struct {
	Type  string    `json:"type"`
	Text  string    `json:"text,omitempty"`
	Image *MediaRef `json:"image,omitempty"`
	Video *MediaRef `json:"video,omitempty"`
}

// InteractiveText is a plain text block inside an interactive message.
type InteractiveText struct {
	Text string `json:"text"`
}

// InteractiveAction holds the buttons or list sections.
type InteractiveAction struct {
	Button   string              `json:"button,omitempty"`
	Buttons  []InteractiveButton `json:"buttons,omitempty"`
	Sections []ListSection       `json:"sections,omitempty"`
}

// InteractiveButton is one reply button.
type InteractiveButton struct {
	Type  string      `json:"type"`
	Reply ButtonReply `json:"reply"`
}

// ButtonReply is the id/title pair of a reply button.
type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListSection is one section of a list message.
type ListSection struct {
	Title string    `json:"title,omitempty"`
	Rows  []ListRow `json:"rows"`
}

// ListRow is one selectable row in a list section.
type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// TemplateRef references a pre-approved message template.
type TemplateRef struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

// TemplateLanguage selects the template translation.
type TemplateLanguage struct {
	Code string `json:"code"`
}

// TemplateComponent is one component (header/body/button) of a template send.
type TemplateComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is one substitution value in a template component.
type TemplateParameter struct {
	Type     string           `json:"type"`
	Text     string           `json:"text,omitempty"`
	Currency *CurrencyParam   `json:"currency,omitempty"`
	DateTime *DateTimeParam   `json:"date_time,omitempty"`
	Image    *MediaRef        `json:"image,omitempty"`
	Document *MediaRef        `json:"document,omitempty"`
	Video    *MediaRef        `json:"video,omitempty"`
	Payload  string           `json:"payload,omitempty"`
}

// CurrencyParam is a localized currency template value.
type CurrencyParam struct {
	FallbackValue string `json:"fallback_value"`
	Code          string `json:"code"`
	Amount1000    int64  `json:"amount_1000"`
}

// DateTimeParam is a localized date template value.
type DateTimeParam struct {
	FallbackValue string `json:"fallback_value"`
}

// SendMessageResponse is the response to a message send.
type SendMessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// StatusRequest marks an inbound message, e.g. as read.
type StatusRequest struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// SuccessResponse is the generic {"success":true} response.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Paging is the Graph API cursor paging block.
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// TemplateDTO is one message template as returned by the API.
type TemplateDTO struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Language   string                 `json:"language"`
	Category   string                 `json:"category"`
	Status     string                 `json:"status"`
	Components []TemplateComponentDTO `json:"components,omitempty"`
}

// TemplateComponentDTO is one component of a template definition.
type TemplateComponentDTO struct {
	Type    string              `json:"type"`
	Format  string              `json:"format,omitempty"`
	Text    string              `json:"text,omitempty"`
	Buttons []TemplateButtonDTO `json:"buttons,omitempty"`
}

// TemplateButtonDTO is one button in a template definition.
type TemplateButtonDTO struct {
	Type string `json:"type"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// TemplateListResponse is the paged template list.
type TemplateListResponse struct {
	Data   []TemplateDTO `json:"data"`
	Paging *Paging       `json:"paging,omitempty"`
}

// CreateTemplateRequest creates a new message template.
type CreateTemplateRequest struct {
	Name       string                 `json:"name"`
	Language   string                 `json:"language"`
	Category   string                 `json:"category"`
	Components []TemplateComponentDTO `json:"components"`
}

// CreateTemplateResponse is the response to template creation.
type CreateTemplateResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// UploadMediaResponse is the response to a media upload.
type UploadMediaResponse struct {
	ID string `json:"id"`
}

// MediaDTO describes an uploaded media object, including its short-lived
// CDN download URL.
type MediaDTO struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256"`
	FileSize int64  `json:"file_size"`
}

// BusinessProfileDTO is the business profile of a phone number.
type BusinessProfileDTO struct {
	About             string   `json:"about,omitempty"`
	Address           string   `json:"address,omitempty"`
	Description       string   `json:"description,omitempty"`
	Email             string   `json:"email,omitempty"`
	ProfilePictureURL string   `json:"profile_picture_url,omitempty"`
	Vertical          string   `json:"vertical,omitempty"`
	Websites          []string `json:"websites,omitempty"`
	MessagingProduct  string   `json:"messaging_product,omitempty"`
}

// BusinessProfileResponse wraps the profile list response.
type BusinessProfileResponse struct {
	Data []BusinessProfileDTO `json:"data"`
}

// QRCodeDTO is one message QR code / deep link.
type QRCodeDTO struct {
	Code             string `json:"code"`
	PrefilledMessage string `json:"prefilled_message"`
	DeepLinkURL      string `json:"deep_link_url"`
	QRImageURL       string `json:"qr_image_url,omitempty"`
}

// QRCodeListResponse is the QR code list.
type QRCodeListResponse struct {
	Data []QRCodeDTO `json:"data"`
}

// PhoneNumberDTO describes a registered phone number.
type PhoneNumberDTO struct {
	ID                 string `json:"id"`
	DisplayPhoneNumber string `json:"display_phone_number"`
	VerifiedName       string `json:"verified_name"`
	QualityRating      string `json:"quality_rating,omitempty"`
	CodeVerification   *struct {
		Status string `json:"status"`
	} `json:"code_verification_status,omitempty"`
}

// PhoneNumberListResponse is the paged phone number list.
type PhoneNumberListResponse struct {
	Data   []PhoneNumberDTO `json:"data"`
	Paging *Paging          `json:"paging,omitempty"`
}
