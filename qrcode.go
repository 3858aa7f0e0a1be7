package wacloud

import (
	"context"

	"github.com/wacloud/client-go/internal/api"
)

// QRCode is a message QR code / short deep link that opens a chat with
// a prefilled message.
type QRCode struct {
	Code             string
	PrefilledMessage string
	DeepLinkURL      string
	QRImageURL       string
}

func qrCodeFromDTO(dto *api.QRCodeDTO) *QRCode {
	return &QRCode{
		Code:             dto.Code,
		PrefilledMessage: dto.PrefilledMessage,
		DeepLinkURL:      dto.DeepLinkURL,
		QRImageURL:       dto.QRImageURL,
	}
}

// CreateQRCode creates a message QR code. imageFormat selects the
// rendered image type, "PNG" or "SVG".
func (c *Client) CreateQRCode(ctx context.Context, prefilledMessage, imageFormat string) (*QRCode, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if prefilledMessage == "" {
		return nil, &ValidationError{Field: "prefilled_message", Message: "prefilled message is required"}
	}
	if imageFormat == "" {
		imageFormat = "PNG"
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return nil, err
	}

	dto, err := c.apiClient.CreateQRCode(ctx, phoneNumberID, prefilledMessage, imageFormat)
	if err != nil {
		return nil, wrapError(err)
	}
	return qrCodeFromDTO(dto), nil
}

// ListQRCodes returns all message QR codes of the configured phone number.
func (c *Client) ListQRCodes(ctx context.Context) ([]QRCode, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ListQRCodes(ctx, phoneNumberID)
	if err != nil {
		return nil, wrapError(err)
	}
	codes := make([]QRCode, 0, len(resp.Data))
	for i := range resp.Data {
		codes = append(codes, *qrCodeFromDTO(&resp.Data[i]))
	}
	return codes, nil
}

// GetQRCode returns a single message QR code. Returns ErrQRCodeNotFound
// when the code matches nothing.
func (c *Client) GetQRCode(ctx context.Context, code string) (*QRCode, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "QR code id is required"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return nil, err
	}

	dto, err := c.apiClient.GetQRCode(ctx, phoneNumberID, code)
	if err != nil {
		return nil, wrapError(err)
	}
	if dto == nil {
		return nil, ErrQRCodeNotFound
	}
	return qrCodeFromDTO(dto), nil
}

// DeleteQRCode deletes a message QR code.
func (c *Client) DeleteQRCode(ctx context.Context, code string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if code == "" {
		return &ValidationError{Field: "code", Message: "QR code id is required"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.DeleteQRCode(ctx, phoneNumberID, code))
}
