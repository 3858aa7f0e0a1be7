package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateQRCode creates a message QR code with a prefilled message.
func (c *Client) CreateQRCode(ctx context.Context, phoneNumberID, prefilledMessage, imageFormat string) (*QRCodeDTO, error) {
	path := fmt.Sprintf("/%s/message_qrdls?prefilled_message=%s&generate_qr_image=%s",
		url.PathEscape(phoneNumberID),
		url.QueryEscape(prefilledMessage),
		url.QueryEscape(imageFormat))

	var result QRCodeDTO
	if err := c.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListQRCodes returns all message QR codes for a phone number.
func (c *Client) ListQRCodes(ctx context.Context, phoneNumberID string) (*QRCodeListResponse, error) {
	path := fmt.Sprintf("/%s/message_qrdls", url.PathEscape(phoneNumberID))
	var result QRCodeListResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetQRCode returns a single message QR code by code, or nil when the
// code matches nothing.
func (c *Client) GetQRCode(ctx context.Context, phoneNumberID, code string) (*QRCodeDTO, error) {
	path := fmt.Sprintf("/%s/message_qrdls/%s", url.PathEscape(phoneNumberID), url.PathEscape(code))
	var result QRCodeListResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, nil
	}
	return &result.Data[0], nil
}

// DeleteQRCode deletes a message QR code by code.
func (c *Client) DeleteQRCode(ctx context.Context, phoneNumberID, code string) error {
	path := fmt.Sprintf("/%s/message_qrdls/%s", url.PathEscape(phoneNumberID), url.PathEscape(code))
	var result SuccessResponse
	return c.Do(ctx, http.MethodDelete, path, nil, &result)
}
