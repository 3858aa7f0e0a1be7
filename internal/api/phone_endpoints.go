package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wacloud/client-go/internal/apierrors"
)

// ListPhoneNumbers returns the phone numbers of a business account.
func (c *Client) ListPhoneNumbers(ctx context.Context, wabaID string) (*PhoneNumberListResponse, error) {
	path := fmt.Sprintf("/%s/phone_numbers", url.PathEscape(wabaID))
	var result PhoneNumberListResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourcePhoneNumber)
	}
	return &result, nil
}

// GetPhoneNumber returns a single phone number node.
func (c *Client) GetPhoneNumber(ctx context.Context, phoneNumberID string) (*PhoneNumberDTO, error) {
	path := fmt.Sprintf("/%s", url.PathEscape(phoneNumberID))
	var result PhoneNumberDTO
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourcePhoneNumber)
	}
	return &result, nil
}

// RequestVerificationCode asks the provider to send a verification code
// to the phone number. method is "SMS" or "VOICE".
func (c *Client) RequestVerificationCode(ctx context.Context, phoneNumberID, method, language string) error {
	path := fmt.Sprintf("/%s/request_code", url.PathEscape(phoneNumberID))
	req := map[string]string{
		"code_method": method,
		"language":    language,
	}
	var result SuccessResponse
	err := c.Do(ctx, http.MethodPost, path, req, &result)
	return apierrors.WithResourceType(err, apierrors.ResourcePhoneNumber)
}

// VerifyCode submits a received verification code.
func (c *Client) VerifyCode(ctx context.Context, phoneNumberID, code string) error {
	path := fmt.Sprintf("/%s/verify_code", url.PathEscape(phoneNumberID))
	req := map[string]string{"code": code}
	var result SuccessResponse
	err := c.Do(ctx, http.MethodPost, path, req, &result)
	return apierrors.WithResourceType(err, apierrors.ResourcePhoneNumber)
}

// RegisterPhone registers a phone number for Cloud API use with a
// six-digit two-step verification pin.
func (c *Client) RegisterPhone(ctx context.Context, phoneNumberID, pin string) error {
	path := fmt.Sprintf("/%s/register", url.PathEscape(phoneNumberID))
	req := map[string]string{
		"messaging_product": "whatsapp",
		"pin":               pin,
	}
	var result SuccessResponse
	err := c.Do(ctx, http.MethodPost, path, req, &result)
	return apierrors.WithResourceType(err, apierrors.ResourcePhoneNumber)
}

// DeregisterPhone removes a phone number from Cloud API use.
func (c *Client) DeregisterPhone(ctx context.Context, phoneNumberID string) error {
	path := fmt.Sprintf("/%s/deregister", url.PathEscape(phoneNumberID))
	var result SuccessResponse
	err := c.Do(ctx, http.MethodPost, path, nil, &result)
	return apierrors.WithResourceType(err, apierrors.ResourcePhoneNumber)
}
