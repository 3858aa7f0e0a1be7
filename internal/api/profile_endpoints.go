package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// defaultProfileFields is the field list requested when the caller does
// not narrow it.
var defaultProfileFields = []string{
	"about", "address", "description", "email",
	"profile_picture_url", "vertical", "websites",
}

// GetBusinessProfile returns the business profile of a phone number.
// fields narrows the returned field list; nil requests all fields.
func (c *Client) GetBusinessProfile(ctx context.Context, phoneNumberID string, fields []string) (*BusinessProfileDTO, error) {
	if len(fields) == 0 {
		fields = defaultProfileFields
	}
	path := fmt.Sprintf("/%s/whatsapp_business_profile?fields=%s",
		url.PathEscape(phoneNumberID), url.QueryEscape(strings.Join(fields, ",")))

	var result BusinessProfileResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return &BusinessProfileDTO{}, nil
	}
	return &result.Data[0], nil
}

// UpdateBusinessProfile updates the business profile of a phone number.
func (c *Client) UpdateBusinessProfile(ctx context.Context, phoneNumberID string, profile *BusinessProfileDTO) error {
	req := *profile
	req.MessagingProduct = "whatsapp"
	path := fmt.Sprintf("/%s/whatsapp_business_profile", url.PathEscape(phoneNumberID))
	var result SuccessResponse
	return c.Do(ctx, http.MethodPost, path, &req, &result)
}
