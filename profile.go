package wacloud

import (
	"context"

	"github.com/wacloud/client-go/internal/api"
)

// BusinessProfile is the public profile attached to a phone number.
type BusinessProfile struct {
	About             string
	Address           string
	Description       string
	Email             string
	ProfilePictureURL string
	Vertical          string
	Websites          []string
}

// GetBusinessProfile returns the business profile of the configured
// phone number. fields narrows the returned field list to the named
// profile fields; nil requests everything.
func (c *Client) GetBusinessProfile(ctx context.Context, fields ...string) (*BusinessProfile, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return nil, err
	}

	dto, err := c.apiClient.GetBusinessProfile(ctx, phoneNumberID, fields)
	if err != nil {
		return nil, wrapError(err)
	}
	return &BusinessProfile{
		About:             dto.About,
		Address:           dto.Address,
		Description:       dto.Description,
		Email:             dto.Email,
		ProfilePictureURL: dto.ProfilePictureURL,
		Vertical:          dto.Vertical,
		Websites:          dto.Websites,
	}, nil
}

// UpdateBusinessProfile updates the business profile of the configured
// phone number. Zero-valued fields are left unchanged on the provider
// side.
func (c *Client) UpdateBusinessProfile(ctx context.Context, profile BusinessProfile) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}

	return wrapError(c.apiClient.UpdateBusinessProfile(ctx, phoneNumberID, &api.BusinessProfileDTO{
		About:             profile.About,
		Address:           profile.Address,
		Description:       profile.Description,
		Email:             profile.Email,
		ProfilePictureURL: profile.ProfilePictureURL,
		Vertical:          profile.Vertical,
		Websites:          profile.Websites,
	}))
}
