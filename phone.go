package wacloud

import (
	"context"

	"github.com/wacloud/client-go/internal/api"
)

// PhoneNumber describes a phone number registered on a business account.
type PhoneNumber struct {
	ID                     string
	DisplayPhoneNumber     string
	VerifiedName           string
	QualityRating          string
	CodeVerificationStatus string
}

func phoneNumberFromDTO(dto *api.PhoneNumberDTO) PhoneNumber {
	pn := PhoneNumber{
		ID:                 dto.ID,
		DisplayPhoneNumber: dto.DisplayPhoneNumber,
		VerifiedName:       dto.VerifiedName,
		QualityRating:      dto.QualityRating,
	}
	if dto.CodeVerification != nil {
		pn.CodeVerificationStatus = dto.CodeVerification.Status
	}
	return pn
}

// ListPhoneNumbers returns the phone numbers of the configured business
// account.
func (c *Client) ListPhoneNumbers(ctx context.Context) ([]PhoneNumber, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	wabaID, err := c.accountID()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ListPhoneNumbers(ctx, wabaID)
	if err != nil {
		return nil, wrapError(err)
	}
	numbers := make([]PhoneNumber, 0, len(resp.Data))
	for i := range resp.Data {
		numbers = append(numbers, phoneNumberFromDTO(&resp.Data[i]))
	}
	return numbers, nil
}

// GetPhoneNumber returns a single phone number by id.
func (c *Client) GetPhoneNumber(ctx context.Context, phoneNumberID string) (*PhoneNumber, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if phoneNumberID == "" {
		return nil, &ValidationError{Field: "phone_number_id", Message: "phone number id is required"}
	}

	dto, err := c.apiClient.GetPhoneNumber(ctx, phoneNumberID)
	if err != nil {
		return nil, wrapError(err)
	}
	pn := phoneNumberFromDTO(dto)
	return &pn, nil
}

// RequestVerificationCode asks the provider to send a verification code
// to the configured phone number. method is "SMS" or "VOICE"; language
// is a locale code like "en_US".
func (c *Client) RequestVerificationCode(ctx context.Context, method, language string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if method != "SMS" && method != "VOICE" {
		return &ValidationError{Field: "code_method", Message: "code method must be SMS or VOICE"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.RequestVerificationCode(ctx, phoneNumberID, method, language))
}

// VerifyCode submits a verification code received by SMS or voice call.
func (c *Client) VerifyCode(ctx context.Context, code string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if code == "" {
		return &ValidationError{Field: "code", Message: "verification code is required"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.VerifyCode(ctx, phoneNumberID, code))
}

// RegisterPhone registers the configured phone number for Cloud API use.
// pin is the six-digit two-step verification pin.
func (c *Client) RegisterPhone(ctx context.Context, pin string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if len(pin) != 6 {
		return &ValidationError{Field: "pin", Message: "pin must be six digits"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.RegisterPhone(ctx, phoneNumberID, pin))
}

// DeregisterPhone removes the configured phone number from Cloud API use.
func (c *Client) DeregisterPhone(ctx context.Context) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.DeregisterPhone(ctx, phoneNumberID))
}
