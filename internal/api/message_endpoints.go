package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SendMessage posts a message request to a phone number node.
func (c *Client) SendMessage(ctx context.Context, phoneNumberID string, req *MessageRequest) (*SendMessageResponse, error) {
	var result SendMessageResponse
	path := fmt.Sprintf("/%s/messages", url.PathEscape(phoneNumberID))
	if err := c.Do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkMessageRead marks an inbound message as read.
func (c *Client) MarkMessageRead(ctx context.Context, phoneNumberID, messageID string) error {
	req := &StatusRequest{
		MessagingProduct: "whatsapp",
		Status:           "read",
		MessageID:        messageID,
	}
	path := fmt.Sprintf("/%s/messages", url.PathEscape(phoneNumberID))
	var result SuccessResponse
	return c.Do(ctx, http.MethodPost, path, req, &result)
}
