package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wacloud/client-go/internal/apierrors"
)

// ListTemplates returns one page of message templates for a business
// account. An empty after cursor requests the first page.
func (c *Client) ListTemplates(ctx context.Context, wabaID, after string) (*TemplateListResponse, error) {
	path := fmt.Sprintf("/%s/message_templates", url.PathEscape(wabaID))
	if after != "" {
		path += "?after=" + url.QueryEscape(after)
	}
	var result TemplateListResponse
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceTemplate)
	}
	return &result, nil
}

// CreateTemplate submits a new message template for review.
func (c *Client) CreateTemplate(ctx context.Context, wabaID string, req *CreateTemplateRequest) (*CreateTemplateResponse, error) {
	path := fmt.Sprintf("/%s/message_templates", url.PathEscape(wabaID))
	var result CreateTemplateResponse
	if err := c.Do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceTemplate)
	}
	return &result, nil
}

// DeleteTemplate deletes all translations of a template by name.
func (c *Client) DeleteTemplate(ctx context.Context, wabaID, name string) error {
	path := fmt.Sprintf("/%s/message_templates?name=%s", url.PathEscape(wabaID), url.QueryEscape(name))
	var result SuccessResponse
	err := c.Do(ctx, http.MethodDelete, path, nil, &result)
	return apierrors.WithResourceType(err, apierrors.ResourceTemplate)
}
