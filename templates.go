package wacloud

import (
	"context"

	"github.com/wacloud/client-go/internal/api"
)

// Template definition blocks share their JSON shape with the transport.
type (
	// TemplateDefComponent is one component of a template definition.
	TemplateDefComponent = api.TemplateComponentDTO
	// TemplateButton is one button in a template definition.
	TemplateButton = api.TemplateButtonDTO
)

// Template is a message template registered on a business account.
type Template struct {
	ID         string
	Name       string
	Language   string
	Category   string
	Status     string
	Components []TemplateDefComponent
}

func templateFromDTO(dto api.TemplateDTO) Template {
	return Template{
		ID:         dto.ID,
		Name:       dto.Name,
		Language:   dto.Language,
		Category:   dto.Category,
		Status:     dto.Status,
		Components: dto.Components,
	}
}

// TemplatePage is one page of the template list.
type TemplatePage struct {
	Templates []Template
	// NextCursor is the cursor for the next page, empty on the last page.
	NextCursor string
}

// ListTemplates returns one page of the account's message templates.
// Pass an empty cursor for the first page; use NextCursor to continue.
func (c *Client) ListTemplates(ctx context.Context, cursor string) (*TemplatePage, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	wabaID, err := c.accountID()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ListTemplates(ctx, wabaID, cursor)
	if err != nil {
		return nil, wrapError(err)
	}

	page := &TemplatePage{Templates: make([]Template, 0, len(resp.Data))}
	for _, dto := range resp.Data {
		page.Templates = append(page.Templates, templateFromDTO(dto))
	}
	if resp.Paging != nil && resp.Paging.Next != "" {
		page.NextCursor = resp.Paging.Cursors.After
	}
	return page, nil
}

// ListAllTemplates walks every page and returns the full template list.
func (c *Client) ListAllTemplates(ctx context.Context) ([]Template, error) {
	var all []Template
	cursor := ""
	for {
		page, err := c.ListTemplates(ctx, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Templates...)
		if page.NextCursor == "" {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

// CreateTemplate submits a new message template for review. The returned
// template carries the assigned id and initial review status.
func (c *Client) CreateTemplate(ctx context.Context, name, language, category string, components []TemplateDefComponent) (*Template, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "template name is required"}
	}
	if language == "" {
		return nil, &ValidationError{Field: "language", Message: "template language is required"}
	}
	if category == "" {
		return nil, &ValidationError{Field: "category", Message: "template category is required"}
	}
	wabaID, err := c.accountID()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.CreateTemplate(ctx, wabaID, &api.CreateTemplateRequest{
		Name:       name,
		Language:   language,
		Category:   category,
		Components: components,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	return &Template{
		ID:         resp.ID,
		Name:       name,
		Language:   language,
		Category:   resp.Category,
		Status:     resp.Status,
		Components: components,
	}, nil
}

// DeleteTemplate deletes a template by name. All translations of the
// template are removed.
func (c *Client) DeleteTemplate(ctx context.Context, name string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if name == "" {
		return &ValidationError{Field: "name", Message: "template name is required"}
	}
	wabaID, err := c.accountID()
	if err != nil {
		return err
	}
	return wrapError(c.apiClient.DeleteTemplate(ctx, wabaID, name))
}
