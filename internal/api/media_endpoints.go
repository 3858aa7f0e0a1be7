package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wacloud/client-go/internal/apierrors"
)

// UploadMedia uploads media bytes and returns the assigned media id.
func (c *Client) UploadMedia(ctx context.Context, phoneNumberID, filename, contentType string, data []byte) (*UploadMediaResponse, error) {
	path := fmt.Sprintf("/%s/media", url.PathEscape(phoneNumberID))
	var result UploadMediaResponse
	if err := c.DoUpload(ctx, path, filename, contentType, data, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceMedia)
	}
	return &result, nil
}

// GetMedia returns media metadata including the short-lived download URL.
func (c *Client) GetMedia(ctx context.Context, mediaID string) (*MediaDTO, error) {
	path := fmt.Sprintf("/%s", url.PathEscape(mediaID))
	var result MediaDTO
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceMedia)
	}
	return &result, nil
}

// DeleteMedia deletes an uploaded media object.
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) error {
	path := fmt.Sprintf("/%s", url.PathEscape(mediaID))
	var result SuccessResponse
	err := c.Do(ctx, http.MethodDelete, path, nil, &result)
	return apierrors.WithResourceType(err, apierrors.ResourceMedia)
}

// DownloadMedia fetches media content from its CDN URL.
func (c *Client) DownloadMedia(ctx context.Context, mediaURL string) ([]byte, error) {
	data, err := c.DoDownload(ctx, mediaURL)
	if err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceMedia)
	}
	return data, nil
}
