package wacloud

import (
	"context"
)

// MediaInfo describes an uploaded media object. URL is a short-lived
// CDN link; fetch it promptly with DownloadMedia.
type MediaInfo struct {
	ID       string
	URL      string
	MimeType string
	SHA256   string
	FileSize int64
}

// UploadMedia uploads media bytes for later use in messages and returns
// the assigned media id. contentType must be the MIME type of data.
func (c *Client) UploadMedia(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", &ValidationError{Field: "data", Message: "media content is empty"}
	}
	if contentType == "" {
		return "", &ValidationError{Field: "content_type", Message: "content type is required"}
	}
	phoneNumberID, err := c.senderID()
	if err != nil {
		return "", err
	}

	resp, err := c.apiClient.UploadMedia(ctx, phoneNumberID, filename, contentType, data)
	if err != nil {
		return "", wrapError(err)
	}
	return resp.ID, nil
}

// GetMediaInfo returns metadata for an uploaded media object, including
// its download URL.
func (c *Client) GetMediaInfo(ctx context.Context, mediaID string) (*MediaInfo, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	if mediaID == "" {
		return nil, &ValidationError{Field: "media_id", Message: "media id is required"}
	}

	dto, err := c.apiClient.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, wrapError(err)
	}
	return &MediaInfo{
		ID:       dto.ID,
		URL:      dto.URL,
		MimeType: dto.MimeType,
		SHA256:   dto.SHA256,
		FileSize: dto.FileSize,
	}, nil
}

// DownloadMedia fetches the content of an uploaded media object. It
// resolves the CDN URL via GetMediaInfo and downloads the bytes.
func (c *Client) DownloadMedia(ctx context.Context, mediaID string) ([]byte, error) {
	info, err := c.GetMediaInfo(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	data, err := c.apiClient.DownloadMedia(ctx, info.URL)
	if err != nil {
		return nil, wrapError(err)
	}
	return data, nil
}

// DeleteMedia deletes an uploaded media object.
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if mediaID == "" {
		return &ValidationError{Field: "media_id", Message: "media id is required"}
	}
	return wrapError(c.apiClient.DeleteMedia(ctx, mediaID))
}
