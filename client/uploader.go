package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"team-chat/errors"
	"time"
)

// HTTPUploader posts raw bytes to an upload url and reads the storage id
// from the JSON body.
type HTTPUploader struct {
	client *http.Client
}

func NewHTTPUploader(timeout time.Duration) *HTTPUploader {
	return &HTTPUploader{client: &http.Client{Timeout: timeout}}
}

func (u *HTTPUploader) Upload(ctx context.Context, url, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errors.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", errors.ErrUploadFailed, resp.StatusCode)
	}
	var result struct {
		StorageID string `json:"storageId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %s", errors.ErrUploadFailed, err)
	}
	if result.StorageID == "" {
		return "", fmt.Errorf("%w: empty storage id", errors.ErrUploadFailed)
	}
	return result.StorageID, nil
}
