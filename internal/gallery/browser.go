// Package gallery is a read-only view into the studio's cloud media folder.
// It never touches the booking data model.
package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// MediaFile is one image or video in the cloud folder.
type MediaFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	ThumbnailURL string `json:"thumbnailLink"`
	ViewURL      string `json:"webViewLink"`
}

// Browser lists media files from wherever the studio keeps them.
type Browser interface {
	ListFiles(ctx context.Context) ([]MediaFile, error)
}

// HTTPBrowser lists files from a JSON endpoint. The endpoint returns an array
// of MediaFile objects in the drive wire format.
type HTTPBrowser struct {
	endpoint string
	http     *http.Client
}

// NewHTTPBrowser creates a browser against the given endpoint. An empty
// endpoint falls back to SHOOTSYNC_GALLERY_URL.
func NewHTTPBrowser(endpoint string) *HTTPBrowser {
	if endpoint == "" {
		endpoint = os.Getenv("SHOOTSYNC_GALLERY_URL")
	}
	return &HTTPBrowser{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *HTTPBrowser) ListFiles(ctx context.Context) ([]MediaFile, error) {
	if b.endpoint == "" {
		return nil, fmt.Errorf("gallery endpoint not configured (set SHOOTSYNC_GALLERY_URL)")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating gallery request: %w", err)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing gallery files: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gallery response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gallery endpoint returned status %d", resp.StatusCode)
	}

	var files []MediaFile
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, fmt.Errorf("decoding gallery response: %w", err)
	}
	return files, nil
}
