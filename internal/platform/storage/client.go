package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client uploads objects to a Supabase-style storage API and hands back the
// public URL. Callers never see the bytes again, only the URL.
type Client struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
	HTTP       *http.Client
}

func New(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		Bucket:     bucket,
		HTTP:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether uploads can be attempted at all.
func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != "" && c.Bucket != ""
}

// Upload stores data under key and returns the object's public URL.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("storage: client not configured")
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.Bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: create request failed: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	if c.ServiceKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage: upload failed (%d): %s", resp.StatusCode, string(body))
	}

	return c.PublicURL(key), nil
}

// PublicURL returns the public URL for an already uploaded key.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, c.Bucket, key)
}
