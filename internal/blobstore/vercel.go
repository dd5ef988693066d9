package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// VercelOptions configures the Vercel Blob backend.
type VercelOptions struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// VercelStore talks to the Vercel Blob HTTP API. Objects are stored with
// public access; the returned URL lives on the provider's public-read
// domain, which is also what the source allow-list checks against.
type VercelStore struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewVercelStore builds a store client. The token is required at call time,
// not construction time, so tests can build unconfigured stores.
func NewVercelStore(opts VercelOptions) *VercelStore {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://blob.vercel-storage.com"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &VercelStore{
		httpClient: client,
		baseURL:    base,
		token:      strings.TrimSpace(opts.Token),
	}
}

type vercelPutResponse struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
}

type vercelErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Upload stores the bytes under key with public access and returns the
// public URL.
func (s *VercelStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.token == "" {
		return "", errors.New("blobstore: vercel token is missing")
	}
	endpoint := s.baseURL + "/" + strings.TrimLeft(key, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("blobstore: create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-Api-Version", "7")
	req.Header.Set("X-Content-Type", contentType)
	req.Header.Set("X-Access", "public")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("blobstore: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", apiError("upload", resp)
	}
	var parsed vercelPutResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("blobstore: decode upload response: %w", err)
	}
	if parsed.URL == "" {
		return "", errors.New("blobstore: upload response missing url")
	}
	return parsed.URL, nil
}

// Delete removes the object at the given public URL.
func (s *VercelStore) Delete(ctx context.Context, url string) error {
	if s.token == "" {
		return errors.New("blobstore: vercel token is missing")
	}
	body, err := json.Marshal(map[string][]string{"urls": {url}})
	if err != nil {
		return fmt.Errorf("blobstore: marshal delete request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/delete", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("blobstore: create delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-Api-Version", "7")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("blobstore: delete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError("delete", resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func apiError(op string, resp *http.Response) error {
	var parsed vercelErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return fmt.Errorf("blobstore: %s status %d: %s", op, resp.StatusCode, parsed.Error.Message)
	}
	return fmt.Errorf("blobstore: %s status %d", op, resp.StatusCode)
}

var _ Store = (*VercelStore)(nil)
