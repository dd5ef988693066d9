package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"kuugen/internal/domain"
	"kuugen/internal/messages"
)

// DefaultSourceHostSuffix is the public-read domain of the storage provider
// that uploads land on. Anything else is refused before a byte is fetched.
const DefaultSourceHostSuffix = "public.blob.vercel-storage.com"

// maxSourceBytes bounds how much of a source image is read.
const maxSourceBytes = 32 << 20

// ValidateSourceURL enforces the source allow-list: https only, host ending
// with the storage provider's domain suffix. Violations are validation
// errors, reported before any network activity.
func ValidateSourceURL(rawURL, hostSuffix string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return domain.NewValidationError(messages.KeyInvalidSource)
	}
	if u.Scheme != "https" {
		return domain.NewValidationError(messages.KeyInvalidSource)
	}
	host := strings.ToLower(u.Hostname())
	suffix := strings.ToLower(strings.TrimPrefix(hostSuffix, "."))
	if host != suffix && !strings.HasSuffix(host, "."+suffix) {
		return domain.NewValidationError(messages.KeyInvalidSource)
	}
	return nil
}

type sourceBlob struct {
	data        []byte
	contentType string
}

// SourceFetcher downloads uploaded source images. Re-generating with the
// same upload is the common flow, so fetched bytes are cached for a short
// TTL, and concurrent fetches of one URL are collapsed to a single request.
type SourceFetcher struct {
	httpClient *http.Client
	cache      *gocache.Cache
	group      singleflight.Group
}

// NewSourceFetcher builds a fetcher with a nil-safe HTTP client.
func NewSourceFetcher(httpClient *http.Client) *SourceFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &SourceFetcher{
		httpClient: httpClient,
		cache:      gocache.New(2*time.Minute, 5*time.Minute),
	}
}

// Fetch downloads the source image and returns its bytes and content type.
// Failures wrap domain.ErrSourceFetch; callers report them without retry.
func (f *SourceFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	if cached, ok := f.cache.Get(rawURL); ok {
		blob := cached.(sourceBlob)
		return blob.data, blob.contentType, nil
	}
	v, err, _ := f.group.Do(rawURL, func() (any, error) {
		blob, err := f.download(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		f.cache.SetDefault(rawURL, blob)
		return blob, nil
	})
	if err != nil {
		return nil, "", err
	}
	blob := v.(sourceBlob)
	return blob.data, blob.contentType, nil
}

func (f *SourceFetcher) download(ctx context.Context, rawURL string) (sourceBlob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return sourceBlob{}, fmt.Errorf("%w: create request: %v", domain.ErrSourceFetch, err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return sourceBlob{}, fmt.Errorf("%w: %v", domain.ErrSourceFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return sourceBlob{}, fmt.Errorf("%w: status %d", domain.ErrSourceFetch, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return sourceBlob{}, fmt.Errorf("%w: read body: %v", domain.ErrSourceFetch, err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return sourceBlob{data: data, contentType: contentType}, nil
}
