package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"kuugen/internal/infra"
)

// Options controls how the generation client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger

	// Retry tuning. Zero values fall back to 3 attempts / 250ms base delay.
	MaxAttempts int
	BaseDelay   time.Duration

	// Limiter gates attempt starts against the vendor's rate limit. Nil
	// disables client-side gating.
	Limiter *rate.Limiter

	// Sleep is the backoff wait. Tests inject a no-op to avoid wall-clock
	// delays; nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Client calls the multimodal image-edit endpoint. One EditImage call covers
// the full retry policy: a 5xx from the vendor is retried with exponential
// backoff, everything else propagates immediately.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	httpClient  *http.Client
	logger      *infra.Logger
	maxAttempts int
	baseDelay   time.Duration
	limiter     *rate.Limiter
	sleep       func(ctx context.Context, d time.Duration) error
}

// EditRequest is one image-edit invocation: the instruction plus the source
// image bytes it applies to.
type EditRequest struct {
	Instruction string
	ImageData   []byte
	ImageMIME   string
	RequestID   string
}

// InlinePart is a response part carrying decoded binary content.
type InlinePart struct {
	Data     []byte
	MIMEType string
}

// EditResponse is the normalized vendor response: every inline part across
// all candidates, in order.
type EditResponse struct {
	Parts []InlinePart
}

// FirstInline returns the first part carrying data, or false if the vendor
// returned no usable image.
func (r *EditResponse) FirstInline() (InlinePart, bool) {
	for _, p := range r.Parts {
		if len(p.Data) > 0 {
			return p, true
		}
	}
	return InlinePart{}, false
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts,omitempty"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Status  string `json:"status,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a generation client with sane defaults.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := opts.Model
	if model == "" {
		model = "gemini-3-pro-image-preview"
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	baseDelay := opts.BaseDelay
	if baseDelay <= 0 {
		baseDelay = 250 * time.Millisecond
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	logger := opts.Logger
	if logger == nil {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}
	return &Client{
		apiKey:      strings.TrimSpace(opts.APIKey),
		baseURL:     baseURL,
		model:       model,
		httpClient:  httpClient,
		logger:      logger,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		limiter:     opts.Limiter,
		sleep:       sleep,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// EditImage sends the instruction plus inline image bytes and returns every
// inline part the vendor produced. The call is retried on 5xx only, up to
// the configured attempt budget, re-sending the full payload each time.
// The vendor occasionally mislabels request problems as 500s; re-sending
// the identical request is the accepted cost of the coarse policy.
func (c *Client) EditImage(ctx context.Context, req EditRequest) (*EditResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("genai: API key is missing")
	}
	if len(req.ImageData) == 0 {
		return nil, fmt.Errorf("genai: image data required")
	}
	mime := req.ImageMIME
	if mime == "" {
		mime = "image/png"
	}
	payload := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: req.Instruction},
				{InlineData: &inlineData{
					MimeType: mime,
					Data:     base64.StdEncoding.EncodeToString(req.ImageData),
				}},
			},
		}},
		GenerationConfig: &generationConfig{ResponseModalities: []string{"IMAGE"}},
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		resp, err := c.generateContent(ctx, payload)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !ClassifyRetryable(err) || attempt == c.maxAttempts {
			return nil, err
		}
		delay := c.baseDelay << (attempt - 1)
		c.logger.Warn().
			Int("attempt", attempt).
			Int("max_attempts", c.maxAttempts).
			Int("status", HTTPStatus(err)).
			Str("request_id", req.RequestID).
			Dur("delay", delay).
			Msgf("genai: retrying after vendor failure: %v", err)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) generateContent(ctx context.Context, payload generateContentRequest) (*EditResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("genai: marshal request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("genai: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("genai: invoke: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(httpResp)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("genai: decode response: %w", err)
	}

	out := &EditResponse{}
	for _, candidate := range parsed.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil || len(data) == 0 {
				continue
			}
			out.Parts = append(out.Parts, InlinePart{Data: data, MIMEType: p.InlineData.MimeType})
		}
	}
	return out, nil
}

func newAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	apiErr := &APIError{StatusCode: resp.StatusCode, Body: raw}
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		apiErr.Message = parsed.Error.Message
		apiErr.VendorStatus = parsed.Error.Status
	}
	return apiErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
