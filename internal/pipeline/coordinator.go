package pipeline

import (
	"context"
	"fmt"

	"kuugen/internal/blobstore"
	"kuugen/internal/domain"
	"kuugen/internal/genai"
	"kuugen/internal/imagegen"
	"kuugen/internal/infra"
)

// MaxResultBytes is the ceiling on a generated image. Results above it are
// rejected after generation but before persistence, protecting storage and
// transfer costs.
const MaxResultBytes = 20 << 20

// fallbackDimension is used when neither the vendor response nor the
// submission carries usable dimensions.
const fallbackDimension = 1024

// Generator is the image-edit call the coordinator drives. Satisfied by
// *genai.Client; tests substitute fakes.
type Generator interface {
	EditImage(ctx context.Context, req genai.EditRequest) (*genai.EditResponse, error)
}

// Request is one generation run: where the source bytes come from, the
// instruction to apply, and advisory sizing for the response.
type Request struct {
	// SourceURL points at the already-uploaded source blob. Ignored when
	// InlineData is set (legacy submissions carry the image inline).
	SourceURL  string
	InlineData []byte
	InlineMIME string

	Instruction  string
	OutputFormat imagegen.OutputFormat

	OriginalWidth  int
	OriginalHeight int

	RequestID string
}

// Coordinator owns the blob lifecycle of one generation request:
// fetch source, generate, size-check, persist, clean up the source.
// Each request runs as a single sequential pipeline; no state is shared
// between requests.
type Coordinator struct {
	fetcher    *SourceFetcher
	generator  Generator
	store      blobstore.Store
	hostSuffix string
	logger     *infra.Logger
}

// NewCoordinator wires the collaborators. hostSuffix is the allow-listed
// source domain; empty selects the default provider suffix.
func NewCoordinator(fetcher *SourceFetcher, generator Generator, store blobstore.Store, hostSuffix string, logger *infra.Logger) *Coordinator {
	if hostSuffix == "" {
		hostSuffix = DefaultSourceHostSuffix
	}
	return &Coordinator{
		fetcher:    fetcher,
		generator:  generator,
		store:      store,
		hostSuffix: hostSuffix,
		logger:     logger,
	}
}

// Run executes the pipeline and returns the persisted result. Error
// semantics follow the taxonomy: validation and fetch failures happen
// before any generation cost; generation failures leave the source blob in
// place so the user keeps their upload; a failed source delete after a
// persisted result is logged and swallowed.
func (c *Coordinator) Run(ctx context.Context, req Request) (*domain.GenerationResult, error) {
	sourceData := req.InlineData
	sourceMIME := req.InlineMIME
	fetchedFromStorage := false

	if len(sourceData) == 0 {
		if err := ValidateSourceURL(req.SourceURL, c.hostSuffix); err != nil {
			return nil, err
		}
		data, contentType, err := c.fetcher.Fetch(ctx, req.SourceURL)
		if err != nil {
			return nil, err
		}
		sourceData = data
		sourceMIME = contentType
		fetchedFromStorage = true
		c.logger.Info().
			Str("request_id", req.RequestID).
			Int("bytes", len(sourceData)).
			Str("content_type", sourceMIME).
			Msg("pipeline: source image fetched")
	}

	resp, err := c.generator.EditImage(ctx, genai.EditRequest{
		Instruction: req.Instruction,
		ImageData:   sourceData,
		ImageMIME:   sourceMIME,
		RequestID:   req.RequestID,
	})
	if err != nil {
		// The source blob stays untouched so a failed attempt does not
		// cost the user their upload.
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	inline, ok := resp.FirstInline()
	if !ok {
		return nil, domain.ErrNoImageReturned
	}
	mimeType := inline.MIMEType
	if mimeType == "" {
		mimeType = req.OutputFormat.MIMEType()
	}

	if len(inline.Data) > MaxResultBytes {
		return nil, fmt.Errorf("%w: %d bytes", domain.ErrResultTooLarge, len(inline.Data))
	}

	key := blobstore.NewKey(blobstore.PrefixGenerated, mimeType)
	resultURL, err := c.store.Upload(ctx, key, inline.Data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: persist result: %w", domain.ErrGenerationFailed, err)
	}
	c.logger.Info().
		Str("request_id", req.RequestID).
		Str("key", key).
		Int("bytes", len(inline.Data)).
		Msg("pipeline: result persisted")

	if fetchedFromStorage {
		if err := c.store.Delete(ctx, req.SourceURL); err != nil {
			// Best effort: the user already has their result, and the
			// orphaned upload is reclaimed by the provider's retention.
			c.logger.Warn().
				Err(err).
				Str("request_id", req.RequestID).
				Str("source_url", req.SourceURL).
				Msg("pipeline: source cleanup failed")
		}
	}

	width, height := req.OriginalWidth, req.OriginalHeight
	if width <= 0 {
		width = fallbackDimension
	}
	if height <= 0 {
		height = fallbackDimension
	}
	return &domain.GenerationResult{
		ResultLocation: resultURL,
		MIMEType:       mimeType,
		Width:          width,
		Height:         height,
	}, nil
}
