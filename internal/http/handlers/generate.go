package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"kuugen/internal/domain"
	"kuugen/internal/genai"
	"kuugen/internal/imagegen"
	"kuugen/internal/infra"
	"kuugen/internal/messages"
	"kuugen/internal/middleware"
	"kuugen/internal/pipeline"
)

// maxInlineImageBytes bounds the legacy inline-image submission path.
const maxInlineImageBytes = 10 << 20

type generateResponse struct {
	Model          string `json:"model"`
	ResultLocation string `json:"resultLocation"`
	MIMEType       string `json:"mimeType"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// Generate is the submission entry point: it validates the multipart
// payload, builds the instruction and drives the blob lifecycle pipeline.
// Validation fails fast, each step with its own message, before any
// external cost is incurred.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.RequestIDFromContext(r.Context())
	log := a.Logger.With().Str("request_id", requestID).Logger()

	log.Info().
		Str("method", r.Method).
		Str("user_agent", r.UserAgent()).
		Msg("generate: request received")

	if err := r.ParseMultipartForm(maxInlineImageBytes + (1 << 20)); err != nil {
		log.Warn().Err(err).Msg("generate: malformed multipart payload")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyMissingFields, nil)
		return
	}

	imageURL := r.FormValue("imageUrl")
	sel := imagegen.Selection{
		CaptionID:     r.FormValue("textPhraseId"),
		CustomCaption: r.FormValue("textPhraseCustom"),
		StyleIDs:      imagegen.SplitStyleIDs(r.FormValue("styleIds")),
		PlacementID:   r.FormValue("positionId"),
	}
	sel.OriginalWidth = parseDimension(r.FormValue("originalWidth"))
	sel.OriginalHeight = parseDimension(r.FormValue("originalHeight"))
	mode := imagegen.NormalizeMode(r.FormValue("mode"))

	inlineData, inlineMIME := a.readInlineImage(r, &log)

	log.Info().
		Bool("has_image_url", imageURL != "").
		Bool("has_inline_image", len(inlineData) > 0).
		Str("caption_id", sel.CaptionID).
		Bool("has_custom_caption", sel.CustomCaption != "").
		Int("style_count", len(sel.StyleIDs)).
		Str("position_id", sel.PlacementID).
		Str("mode", string(mode)).
		Msg("generate: parameters extracted")

	// (1) presence of everything the pipeline needs
	hasImage := imageURL != "" || len(inlineData) > 0
	hasCaption := sel.CaptionID != "" || sel.CustomCaption != ""
	if !hasImage || !hasCaption || len(sel.StyleIDs) == 0 || sel.PlacementID == "" {
		log.Warn().Msg("generate: validation failed: missing required fields")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyMissingFields, nil)
		return
	}

	// (2) output format
	format, ok := imagegen.ParseOutputFormat(r.FormValue("outputFormat"))
	if !ok {
		log.Warn().Str("output_format", r.FormValue("outputFormat")).Msg("generate: validation failed: invalid output format")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyInvalidFormat, nil)
		return
	}
	sel.OutputFormat = format

	// (3) every style id must resolve
	for _, id := range sel.StyleIDs {
		if _, ok := a.Catalogs.StyleByID(id); !ok {
			log.Warn().Str("style_id", id).Msg("generate: validation failed: unknown style id")
			a.errorKey(w, r, http.StatusBadRequest, messages.KeyInvalidSelection, nil)
			return
		}
	}

	// (4) full selection check, including caption/custom interplay
	if !imagegen.ValidateSelection(sel.CaptionID, sel.CustomCaption, sel.StyleIDs, sel.PlacementID, a.Catalogs) {
		log.Warn().Msg("generate: validation failed: selection incomplete")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyInvalidSelection, nil)
		return
	}

	// (5) a usable caption text must come out of it
	captionText := sel.CaptionText(a.Catalogs)
	if captionText == "" {
		log.Warn().Str("caption_id", sel.CaptionID).Msg("generate: validation failed: caption text not found")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyInvalidCaption, nil)
		return
	}

	// (6) at least one full style record
	styles := a.Catalogs.ResolveStyles(sel.StyleIDs)
	if len(styles) == 0 {
		log.Warn().Msg("generate: validation failed: no styles resolved")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyNoValidStyles, nil)
		return
	}

	// (7) the placement record
	placement, ok := a.Catalogs.PlacementByID(sel.PlacementID)
	if !ok {
		log.Warn().Str("position_id", sel.PlacementID).Msg("generate: validation failed: unknown placement id")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyInvalidPlacement, nil)
		return
	}

	log.Info().Msg("generate: validation passed")

	instruction := imagegen.BuildInstruction(captionText, styles, placement, mode)
	log.Info().Int("instruction_length", len(instruction)).Msg("generate: instruction built")

	result, err := a.Coordinator.Run(r.Context(), pipeline.Request{
		SourceURL:      imageURL,
		InlineData:     inlineData,
		InlineMIME:     inlineMIME,
		Instruction:    instruction,
		OutputFormat:   sel.OutputFormat,
		OriginalWidth:  sel.OriginalWidth,
		OriginalHeight: sel.OriginalHeight,
		RequestID:      requestID,
	})
	if err != nil {
		a.generateError(w, r, &log, err, time.Since(start))
		return
	}

	log.Info().
		Str("result_location", result.ResultLocation).
		Str("mime_type", result.MIMEType).
		Dur("total_elapsed", time.Since(start)).
		Msg("generate: sending success response")

	a.json(w, http.StatusOK, generateResponse{
		Model:          a.Model,
		ResultLocation: result.ResultLocation,
		MIMEType:       result.MIMEType,
		Width:          result.Width,
		Height:         result.Height,
	})
}

// generateError maps pipeline failures onto the stable error taxonomy.
func (a *App) generateError(w http.ResponseWriter, r *http.Request, log *infra.Logger, err error, elapsed time.Duration) {
	log.Error().Err(err).Dur("total_elapsed", elapsed).Msg("generate: pipeline failed")

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		a.errorKey(w, r, http.StatusBadRequest, ve.MessageKey, nil)
	case errors.Is(err, domain.ErrSourceFetch):
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyFetchFailed, debugDetail(err))
	case errors.Is(err, domain.ErrResultTooLarge):
		a.errorKey(w, r, http.StatusRequestEntityTooLarge, messages.KeyResultTooLarge, debugDetail(err))
	default:
		a.errorKey(w, r, http.StatusInternalServerError, messages.KeyGenerationFailed, debugDetail(err))
	}
}

// debugDetail extracts whatever structure the failure carries for the
// non-production debug field.
func debugDetail(err error) map[string]any {
	detail := map[string]any{"message": err.Error()}
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		detail["status"] = apiErr.StatusCode
		if apiErr.VendorStatus != "" {
			detail["vendorStatus"] = apiErr.VendorStatus
		}
		if len(apiErr.Body) > 0 {
			body := apiErr.Body
			if len(body) > 2048 {
				body = body[:2048]
			}
			detail["vendorBody"] = string(body)
		}
	}
	return detail
}

// readInlineImage drains the legacy "image" file field when present.
func (a *App) readInlineImage(r *http.Request, log *infra.Logger) ([]byte, string) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, ""
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxInlineImageBytes))
	if err != nil {
		log.Warn().Err(err).Msg("generate: failed to read inline image")
		return nil, ""
	}
	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return data, mime
}

func parseDimension(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
