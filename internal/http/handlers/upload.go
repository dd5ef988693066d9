package handlers

import (
	"io"
	"net/http"
	"path"
	"strings"

	"kuugen/internal/blobstore"
	"kuugen/internal/messages"
	"kuugen/internal/middleware"
)

// maxUploadBytes is the source photo size ceiling.
const maxUploadBytes = 10 << 20

var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type uploadResponse struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType"`
}

// Upload accepts a source photo and stores it under the uploads/ namespace
// with a random-suffixed key. Clients that can talk to the storage provider
// directly bypass this and only send the resulting URL to Generate; this
// path covers everything else.
func (a *App) Upload(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())
	log := a.Logger.With().Str("request_id", requestID).Logger()

	if err := r.ParseMultipartForm(maxUploadBytes + (1 << 20)); err != nil {
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyUploadFailed, nil)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyUploadFailed, nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedUploadTypes[contentType]; !ok {
		log.Warn().Str("content_type", contentType).Msg("upload: rejected content type")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyUploadBadType, nil)
		return
	}
	lower := strings.ToLower(header.Filename)
	if !strings.HasSuffix(lower, ".jpg") && !strings.HasSuffix(lower, ".jpeg") && !strings.HasSuffix(lower, ".png") {
		log.Warn().Str("filename", header.Filename).Msg("upload: rejected file extension")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyUploadBadType, nil)
		return
	}
	if header.Size > maxUploadBytes {
		log.Warn().Int64("size", header.Size).Msg("upload: rejected oversized file")
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyUploadTooLarge, nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		a.errorKey(w, r, http.StatusBadRequest, messages.KeyUploadFailed, nil)
		return
	}

	key := blobstore.NewKey(blobstore.PrefixUploads, contentType)
	url, err := a.Store.Upload(r.Context(), key, data, contentType)
	if err != nil {
		log.Error().Err(err).Msg("upload: store upload failed")
		a.errorKey(w, r, http.StatusInternalServerError, messages.KeyUploadFailed, debugDetail(err))
		return
	}

	log.Info().
		Str("key", key).
		Int("bytes", len(data)).
		Str("content_type", contentType).
		Msg("upload: blob stored")

	a.json(w, http.StatusOK, uploadResponse{
		URL:         url,
		Pathname:    path.Base(key),
		ContentType: contentType,
	})
}
