package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"kuugen/internal/blobstore"
	"kuugen/internal/catalog"
	"kuugen/internal/genai"
	"kuugen/internal/infra"
	"kuugen/internal/pipeline"
)

func fixtureCatalogs() *catalog.Catalogs {
	return catalog.New(
		[]catalog.Caption{{ID: "kuu", Label: "くぅー", Text: "くぅー"}},
		[]catalog.Style{
			{ID: "gentle", Label: "優しい", PromptHint: "優しい雰囲気"},
			{ID: "pop", Label: "ポップ", PromptHint: "ポップな色使い"},
		},
		[]catalog.Placement{{ID: "bottom-right", Label: "右下", PlacementHint: "画像の右下"}},
	)
}

type stubGenerator struct {
	calls int
	resp  *genai.EditResponse
	err   error

	lastInstruction string
}

func (g *stubGenerator) EditImage(ctx context.Context, req genai.EditRequest) (*genai.EditResponse, error) {
	g.calls++
	g.lastInstruction = req.Instruction
	if g.err != nil {
		return nil, g.err
	}
	return g.resp, nil
}

type stubStore struct {
	uploads int
	deletes int
}

func (s *stubStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	s.uploads++
	return "https://store.example/" + key, nil
}

func (s *stubStore) Delete(ctx context.Context, url string) error {
	s.deletes++
	return nil
}

type appFixture struct {
	app    *App
	gen    *stubGenerator
	store  *stubStore
	source *httptest.Server
}

// newAppFixture wires a full App over a fake generator and store, with an
// HTTPS test server standing in for the storage provider's public domain.
func newAppFixture(t *testing.T, appEnv string, sourceHandler http.HandlerFunc) *appFixture {
	t.Helper()

	if sourceHandler == nil {
		sourceHandler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte("source-bytes"))
		}
	}
	source := httptest.NewTLSServer(sourceHandler)
	t.Cleanup(source.Close)
	u, err := url.Parse(source.URL)
	if err != nil {
		t.Fatalf("parse source url: %v", err)
	}

	gen := &stubGenerator{resp: &genai.EditResponse{Parts: []genai.InlinePart{
		{Data: []byte("generated-bytes"), MIMEType: "image/png"},
	}}}
	store := &stubStore{}

	logger := infra.Logger(zerolog.New(io.Discard))
	fetcher := pipeline.NewSourceFetcher(source.Client())
	coord := pipeline.NewCoordinator(fetcher, gen, store, u.Hostname(), &logger)

	cfg := &infra.Config{AppEnv: appEnv, DefaultLocale: "ja"}
	app := NewApp(cfg, &logger, fixtureCatalogs(), coord, store, "test-model")

	return &appFixture{app: app, gen: gen, store: store, source: source}
}

type formField struct{ name, value string }

func multipartRequest(t *testing.T, fields []formField) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			t.Fatalf("write field %s: %v", f.name, err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func validFields(sourceURL string) []formField {
	return []formField{
		{"imageUrl", sourceURL},
		{"textPhraseId", "kuu"},
		{"styleIds", "gentle,pop"},
		{"positionId", "bottom-right"},
		{"outputFormat", "png"},
		{"originalWidth", "800"},
		{"originalHeight", "600"},
	}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not json: %v: %s", err, rec.Body.String())
	}
	return body
}

func TestGenerateEndToEnd(t *testing.T) {
	fx := newAppFixture(t, "test", nil)

	req := multipartRequest(t, validFields(fx.source.URL+"/uploads/src.jpg"))
	rec := httptest.NewRecorder()
	fx.app.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decodeJSON(t, rec)
	if body["model"] != "test-model" {
		t.Fatalf("model = %v", body["model"])
	}
	loc, _ := body["resultLocation"].(string)
	if loc == "" {
		t.Fatalf("resultLocation missing: %v", body)
	}
	if body["mimeType"] != "image/png" {
		t.Fatalf("mimeType = %v", body["mimeType"])
	}
	if body["width"] != float64(800) || body["height"] != float64(600) {
		t.Fatalf("dimensions = %vx%v", body["width"], body["height"])
	}

	if fx.gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", fx.gen.calls)
	}
	// Both catalog hints made it into the instruction, deduplicated order.
	if !bytes.Contains([]byte(fx.gen.lastInstruction), []byte("優しい雰囲気、ポップな色使い")) {
		t.Fatalf("instruction missing style hints: %q", fx.gen.lastInstruction)
	}
	if !bytes.Contains([]byte(fx.gen.lastInstruction), []byte("「くぅー」")) {
		t.Fatalf("instruction missing caption: %q", fx.gen.lastInstruction)
	}
	if fx.store.uploads != 1 || fx.store.deletes != 1 {
		t.Fatalf("store uploads/deletes = %d/%d, want 1/1", fx.store.uploads, fx.store.deletes)
	}
}

func TestGenerateMissingStylesFailsBeforeAnyNetworkCall(t *testing.T) {
	fx := newAppFixture(t, "test", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("source fetch must not happen for an invalid submission")
	})

	fields := []formField{
		{"imageUrl", fx.source.URL + "/uploads/src.jpg"},
		{"textPhraseId", "kuu"},
		{"positionId", "bottom-right"},
		{"outputFormat", "png"},
	}
	rec := httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, fields))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["error"] != "必須項目が不足しています" {
		t.Fatalf("error = %v", body["error"])
	}
	if fx.gen.calls != 0 {
		t.Fatalf("generation must not run, calls = %d", fx.gen.calls)
	}
}

func TestGenerateSourceFetch404(t *testing.T) {
	fx := newAppFixture(t, "test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, validFields(fx.source.URL+"/uploads/missing.jpg")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["error"] != "画像の取得に失敗しました。再試行してください。" {
		t.Fatalf("error = %v", body["error"])
	}
	if fx.gen.calls != 0 {
		t.Fatalf("generation must not run after a fetch failure, calls = %d", fx.gen.calls)
	}
}

func TestGenerateValidationMessages(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(fields []formField) []formField
		wantError string
	}{
		{
			name: "invalid output format",
			mutate: func(fields []formField) []formField {
				for i := range fields {
					if fields[i].name == "outputFormat" {
						fields[i].value = "webp"
					}
				}
				return fields
			},
			wantError: "無効な出力形式です",
		},
		{
			name: "unknown style id",
			mutate: func(fields []formField) []formField {
				for i := range fields {
					if fields[i].name == "styleIds" {
						fields[i].value = "gentle,no-such-style"
					}
				}
				return fields
			},
			wantError: "無効な選択肢が含まれています",
		},
		{
			name: "unknown placement id",
			mutate: func(fields []formField) []formField {
				for i := range fields {
					if fields[i].name == "positionId" {
						fields[i].value = "nowhere"
					}
				}
				return fields
			},
			wantError: "無効な選択肢が含まれています",
		},
		{
			name: "unknown caption id",
			mutate: func(fields []formField) []formField {
				for i := range fields {
					if fields[i].name == "textPhraseId" {
						fields[i].value = "no-such-caption"
					}
				}
				return fields
			},
			wantError: "無効な選択肢が含まれています",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := newAppFixture(t, "test", func(w http.ResponseWriter, r *http.Request) {
				t.Errorf("no network call expected")
			})

			fields := tc.mutate(validFields(fx.source.URL + "/uploads/src.jpg"))
			rec := httptest.NewRecorder()
			fx.app.Generate(rec, multipartRequest(t, fields))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeJSON(t, rec)
			if body["error"] != tc.wantError {
				t.Fatalf("error = %v, want %q", body["error"], tc.wantError)
			}
			if fx.gen.calls != 0 {
				t.Fatalf("generation must not run")
			}
		})
	}
}

func TestGenerateCustomCaptionSkipsPresetResolution(t *testing.T) {
	fx := newAppFixture(t, "test", nil)

	fields := []formField{
		{"imageUrl", fx.source.URL + "/uploads/src.jpg"},
		{"textPhraseId", "no-such-caption"},
		{"textPhraseCustom", "hello"},
		{"styleIds", "gentle"},
		{"positionId", "bottom-right"},
		{"outputFormat", "jpeg"},
	}
	rec := httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, fields))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains([]byte(fx.gen.lastInstruction), []byte("「hello」")) {
		t.Fatalf("custom caption missing from instruction: %q", fx.gen.lastInstruction)
	}
}

func TestGenerateOversizedResultReturns413(t *testing.T) {
	fx := newAppFixture(t, "test", nil)
	fx.gen.resp = &genai.EditResponse{Parts: []genai.InlinePart{
		{Data: make([]byte, pipeline.MaxResultBytes+1), MIMEType: "image/png"},
	}}

	rec := httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, validFields(fx.source.URL+"/uploads/src.jpg")))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if fx.store.uploads != 0 {
		t.Fatalf("oversized result must not be persisted")
	}
}

func TestGenerateVendorFailureDebugGatedByEnvironment(t *testing.T) {
	vendorErr := &genai.APIError{StatusCode: 500, VendorStatus: "INTERNAL", Message: "boom"}

	fx := newAppFixture(t, "development", nil)
	fx.gen.err = vendorErr
	rec := httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, validFields(fx.source.URL+"/uploads/src.jpg")))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := decodeJSON(t, rec)
	debug, ok := body["debug"].(map[string]any)
	if !ok {
		t.Fatalf("development responses must carry debug detail: %v", body)
	}
	if debug["status"] != float64(500) || debug["vendorStatus"] != "INTERNAL" {
		t.Fatalf("debug = %v", debug)
	}

	fx = newAppFixture(t, "production", nil)
	fx.gen.err = vendorErr
	rec = httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, validFields(fx.source.URL+"/uploads/src.jpg")))
	body = decodeJSON(t, rec)
	if _, ok := body["debug"]; ok {
		t.Fatalf("production responses must not leak debug detail: %v", body)
	}
	if body["error"] != "画像生成に失敗しました。しばらくしてから再試行してください。" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestGenerateRejectsForeignSourceHost(t *testing.T) {
	fx := newAppFixture(t, "test", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no fetch expected for a disallowed host")
	})

	rec := httptest.NewRecorder()
	fx.app.Generate(rec, multipartRequest(t, validFields("https://example.com/image.png")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["error"] != "無効な画像URLが指定されています" {
		t.Fatalf("error = %v", body["error"])
	}
	if fx.gen.calls != 0 {
		t.Fatalf("generation must not run")
	}
}

var _ blobstore.Store = (*stubStore)(nil)
