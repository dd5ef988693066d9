package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOptionsReturnsAllCatalogs(t *testing.T) {
	fx := newAppFixture(t, "test", nil)

	rec := httptest.NewRecorder()
	fx.app.Options(rec, httptest.NewRequest(http.MethodGet, "/api/options", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeJSON(t, rec)

	phrases, ok := body["textPhrases"].([]any)
	if !ok || len(phrases) != 1 {
		t.Fatalf("textPhrases = %v", body["textPhrases"])
	}
	styles, ok := body["styles"].([]any)
	if !ok || len(styles) != 2 {
		t.Fatalf("styles = %v", body["styles"])
	}
	positions, ok := body["positions"].([]any)
	if !ok || len(positions) != 1 {
		t.Fatalf("positions = %v", body["positions"])
	}

	first := phrases[0].(map[string]any)
	if first["id"] != "kuu" || first["text"] != "くぅー" {
		t.Fatalf("caption = %v", first)
	}
	style := styles[0].(map[string]any)
	if style["promptHint"] == "" {
		t.Fatalf("style must expose its prompt hint: %v", style)
	}
}

func TestHealth(t *testing.T) {
	fx := newAppFixture(t, "test", nil)

	rec := httptest.NewRecorder()
	fx.app.Health(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}
