package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVercelStoreUpload(t *testing.T) {
	var gotPath, gotAuth, gotAccess, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccess = r.Header.Get("X-Access")
		gotContentType = r.Header.Get("X-Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(vercelPutResponse{
			URL:         "https://abc.public.blob.vercel-storage.com/generated/a.png",
			Pathname:    "generated/a.png",
			ContentType: "image/png",
		})
	}))
	defer server.Close()

	store := NewVercelStore(VercelOptions{Token: "tok", BaseURL: server.URL})
	url, err := store.Upload(context.Background(), "generated/a.png", []byte("data"), "image/png")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if url != "https://abc.public.blob.vercel-storage.com/generated/a.png" {
		t.Fatalf("url = %q", url)
	}
	if gotPath != "/generated/a.png" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotAccess != "public" {
		t.Fatalf("access = %q, objects must be public-read", gotAccess)
	}
	if gotContentType != "image/png" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if string(gotBody) != "data" {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestVercelStoreUploadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":"forbidden","message":"bad token"}}`)
	}))
	defer server.Close()

	store := NewVercelStore(VercelOptions{Token: "tok", BaseURL: server.URL})
	if _, err := store.Upload(context.Background(), "generated/a.png", []byte("data"), "image/png"); err == nil {
		t.Fatalf("expected an error for status 403")
	}
}

func TestVercelStoreDelete(t *testing.T) {
	var gotURLs []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/delete" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var body map[string][]string
		json.NewDecoder(r.Body).Decode(&body)
		gotURLs = body["urls"]
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewVercelStore(VercelOptions{Token: "tok", BaseURL: server.URL})
	target := "https://abc.public.blob.vercel-storage.com/uploads/src.png"
	if err := store.Delete(context.Background(), target); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(gotURLs) != 1 || gotURLs[0] != target {
		t.Fatalf("urls = %v", gotURLs)
	}
}

func TestVercelStoreRequiresToken(t *testing.T) {
	store := NewVercelStore(VercelOptions{})
	if _, err := store.Upload(context.Background(), "k", []byte("d"), "image/png"); err == nil {
		t.Fatalf("upload without token must fail")
	}
	if err := store.Delete(context.Background(), "https://x/y"); err == nil {
		t.Fatalf("delete without token must fail")
	}
}
