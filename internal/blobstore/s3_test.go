package blobstore

import (
	"context"
	"testing"
)

func TestS3KeyFromURL(t *testing.T) {
	store := &S3Store{
		bucket:        "kuugen",
		endpoint:      "https://s3.example",
		publicBaseURL: "https://cdn.example",
	}

	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example/generated/a.png", "generated/a.png"},
		{"https://s3.example/kuugen/uploads/b.jpg", "uploads/b.jpg"},
		{"https://other.example/generated/a.png", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := store.keyFromURL(tc.url); got != tc.want {
			t.Fatalf("keyFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestS3KeyFromURLWithoutPublicBase(t *testing.T) {
	store := &S3Store{bucket: "kuugen", endpoint: "https://s3.example"}
	if got := store.keyFromURL("https://s3.example/kuugen/generated/a.png"); got != "generated/a.png" {
		t.Fatalf("keyFromURL() = %q", got)
	}
}

func TestNewS3StoreValidatesOptions(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Options{AccessKey: "ak"})
	if err == nil {
		t.Fatalf("incomplete options must be rejected")
	}
}
