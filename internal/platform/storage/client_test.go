package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := New(ts.URL, "service-key", "leave-proofs")
	url, err := client.Upload(context.Background(), "abc.pdf", []byte("proof"), "application/pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/storage/v1/object/leave-proofs/abc.pdf" {
		t.Fatalf("unexpected upload path %q", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotType != "application/pdf" {
		t.Fatalf("unexpected content type %q", gotType)
	}
	if string(gotBody) != "proof" {
		t.Fatalf("unexpected body %q", gotBody)
	}
	if !strings.HasSuffix(url, "/storage/v1/object/public/leave-proofs/abc.pdf") {
		t.Fatalf("unexpected public url %q", url)
	}
}

func TestUploadRejectsServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket missing", http.StatusNotFound)
	}))
	defer ts.Close()

	client := New(ts.URL, "", "leave-proofs")
	if _, err := client.Upload(context.Background(), "abc.pdf", []byte("proof"), ""); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestUploadUnconfigured(t *testing.T) {
	client := New("", "", "")
	if _, err := client.Upload(context.Background(), "x", nil, ""); err == nil {
		t.Fatal("expected error for unconfigured client")
	}
}
