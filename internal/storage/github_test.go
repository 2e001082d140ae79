package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGitHubFetch(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		// The contents API wraps base64 in newlines.
		_ = json.NewEncoder(w).Encode(map[string]string{
			"content":  base64.StdEncoding.EncodeToString([]byte("DATE: 29/12/2025\nLYRICS:\nhello\n")) + "\n",
			"encoding": "base64",
			"sha":      "abc123",
		})
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "someone/rap-history", "history.txt", nil)
	doc, err := g.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if doc.Version != "abc123" {
		t.Fatalf("Version = %q", doc.Version)
	}
	if doc.Content != "DATE: 29/12/2025\nLYRICS:\nhello\n" {
		t.Fatalf("Content = %q", doc.Content)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotPath != "/repos/someone/rap-history/contents/history.txt" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestGitHubFetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "someone/rap-history", "history.txt", nil)
	if _, err := g.Fetch(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGitHubWriteCarriesVersionToken(t *testing.T) {
	var gotBody struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "someone/rap-history", "history.txt", nil)
	if err := g.Write(context.Background(), "new content", "abc123"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if gotBody.SHA != "abc123" {
		t.Fatalf("sha = %q, want the last-read version token", gotBody.SHA)
	}
	raw, err := base64.StdEncoding.DecodeString(gotBody.Content)
	if err != nil || string(raw) != "new content" {
		t.Fatalf("content = %q (%v)", gotBody.Content, err)
	}
	if gotBody.Message == "" {
		t.Fatalf("commit message missing")
	}
}

func TestGitHubWriteCreateOmitsSHA(t *testing.T) {
	var gotRaw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotRaw)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "someone/rap-history", "history.txt", nil)
	if err := g.Write(context.Background(), "first", ""); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, present := gotRaw["sha"]; present {
		t.Fatalf("creation payload carried a sha: %v", gotRaw)
	}
}

func TestGitHubWriteConflict(t *testing.T) {
	for _, status := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		g := NewGitHub(srv.URL, "tok", "someone/rap-history", "history.txt", nil)
		err := g.Write(context.Background(), "x", "stale")
		srv.Close()
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("status %d: err = %v, want ErrConflict", status, err)
		}
	}
}

func TestGitHubFetchUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewGitHub(srv.URL, "tok", "someone/rap-history", "history.txt", nil)
	_, err := g.Fetch(context.Background())
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want a distinct unavailability error", err)
	}
}
