package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIURL is the production GitHub API endpoint.
const DefaultAPIURL = "https://api.github.com"

const requestTimeout = 15 * time.Second

// GitHub stores the ledger as one file in a repository via the contents API.
// The file's blob sha is the version token: writes carry the sha they read,
// and a stale sha comes back as ErrConflict instead of silently clobbering.
type GitHub struct {
	apiURL     string
	token      string
	repo       string // "owner/name"
	path       string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGitHub creates a contents-API store. A nil logger disables logging.
func NewGitHub(apiURL, token, repo, path string, logger *zap.Logger) *GitHub {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitHub{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		token:      token,
		repo:       repo,
		path:       path,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
}

type contentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

func (g *GitHub) url() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", g.apiURL, g.repo, g.path)
}

// Fetch reads the whole document.
func (g *GitHub) Fetch(ctx context.Context) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url(), nil)
	if err != nil {
		return Document{}, err
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch ledger: %w", err)
	}
	defer resp.Body.Close()

	g.logger.Debug("fetched ledger document",
		zap.String("repo", g.repo),
		zap.String("path", g.path),
		zap.Int("status", resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Document{}, ErrNotFound
	default:
		return Document{}, fmt.Errorf("fetch ledger: unexpected status %s", resp.Status)
	}

	var body contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Document{}, fmt.Errorf("fetch ledger: decode response: %w", err)
	}
	content, err := decodeContent(body)
	if err != nil {
		return Document{}, fmt.Errorf("fetch ledger: %w", err)
	}
	return Document{Content: content, Version: body.SHA}, nil
}

// Write replaces the whole document. version is the sha from the last Fetch,
// or empty to create the file.
func (g *GitHub) Write(ctx context.Context, content, version string) error {
	payload := contentsRequest{
		Message: "Update journal ledger",
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
		SHA:     version,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.url(), bytes.NewReader(raw))
	if err != nil {
		return err
	}
	g.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	g.logger.Debug("wrote ledger document",
		zap.String("repo", g.repo),
		zap.String("path", g.path),
		zap.Int("status", resp.StatusCode),
		zap.Bool("create", version == ""))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// 409 is the documented stale-sha answer; 422 covers a missing sha
		// when the file already exists (concurrent creation).
		return ErrConflict
	default:
		return fmt.Errorf("write ledger: unexpected status %s", resp.Status)
	}
}

func (g *GitHub) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Accept", "application/vnd.github+json")
}

func decodeContent(body contentsResponse) (string, error) {
	if body.Encoding != "" && body.Encoding != "base64" {
		return "", fmt.Errorf("unsupported content encoding %q", body.Encoding)
	}
	// The API wraps base64 payloads in newlines.
	compact := strings.ReplaceAll(strings.ReplaceAll(body.Content, "\n", ""), "\r", "")
	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return string(raw), nil
}
