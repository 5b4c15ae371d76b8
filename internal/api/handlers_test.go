package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/outliner/internal/analyzer"
	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/stats"
)

func newTestServer(apiKey string) *Server {
	cfg := config.Config{
		Port:               "0",
		APIKey:             apiKey,
		MaxInputBytes:      1 << 20,
		IncludeLineNumbers: true,
		StatsWindow:        time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(analyzer.Default(), stats.NewTracker(cfg.StatsWindow), log, cfg)
}

func postOutline(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/outline", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleOutline_CSV(t *testing.T) {
	s := newTestServer("")
	rec := postOutline(t, s, `{"content":"Name,Age\nAlice,30\nBob,25","format":"csv"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp outlineResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Format != "csv" {
		t.Errorf("expected format csv, got %q", resp.Format)
	}
	if len(resp.Outline) != 1 || resp.Outline[0].Type != "table" {
		t.Fatalf("expected table root, got %+v", resp.Outline)
	}
	if len(resp.Outline[0].Children) != 2 {
		t.Fatalf("expected 2 column nodes, got %d", len(resp.Outline[0].Children))
	}
}

func TestHandleOutline_FormatFromFileName(t *testing.T) {
	s := newTestServer("")
	rec := postOutline(t, s, `{"content":"# Title","file_name":"notes.md"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp outlineResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Format != "md" {
		t.Errorf("expected derived format md, got %q", resp.Format)
	}
}

func TestHandleOutline_UnsupportedFormat(t *testing.T) {
	s := newTestServer("")
	rec := postOutline(t, s, `{"content":"data","format":"xyz"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "xyz") {
		t.Errorf("error must name the discriminator, got %s", rec.Body.String())
	}
}

func TestHandleOutline_MalformedInput(t *testing.T) {
	s := newTestServer("")
	rec := postOutline(t, s, `{"content":"{broken","format":"json"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleOutline_MissingFormat(t *testing.T) {
	s := newTestServer("")
	rec := postOutline(t, s, `{"content":"data"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuth(t *testing.T) {
	s := newTestServer("secret")

	rec := postOutline(t, s, `{"content":"a,b\n1,2","format":"csv"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/outline", strings.NewReader(`{"content":"a,b\n1,2","format":"csv"}`))
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}

	// Health stays public.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected public health endpoint, got %d", rec.Code)
	}
}

func TestHandleFormats(t *testing.T) {
	s := newTestServer("")
	req := httptest.NewRequest(http.MethodGet, "/api/formats", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	found := false
	for _, f := range resp.Formats {
		if f == "csv" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected csv in %v", resp.Formats)
	}
}

func TestHandleStats(t *testing.T) {
	s := newTestServer("")
	postOutline(t, s, `{"content":"a,b\n1,2","format":"csv"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Stats stats.Snapshot `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Stats.Count != 1 {
		t.Errorf("expected 1 recorded analysis, got %d", resp.Stats.Count)
	}
}
