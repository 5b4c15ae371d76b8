package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dgallion1/outliner/internal/analyzer"
	"github.com/dgallion1/outliner/internal/outline"
)

type outlineRequest struct {
	Content            string `json:"content"`
	Format             string `json:"format"`
	FileName           string `json:"file_name,omitempty"`
	MaxDepth           int    `json:"max_depth,omitempty"`
	IncludeLineNumbers *bool  `json:"include_line_numbers,omitempty"`
	IncludePrivate     bool   `json:"include_private,omitempty"`
	IncludeComments    bool   `json:"include_comments,omitempty"`
}

type outlineResponse struct {
	Format  string          `json:"format"`
	Outline []*outline.Node `json:"outline"`
}

// handleOutline analyzes one document and returns its outline forest.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxInputBytes)

	var req outlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := req.Format
	if format == "" {
		format = analyzer.ForFile(req.FileName)
	}
	if format == "" {
		jsonError(w, "format or file_name is required", http.StatusBadRequest)
		return
	}

	opts := outline.Options{
		MaxDepth:           req.MaxDepth,
		IncludeLineNumbers: s.cfg.IncludeLineNumbers,
		FileName:           req.FileName,
		IncludePrivate:     req.IncludePrivate,
		IncludeComments:    req.IncludeComments,
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = s.cfg.DefaultMaxDepth
	}
	if req.IncludeLineNumbers != nil {
		opts.IncludeLineNumbers = *req.IncludeLineNumbers
	}

	start := time.Now()
	forest, err := s.registry.Analyze([]byte(req.Content), format, opts)
	if err != nil {
		var unsupported *analyzer.UnsupportedFormatError
		var malformed *analyzer.MalformedInputError
		switch {
		case errors.As(err, &unsupported):
			jsonError(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &malformed):
			jsonError(w, err.Error(), http.StatusBadRequest)
		default:
			jsonError(w, "analysis failed: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	s.tracker.Record(format, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outlineResponse{Format: format, Outline: forest})
}

// handleFormats lists supported format discriminators.
func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"formats": s.registry.Formats()})
}

// handleStats reports rolling analysis latency aggregates.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"stats": s.tracker.Snapshot()})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
