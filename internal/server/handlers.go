package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-mdguide"
)

// Client-facing error messages.
const (
	msgDocumentError = "Error processing document"
	msgAssetError    = "Error serving asset"
	msgAssetNotFound = "Asset not found"
	msgCanceled      = "Request canceled"
	msgInternal      = "Internal server error"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, "")
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	s.serveDocument(w, r, r.PathValue("path"))
}

func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request, raw string) {
	page, err := s.docs.Document(r.Context(), raw)
	if err != nil {
		s.documentError(w, r, raw, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, page.HTML)
}

func (s *Server) documentError(w http.ResponseWriter, r *http.Request, raw string, err error) {
	switch {
	case errors.Is(err, mdguide.ErrInvalidPath):
		writeError(w, http.StatusBadRequest, "Invalid path: "+raw)
	case errors.Is(err, mdguide.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, "Document not found: "+documentPath(raw))
	case isCanceled(err):
		writeError(w, http.StatusServiceUnavailable, msgCanceled)
	default:
		s.log.Error("processing document",
			zap.String("path", raw),
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgDocumentError)
	}
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("path")

	asset, err := s.docs.Asset(r.Context(), raw)
	if err != nil {
		s.assetError(w, r, raw, err)
		return
	}

	f, err := os.Open(asset.Path) // #nosec G304 -- path validated and contained by Service.Asset
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", mdguide.ErrAssetNotFound, err)
		}
		s.assetError(w, r, raw, err)
		return
	}
	defer f.Close()

	h := w.Header()
	h.Set("Content-Type", asset.ContentType)
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int64(s.docs.CacheMaxAge().Seconds())))
	h.Set("X-Content-Type-Options", "nosniff")

	http.ServeContent(w, r, asset.Name, asset.ModTime, f)
}

func (s *Server) assetError(w http.ResponseWriter, r *http.Request, raw string, err error) {
	switch {
	case errors.Is(err, mdguide.ErrInvalidPath):
		writeError(w, http.StatusBadRequest, "Invalid path: "+raw)
	case errors.Is(err, mdguide.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, msgAssetNotFound)
	case isCanceled(err):
		writeError(w, http.StatusServiceUnavailable, msgCanceled)
	default:
		s.log.Error("serving asset",
			zap.String("path", raw),
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgAssetError)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// documentPath mirrors the path normalization the service applies.
func documentPath(raw string) string {
	if p := strings.Trim(raw, "/"); p != "" {
		return p
	}
	return "index"
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
