package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	middleware "github.com/smartprobono/intake-api/internal/api/middlewares"
	"github.com/smartprobono/intake-api/internal/config"
	"github.com/smartprobono/intake-api/internal/core/analytics"
	"github.com/smartprobono/intake-api/internal/core/docgen"
	"github.com/smartprobono/intake-api/internal/services"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type DocumentHandler struct {
	drafts    *services.DraftService
	analytics *analytics.Client
	cfg       *config.Config
}

func NewDocumentHandler(drafts *services.DraftService, an *analytics.Client, cfg *config.Config) *DocumentHandler {
	return &DocumentHandler{drafts: drafts, analytics: an, cfg: cfg}
}

type generateDocRequest struct {
	DocumentType string `json:"documentType"`
	ClientInfo   string `json:"clientInfo"`
	Instructions string `json:"instructions"`
	Format       string `json:"format"` // "docx" (default) | "txt"
}

// Generate produces a downloadable draft. Unlike the chat path, a provider
// failure here is surfaced as a 5xx rather than silently replaced.
func (h *DocumentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateDocRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if req.DocumentType == "" || req.ClientInfo == "" || req.Instructions == "" {
		writeError(w, http.StatusBadRequest, "documentType, clientInfo, and instructions are required", "")
		return
	}
	format := req.Format
	if format == "" {
		format = "docx"
	}
	if format != "docx" && format != "txt" {
		writeError(w, http.StatusBadRequest, "format must be docx or txt", "")
		return
	}

	content, err := h.drafts.Generate(r.Context(), req.DocumentType, req.ClientInfo, req.Instructions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate document", h.detail(err))
		return
	}

	opts := docgen.Options{
		Title:    req.DocumentType,
		Content:  content,
		FirmName: h.cfg.FirmName,
		IsDraft:  true,
	}
	fileName := strings.ReplaceAll(req.DocumentType, " ", "_")

	userID := middleware.UserID(r.Context())
	h.analytics.Capture(r.Context(), userID, "doc_generated", map[string]any{
		"template": req.DocumentType,
		"format":   format,
	})

	if format == "docx" {
		var buf bytes.Buffer
		if _, err := docgen.Docx(opts, time.Now()).WriteTo(&buf); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to generate document", h.detail(err))
			return
		}
		w.Header().Set("Content-Type", docxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName+".docx"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName+".txt"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(docgen.Text(opts, time.Now())))
}

func (h *DocumentHandler) detail(err error) string {
	if h.cfg.Development() {
		return err.Error()
	}
	return ""
}
