package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	middleware "github.com/smartprobono/intake-api/internal/api/middlewares"
	"github.com/smartprobono/intake-api/internal/config"
	"github.com/smartprobono/intake-api/internal/core"
	"github.com/smartprobono/intake-api/internal/core/analytics"
	"github.com/smartprobono/intake-api/internal/core/extract"
	objectclient "github.com/smartprobono/intake-api/internal/core/object-client"
)

type UploadHandler struct {
	extractor    *extract.Extractor
	objectclient objectclient.ObjectClient
	analytics    *analytics.Client
	cfg          *config.Config
}

func NewUploadHandler(ex *extract.Extractor, obj objectclient.ObjectClient, an *analytics.Client, cfg *config.Config) *UploadHandler {
	return &UploadHandler{extractor: ex, objectclient: obj, analytics: an, cfg: cfg}
}

type uploadResponse struct {
	Success       bool   `json:"success"`
	FileName      string `json:"fileName"`
	FileType      string `json:"fileType"`
	FileSize      int64  `json:"fileSize"`
	ExtractedText string `json:"extractedText"`
}

// Upload accepts one multipart file, extracts its text, and returns it.
// The binary itself is only retained when an archive bucket is configured,
// and that copy is fire-and-forget.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, extract.MaxUploadBytes+4096)
	if err := r.ParseMultipartForm(extract.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file exceeds the 10MB limit or form is malformed", "")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded", "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to process file upload", h.detail(err))
		return
	}
	// MaxBytesReader bounds the whole request; the file part gets its own
	// check so envelope overhead cannot smuggle an oversize file through.
	if len(data) > extract.MaxUploadBytes {
		writeError(w, http.StatusBadRequest, "file exceeds the 10MB limit or form is malformed", "")
		return
	}

	fileName := filepath.Base(header.Filename)
	declaredType := header.Header.Get("Content-Type")

	text, err := h.extractor.Extract(r.Context(), data, fileName, declaredType)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUnsupportedFileType):
			writeError(w, http.StatusBadRequest, "Unsupported file type", "")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to process file upload", h.detail(err))
		}
		return
	}

	userID := middleware.UserID(r.Context())
	if h.objectclient != nil {
		go h.archive(userID, fileName, declaredType, data)
	}

	h.analytics.Capture(r.Context(), userID, "file_uploaded", map[string]any{
		"file_type": extract.CanonicalType(fileName, declaredType),
		"file_size": header.Size,
	})

	writeJSON(w, http.StatusOK, uploadResponse{
		Success:       true,
		FileName:      fileName,
		FileType:      extract.CanonicalType(fileName, declaredType),
		FileSize:      header.Size,
		ExtractedText: text,
	})
}

// archive copies the raw upload to the configured bucket. Failures are
// logged and discarded; the response has already been computed.
func (h *UploadHandler) archive(userID, fileName, contentType string, data []byte) {
	if userID == "" {
		userID = "anonymous"
	}
	key := fmt.Sprintf("%s/%s/%s", userID, uuid.NewString(), fileName)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := h.objectclient.UploadFile(ctx, h.cfg.UploadBucket, key, bytes.NewReader(data), contentType); err != nil {
		log.Printf("upload archive failed (non-critical): %v", err)
	}
}

func (h *UploadHandler) detail(err error) string {
	if h.cfg.Development() {
		return err.Error()
	}
	return ""
}
