// Package extract turns uploaded file bytes into plain UTF-8 text.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"github.com/smartprobono/intake-api/internal/core"
)

const (
	MimeText = "text/plain"
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MaxUploadBytes caps accepted uploads at 10 MiB.
const MaxUploadBytes = 10 << 20

type Extractor struct {
	// TempDir overrides the spool directory; empty means os.TempDir.
	TempDir string
}

func New() *Extractor {
	return &Extractor{}
}

// CanonicalType resolves the declared MIME type and filename to one of the
// supported types, or "" when the file is unsupported.
func CanonicalType(fileName, declared string) string {
	name := strings.ToLower(fileName)
	switch {
	case declared == MimeText || strings.HasSuffix(name, ".txt"):
		return MimeText
	case declared == MimePDF || strings.HasSuffix(name, ".pdf"):
		return MimePDF
	case declared == MimeDocx || strings.HasSuffix(name, ".docx"):
		return MimeDocx
	}
	return ""
}

// Extract returns the plain text of a supported upload. PDF and DOCX bytes
// are spooled to a temp file for the docconv pass; the temp file is removed
// whether extraction succeeds or fails.
func (e *Extractor) Extract(ctx context.Context, data []byte, fileName, declaredType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch CanonicalType(fileName, declaredType) {
	case MimeText:
		return string(data), nil
	case MimePDF:
		return e.convert(data, fileName, docconv.ConvertPDF)
	case MimeDocx:
		return e.convert(data, fileName, docconv.ConvertDocx)
	}
	return "", fmt.Errorf("%w: %s", core.ErrUnsupportedFileType, fileName)
}

func (e *Extractor) convert(data []byte, fileName string, fn func(r io.Reader) (string, map[string]string, error)) (string, error) {
	tmp, err := e.spool(data, fileName)
	if err != nil {
		return "", fmt.Errorf("%w: spool: %v", core.ErrExtractionFailed, err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	text, _, err := fn(tmp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrExtractionFailed, err)
	}
	return text, nil
}

// spool writes the upload to a temp file and rewinds it for reading.
func (e *Extractor) spool(data []byte, fileName string) (*os.File, error) {
	ext := filepath.Ext(fileName)
	tmp, err := os.CreateTemp(e.TempDir, "intake-upload-*"+ext)
	if err != nil {
		return nil, err
	}
	if _, err := tmp.ReadFrom(bytes.NewReader(data)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	return tmp, nil
}
