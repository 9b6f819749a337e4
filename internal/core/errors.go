package core

import "errors"

// Error taxonomy shared across handlers and services. Callers classify with
// errors.Is and map to HTTP status codes at the edge.
var (
	// ErrUnsupportedFileType rejects uploads outside txt/pdf/docx.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrExtractionFailed covers corrupt or unreadable files of a supported type.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrProvider is a non-2xx (or transport) failure from a completion API.
	ErrProvider = errors.New("provider error")
)
