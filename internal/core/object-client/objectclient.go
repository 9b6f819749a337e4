package objectclient

import (
	"context"
	"io"
)

// ObjectClient archives raw uploads to object storage. The archive is a
// best-effort side copy: the intake pipeline only ever consumes the
// extracted text, never the stored binary.
type ObjectClient interface {
	UploadFile(ctx context.Context, bucket, key string, data io.Reader, contentType string) (url string, err error)
}
