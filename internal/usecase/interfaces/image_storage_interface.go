package interfaces

import (
	"context"
	"io"
)

// IImageStorage stores uploaded tree photos and returns a public URL for them.
type IImageStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (url string, err error)
}
