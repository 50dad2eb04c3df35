package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"arborlove_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrImageTooLarge    = errors.New("image exceeds upload limit")
	ErrInvalidImageType = errors.New("file is not an image")
)

// UploadImageInput describes one uploaded photo.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type IImageUploadUseCase interface {
	UploadImage(ctx context.Context, in UploadImageInput) (string, error)
}

type ImageUploadUseCase struct {
	storage  interfaces.IImageStorage
	maxBytes int64
	log      *zap.Logger
}

var _ IImageUploadUseCase = (*ImageUploadUseCase)(nil)

// NewImageUploadUseCase builds the use case. A maxBytes of zero disables the
// size check.
func NewImageUploadUseCase(storage interfaces.IImageStorage, maxBytes int64, log *zap.Logger) *ImageUploadUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageUploadUseCase{storage: storage, maxBytes: maxBytes, log: log}
}

// UploadImage stores the photo under "<uuid>-<file name>" and returns its URL.
func (u *ImageUploadUseCase) UploadImage(ctx context.Context, in UploadImageInput) (string, error) {
	if in.Body == nil || in.Size <= 0 {
		return "", ErrEmptyImage
	}
	if u.maxBytes > 0 && in.Size > u.maxBytes {
		return "", ErrImageTooLarge
	}
	if in.ContentType != "" && !strings.HasPrefix(in.ContentType, "image/") {
		return "", ErrInvalidImageType
	}

	key := ImageKey(uuid.NewString(), in.FileName)
	url, err := u.storage.Upload(ctx, key, in.ContentType, in.Body, in.Size)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	u.log.Info("image uploaded", zap.String("key", key), zap.Int64("size", in.Size))
	return url, nil
}

// ImageKey builds the object key for an upload. Directory components and
// spaces are stripped from the client supplied name.
func ImageKey(id, fileName string) string {
	name := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" || name == "." || name == "/" {
		return id
	}
	return id + "-" + name
}
