package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"arborlove_quote/internal/adapter/http/handlers/mocks"
	"arborlove_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartImage(t *testing.T, field, name, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(data)
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func newUploadRouter(h *UploadHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/upload", h.UploadImage)
	return r
}

func TestUploadHandler_UploadImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUploadUseCase(ctrl)
		r := newUploadRouter(NewUploadHandler(uc, 0))

		body, ct := multipartImage(t, "photo", "oak.jpg", "image/jpeg", []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("too large maps to 413", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUploadUseCase(ctrl)
		r := newUploadRouter(NewUploadHandler(uc, 0))

		uc.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return("", usecase.ErrImageTooLarge)

		body, ct := multipartImage(t, "image", "oak.jpg", "image/jpeg", []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUploadUseCase(ctrl)
		r := newUploadRouter(NewUploadHandler(uc, 1024))

		uc.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		body, ct := multipartImage(t, "image", "oak.jpg", "image/jpeg", []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImageUploadUseCase(ctrl)
		r := newUploadRouter(NewUploadHandler(uc, 1024))

		uc.EXPECT().UploadImage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.UploadImageInput) (string, error) {
				if in.FileName != "oak.jpg" || in.ContentType != "image/jpeg" || in.Size != 4 {
					t.Fatalf("unexpected input: %+v", in)
				}
				data, _ := io.ReadAll(in.Body)
				if string(data) != "jpeg" {
					t.Fatalf("unexpected body: %q", data)
				}
				return "https://bucket.s3.us-east-1.amazonaws.com/abc-oak.jpg", nil
			},
		)

		body, ct := multipartImage(t, "image", "oak.jpg", "image/jpeg", []byte("jpeg"))
		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Success  bool   `json:"success"`
			ImageURL string `json:"imageUrl"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !resp.Success || resp.ImageURL != "https://bucket.s3.us-east-1.amazonaws.com/abc-oak.jpg" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})
}
