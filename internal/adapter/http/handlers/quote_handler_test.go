package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arborlove_quote/internal/adapter/http/handlers/mocks"
	"arborlove_quote/internal/domain/entities"
	"arborlove_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"clientDetails": {"name": "Jane Doe", "email": "jane@example.com", "phone": "555-0100", "propertyOwner": true},
	"services": [
		{"serviceType": "Tree Removal", "numOfTrees": 1, "treeType": "Oak", "treeHeight": "31-45", "equipmentAccess": true},
		{"serviceType": "Tree Trimming", "treeType": "Palm", "treeHeight": "16-30"}
	]
}`

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quote/create", h.CreateQuote)
	r.GET("/v1/quote/options", h.GetOptions)
	r.GET("/v1/quote/all", h.ListQuotes)
	r.DELETE("/v1/quote/all", h.DeleteAllQuotes)
	r.GET("/v1/quote/:id", h.GetQuote)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	invalid := map[string]string{
		"invalid json":     "{",
		"missing services": `{"clientDetails": {"name": "Jane", "email": "jane@example.com"}, "services": []}`,
		"missing email":    `{"clientDetails": {"name": "Jane"}, "services": [{"serviceType": "Tree Removal"}]}`,
		"bad email":        `{"clientDetails": {"name": "Jane", "email": "jane"}, "services": [{"serviceType": "Tree Removal"}]}`,
		"missing name":     `{"clientDetails": {"email": "jane@example.com"}, "services": [{"serviceType": "Tree Removal"}]}`,
		"missing type":     `{"clientDetails": {"name": "Jane", "email": "jane@example.com"}, "services": [{"treeType": "Oak"}]}`,
	}
	for name, body := range invalid {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			r := newQuoteRouter(NewQuoteHandler(uc, nil))

			w := doJSON(r, http.MethodPost, "/v1/quote/create", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("usecase returns invalid service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CreateQuoteResult{}, usecase.ErrInvalidServiceType)

		w := doJSON(r, http.MethodPost, "/v1/quote/create", validQuoteBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_SERVICE_TYPE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CreateQuoteResult{}, errors.New("dynamodb unavailable"))

		w := doJSON(r, http.MethodPost, "/v1/quote/create", validQuoteBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("dynamodb")) {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, client entities.ClientDetails, services []entities.ServiceRequest) (usecase.CreateQuoteResult, error) {
				if client.Email != "jane@example.com" || !client.PropertyOwner {
					t.Fatalf("unexpected client: %+v", client)
				}
				if len(services) != 2 || services[0].ServiceType != entities.ServiceTypeTreeRemoval || !services[0].EquipmentAccess {
					t.Fatalf("unexpected services: %+v", services)
				}
				return usecase.CreateQuoteResult{Quote: entities.Quote{ID: "q-1", Amount: 2090.1}, Notified: true}, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/quote/create", validQuoteBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Message  string  `json:"message"`
			QuoteID  string  `json:"quoteId"`
			Amount   float64 `json:"amount"`
			Notified bool    `json:"notified"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.QuoteID != "q-1" || body.Amount != 2090.1 || !body.Notified || body.Message == "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doJSON(r, http.MethodGet, "/v1/quote/q-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID:          "q-1",
			Amount:      1787.5,
			DateCreated: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/quote/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quoteId"] != "q-1" || body["amount"] != 1787.5 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_ListAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list routes to all, not to id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/quote/all", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("scan failed"))

		if w := doJSON(r, http.MethodGet, "/v1/quote/all", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("delete all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc, nil))

		uc.EXPECT().DeleteAll(gomock.Any()).Return(7, nil)

		w := doJSON(r, http.MethodDelete, "/v1/quote/all", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Deleted int `json:"deleted"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Deleted != 7 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opts := mocks.NewMockIQuoteOptionsUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(nil, opts))

		opts.EXPECT().ListOptions(gomock.Any()).Return(entities.DefaultQuoteOptions(), nil)

		w := doJSON(r, http.MethodGet, "/v1/quote/options", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string][]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body[entities.OptionJobTypes]) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opts := mocks.NewMockIQuoteOptionsUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(nil, opts))

		opts.EXPECT().ListOptions(gomock.Any()).Return(nil, errors.New("scan failed"))

		if w := doJSON(r, http.MethodGet, "/v1/quote/options", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
