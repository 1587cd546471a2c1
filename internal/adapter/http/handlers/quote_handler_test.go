package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcaobra/internal/adapter/http/handlers/mocks"
	"orcaobra/internal/domain/entities"
	"orcaobra/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_GenerateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/generate", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/generate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("undecodable image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/generate", h.GenerateQuote)

		body := `{"description":"fix roof","currency":"EUR","images":[{"data":"%%%not-base64%%%","mime_type":"image/png"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed ai response maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrMalformedAIResponse)

		r := gin.New()
		r.POST("/v1/quotes/generate", h.GenerateQuote)

		body := `{"description":"fix roof","currency":"EUR"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if resp["code"] != "AI_RESPONSE_INVALID" {
			t.Fatalf("unexpected code: %q", resp["code"])
		}
	})

	t.Run("ai not configured maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrAINotConfigured)

		r := gin.New()
		r.POST("/v1/quotes/generate", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/generate", bytes.NewBufferString(`{"description":"fix roof","currency":"EUR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success returns quote with totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		quote := entities.Quote{
			Title:    "Roof repair",
			Currency: entities.CurrencyEUR,
			Steps:    []entities.QuoteStep{{Title: "Tiles", UserPrice: 100, Quantity: 2, TaxRate: 23}},
		}
		uc.EXPECT().Generate(gomock.Any(), gomock.AssignableToTypeOf(usecase.GenerateQuoteInput{})).DoAndReturn(
			func(_ any, in usecase.GenerateQuoteInput) (entities.Quote, error) {
				if in.Description != "fix roof" || in.Currency != entities.CurrencyEUR || in.City != "Porto" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return quote, nil
			},
		)

		r := gin.New()
		r.POST("/v1/quotes/generate", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/generate", bytes.NewBufferString(`{"description":"fix roof","currency":"EUR","city":"Porto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["grand_total"] != 246.0 {
			t.Fatalf("expected grand_total 246, got %v", resp["grand_total"])
		}
	})
}

func TestQuoteHandler_SaveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.SaveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"title":"Roof repair"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.SaveQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"title":"Roof repair","currency":"GBP"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ any, q entities.Quote) (entities.Quote, error) {
				if len(q.Steps) != 1 || q.Steps[0].Quantity != 1 {
					t.Fatalf("expected quantity default 1, got %+v", q.Steps)
				}
				q.ID = "1756250000000"
				return q, nil
			},
		)

		r := gin.New()
		r.POST("/v1/quotes", h.SaveQuote)

		body := `{"title":"Roof repair","currency":"EUR","steps":[{"title":"Tiles","user_price":10,"tax_rate":23}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if resp["id"] != "1756250000000" {
			t.Fatalf("expected assigned id, got %v", resp["id"])
		}
	})
}

func TestQuoteHandler_UpdateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("path id wins over body id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ any, q entities.Quote) (entities.Quote, error) {
				if q.ID != "42" {
					t.Fatalf("expected path id, got %q", q.ID)
				}
				return q, nil
			},
		)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/42", bytes.NewBufferString(`{"id":"7","title":"Roof repair","currency":"EUR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.PUT("/v1/quotes/:id", h.UpdateQuote)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/42", bytes.NewBufferString(`{"title":"Roof repair","currency":"EUR"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "1"}, {ID: "2"}}, nil)

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(resp))
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DeleteQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "42").Return(nil)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", h.DeleteQuote)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "42").Return(usecase.ErrQuoteNotFound)

		r := gin.New()
		r.DELETE("/v1/quotes/:id", h.DeleteQuote)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ExportQuotePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().ExportPDF(gomock.Any(), "42").Return([]byte("%PDF-1.3"), nil)

		r := gin.New()
		r.GET("/v1/quotes/:id/pdf", h.ExportQuotePDF)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/42/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd == "" {
			t.Fatalf("expected content disposition header")
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf bytes, got %q", w.Body.String())
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		uc.EXPECT().ExportPDF(gomock.Any(), "42").Return(nil, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.GET("/v1/quotes/:id/pdf", h.ExportQuotePDF)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/42/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
