package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja_checkout/internal/adapter/http/handlers/mocks"
	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/:session_id/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/sess-1/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().AddItem(gomock.Any(), "sess-1", "p1", "Filtro", int64(2000), 2).Return(entities.Cart{
			SessionID: "sess-1",
			Lines:     []entities.CartLine{{ProductID: "p1", Name: "Filtro", UnitPriceCents: 2000, Quantity: 2}},
		}, nil)

		r := gin.New()
		r.POST("/v1/cart/:session_id/items", h.AddItem)

		body := `{"product_id":"p1","name":"Filtro","unit_price_cents":2000,"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/cart/sess-1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["subtotal_cents"].(float64) != 4000 {
			t.Errorf("expected subtotal 4000, got %v", resp["subtotal_cents"])
		}
	})

	t.Run("item rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().AddItem(gomock.Any(), "sess-1", "p1", "", int64(-5), 1).Return(entities.Cart{}, usecase.ErrInvalidCartItem)

		r := gin.New()
		r.POST("/v1/cart/:session_id/items", h.AddItem)

		body := `{"product_id":"p1","unit_price_cents":-5,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/cart/sess-1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().RemoveItem(gomock.Any(), "sess-1", "ghost").Return(entities.Cart{}, usecase.ErrCartItemNotFound)

		r := gin.New()
		r.DELETE("/v1/cart/:session_id/items/:product_id", h.RemoveItem)

		req := httptest.NewRequest(http.MethodDelete, "/v1/cart/sess-1/items/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCartHandler_GetPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	uc.EXPECT().GetPricing(gomock.Any(), "sess-1").Return(entities.PricingResult{
		SubtotalCents:    2000,
		DiscountCents:    200,
		ShippingFeeCents: 500,
		TotalCents:       2300,
	}, nil)

	r := gin.New()
	r.GET("/v1/cart/:session_id/pricing", h.GetPricing)

	req := httptest.NewRequest(http.MethodGet, "/v1/cart/sess-1/pricing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp["total_cents"].(float64) != 2300 {
		t.Errorf("expected total 2300, got %v", resp["total_cents"])
	}
}
