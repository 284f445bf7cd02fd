package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja_checkout/internal/adapter/http/handlers/mocks"
	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestChargeHandler_CreateCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pix starts supervision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc)

		pending := entities.Charge{OrderID: "order-1", Method: entities.PaymentMethodPix, Status: entities.ChargeStatusPending, AmountCents: 2500}
		uc.EXPECT().CreateCharge(gomock.Any(), "order-1", entities.PaymentMethodPix, nil).Return(pending, nil)
		uc.EXPECT().Supervise(pending, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		r := gin.New()
		r.POST("/v1/charges/:order_id", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/order-1", bytes.NewBufferString(`{"payment_method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("terminal charge skips supervision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc)

		paid := entities.Charge{OrderID: "order-1", Method: entities.PaymentMethodCard, Status: entities.ChargeStatusPaid}
		uc.EXPECT().CreateCharge(gomock.Any(), "order-1", entities.PaymentMethodCard, gomock.Any()).Return(paid, nil)
		// No Supervise expectation: a synchronously settled charge needs none.

		r := gin.New()
		r.POST("/v1/charges/:order_id", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/order-1", bytes.NewBufferString(`{"payment_method":"credit_card","card_token":"tok-1","installments":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("rejected payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc)

		uc.EXPECT().CreateCharge(gomock.Any(), "order-1", entities.PaymentMethodCard, gomock.Any()).Return(entities.Charge{}, usecase.ErrPaymentRejected)

		r := gin.New()
		r.POST("/v1/charges/:order_id", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/order-1", bytes.NewBufferString(`{"payment_method":"credit_card","card_token":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc)

		uc.EXPECT().CreateCharge(gomock.Any(), "order-1", entities.PaymentMethodPix, nil).Return(entities.Charge{}, usecase.ErrChargeAlreadyPaid)

		r := gin.New()
		r.POST("/v1/charges/:order_id", h.CreateCharge)

		req := httptest.NewRequest(http.MethodPost, "/v1/charges/order-1", bytes.NewBufferString(`{"payment_method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestChargeHandler_CheckCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIChargeUseCase(ctrl)
	h := NewChargeHandler(uc)

	uc.EXPECT().CheckStatus(gomock.Any(), "order-1").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, nil)

	r := gin.New()
	r.GET("/v1/charges/:order_id", h.CheckCharge)

	req := httptest.NewRequest(http.MethodGet, "/v1/charges/order-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChargeHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("applies notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc)

		uc.EXPECT().ApplyWebhook(gomock.Any(), "order-1").Return(
			entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, nil)

		r := gin.New()
		r.POST("/v1/webhook", h.Webhook)

		body := `{"action":"payment.updated","external_reference":"order-1","data":{"id":"123"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown order still acks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIChargeUseCase(ctrl)
		h := NewChargeHandler(uc)

		uc.EXPECT().ApplyWebhook(gomock.Any(), "ghost").Return(entities.Charge{}, usecase.ErrChargeNotFound)

		r := gin.New()
		r.POST("/v1/webhook", h.Webhook)

		body := `{"action":"payment.updated","external_reference":"ghost"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 ack for unknown order, got %d", w.Code)
		}
	})
}
