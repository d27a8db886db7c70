package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"takaful_quote/internal/adapter/http/handlers/mocks"
	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(uc *mocks.MockIPolicyPaymentUseCase, mockMode bool) *gin.Engine {
	h := NewPolicyPaymentHandler(uc, mockMode)
	r := gin.New()
	r.POST("/v1/quotes/:id/payments", h.CapturePayment)
	r.GET("/v1/quotes/:id/payments", h.ListPayments)
	r.GET("/v1/payments/:payment_id", h.GetPayment)
	return r
}

func TestPolicyPaymentHandler_CapturePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(`{"provider_payload":null}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, true)

		uc.EXPECT().CaptureAndIssue(gomock.Any(), "q-1", json.RawMessage("{}")).
			Return(entities.QuotePayment{ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().CaptureAndIssue(gomock.Any(), "q-1", json.RawMessage(`{"payment_method_id":"visa"}`)).
			Return(entities.QuotePayment{ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"visa"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not awaiting payment", usecase.ErrQuoteNotAwaitingPayment, http.StatusConflict},
		{"declined", usecase.ErrPaymentDeclined, http.StatusPaymentRequired},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{"provider bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
			r := newPaymentRouter(uc, false)

			uc.EXPECT().CaptureAndIssue(gomock.Any(), "q-1", gomock.Any()).Return(entities.QuotePayment{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/payments", bytes.NewBufferString(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestPolicyPaymentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		now := time.Now().UTC()
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{
			{ID: "pay-1", QuoteID: "q-1", Amount: 247.5, Date: now, Status: entities.PaymentStatusDenied},
			{ID: "pay-2", QuoteID: "q-1", Amount: 247.5, Date: now, Status: entities.PaymentStatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPolicyPaymentUseCase(ctrl)
		r := newPaymentRouter(uc, false)

		uc.EXPECT().GetByID(gomock.Any(), "pay-9").Return(entities.QuotePayment{}, usecase.ErrQuotePaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
