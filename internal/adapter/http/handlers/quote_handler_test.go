package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"takaful_quote/internal/adapter/http/handlers/mocks"
	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase"
	"takaful_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewQuoteHandler(drafts)

		r := gin.New()
		r.GET("/v1/quotes/reference/:reference", h.GetQuoteByReference)

		drafts.EXPECT().LoadByReference(gomock.Any(), "TKF-MOT-000001").Return(entities.QuoteRequest{
			ID:             "q-1",
			QuoteReference: "TKF-MOT-000001",
			Status:         entities.QuoteStatusIssued,
			InsuranceType:  entities.InsuranceTypeMotor,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/reference/TKF-MOT-000001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["read_only"] != true || body["status"] != "ISSUED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drafts := mocks.NewMockIDraftUseCase(ctrl)
		h := NewQuoteHandler(drafts)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		drafts.EXPECT().Load(gomock.Any(), "missing").Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestApprovalHandler_ReceiveDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("granted is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		elig := mocks.NewMockIEligibilityUseCase(ctrl)
		h := NewApprovalHandler(elig)

		r := gin.New()
		r.POST("/v1/approvals/decisions", h.ReceiveDecision)

		req := httptest.NewRequest(http.MethodPost, "/v1/approvals/decisions", bytes.NewBufferString(`{"ticket_id":"t-1","quote_id":"q-1"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejection is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		elig := mocks.NewMockIEligibilityUseCase(ctrl)
		h := NewApprovalHandler(elig)

		r := gin.New()
		r.POST("/v1/approvals/decisions", h.ReceiveDecision)

		elig.EXPECT().ResolveException(gomock.Any(), interfaces.ApprovalDecision{TicketID: "t-1", QuoteID: "q-1", Granted: false, Reason: "risk"}).
			Return(entities.QuoteRequest{ID: "q-1", Status: entities.QuoteStatusApprovalRejected}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/approvals/decisions", bytes.NewBufferString(`{"ticket_id":"t-1","quote_id":"q-1","granted":false,"reason":" risk "}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("ticket mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		elig := mocks.NewMockIEligibilityUseCase(ctrl)
		h := NewApprovalHandler(elig)

		r := gin.New()
		r.POST("/v1/approvals/decisions", h.ReceiveDecision)

		elig.EXPECT().ResolveException(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, usecase.ErrApprovalTicketMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/approvals/decisions", bytes.NewBufferString(`{"ticket_id":"t-9","quote_id":"q-1","granted":true}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
