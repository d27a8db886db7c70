package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"takaful_quote/internal/adapter/http/handlers"
	"takaful_quote/internal/adapter/http/handlers/mocks"
	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteFlowUseCase, *mocks.MockIDraftUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	flow := mocks.NewMockIQuoteFlowUseCase(ctrl)
	drafts := mocks.NewMockIDraftUseCase(ctrl)
	reg := prometheus.NewRegistry()

	router := NewRouter(Handlers{
		Flow:      handlers.NewQuoteFlowHandler(flow, usecase.Actor{AgentID: "agent-portal"}),
		Quotes:    handlers.NewQuoteHandler(drafts),
		Approvals: handlers.NewApprovalHandler(mocks.NewMockIEligibilityUseCase(ctrl)),
		Payments:  handlers.NewPolicyPaymentHandler(mocks.NewMockIPolicyPaymentUseCase(ctrl), true),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	return router, flow, drafts
}

func TestRouter_Ping(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(headerRequestID, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(headerRequestID))
}

func TestRouter_MountsFlowAndQuoteRoutes(t *testing.T) {
	router, flow, drafts := newTestRouter(t)

	flow.EXPECT().View(gomock.Any(), "s-1").Return(usecase.SessionView{SessionID: "s-1", Step: usecase.StepDetails}, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/flows/s-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"step_name":"details"`)

	drafts.EXPECT().LoadByReference(gomock.Any(), "TKF-MOT-000001").Return(entities.QuoteRequest{}, usecase.ErrQuoteNotFound)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/reference/TKF-MOT-000001", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	router, flow, _ := newTestRouter(t)

	flow.EXPECT().View(gomock.Any(), "boom").DoAndReturn(func(_ any, _ string) (usecase.SessionView, error) {
		panic("unexpected")
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/flows/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestSessionSweepInterval(t *testing.T) {
	if got := sessionSweepInterval(24 * time.Hour); got != 6*time.Hour {
		t.Fatalf("expected 6h, got %s", got)
	}
	if got := sessionSweepInterval(time.Minute); got != time.Minute {
		t.Fatalf("expected the one minute floor, got %s", got)
	}
}
