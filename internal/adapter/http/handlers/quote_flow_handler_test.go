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

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var testActor = usecase.Actor{AgentID: "agent-default", AgentName: "Default Agent"}

func newFlowRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteFlowUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteFlowUseCase(ctrl)
	h := NewQuoteFlowHandler(uc, testActor)

	r := gin.New()
	g := r.Group("/v1/flows")
	g.POST("", h.StartFlow)
	g.GET("/:session_id", h.GetFlow)
	g.DELETE("/:session_id", h.AbandonFlow)
	g.POST("/:session_id/customer", h.IdentifyCustomer)
	g.POST("/:session_id/subscriber", h.SubmitSubscriber)
	g.POST("/:session_id/draft-prompt", h.ResolveDraftPrompt)
	g.PATCH("/:session_id/input", h.UpdateInput)
	g.POST("/:session_id/next", h.Next)
	g.PUT("/:session_id/plan", h.SelectPlan)
	g.PUT("/:session_id/discount", h.ApplyDiscount)
	g.POST("/:session_id/send-link", h.SendLink)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return body
}

func TestQuoteFlowHandler_StartFlow(t *testing.T) {
	t.Run("default actor and empty body", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().Start(gomock.Any(), usecase.StartInput{}, testActor).
			Return(usecase.SessionView{SessionID: "s-1", Step: usecase.StepCustomer}, nil)

		w := serve(r, http.MethodPost, "/v1/flows", "", nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "s-1" || body["step_name"] != "customer" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("agent headers override default actor", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		want := usecase.Actor{AgentID: "agent-7", AgentName: "Fatima"}
		uc.EXPECT().Start(gomock.Any(), usecase.StartInput{QuoteReference: "TKF-MOT-000001"}, want).
			Return(usecase.SessionView{SessionID: "s-2", Step: usecase.StepQuote}, nil)

		w := serve(r, http.MethodPost, "/v1/flows", `{"quote_reference":"TKF-MOT-000001"}`,
			map[string]string{HeaderAgentID: "agent-7", HeaderAgentName: "Fatima"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.SessionView{}, usecase.ErrQuoteNotFound)

		w := serve(r, http.MethodPost, "/v1/flows", `{"quote_reference":"TKF-MOT-999999"}`, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newFlowRouter(t)
		w := serve(r, http.MethodPost, "/v1/flows", "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteFlowHandler_IdentifyCustomer(t *testing.T) {
	t.Run("missing cpr is rejected before the usecase", func(t *testing.T) {
		r, _ := newFlowRouter(t)
		w := serve(r, http.MethodPost, "/v1/flows/s-1/customer", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lookup failure keeps session in details", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		view := usecase.SessionView{SessionID: "s-1", Step: usecase.StepCustomer}
		uc.EXPECT().IdentifyCustomer(gomock.Any(), "s-1", usecase.IdentifyInput{CPR: "880101234", InsuranceType: entities.InsuranceTypeMotor}).
			Return(view, usecase.ErrLookupFailure)

		w := serve(r, http.MethodPost, "/v1/flows/s-1/customer", `{"cpr":"880101234","insurance_type":"motor"}`, nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeError(t, w)
		details, _ := body["details"].(map[string]any)
		if _, ok := details["session"]; !ok {
			t.Fatalf("expected session in details: %s", w.Body.String())
		}
	})
}

func TestQuoteFlowHandler_ValidationErrors(t *testing.T) {
	r, uc := newFlowRouter(t)
	verr := usecase.NewValidationError("motor.plate_number", "is required")
	view := usecase.SessionView{SessionID: "s-1", Step: usecase.StepDetails, FieldErrors: verr.Fields}
	uc.EXPECT().Next(gomock.Any(), "s-1").Return(view, verr)

	w := serve(r, http.MethodPost, "/v1/flows/s-1/next", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeError(t, w)
	if body["code"] != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %v", body["code"])
	}
	details, _ := body["details"].(map[string]any)
	fields, _ := details["fields"].(map[string]any)
	if fields["motor.plate_number"] != "is required" {
		t.Fatalf("unexpected fields: %v", details)
	}
	if _, ok := details["session"]; !ok {
		t.Fatalf("expected session in details")
	}
}

func TestQuoteFlowHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"eligibility denied", usecase.ErrEligibilityDenied, http.StatusConflict},
		{"discount rejected", &usecase.DiscountError{Code: "BAD", Reason: "expired"}, http.StatusUnprocessableEntity},
		{"persistence", usecase.ErrPersistenceFailure, http.StatusServiceUnavailable},
		{"read only", usecase.ErrQuoteReadOnly, http.StatusConflict},
		{"superseded", usecase.ErrSuperseded, http.StatusConflict},
		{"session not found", usecase.ErrSessionNotFound, http.StatusNotFound},
		{"dispatch", usecase.ErrDispatchFailure, http.StatusBadGateway},
		{"insurance type disabled", usecase.ErrInsuranceTypeDisabled, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newFlowRouter(t)
			uc.EXPECT().ApplyDiscount(gomock.Any(), "s-1", "BAD").Return(usecase.SessionView{}, tc.err)

			w := serve(r, http.MethodPut, "/v1/flows/s-1/discount", `{"code":"BAD"}`, nil)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestQuoteFlowHandler_UpdateInputPassesRawBody(t *testing.T) {
	r, uc := newFlowRouter(t)
	raw := `{"motor":{"plate_number":"12345"}}`
	uc.EXPECT().UpdateInput(gomock.Any(), "s-1", []byte(raw)).
		Return(usecase.SessionView{SessionID: "s-1", Step: usecase.StepDetails}, nil)

	w := serve(r, http.MethodPatch, "/v1/flows/s-1/input", raw, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuoteFlowHandler_DraftPrompt(t *testing.T) {
	t.Run("invalid choice", func(t *testing.T) {
		r, _ := newFlowRouter(t)
		w := serve(r, http.MethodPost, "/v1/flows/s-1/draft-prompt", `{"choice":"maybe"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("continue", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().ResolveDraftPrompt(gomock.Any(), "s-1", usecase.DraftChoiceContinue).
			Return(usecase.SessionView{SessionID: "s-1", Step: usecase.StepDetails}, nil)

		w := serve(r, http.MethodPost, "/v1/flows/s-1/draft-prompt", `{"choice":"continue"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteFlowHandler_SendLink(t *testing.T) {
	t.Run("defaults without body", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().SendLink(gomock.Any(), "s-1", usecase.SendLinkInput{}).
			Return(usecase.SessionView{SessionID: "s-1", Step: usecase.StepQuote}, nil)

		w := serve(r, http.MethodPost, "/v1/flows/s-1/send-link", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mode is normalized", func(t *testing.T) {
		r, uc := newFlowRouter(t)
		uc.EXPECT().SendLink(gomock.Any(), "s-1", usecase.SendLinkInput{ContactNumber: "36000000", Mode: entities.LinkModeWhatsApp}).
			Return(usecase.SessionView{SessionID: "s-1", Step: usecase.StepQuote}, nil)

		w := serve(r, http.MethodPost, "/v1/flows/s-1/send-link", `{"contact_number":"36000000","mode":"whatsapp"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteFlowHandler_Abandon(t *testing.T) {
	r, uc := newFlowRouter(t)
	uc.EXPECT().Abandon(gomock.Any(), "s-1").Return(nil)

	w := serve(r, http.MethodDelete, "/v1/flows/s-1", "", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
