package collaborators

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollaborators(t *testing.T, handler http.HandlerFunc) *HTTPCollaborators {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewHTTPCollaborators(srv.URL+"/", time.Second, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestNewHTTPCollaborators_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPCollaborators("  ", 0)
	assert.ErrorIs(t, err, errBaseURLRequired)
}

func TestHTTPCollaborators_FindByCPR(t *testing.T) {
	c := newTestCollaborators(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path == "/customers/880101234" {
			_ = json.NewEncoder(w).Encode(entities.Customer{CPR: "880101234", FullName: "Ali Hasan"})
			return
		}
		http.NotFound(w, r)
	})

	got, ok, err := c.FindByCPR(context.Background(), "880101234")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ali Hasan", got.FullName)

	_, ok, err = c.FindByCPR(context.Background(), "000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPCollaborators_Check(t *testing.T) {
	c := newTestCollaborators(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eligibility/check", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body struct {
			SubscriberID string                 `json:"subscriberId"`
			Contact      interfaces.ContactInfo `json:"contactInfo"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "880101234", body.SubscriberID)
		assert.Equal(t, "36000000", body.Contact.Mobile)
		_, _ = w.Write([]byte(`{"success":true,"isEligible":true,"plan":"Zain Plus","message":"draft exists"}`))
	})

	res, err := c.Check(context.Background(), "880101234", interfaces.ContactInfo{FullName: "Ali", Mobile: "36000000"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Zain Plus", res.Plan)
	assert.Equal(t, "draft exists", res.Message)
}

func TestHTTPCollaborators_StatusError(t *testing.T) {
	c := newTestCollaborators(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := c.Generate(context.Background(), interfaces.RiskInputs{InsuranceType: entities.InsuranceTypeMotor})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
	assert.Equal(t, "upstream down", statusErr.Body)
}

func TestHTTPCollaborators_LookupMotorNotFound(t *testing.T) {
	c := newTestCollaborators(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	res, err := c.LookupMotor(context.Background(), "12345")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestHTTPCollaborators_Submit(t *testing.T) {
	c := newTestCollaborators(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/approvals", r.URL.Path)
		_, _ = w.Write([]byte(`{"ticketId":"APR-1"}`))
	})

	ticket, err := c.Submit(context.Background(), interfaces.ApprovalRequest{QuoteID: "q-1"})
	require.NoError(t, err)
	assert.Equal(t, "APR-1", ticket)
}

func TestHTTPCollaborators_DispatchAndValidate(t *testing.T) {
	c := newTestCollaborators(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/links/dispatch":
			w.WriteHeader(http.StatusAccepted)
		case "/discounts/validate":
			_, _ = w.Write([]byte(`{"isValid":true,"discountPercent":15,"ownerLabel":"Branch"}`))
		default:
			http.NotFound(w, r)
		}
	})

	require.NoError(t, c.Dispatch(context.Background(), interfaces.LinkDispatchRequest{QuoteID: "q-1"}))
	res, err := c.Validate(context.Background(), "SAVE15")
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.DiscountPercent)
}
