package collaborators

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"
)

// HTTPCollaborators reaches every collaborator through one gateway base URL.
type HTTPCollaborators struct {
	client *jsonClient
}

var (
	_ interfaces.ICustomerLookup     = (*HTTPCollaborators)(nil)
	_ interfaces.IVehicleLookup      = (*HTTPCollaborators)(nil)
	_ interfaces.IRegistryLookup     = (*HTTPCollaborators)(nil)
	_ interfaces.IEligibilityChecker = (*HTTPCollaborators)(nil)
	_ interfaces.IPlanGenerator      = (*HTTPCollaborators)(nil)
	_ interfaces.IDiscountAuthority  = (*HTTPCollaborators)(nil)
	_ interfaces.ILinkDispatcher     = (*HTTPCollaborators)(nil)
	_ interfaces.IApprovalService    = (*HTTPCollaborators)(nil)
)

func NewHTTPCollaborators(baseURL string, timeout time.Duration, opts ...Option) (*HTTPCollaborators, error) {
	client, err := newJSONClient(baseURL, timeout, opts...)
	if err != nil {
		return nil, err
	}
	return &HTTPCollaborators{client: client}, nil
}

func (h *HTTPCollaborators) FindByCPR(ctx context.Context, cpr string) (entities.Customer, bool, error) {
	var out entities.Customer
	err := h.client.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(cpr), nil, &out)
	if errors.Is(err, errNotFound) {
		return entities.Customer{}, false, nil
	}
	if err != nil {
		logger.For("customer", "collaborator").Warn().Err(err).Str("cpr", cpr).Msg("customer lookup failed")
		return entities.Customer{}, false, err
	}
	return out, true, nil
}

func (h *HTTPCollaborators) LookupMotor(ctx context.Context, plateNumber string) (interfaces.MotorLookupResult, error) {
	var out interfaces.MotorLookupResult
	err := h.client.do(ctx, http.MethodPost, "/motor/lookup", map[string]string{"plateNumber": plateNumber}, &out)
	if errors.Is(err, errNotFound) {
		return interfaces.MotorLookupResult{Success: false, Error: "vehicle not found"}, nil
	}
	return out, err
}

func (h *HTTPCollaborators) LookupPolicy(ctx context.Context, plateNumber, chassisNumber string) (interfaces.RegistryLookupResult, error) {
	var out interfaces.RegistryLookupResult
	in := map[string]string{"plateNumber": plateNumber, "chassisNumber": chassisNumber}
	err := h.client.do(ctx, http.MethodPost, "/registry/lookup", in, &out)
	if errors.Is(err, errNotFound) {
		return interfaces.RegistryLookupResult{Success: false, Error: "policy data not found"}, nil
	}
	return out, err
}

func (h *HTTPCollaborators) Check(ctx context.Context, subscriberID string, contact interfaces.ContactInfo) (interfaces.EligibilityCheckResult, error) {
	var out interfaces.EligibilityCheckResult
	in := struct {
		SubscriberID string                 `json:"subscriberId"`
		Contact      interfaces.ContactInfo `json:"contactInfo"`
	}{subscriberID, contact}
	err := h.client.do(ctx, http.MethodPost, "/eligibility/check", in, &out)
	return out, err
}

func (h *HTTPCollaborators) Generate(ctx context.Context, in interfaces.RiskInputs) ([]entities.InsurancePlan, error) {
	var out struct {
		Plans []entities.InsurancePlan `json:"plans"`
	}
	if err := h.client.do(ctx, http.MethodPost, "/plans/generate", in, &out); err != nil {
		return nil, err
	}
	return out.Plans, nil
}

func (h *HTTPCollaborators) Validate(ctx context.Context, code string) (interfaces.DiscountValidationResult, error) {
	var out interfaces.DiscountValidationResult
	err := h.client.do(ctx, http.MethodPost, "/discounts/validate", map[string]string{"code": code}, &out)
	return out, err
}

func (h *HTTPCollaborators) Dispatch(ctx context.Context, req interfaces.LinkDispatchRequest) error {
	return h.client.do(ctx, http.MethodPost, "/links/dispatch", req, nil)
}

func (h *HTTPCollaborators) Submit(ctx context.Context, req interfaces.ApprovalRequest) (string, error) {
	var out struct {
		TicketID string `json:"ticketId"`
	}
	if err := h.client.do(ctx, http.MethodPost, "/approvals", req, &out); err != nil {
		return "", err
	}
	if out.TicketID == "" {
		return "", errors.New("approval service returned no ticket")
	}
	return out.TicketID, nil
}
