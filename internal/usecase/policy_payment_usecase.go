package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/domain/pricing"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"
)

var (
	ErrQuotePaymentNotFound           = errors.New("quote payment not found")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrQuoteNotAwaitingPayment        = errors.New("quote is not awaiting payment")
	ErrPaymentDeclined                = errors.New("payment declined")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPolicyPaymentUseCase captures the upfront payment of a PAYMENT_PENDING
// quote and issues the policy once the provider approves it.
type IPolicyPaymentUseCase interface {
	CaptureAndIssue(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type PolicyPaymentUseCase struct {
	repo    interfaces.IQuotePaymentRepository
	drafts  IDraftUseCase
	plans   interfaces.IPlanGenerator
	gateway interfaces.IPaymentGateway
	metrics Metrics
	now     func() time.Time
}

var _ IPolicyPaymentUseCase = (*PolicyPaymentUseCase)(nil)

func NewPolicyPaymentUseCase(repo interfaces.IQuotePaymentRepository, drafts IDraftUseCase, plans interfaces.IPlanGenerator, gateway interfaces.IPaymentGateway, metrics Metrics) *PolicyPaymentUseCase {
	return &PolicyPaymentUseCase{
		repo:    repo,
		drafts:  drafts,
		plans:   plans,
		gateway: gateway,
		metrics: metricsOrNoop(metrics),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *PolicyPaymentUseCase) CaptureAndIssue(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
	log := logger.For("payment", "usecase")

	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Warn().Str("quote_id", quoteID).Msg("invalid payload (not-json)")
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}

	q, err := u.drafts.Load(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if q.Status != entities.QuoteStatusPaymentPending {
		log.Warn().Str("quote_id", quoteID).Str("status", string(q.Status)).Msg("quote not awaiting payment")
		return entities.QuotePayment{}, ErrQuoteNotAwaitingPayment
	}

	amount, err := u.amountDue(ctx, q)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.QuoteReference
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Takaful quote %s", q.QuoteReference)
	}
	ensurePayerEmail(reqMap, q.Customer.Email)
	// The amount always comes from the quote, never from the caller.
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	u.metrics.CollaboratorCall("payment_capture", callResult(err))
	if err != nil {
		log.Error().Err(err).Str("quote_id", quoteID).Msg("payment gateway failed")
		return entities.QuotePayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("quote_id", quoteID).Msg("provider response unmarshal failed")
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Amount:             amount,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("quote_id", quoteID).Str("payment_id", p.ID).Msg("payment repository create failed")
		return entities.QuotePayment{}, err
	}

	switch created.Status {
	case entities.PaymentStatusApproved:
		if _, err := u.drafts.Persist(ctx, q, Actor{}, entities.QuotePatch{Status: entities.Ptr(entities.QuoteStatusIssued)}); err != nil {
			log.Error().Err(err).Str("quote_id", quoteID).Msg("policy issuance persist failed")
			return created, err
		}
		log.Info().Str("quote_id", quoteID).Str("payment_id", created.ID).Float64("amount", amount).Msg("policy issued")
	case entities.PaymentStatusDenied:
		return created, ErrPaymentDeclined
	default:
		log.Info().Str("quote_id", quoteID).Str("payment_id", created.ID).Str("provider_status", providerStatus).Msg("payment pending at provider")
	}
	return created, nil
}

// amountDue reprices the selected plan. Plans are deterministic in the risk
// inputs, so regenerating them yields the snapshot the link was priced from.
func (u *PolicyPaymentUseCase) amountDue(ctx context.Context, q entities.QuoteRequest) (float64, error) {
	plans, err := u.plans.Generate(ctx, interfaces.RiskInputs{InsuranceType: q.InsuranceType, Vehicle: q.Vehicle, Travel: q.TravelCriteria})
	u.metrics.CollaboratorCall("plans", callResult(err))
	if err != nil {
		return 0, fmt.Errorf("%w: plans: %v", ErrLookupFailure, err)
	}
	plan, ok := entities.FindPlan(plans, q.SelectedPlanID)
	if !ok {
		return 0, ErrNoPlanSelected
	}
	method := q.PaymentMethod
	if method == "" {
		method = entities.PaymentMethodFull
	}
	price, err := pricing.Compute(plan.BasePremium, q.DiscountPercent(), method)
	if err != nil {
		return 0, err
	}
	return price.DueNow, nil
}

func (u *PolicyPaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *PolicyPaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func ensurePayerEmail(m map[string]any, email string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if s, _ := payer["email"].(string); strings.TrimSpace(s) == "" && email != "" {
		payer["email"] = email
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
