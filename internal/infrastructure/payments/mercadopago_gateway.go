// Package payments adapts Mercado Pago to the payment gateway contract.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	appconfig "takaful_quote/internal/infrastructure/config"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockCheckoutBaseURL = "https://checkout.mock.local/pay/"

type MercadoPagoGateway struct {
	payments    payment.Client
	preferences preference.Client
	currency    string
	backURL     string
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	log := logger.For("payment", "gateway")

	if cfg.MockEnabled() {
		log.Info().Msg("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currency: cfg.Currency, backURL: cfg.BackURL}, nil
	}

	if strings.TrimSpace(cfg.AccessToken) == "" {
		log.Error().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments:    payment.NewClient(sdkCfg),
		preferences: preference.NewClient(sdkCfg),
		currency:    cfg.Currency,
		backURL:     cfg.BackURL,
	}, nil
}

// CreatePaymentLink opens a checkout preference for the amount due now.
func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	log := logger.For("payment", "gateway")

	if g != nil && g.mockMode {
		id := uuid.NewString()
		log.Info().Str("quote_id", req.QuoteID).Str("preference_id", id).Float64("amount", req.Amount).Msg("mock payment link created")
		return interfaces.PaymentLink{ID: id, URL: mockCheckoutBaseURL + id}, nil
	}
	if g == nil || g.preferences == nil {
		log.Error().Msg("gateway not configured")
		return interfaces.PaymentLink{}, ErrMercadoPagoGatewayNotConfigured
	}

	preq := preference.Request{
		ExternalReference: req.QuoteReference,
		Items: []preference.ItemRequest{{
			ID:         req.QuoteID,
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  req.Amount,
			CurrencyID: g.currency,
		}},
	}
	if req.PayerEmail != "" {
		preq.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	if g.backURL != "" {
		preq.BackURLs = &preference.BackURLsRequest{Success: g.backURL, Pending: g.backURL, Failure: g.backURL}
	}

	resp, err := g.preferences.Create(ctx, preq)
	if err != nil {
		log.Error().Err(err).Str("quote_id", req.QuoteID).Msg("sdk preference create failed")
		return interfaces.PaymentLink{}, err
	}
	log.Info().Str("quote_id", req.QuoteID).Str("preference_id", resp.ID).Msg("payment link created")
	return interfaces.PaymentLink{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	log := logger.For("payment", "gateway")

	if g != nil && g.mockMode {
		log.Debug().Int("payload_len", len(requestPayload)).Msg("mock create start")

		resp := map[string]any{}
		if len(requestPayload) > 0 && json.Valid(requestPayload) {
			if err := json.Unmarshal(requestPayload, &resp); err != nil {
				resp = map[string]any{"request_payload_raw": string(requestPayload)}
			}
		}

		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp["id"] = id
		resp["status"] = "approved"
		resp["status_detail"] = "accredited"
		if _, ok := resp["date_created"]; !ok {
			resp["date_created"] = now
		}
		if _, ok := resp["date_approved"]; !ok {
			resp["date_approved"] = now
		}

		b, err := json.Marshal(resp)
		if err != nil {
			log.Error().Err(err).Msg("mock response marshal failed")
			return "", "", nil, err
		}

		log.Info().Str("provider_payment_id", id).Str("provider_status", "approved").Msg("mock create success")
		return id, "approved", b, nil
	}

	if g == nil || g.payments == nil {
		log.Error().Msg("gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Debug().Int("payload_len", len(requestPayload)).Msg("create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Error().Err(err).Msg("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("response marshal failed")
		return "", "", nil, err
	}
	providerPaymentID = fmt.Sprintf("%d", resp.ID)
	log.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", resp.Status).Msg("create success")

	return providerPaymentID, resp.Status, b, nil
}
