// Package pricing turns a plan's base premium into the figures shown to the agent.
//
//	discounted = basePremium * (1 - discountPercent/100)
//	vat        = discounted * 0.10
//	total      = discounted + vat
//	monthly    = discounted / 12   (VAT is not spread)
//	upfront    = vat               (collected upfront for every payment method)
//
// All figures are rounded to 3 decimal places (fils).
package pricing

import (
	"errors"

	"takaful_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	InstallmentMonths = 12
	Scale             = 3
)

var (
	ErrNegativePremium = errors.New("base premium must be >= 0")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
)

var (
	vatRate     = decimal.RequireFromString("0.10")
	hundred     = decimal.NewFromInt(100)
	months      = decimal.NewFromInt(InstallmentMonths)
	percentFull = decimal.NewFromInt(1)
)

// Breakdown is the full price of one plan for one discount/payment snapshot.
type Breakdown struct {
	BasePremium     float64                `json:"base_premium"`
	DiscountPercent float64                `json:"discount_percent"`
	Discounted      float64                `json:"discounted"`
	VAT             float64                `json:"vat"`
	Total           float64                `json:"total"`
	OriginalTotal   float64                `json:"original_total"`
	Monthly         float64                `json:"monthly"`
	Upfront         float64                `json:"upfront"`
	DueNow          float64                `json:"due_now"`
	Installments    int                    `json:"installments"`
	PaymentMethod   entities.PaymentMethod `json:"payment_method,omitempty"`
}

// Compute is pure: the same inputs always yield the same breakdown.
func Compute(basePremium, discountPercent float64, method entities.PaymentMethod) (Breakdown, error) {
	if basePremium < 0 {
		return Breakdown{}, ErrNegativePremium
	}
	if discountPercent < 0 || discountPercent > 100 {
		return Breakdown{}, ErrInvalidDiscount
	}

	base := decimal.NewFromFloat(basePremium)
	pct := decimal.NewFromFloat(discountPercent)

	discounted := base.Mul(percentFull.Sub(pct.Div(hundred))).Round(Scale)
	vat := discounted.Mul(vatRate).Round(Scale)
	total := discounted.Add(vat)
	original := base.Round(Scale).Add(base.Mul(vatRate).Round(Scale))
	monthly := discounted.Div(months).Round(Scale)

	b := Breakdown{
		BasePremium:     basePremium,
		DiscountPercent: discountPercent,
		Discounted:      discounted.InexactFloat64(),
		VAT:             vat.InexactFloat64(),
		Total:           total.InexactFloat64(),
		OriginalTotal:   original.InexactFloat64(),
		Monthly:         monthly.InexactFloat64(),
		Upfront:         vat.InexactFloat64(),
		PaymentMethod:   method,
	}
	if method == entities.PaymentMethodInstallment {
		b.DueNow = b.Upfront
		b.Installments = InstallmentMonths
	} else {
		b.DueNow = b.Total
		b.Installments = 1
	}
	return b, nil
}

// PricedPlan pairs a generated plan with its breakdown.
type PricedPlan struct {
	Plan  entities.InsurancePlan `json:"plan"`
	Price Breakdown              `json:"price"`
}

// PricePlans prices every plan from the basePremium snapshot captured at
// generation time. Changing the discount only needs another call here.
func PricePlans(plans []entities.InsurancePlan, discountPercent float64, method entities.PaymentMethod) ([]PricedPlan, error) {
	out := make([]PricedPlan, 0, len(plans))
	for _, p := range plans {
		b, err := Compute(p.BasePremium, discountPercent, method)
		if err != nil {
			return nil, err
		}
		out = append(out, PricedPlan{Plan: p, Price: b})
	}
	return out, nil
}
