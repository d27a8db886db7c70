package pricing

import (
	"errors"
	"math"
	"testing"

	"takaful_quote/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 0.01

func TestCompute_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		base       float64
		discount   float64
		discounted float64
		total      float64
		monthly    float64
		upfront    float64
		original   float64
	}{
		{name: "no discount", base: 100, discount: 0, discounted: 100, total: 110, monthly: 8.333, upfront: 10, original: 110},
		{name: "ten percent", base: 100, discount: 10, discounted: 90, total: 99, monthly: 7.5, upfront: 9, original: 110},
		{name: "free", base: 250, discount: 100, discounted: 0, total: 0, monthly: 0, upfront: 0, original: 275},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Compute(tc.base, tc.discount, entities.PaymentMethodInstallment)
			require.NoError(t, err)
			assert.InDelta(t, tc.discounted, b.Discounted, 1e-9)
			assert.InDelta(t, tc.total, b.Total, 1e-9)
			assert.InDelta(t, tc.monthly, b.Monthly, 1e-9)
			assert.InDelta(t, tc.upfront, b.Upfront, 1e-9)
			assert.InDelta(t, tc.original, b.OriginalTotal, 1e-9)
			assert.Equal(t, InstallmentMonths, b.Installments)
			assert.InDelta(t, b.Upfront, b.DueNow, 1e-9)
		})
	}
}

func TestCompute_FullPaymentDueNowIsTotal(t *testing.T) {
	b, err := Compute(100, 10, entities.PaymentMethodFull)
	require.NoError(t, err)
	assert.InDelta(t, 99.0, b.DueNow, 1e-9)
	assert.Equal(t, 1, b.Installments)
	// VAT is upfront regardless of the method.
	assert.InDelta(t, 9.0, b.Upfront, 1e-9)
}

func TestCompute_Properties(t *testing.T) {
	for base := 0.0; base <= 5000; base += 137.25 {
		for pct := 0.0; pct <= 100; pct += 7.5 {
			b, err := Compute(base, pct, entities.PaymentMethodInstallment)
			require.NoError(t, err)

			if math.Abs(b.Total-b.Monthly*12*1.1) > tolerance {
				t.Fatalf("total %v != monthly*12*1.1 (%v) for base=%v pct=%v", b.Total, b.Monthly*12*1.1, base, pct)
			}
			discounted := base * (1 - pct/100)
			if math.Abs(b.Upfront-(b.Total-discounted)) > tolerance {
				t.Fatalf("upfront %v != total-discounted (%v) for base=%v pct=%v", b.Upfront, b.Total-discounted, base, pct)
			}
		}
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	_, err := Compute(-1, 0, entities.PaymentMethodFull)
	if !errors.Is(err, ErrNegativePremium) {
		t.Fatalf("expected ErrNegativePremium, got %v", err)
	}
	_, err = Compute(10, 101, entities.PaymentMethodFull)
	if !errors.Is(err, ErrInvalidDiscount) {
		t.Fatalf("expected ErrInvalidDiscount, got %v", err)
	}
}

func TestPricePlans_UsesBasePremiumSnapshot(t *testing.T) {
	plans := []entities.InsurancePlan{
		{ID: "a", BasePremium: 100},
		{ID: "b", BasePremium: 200},
	}

	before, err := PricePlans(plans, 0, entities.PaymentMethodFull)
	require.NoError(t, err)
	after, err := PricePlans(plans, 10, entities.PaymentMethodFull)
	require.NoError(t, err)

	require.Len(t, after, 2)
	assert.InDelta(t, 220.0, before[1].Price.Total, 1e-9)
	assert.InDelta(t, 198.0, after[1].Price.Total, 1e-9)
	assert.InDelta(t, before[1].Price.OriginalTotal, after[1].Price.OriginalTotal, 1e-9)
	assert.Equal(t, 200.0, plans[1].BasePremium)
}
