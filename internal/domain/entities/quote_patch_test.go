package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotePatch_RebaseOnto(t *testing.T) {
	p := QuotePatch{
		Status:         Ptr(QuoteStatusPendingApproval),
		Exception:      &ExceptionRequest{TicketID: "APR-1"},
		SelectedPlanID: Ptr("motor-tpl"),
	}

	kept := p.RebaseOnto(QuoteStatusDraft)
	assert.NotNil(t, kept.Status)
	assert.NotNil(t, kept.Exception)

	kept = p.RebaseOnto(QuoteStatusPendingApproval)
	assert.NotNil(t, kept.Status)

	moved := p.RebaseOnto(QuoteStatusApprovalGranted)
	assert.Nil(t, moved.Status)
	assert.Nil(t, moved.Exception)
	assert.Equal(t, "motor-tpl", *moved.SelectedPlanID)
	assert.NotNil(t, p.Status, "the receiver is not modified")
}

func TestQuoteRequest_HasRiskDetails(t *testing.T) {
	assert.False(t, QuoteRequest{Customer: Customer{CPR: "880101234"}}.HasRiskDetails())
	assert.True(t, QuoteRequest{Vehicle: &Vehicle{}}.HasRiskDetails())
	assert.True(t, QuoteRequest{TravelCriteria: &TravelCriteria{}}.HasRiskDetails())
}
