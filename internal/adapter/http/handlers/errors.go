package handlers

import (
	"errors"
	"net/http"

	"takaful_quote/internal/usecase"
	"takaful_quote/pkg"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapError translates usecase errors into the HTTP error contract.
func mapError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewDomainError("VALIDATION_ERROR", "One or more fields are invalid", err, http.StatusBadRequest).
			WithDetails(map[string]any{"fields": verr.Fields})
	}
	var derr *usecase.DiscountError
	if errors.As(err, &derr) {
		return pkg.NewDomainError("DISCOUNT_INVALID", derr.Reason, err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"code": derr.Code})
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsuranceTypeDisabled):
		return pkg.NewDomainErrorSimple("INSURANCE_TYPE_DISABLED", "Insurance type not available", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Flow session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEligibilityDenied):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_ELIGIBLE", "Customer is not eligible for installments", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteReadOnly):
		return pkg.NewDomainErrorSimple("QUOTE_READ_ONLY", "Quote is issued and read-only", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Quote status does not allow this action", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStep):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Action not allowed at the current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrSuperseded):
		return pkg.NewDomainErrorSimple("SUPERSEDED", "A newer request replaced this one", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftPromptOpen):
		return pkg.NewDomainErrorSimple("DRAFT_PROMPT_OPEN", "Choose whether to continue the existing draft", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDraftPrompt):
		return pkg.NewDomainErrorSimple("NO_DRAFT_PROMPT", "No draft prompt is open", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPlanSelected):
		return pkg.NewDomainErrorSimple("NO_PLAN_SELECTED", "Select a plan first", http.StatusConflict)
	case errors.Is(err, usecase.ErrExceptionNotAllowed):
		return pkg.NewDomainErrorSimple("EXCEPTION_NOT_ALLOWED", "An exception cannot be requested for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalTicketMismatch):
		return pkg.NewDomainErrorSimple("APPROVAL_TICKET_MISMATCH", "Ticket does not match the quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_AWAITING_PAYMENT", "Quote is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("DRAFT_NOT_SAVED", "Draft could not be saved; it will be retried", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDispatchFailure):
		return pkg.NewDomainError("LINK_DISPATCH_FAILED", "Payment link could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrLookupFailure):
		return pkg.NewDomainError("COLLABORATOR_UNAVAILABLE", "A dependent service is unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
