package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrLookupFailure      = errors.New("lookup failure")
	ErrEligibilityDenied  = errors.New("installment payment not eligible")
	ErrPersistenceFailure = errors.New("draft persistence failure")
	ErrDiscountInvalid    = errors.New("discount invalid")
	ErrDispatchFailure    = errors.New("payment link dispatch failed")

	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrQuoteReadOnly           = errors.New("quote is issued and read-only")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrSessionNotFound         = errors.New("flow session not found")
	ErrInvalidStep             = errors.New("operation not allowed at current step")
	ErrSuperseded              = errors.New("operation superseded by a newer request")
	ErrNoPlanSelected          = errors.New("no plan selected")
	ErrExceptionNotAllowed     = errors.New("exception request not allowed")
	ErrDraftPromptOpen         = errors.New("draft resume prompt awaiting a choice")
	ErrNoDraftPrompt           = errors.New("no draft resume prompt open")
	ErrApprovalTicketMismatch  = errors.New("approval ticket does not match quote")
	ErrInsuranceTypeDisabled   = errors.New("insurance type not available")
)

// ValidationError is local and field scoped; it never reaches a collaborator.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DiscountError is a business rejection of a discount code.
type DiscountError struct {
	Code   string
	Reason string
}

func (e *DiscountError) Error() string {
	return fmt.Sprintf("discount %s rejected: %s", e.Code, e.Reason)
}

func (e *DiscountError) Is(target error) bool {
	return target == ErrDiscountInvalid
}
