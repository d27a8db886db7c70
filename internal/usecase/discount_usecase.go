package usecase

import (
	"context"
	"fmt"
	"strings"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"
)

// IDiscountUseCase validates discount codes against the discount authority.
//
// A successful validation yields a patch that sets code and percent together;
// removal yields a patch that clears both. Failures leave any previously
// applied discount untouched.
type IDiscountUseCase interface {
	ApplyCode(ctx context.Context, code string) (entities.QuotePatch, error)
	RemoveCode() entities.QuotePatch
}

type DiscountUseCase struct {
	authority interfaces.IDiscountAuthority
	metrics   Metrics
}

var _ IDiscountUseCase = (*DiscountUseCase)(nil)

func NewDiscountUseCase(authority interfaces.IDiscountAuthority, metrics Metrics) *DiscountUseCase {
	return &DiscountUseCase{authority: authority, metrics: metricsOrNoop(metrics)}
}

func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (u *DiscountUseCase) ApplyCode(ctx context.Context, code string) (entities.QuotePatch, error) {
	code = NormalizeDiscountCode(code)
	if code == "" {
		return entities.QuotePatch{}, NewValidationError("discount_code", "Enter a discount code")
	}

	res, err := u.authority.Validate(ctx, code)
	u.metrics.CollaboratorCall("discount", callResult(err))
	if err != nil {
		logger.For("discount", "usecase").Warn().Err(err).Str("code", code).Msg("discount authority unavailable")
		return entities.QuotePatch{}, fmt.Errorf("%w: discount: %v", ErrLookupFailure, err)
	}
	if !res.IsValid {
		reason := strings.TrimSpace(res.Error)
		if reason == "" {
			reason = "Invalid discount code"
		}
		return entities.QuotePatch{}, &DiscountError{Code: code, Reason: reason}
	}
	if res.DiscountPercent < 0 || res.DiscountPercent > 100 {
		return entities.QuotePatch{}, &DiscountError{Code: code, Reason: fmt.Sprintf("discount percent %.2f out of range", res.DiscountPercent)}
	}

	return entities.QuotePatch{
		Discount: &entities.AppliedDiscount{
			Code:       code,
			Percent:    res.DiscountPercent,
			OwnerLabel: res.OwnerLabel,
		},
	}, nil
}

func (u *DiscountUseCase) RemoveCode() entities.QuotePatch {
	return entities.QuotePatch{ClearDiscount: true}
}
