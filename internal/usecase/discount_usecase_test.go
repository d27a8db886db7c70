package usecase

import (
	"context"
	"errors"
	"testing"

	"takaful_quote/internal/usecase/interfaces"
	mock_interfaces "takaful_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDiscountUseCase_ApplyCode(t *testing.T) {
	t.Run("empty code never reaches the authority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authority := mock_interfaces.NewMockIDiscountAuthority(ctrl)
		uc := NewDiscountUseCase(authority, nil)

		_, err := uc.ApplyCode(context.Background(), "   ")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("valid code yields code and percent together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authority := mock_interfaces.NewMockIDiscountAuthority(ctrl)
		uc := NewDiscountUseCase(authority, nil)

		authority.EXPECT().Validate(gomock.Any(), "TAKAFUL10").Return(interfaces.DiscountValidationResult{IsValid: true, DiscountPercent: 10, OwnerLabel: "Marketing"}, nil)

		patch, err := uc.ApplyCode(context.Background(), " takaful10 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Discount == nil || patch.Discount.Code != "TAKAFUL10" || patch.Discount.Percent != 10 || patch.Discount.OwnerLabel != "Marketing" {
			t.Fatalf("unexpected patch %+v", patch.Discount)
		}
	})

	t.Run("rejected code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authority := mock_interfaces.NewMockIDiscountAuthority(ctrl)
		uc := NewDiscountUseCase(authority, nil)

		authority.EXPECT().Validate(gomock.Any(), "NOPE").Return(interfaces.DiscountValidationResult{IsValid: false, Error: "Code expired"}, nil)

		patch, err := uc.ApplyCode(context.Background(), "nope")
		var derr *DiscountError
		if !errors.As(err, &derr) || derr.Reason != "Code expired" {
			t.Fatalf("expected discount error, got %v", err)
		}
		if !errors.Is(err, ErrDiscountInvalid) {
			t.Fatalf("expected ErrDiscountInvalid")
		}
		if !patch.IsEmpty() {
			t.Fatalf("a rejected code must not change the quote")
		}
	})

	t.Run("out of range percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authority := mock_interfaces.NewMockIDiscountAuthority(ctrl)
		uc := NewDiscountUseCase(authority, nil)

		authority.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(interfaces.DiscountValidationResult{IsValid: true, DiscountPercent: 120}, nil)
		if _, err := uc.ApplyCode(context.Background(), "BIG"); !errors.Is(err, ErrDiscountInvalid) {
			t.Fatalf("expected ErrDiscountInvalid, got %v", err)
		}
	})

	t.Run("authority failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authority := mock_interfaces.NewMockIDiscountAuthority(ctrl)
		uc := NewDiscountUseCase(authority, nil)

		authority.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(interfaces.DiscountValidationResult{}, errors.New("timeout"))
		if _, err := uc.ApplyCode(context.Background(), "X"); !errors.Is(err, ErrLookupFailure) {
			t.Fatalf("expected ErrLookupFailure, got %v", err)
		}
	})
}

func TestDiscountUseCase_RemoveCode(t *testing.T) {
	uc := NewDiscountUseCase(nil, nil)
	if p := uc.RemoveCode(); !p.ClearDiscount || p.Discount != nil {
		t.Fatalf("unexpected patch %+v", p)
	}
}
