package basket

import (
	"context"

	"github.com/shopspring/decimal"

	"basket/internal/domain"
	"basket/internal/domain/service/validation"
	"basket/internal/domain/value"
	"basket/pkg/errcodes"
)

var hundred = decimal.NewFromInt(validation.MaxDiscountPercent) //nolint:gochecknoglobals

// ToFraction переводит проценты в долю, округлённую до двух знаков.
func ToFraction(percent float64) float64 {
	return decimal.NewFromFloat(percent).Div(hundred).Round(2).InexactFloat64()
}

// ApplyDiscount выставляет скидку всем товарам или выбранному.
func (s *Service) ApplyDiscount(ctx context.Context, percent float64, target value.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discountInput = percent

	if fieldErr := validation.ValidateDiscount(percent); fieldErr.IsError {
		s.discountError = fieldErr
		return s.reject(ctx, OpApplyDiscount, domain.NewError(fieldErr.Code, fieldErr.Message))
	}

	idxs, err := s.targetIndexes(target)
	if err != nil {
		return s.reject(ctx, OpApplyDiscount, err)
	}

	fraction := ToFraction(percent)
	for _, i := range idxs {
		s.items[i].Discount = fraction
	}

	s.discountError = value.FieldError{}

	s.commit(ctx, OpApplyDiscount)

	return nil
}

// ClearDiscount обнуляет скидку всем товарам или выбранному (выбор сохраняется).
func (s *Service) ClearDiscount(ctx context.Context, target value.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idxs, err := s.targetIndexes(target)
	if err != nil {
		return s.reject(ctx, OpClearDiscount, err)
	}

	for _, i := range idxs {
		s.items[i].Discount = 0
	}

	s.discountInput = 0

	s.commit(ctx, OpClearDiscount)

	return nil
}

// targetIndexes возвращает индексы товаров, на которые действует операция.
func (s *Service) targetIndexes(target value.Target) ([]int, error) {
	switch target {
	case value.TargetAll:
		idxs := make([]int, len(s.items))
		for i := range s.items {
			idxs[i] = i
		}
		return idxs, nil
	case value.TargetSelected:
		article, ok := value.SelectedArticle(s.selection)
		if !ok {
			return nil, domain.NewError(errcodes.NoSelection, "no item selected")
		}
		idx, ok := s.indexOf(article)
		if !ok {
			return nil, domain.NewError(errcodes.ItemNotFound, "selected item not found")
		}
		return []int{idx}, nil
	default:
		return nil, domain.NewError(errcodes.InvalidTarget, "unknown discount target")
	}
}
