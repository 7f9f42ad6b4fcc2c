package basket

import (
	"context"
	"log/slog"

	"basket/internal/domain"
	"basket/internal/domain/value"
	"basket/pkg/errcodes"
	"basket/pkg/logx"
)

// Select переключает выбор товара для индивидуальной скидки:
// повторный выбор того же товара снимает выделение, выбор другого переносит его.
// Поле скидки предзаполняется скидкой выбранного товара в процентах.
func (s *Service) Select(ctx context.Context, article int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.indexOf(article)
	if !ok {
		return s.reject(ctx, OpSelect, domain.NewError(errcodes.ItemNotFound, "item not found"))
	}

	if selected, ok := value.SelectedArticle(s.selection); ok && selected == article {
		s.selection = value.NoSelection{}
		s.discountInput = 0
	} else {
		s.selection = value.Selected{Article: article}
		s.discountInput = s.items[idx].DiscountPercent()
	}

	s.observer.OperationDone(OpSelect, nil)

	logger(ctx).Debug("selection changed", slog.Int64(logx.FieldArticle, article))

	return nil
}
