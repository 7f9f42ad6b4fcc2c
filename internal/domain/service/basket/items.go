package basket

import (
	"context"
	"log/slog"
	"slices"

	"basket/internal/domain"
	"basket/internal/domain/entity"
	"basket/internal/domain/service/validation"
	"basket/internal/domain/value"
	"basket/pkg/errcodes"
	"basket/pkg/logx"
)

// Add проверяет черновик и добавляет товар со скидкой 0.
// При ошибке проверки список не меняется, ошибки полей доступны в State.
func (s *Service) Add(ctx context.Context, draft entity.FormDraft) (entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = draft
	s.formErrors = validation.Validate(draft, s.items)

	if !s.formErrors.Valid() {
		return entity.Item{}, s.reject(ctx, OpAdd, domain.NewError(errcodes.ValidationError, "invalid item"))
	}

	article, _ := validation.ParseArticle(draft.Article)
	price, _ := validation.ParsePrice(draft.Price)

	item := entity.Item{
		Article:  article,
		Name:     draft.Name,
		Price:    price,
		Discount: 0,
	}

	s.items = append(s.items, item)
	s.draft = entity.EmptyDraft()

	s.commit(ctx, OpAdd)

	return item, nil
}

// Remove удаляет товар. Отсутствующий артикул молча игнорируется.
// Если удалён выбранный товар, выбор сбрасывается.
func (s *Service) Remove(ctx context.Context, article int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.indexOf(article)
	if !ok {
		logger(ctx).Debug("remove: item not found", slog.Int64(logx.FieldArticle, article))
		s.observer.OperationDone(OpRemove, domain.NewError(errcodes.ItemNotFound, "item not found"))
		return nil
	}

	s.items = slices.Delete(s.items, idx, idx+1)

	if selected, ok := value.SelectedArticle(s.selection); ok && selected == article {
		s.selection = value.NoSelection{}
	}

	s.commit(ctx, OpRemove)

	return nil
}
