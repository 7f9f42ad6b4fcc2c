package basket

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"

	"basket/internal/domain/entity"
	"basket/internal/domain/service/totals"
	"basket/internal/domain/value"
	"basket/pkg/logx"
)

// Названия операций для логов и метрик.
const (
	OpAdd           = "add"
	OpRemove        = "remove"
	OpApplyDiscount = "apply_discount"
	OpClearDiscount = "clear_discount"
	OpSelect        = "select"
)

// Repository хранит список товаров. Load не возвращает ошибок:
// отсутствующее или битое значение превращается в пустую корзину.
type Repository interface {
	Load(ctx context.Context) []entity.Item
	Save(ctx context.Context, items []entity.Item) error
}

// Observer получает результаты операций и свежие итоги после каждой мутации.
type Observer interface {
	OperationDone(op string, err error)
	TotalsChanged(t entity.Totals)
}

type nopObserver struct{}

func (nopObserver) OperationDone(string, error)  {}
func (nopObserver) TotalsChanged(entity.Totals) {}

// Service владеет каноническим списком товаров и состоянием формы.
// Все операции выполняются под одним мьютексом, строго по очереди.
type Service struct {
	mu       sync.Mutex
	repo     Repository
	observer Observer

	items         []entity.Item
	draft         entity.FormDraft
	formErrors    value.FormErrors
	discountInput float64
	discountError value.FieldError
	selection     value.Selection
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		observer:  nopObserver{},
		draft:     entity.EmptyDraft(),
		selection: value.NoSelection{},
	}
}

func (s *Service) WithObserver(observer Observer) *Service {
	if observer != nil {
		s.observer = observer
	}
	return s
}

// Init загружает корзину из хранилища, заменяя текущий список.
func (s *Service) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.repo.Load(ctx)
	s.selection = value.NoSelection{}

	s.observer.TotalsChanged(totals.Calculate(s.items))

	logger(ctx).Info("basket loaded", slog.Int(logx.FieldCount, len(s.items)))
}

// State возвращает снимок корзины. Срез товаров не разделяется с сервисом.
func (s *Service) State(_ context.Context) entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.State{
		Items:         slices.Clone(s.items),
		Totals:        totals.Calculate(s.items),
		Draft:         s.draft,
		FormErrors:    s.formErrors,
		DiscountInput: s.discountInput,
		DiscountError: s.discountError,
		Selection:     s.selection,
	}
}

// SetDraft сохраняет правку формы без проверки.
func (s *Service) SetDraft(draft entity.FormDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = draft
}

// SetDiscountInput сохраняет введённый процент скидки без проверки.
func (s *Service) SetDiscountInput(percent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discountInput = percent
}

// commit сохраняет список и публикует итоги. Ошибка записи не откатывает
// операцию: запись считается fire-and-forget, поэтому только логируется.
func (s *Service) commit(ctx context.Context, op string) {
	if err := s.repo.Save(ctx, s.items); err != nil {
		logger(ctx).Error("basket save failed",
			slog.String(logx.FieldOperation, op),
			logx.Error(err),
		)
	}

	t := totals.Calculate(s.items)
	s.observer.TotalsChanged(t)
	s.observer.OperationDone(op, nil)

	logger(ctx).Debug("basket changed",
		slog.String(logx.FieldOperation, op),
		slog.Int(logx.FieldCount, t.Count),
	)
}

func (s *Service) reject(ctx context.Context, op string, err error) error {
	s.observer.OperationDone(op, err)

	logger(ctx).Debug("basket operation rejected",
		slog.String(logx.FieldOperation, op),
		logx.Error(err),
	)

	return err
}

func (s *Service) indexOf(article int64) (int, bool) {
	_, idx, ok := lo.FindIndexOf(s.items, func(item entity.Item) bool {
		return item.Article == article
	})
	return idx, ok
}
