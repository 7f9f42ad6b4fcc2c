package basket_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"basket/internal/domain"
	"basket/internal/domain/entity"
	"basket/internal/domain/service/basket"
	"basket/internal/domain/service/validation"
	"basket/internal/domain/value"
	"basket/pkg/errcodes"
)

type repoMock struct {
	mu      sync.Mutex
	initial []entity.Item
	saved   [][]entity.Item
	saveErr error
}

func (r *repoMock) Load(context.Context) []entity.Item {
	return r.initial
}

func (r *repoMock) Save(_ context.Context, items []entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved = append(r.saved, append([]entity.Item(nil), items...))

	return r.saveErr
}

func (r *repoMock) last() []entity.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.saved) == 0 {
		return nil
	}
	return r.saved[len(r.saved)-1]
}

type observerMock struct {
	ops    []string
	errs   []error
	totals []entity.Totals
}

func (o *observerMock) OperationDone(op string, err error) {
	o.ops = append(o.ops, op)
	o.errs = append(o.errs, err)
}

func (o *observerMock) TotalsChanged(t entity.Totals) {
	o.totals = append(o.totals, t)
}

func newService(t *testing.T, items ...entity.Item) (*basket.Service, *repoMock) {
	t.Helper()

	repo := &repoMock{initial: items}
	svc := basket.NewService(repo)
	svc.Init(context.Background())

	return svc, repo
}

func draft(article, name, price string) entity.FormDraft {
	return entity.FormDraft{Article: article, Name: name, Price: price}
}

func TestService_Init(t *testing.T) {
	rq := require.New(t)

	svc, repo := newService(t, entity.Item{Article: 7, Name: "Tea", Price: 120, Discount: 0.25})

	state := svc.State(context.Background())

	rq.Equal([]entity.Item{{Article: 7, Name: "Tea", Price: 120, Discount: 0.25}}, state.Items)
	rq.Equal(entity.EmptyDraft(), state.Draft)
	rq.Equal(value.NoSelection{}, state.Selection)
	rq.Equal(entity.Totals{Count: 1, DiscountedCount: 1, SumWithoutDiscount: 120, SumWithDiscount: 90}, state.Totals)
	rq.Empty(repo.saved)
}

func TestService_Add(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, repo := newService(t)

	item, err := svc.Add(ctx, draft("1", "A", "100"))
	rq.NoError(err)
	rq.Equal(entity.Item{Article: 1, Name: "A", Price: 100}, item)

	_, err = svc.Add(ctx, draft("2", "B", "200"))
	rq.NoError(err)

	state := svc.State(ctx)
	rq.Len(state.Items, 2)
	rq.Equal(entity.EmptyDraft(), state.Draft)
	rq.True(state.FormErrors.Valid())
	rq.Equal(state.Items, repo.last())

	// Повтор артикула отклоняется, список не меняется.
	_, err = svc.Add(ctx, draft("1", "A again", "5"))
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.ValidationError))

	state = svc.State(ctx)
	rq.Len(state.Items, 2)
	rq.Equal(errcodes.DuplicateKey, state.FormErrors.Article.Code)
	rq.Equal(validation.MsgDuplicateArticle, state.FormErrors.Article.Message)
	rq.Equal(draft("1", "A again", "5"), state.Draft)
	rq.Len(repo.saved, 2)
}

func TestService_AddInvalidKeepsDraft(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, repo := newService(t)

	_, err := svc.Add(ctx, draft("-1", "", "abc"))
	rq.Error(err)

	state := svc.State(ctx)
	rq.Empty(state.Items)
	rq.Equal(errcodes.NegativeValue, state.FormErrors.Article.Code)
	rq.Equal(errcodes.MissingField, state.FormErrors.Name.Code)
	rq.Equal(errcodes.MissingField, state.FormErrors.Price.Code)
	rq.Empty(repo.saved)
}

func TestService_Remove(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, repo := newService(t,
		entity.Item{Article: 1, Name: "A", Price: 100},
		entity.Item{Article: 2, Name: "B", Price: 200},
	)

	rq.NoError(svc.Select(ctx, 1))
	rq.NoError(svc.Remove(ctx, 1))

	state := svc.State(ctx)
	rq.Equal([]entity.Item{{Article: 2, Name: "B", Price: 200}}, state.Items)
	rq.Equal(value.NoSelection{}, state.Selection)
	rq.Equal(state.Items, repo.last())

	// Отсутствующий артикул ничего не меняет и не пишет в хранилище.
	saves := len(repo.saved)
	rq.NoError(svc.Remove(ctx, 42))
	rq.Len(svc.State(ctx).Items, 1)
	rq.Len(repo.saved, saves)

	err := svc.ApplyDiscount(ctx, 10, value.TargetSelected)
	rq.True(domain.HasCode(err, errcodes.NoSelection))
}

func TestService_RemoveKeepsOtherSelection(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(t,
		entity.Item{Article: 1, Name: "A", Price: 100},
		entity.Item{Article: 2, Name: "B", Price: 200},
	)

	rq.NoError(svc.Select(ctx, 2))
	rq.NoError(svc.Remove(ctx, 1))

	rq.Equal(value.Selected{Article: 2}, svc.State(ctx).Selection)
}

func TestService_ApplyDiscount(t *testing.T) {
	testCases := []struct {
		name      string
		percent   float64
		target    value.Target
		selectArt int64
		discounts []float64
		totals    entity.Totals
	}{
		{
			name:      "ten percent on all",
			percent:   10,
			target:    value.TargetAll,
			discounts: []float64{0.1, 0.1},
			totals:    entity.Totals{Count: 2, DiscountedCount: 2, SumWithoutDiscount: 300, SumWithDiscount: 270},
		},
		{
			name:      "rounded to two decimals",
			percent:   33.333,
			target:    value.TargetAll,
			discounts: []float64{0.33, 0.33},
			totals:    entity.Totals{Count: 2, DiscountedCount: 2, SumWithoutDiscount: 300, SumWithDiscount: 201},
		},
		{
			name:      "zero equals clear",
			percent:   0,
			target:    value.TargetAll,
			discounts: []float64{0, 0},
			totals:    entity.Totals{Count: 2, SumWithoutDiscount: 300, SumWithDiscount: 300},
		},
		{
			name:      "hundred percent",
			percent:   100,
			target:    value.TargetAll,
			discounts: []float64{1, 1},
			totals:    entity.Totals{Count: 2, DiscountedCount: 2, SumWithoutDiscount: 300, SumWithDiscount: 0},
		},
		{
			name:      "selected only",
			percent:   50,
			target:    value.TargetSelected,
			selectArt: 2,
			discounts: []float64{0, 0.5},
			totals:    entity.Totals{Count: 2, DiscountedCount: 1, SumWithoutDiscount: 300, SumWithDiscount: 200},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			ctx := context.Background()

			svc, repo := newService(t,
				entity.Item{Article: 1, Name: "A", Price: 100},
				entity.Item{Article: 2, Name: "B", Price: 200},
			)

			if tc.selectArt != 0 {
				rq.NoError(svc.Select(ctx, tc.selectArt))
			}

			rq.NoError(svc.ApplyDiscount(ctx, tc.percent, tc.target))

			state := svc.State(ctx)
			for i, d := range tc.discounts {
				rq.InDelta(d, state.Items[i].Discount, 1e-9)
			}
			rq.Equal(tc.totals, state.Totals)
			rq.Equal(tc.percent, state.DiscountInput)
			rq.False(state.DiscountError.IsError)
			rq.Equal(state.Items, repo.last())
		})
	}
}

func TestService_ApplyDiscountErrors(t *testing.T) {
	testCases := []struct {
		name    string
		percent float64
		target  value.Target
		code    string
		message string
	}{
		{
			name:    "above hundred",
			percent: 150,
			target:  value.TargetAll,
			code:    string(errcodes.DiscountAboveHundred),
			message: validation.MsgDiscountAbove100,
		},
		{
			name:    "below zero",
			percent: -1,
			target:  value.TargetAll,
			code:    string(errcodes.DiscountBelowZero),
			message: validation.MsgDiscountBelowZero,
		},
		{
			name:    "selected without selection",
			percent: 10,
			target:  value.TargetSelected,
			code:    string(errcodes.NoSelection),
		},
		{
			name:    "unknown target",
			percent: 10,
			target:  value.Target("some"),
			code:    string(errcodes.InvalidTarget),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)
			ctx := context.Background()

			svc, repo := newService(t,
				entity.Item{Article: 1, Name: "A", Price: 100, Discount: 0.2},
				entity.Item{Article: 2, Name: "B", Price: 200},
			)

			err := svc.ApplyDiscount(ctx, tc.percent, tc.target)
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))

			state := svc.State(ctx)
			rq.InDelta(0.2, state.Items[0].Discount, 1e-9)
			rq.Zero(state.Items[1].Discount)
			rq.Equal(tc.message, state.DiscountError.Message)
			rq.Equal(tc.message != "", state.DiscountError.IsError)
			rq.Empty(repo.saved)
		})
	}
}

func TestService_ClearDiscount(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(t,
		entity.Item{Article: 1, Name: "A", Price: 100, Discount: 0.1},
		entity.Item{Article: 2, Name: "B", Price: 200, Discount: 0.2},
	)

	rq.NoError(svc.Select(ctx, 2))
	rq.NoError(svc.ClearDiscount(ctx, value.TargetSelected))

	state := svc.State(ctx)
	rq.InDelta(0.1, state.Items[0].Discount, 1e-9)
	rq.Zero(state.Items[1].Discount)
	rq.Zero(state.DiscountInput)
	rq.Equal(value.Selected{Article: 2}, state.Selection)

	rq.NoError(svc.ClearDiscount(ctx, value.TargetAll))

	state = svc.State(ctx)
	rq.Zero(state.Items[0].Discount)
	rq.Equal(state.Totals.SumWithoutDiscount, state.Totals.SumWithDiscount)
	rq.False(state.Totals.HasDiscount())

	err := svc.ClearDiscount(ctx, value.Target(""))
	rq.True(domain.HasCode(err, errcodes.InvalidTarget))
}

func TestService_ClearSelectedWithoutSelection(t *testing.T) {
	rq := require.New(t)

	svc, repo := newService(t, entity.Item{Article: 1, Name: "A", Price: 100, Discount: 0.1})

	err := svc.ClearDiscount(context.Background(), value.TargetSelected)
	rq.True(domain.HasCode(err, errcodes.NoSelection))
	rq.Empty(repo.saved)
}

func TestService_Select(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, repo := newService(t,
		entity.Item{Article: 1, Name: "A", Price: 100, Discount: 0.15},
		entity.Item{Article: 2, Name: "B", Price: 200},
	)

	rq.NoError(svc.Select(ctx, 1))
	state := svc.State(ctx)
	rq.Equal(value.Selected{Article: 1}, state.Selection)
	rq.InDelta(15, state.DiscountInput, 1e-9)

	rq.NoError(svc.Select(ctx, 2))
	state = svc.State(ctx)
	rq.Equal(value.Selected{Article: 2}, state.Selection)
	rq.Zero(state.DiscountInput)

	// Повторный выбор снимает выделение.
	rq.NoError(svc.Select(ctx, 2))
	state = svc.State(ctx)
	rq.Equal(value.NoSelection{}, state.Selection)
	rq.Zero(state.DiscountInput)

	err := svc.ApplyDiscount(ctx, 10, value.TargetSelected)
	rq.True(domain.HasCode(err, errcodes.NoSelection))

	err = svc.Select(ctx, 99)
	rq.True(domain.HasCode(err, errcodes.ItemNotFound))

	// Выбор не сохраняется в хранилище.
	rq.Empty(repo.saved)
}

func TestService_SaveFailureIsNotSurfaced(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &repoMock{saveErr: errors.New("disk full")}
	svc := basket.NewService(repo)
	svc.Init(ctx)

	_, err := svc.Add(ctx, draft("1", "A", "10"))
	rq.NoError(err)
	rq.Len(svc.State(ctx).Items, 1)
	rq.Len(repo.saved, 1)
}

func TestService_Observer(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	observer := &observerMock{}
	svc := basket.NewService(&repoMock{}).WithObserver(observer)
	svc.Init(ctx)

	_, err := svc.Add(ctx, draft("1", "A", "100"))
	rq.NoError(err)

	err = svc.ApplyDiscount(ctx, 200, value.TargetAll)
	rq.Error(err)

	rq.Equal([]string{basket.OpAdd, basket.OpApplyDiscount}, observer.ops)
	rq.NoError(observer.errs[0])
	rq.True(domain.HasCode(observer.errs[1], errcodes.DiscountAboveHundred))
	rq.Equal(entity.Totals{Count: 1, SumWithoutDiscount: 100, SumWithDiscount: 100}, observer.totals[len(observer.totals)-1])
}

func TestService_StateIsSnapshot(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(t, entity.Item{Article: 1, Name: "A", Price: 100})

	state := svc.State(ctx)
	state.Items[0].Price = 1

	rq.InDelta(100, svc.State(ctx).Items[0].Price, 1e-9)
}

func TestService_Concurrent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc, _ := newService(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Add(ctx, draft(string(rune('0'+i%10)), "item", "10"))
			_ = svc.ApplyDiscount(ctx, 10, value.TargetAll)
		}()
	}
	wg.Wait()

	state := svc.State(ctx)
	rq.Len(state.Items, 10)
	rq.Equal(10, state.Totals.Count)
}

func TestToFraction(t *testing.T) {
	rq := require.New(t)

	rq.InDelta(0.1, basket.ToFraction(10), 1e-12)
	rq.InDelta(0.33, basket.ToFraction(33.333), 1e-12)
	rq.InDelta(0.34, basket.ToFraction(33.5), 1e-12)
	rq.InDelta(1, basket.ToFraction(100), 1e-12)
	rq.Zero(basket.ToFraction(0))
}
