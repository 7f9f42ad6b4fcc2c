package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"basket/internal/domain/entity"
	"basket/internal/domain/service/totals"
	"basket/internal/domain/value"
	"basket/internal/transport/bot/view"
	"basket/pkg/errcodes"
)

func TestBasket(t *testing.T) {
	items := []entity.Item{
		{Article: 1, Name: "Bread <fresh>", Price: 100, Discount: 0.1},
		{Article: 2, Name: "Milk", Price: 200},
	}

	testCases := []struct {
		name        string
		state       entity.State
		contains    []string
		notContains []string
	}{
		{
			name:     "empty basket",
			state:    entity.State{Selection: value.NoSelection{}},
			contains: []string{"Всего товаров:</b> 0", view.EmptyBasket},
		},
		{
			name: "discounted items with selection",
			state: entity.State{
				Items:     items,
				Totals:    totals.Calculate(items),
				Selection: value.Selected{Article: 2},
			},
			contains: []string{
				"Всего товаров:</b> 2",
				"<s>300</s> 290",
				"#1 Bread &lt;fresh&gt; — <s>100</s> 90",
				"👉 #2 Milk — 200",
			},
			notContains: []string{view.EmptyBasket, "<fresh>"},
		},
		{
			name: "no discount shows one sum",
			state: entity.State{
				Items:     items[1:],
				Totals:    totals.Calculate(items[1:]),
				Selection: value.NoSelection{},
			},
			contains:    []string{"Общая стоимость:</b> 200", "▫️ #2 Milk — 200"},
			notContains: []string{"<s>"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			out := view.Basket(tc.state)

			for _, s := range tc.contains {
				rq.Contains(out, s)
			}
			for _, s := range tc.notContains {
				rq.NotContains(out, s)
			}
		})
	}
}

func TestFormErrors(t *testing.T) {
	rq := require.New(t)

	out := view.FormErrors(value.FormErrors{
		Article: value.NewFieldError(errcodes.DuplicateKey, "This item is already in the basket"),
		Price:   value.NewFieldError(errcodes.NegativeValue, "Price cannot be negative"),
	})

	rq.Equal("❌ Артикул: This item is already in the basket\n❌ Цена: Price cannot be negative", out)
	rq.Empty(view.FormErrors(value.FormErrors{}))
}

func TestNumber(t *testing.T) {
	rq := require.New(t)

	rq.Equal("0", view.Number(0))
	rq.Equal("12.5", view.Number(12.5))
	rq.Equal("0.3", view.Number(0.3))
}
