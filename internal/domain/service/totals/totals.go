package totals

import (
	"github.com/shopspring/decimal"

	"basket/internal/domain/entity"
)

// Calculate пересчитывает итоги корзины целиком.
func Calculate(items []entity.Item) entity.Totals {
	var (
		discounted int
		without    = decimal.Zero
		with       = decimal.Zero
	)

	for _, item := range items {
		if item.HasDiscount() {
			discounted++
		}

		price := decimal.NewFromFloat(item.Price)
		without = without.Add(price)
		with = with.Add(price.Sub(price.Mul(decimal.NewFromFloat(item.Discount))))
	}

	return entity.Totals{
		Count:              len(items),
		DiscountedCount:    discounted,
		SumWithoutDiscount: without.InexactFloat64(),
		SumWithDiscount:    with.InexactFloat64(),
	}
}
