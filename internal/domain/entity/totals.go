package entity

// Totals содержит производные итоги корзины. Они не хранятся, только пересчитываются.
type Totals struct {
	Count              int     `json:"count"`
	DiscountedCount    int     `json:"discountedCount"`
	SumWithoutDiscount float64 `json:"sumWithoutDiscount"`
	SumWithDiscount    float64 `json:"sumWithDiscount"`
}

// HasDiscount сообщает, нужно ли показывать две суммы (без скидки и со скидкой).
func (t Totals) HasDiscount() bool {
	return t.SumWithDiscount != t.SumWithoutDiscount
}
