package entity

import "github.com/shopspring/decimal"

// Item описывает позицию корзины. Article уникален в пределах корзины.
type Item struct {
	Article  int64   `json:"article"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"` // доля 0..1, два знака после запятой
}

// HasDiscount сообщает, что на товар действует скидка.
func (i Item) HasDiscount() bool {
	return i.Discount != 0
}

// DiscountedPrice считает цену с учётом скидки: price - price*discount.
func (i Item) DiscountedPrice() float64 {
	price := decimal.NewFromFloat(i.Price)
	return price.Sub(price.Mul(decimal.NewFromFloat(i.Discount))).InexactFloat64()
}

// DiscountPercent переводит долю скидки обратно в проценты для поля ввода.
func (i Item) DiscountPercent() float64 {
	return decimal.NewFromFloat(i.Discount).Shift(2).InexactFloat64()
}
