package entity

import "basket/internal/domain/value"

// State это снимок корзины и состояния формы для слоя отображения.
type State struct {
	Items         []Item
	Totals        Totals
	Draft         FormDraft
	FormErrors    value.FormErrors
	DiscountInput float64
	DiscountError value.FieldError
	Selection     value.Selection
}
