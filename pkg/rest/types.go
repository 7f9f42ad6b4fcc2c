// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// Item Товар в корзине
type Item struct {
	Article         int64   `json:"article"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// Totals Итоги корзины
type Totals struct {
	Count              int     `json:"count"`
	DiscountedCount    int     `json:"discountedCount"`
	SumWithoutDiscount float64 `json:"sumWithoutDiscount"`
	SumWithDiscount    float64 `json:"sumWithDiscount"`
}

// Draft Черновик формы добавления товара (значения как введены)
type Draft struct {
	Article string `json:"article"`
	Name    string `json:"name"`
	Price   string `json:"price"`
}

// FieldError Ошибка поля ввода
type FieldError struct {
	IsError bool      `json:"isError"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
}

type FormErrors struct {
	Article FieldError `json:"article"`
	Name    FieldError `json:"name"`
	Price   FieldError `json:"price"`
}

// Basket Снимок корзины
type Basket struct {
	Items           []Item     `json:"items"`
	Totals          Totals     `json:"totals"`
	Draft           Draft      `json:"draft"`
	FormErrors      FormErrors `json:"formErrors"`
	DiscountInput   float64    `json:"discountInput"`
	DiscountError   FieldError `json:"discountError"`
	SelectedArticle *int64     `json:"selectedArticle"`
}

// DiscountRequest Установка скидки
type DiscountRequest struct {
	Percent *float64 `json:"percent" validate:"required"`
	Target  string   `json:"target" validate:"omitempty,oneof=all selected"`
}

// DiscountInputRequest Правка поля скидки
type DiscountInputRequest struct {
	Percent *float64 `json:"percent" validate:"required"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI)
	Message string `json:"message"`
}

// BasketError Ошибка операции вместе с актуальным состоянием формы
type BasketError struct {
	Error
	Basket Basket `json:"basket"`
}

// ErrorCode Код ошибки
type ErrorCode string
