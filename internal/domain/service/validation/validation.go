// Package validation проверяет черновик товара и введённую скидку.
// Все функции чистые: результат зависит только от аргументов.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"basket/internal/domain/entity"
	"basket/internal/domain/value"
	"basket/pkg/errcodes"
)

const (
	MsgRequired          = "Field is required"
	MsgNegativeArticle   = "Article cannot be negative"
	MsgDuplicateArticle  = "This item is already in the basket"
	MsgNegativePrice     = "Price cannot be negative"
	MsgDiscountBelowZero = "Discount is below 0"
	MsgDiscountAbove100  = "Discount is above 100"

	MaxDiscountPercent = 100
)

// Validate проверяет черновик относительно текущего списка.
// Правила полей независимы; внутри одного поля побеждает последнее сработавшее.
func Validate(draft entity.FormDraft, existing []entity.Item) value.FormErrors {
	var errs value.FormErrors

	article, ok := ParseArticle(draft.Article)
	if !ok {
		errs.Article = value.NewFieldError(errcodes.MissingField, MsgRequired)
	}
	if ok && article < 0 {
		errs.Article = value.NewFieldError(errcodes.NegativeValue, MsgNegativeArticle)
	}
	if ok && lo.ContainsBy(existing, func(item entity.Item) bool { return item.Article == article }) {
		errs.Article = value.NewFieldError(errcodes.DuplicateKey, MsgDuplicateArticle)
	}

	if strings.TrimSpace(draft.Name) == "" {
		errs.Name = value.NewFieldError(errcodes.MissingField, MsgRequired)
	}

	price, ok := ParsePrice(draft.Price)
	if !ok {
		errs.Price = value.NewFieldError(errcodes.MissingField, MsgRequired)
	}
	if ok && price < 0 {
		errs.Price = value.NewFieldError(errcodes.NegativeValue, MsgNegativePrice)
	}

	return errs
}

// ValidateDiscount проверяет процент скидки: 0 <= percent <= 100.
func ValidateDiscount(percent float64) value.FieldError {
	switch {
	case math.IsNaN(percent) || percent < 0:
		return value.NewFieldError(errcodes.DiscountBelowZero, MsgDiscountBelowZero)
	case percent > MaxDiscountPercent:
		return value.NewFieldError(errcodes.DiscountAboveHundred, MsgDiscountAbove100)
	default:
		return value.FieldError{}
	}
}

// ParseArticle разбирает целочисленный артикул. false означает пустое поле или не число.
func ParseArticle(s string) (int64, bool) {
	article, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return article, true
}

// ParsePrice разбирает конечное число. false означает пустое поле или не число.
func ParsePrice(s string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}
