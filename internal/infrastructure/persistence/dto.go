package persistence

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"basket/internal/domain/entity"
)

var (
	errNegative   = errors.New("negative value")
	errFractional = errors.New("article is not an integer")
	errOverflow   = errors.New("article out of int64 range")
	errEmptyName  = errors.New("empty name")
	errDiscount   = errors.New("discount out of [0,1]")
)

// 2^63: первое значение, не помещающееся в int64.
const int64Bound = float64(1 << 63)

// unquoteNumber снимает кавычки со значения, если оно было сохранено строкой.
// Второй результат сообщает, что в JSON был null.
func unquoteNumber(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return "", true
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	return s, false
}

// flexNumber принимает и число, и число в строке: форма исторически
// сохраняла значения полей ввода как есть.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s, isNull := unquoteNumber(data)
	if isNull {
		*n = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("strconv.ParseFloat: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("non-finite number %q", s)
	}

	*n = flexNumber(f)
	return nil
}

// flexArticle читает артикул без потери точности: целое разбирается
// как int64, а не через float64.
type flexArticle int64

func (a *flexArticle) UnmarshalJSON(data []byte) error {
	s, isNull := unquoteNumber(data)
	if isNull {
		*a = 0
		return nil
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*a = flexArticle(v)
		return nil
	}

	// Запасной путь для записей вида 5.0 или 1e3.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	switch {
	case math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f):
		return errFractional
	case f >= int64Bound || f < -int64Bound:
		return errOverflow
	}

	*a = flexArticle(int64(f))
	return nil
}

// itemSchema описывает сохранённое представление товара.
type itemSchema struct {
	Article  flexArticle `json:"article"`
	Name     string      `json:"name"`
	Price    flexNumber  `json:"price"`
	Discount flexNumber  `json:"discount"`
}

func fromItem(item entity.Item) itemSchema {
	return itemSchema{
		Article:  flexArticle(item.Article),
		Name:     item.Name,
		Price:    flexNumber(item.Price),
		Discount: flexNumber(item.Discount),
	}
}

// toDomain проверяет инварианты товара.
func (s itemSchema) toDomain() (entity.Item, error) {
	switch {
	case s.Article < 0 || s.Price < 0:
		return entity.Item{}, errNegative
	case strings.TrimSpace(s.Name) == "":
		return entity.Item{}, errEmptyName
	case s.Discount < 0 || s.Discount > 1:
		return entity.Item{}, errDiscount
	}

	return entity.Item{
		Article:  int64(s.Article),
		Name:     s.Name,
		Price:    float64(s.Price),
		Discount: float64(s.Discount),
	}, nil
}
