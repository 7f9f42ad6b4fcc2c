package handler

import (
	"strconv"
	"strings"

	"basket/internal/domain/entity"
	"basket/internal/transport/bot/view"
)

// ItemAction — действие кнопки под товаром.
type ItemAction string

const (
	ActionSelect ItemAction = "select"
	ActionRemove ItemAction = "remove"
)

// ParseAddCommand разбирает "/add <артикул> <цена> <название...>".
// Значения не проверяются: это работа валидации корзины.
func ParseAddCommand(text string) (entity.FormDraft, bool) {
	parts := strings.Fields(text)
	if len(parts) < 4 {
		return entity.FormDraft{}, false
	}

	return entity.FormDraft{
		Article: parts[1],
		Price:   parts[2],
		Name:    strings.Join(parts[3:], " "),
	}, true
}

// ParseArticleArg читает целочисленный артикул из первого аргумента команды.
func ParseArticleArg(text string) (int64, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return 0, false
	}

	article, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return article, true
}

// ParsePercentArg читает процент скидки из первого аргумента команды.
// Диапазон проверяет сервис.
func ParsePercentArg(text string) (float64, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return 0, false
	}

	percent, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, false
	}

	return percent, true
}

// ParseItemCallback разбирает данные кнопок "select:<артикул>" и "remove:<артикул>".
// Для неизвестного префикса действие пустое; для битого артикула действие
// возвращается, но ok == false.
func ParseItemCallback(data string) (ItemAction, int64, bool) {
	var action ItemAction

	switch {
	case strings.HasPrefix(data, view.CallbackSelectPrefix):
		action = ActionSelect
		data = strings.TrimPrefix(data, view.CallbackSelectPrefix)
	case strings.HasPrefix(data, view.CallbackRemovePrefix):
		action = ActionRemove
		data = strings.TrimPrefix(data, view.CallbackRemovePrefix)
	default:
		return "", 0, false
	}

	article, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return action, 0, false
	}

	return action, article, true
}
