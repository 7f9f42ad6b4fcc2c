package view

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"basket/internal/domain/entity"
	"basket/internal/domain/value"
)

const (
	StartMessage = `🛒 <b>Корзина</b>

/list — содержимое корзины
/add &lt;артикул&gt; &lt;цена&gt; &lt;название&gt; — добавить товар
/remove &lt;артикул&gt; — удалить товар
/select &lt;артикул&gt; — выбрать товар (повторно — снять выбор)
/discount &lt;0..100&gt; — скидка на все товары
/discountsel &lt;0..100&gt; — скидка на выбранный товар
/clear — убрать скидки со всех товаров
/clearsel — убрать скидку с выбранного товара`

	EmptyBasket          = "Список пуст"
	AddUsage             = "Формат: /add <артикул> <цена> <название>"
	ArticleUsage         = "Укажите артикул числом"
	DiscountUsage        = "Укажите скидку числом от 0 до 100"
	ItemAdded            = "✅ Товар добавлен"
	ItemRemoved          = "🗑 Товар удалён"
	DiscountApplied      = "✅ Скидка установлена"
	DiscountCleared      = "✅ Скидки убраны"
	NoSelection          = "Сначала выберите товар: /select <артикул>"
	ItemNotFound         = "Товар не найден"
	InternalError        = "❌ Ошибка, попробуйте позже"
	CallbackSelectPrefix = "select:"
	CallbackRemovePrefix = "remove:"
)

// Number выводит число как есть, без валюты и локали.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Basket рендерит корзину в HTML для Telegram.
func Basket(state entity.State) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🛒 <b>Всего товаров:</b> %d\n", state.Totals.Count))

	if state.Totals.HasDiscount() {
		sb.WriteString(fmt.Sprintf("💰 <b>Общая стоимость:</b> <s>%s</s> %s\n",
			Number(state.Totals.SumWithoutDiscount), Number(state.Totals.SumWithDiscount)))
	} else {
		sb.WriteString(fmt.Sprintf("💰 <b>Общая стоимость:</b> %s\n", Number(state.Totals.SumWithDiscount)))
	}

	if len(state.Items) == 0 {
		sb.WriteString("\n" + EmptyBasket)
		return sb.String()
	}

	selected, hasSelection := value.SelectedArticle(state.Selection)

	sb.WriteString("\n")
	for _, item := range state.Items {
		marker := "▫️"
		if hasSelection && item.Article == selected {
			marker = "👉"
		}

		sb.WriteString(fmt.Sprintf("%s #%d %s — %s\n", marker, item.Article, html.EscapeString(item.Name), Price(item)))
	}

	return sb.String()
}

// Price выводит цену товара: одну без скидки, иначе зачёркнутую и итоговую.
func Price(item entity.Item) string {
	if !item.HasDiscount() {
		return Number(item.Price)
	}
	return fmt.Sprintf("<s>%s</s> %s", Number(item.Price), Number(item.DiscountedPrice()))
}

// FormErrors перечисляет ошибки полей формы добавления.
func FormErrors(errs value.FormErrors) string {
	var lines []string

	for _, f := range []struct {
		name string
		err  value.FieldError
	}{
		{"Артикул", errs.Article},
		{"Название", errs.Name},
		{"Цена", errs.Price},
	} {
		if f.err.IsError {
			lines = append(lines, fmt.Sprintf("❌ %s: %s", f.name, f.err.Message))
		}
	}

	return strings.Join(lines, "\n")
}
