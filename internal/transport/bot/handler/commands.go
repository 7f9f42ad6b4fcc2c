package handler

import (
	"strconv"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"basket/internal/domain"
	"basket/internal/domain/entity"
	"basket/internal/domain/value"
	"basket/internal/transport/bot/view"
	"basket/pkg/errcodes"
	"basket/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnList(ctx *th.Context, msg telego.Message) error {
	return h.sendBasket(ctx, msg.Chat.ID, "")
}

// OnAdd: /add <артикул> <цена> <название...>
func (h *Handler) OnAdd(ctx *th.Context, msg telego.Message) error {
	draft, ok := ParseAddCommand(msg.Text)
	if !ok {
		return h.sendText(ctx, msg.Chat.ID, view.AddUsage)
	}

	if _, err := h.svc.Add(ctx, draft); err != nil {
		if domain.HasCode(err, errcodes.ValidationError) {
			return h.sendText(ctx, msg.Chat.ID, view.FormErrors(h.svc.State(ctx).FormErrors))
		}
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendBasket(ctx, msg.Chat.ID, view.ItemAdded)
}

func (h *Handler) OnRemove(ctx *th.Context, msg telego.Message) error {
	article, ok := ParseArticleArg(msg.Text)
	if !ok {
		return h.sendText(ctx, msg.Chat.ID, view.ArticleUsage)
	}

	if err := h.svc.Remove(ctx, article); err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendBasket(ctx, msg.Chat.ID, view.ItemRemoved)
}

func (h *Handler) OnSelect(ctx *th.Context, msg telego.Message) error {
	article, ok := ParseArticleArg(msg.Text)
	if !ok {
		return h.sendText(ctx, msg.Chat.ID, view.ArticleUsage)
	}

	if err := h.svc.Select(ctx, article); err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendBasket(ctx, msg.Chat.ID, "")
}

func (h *Handler) OnDiscountAll(ctx *th.Context, msg telego.Message) error {
	return h.applyDiscount(ctx, msg, value.TargetAll)
}

func (h *Handler) OnDiscountSelected(ctx *th.Context, msg telego.Message) error {
	return h.applyDiscount(ctx, msg, value.TargetSelected)
}

func (h *Handler) OnClearAll(ctx *th.Context, msg telego.Message) error {
	return h.clearDiscount(ctx, msg, value.TargetAll)
}

func (h *Handler) OnClearSelected(ctx *th.Context, msg telego.Message) error {
	return h.clearDiscount(ctx, msg, value.TargetSelected)
}

func (h *Handler) applyDiscount(ctx *th.Context, msg telego.Message, target value.Target) error {
	percent, ok := ParsePercentArg(msg.Text)
	if !ok {
		return h.sendText(ctx, msg.Chat.ID, view.DiscountUsage)
	}

	if err := h.svc.ApplyDiscount(ctx, percent, target); err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendBasket(ctx, msg.Chat.ID, view.DiscountApplied)
}

func (h *Handler) clearDiscount(ctx *th.Context, msg telego.Message, target value.Target) error {
	if err := h.svc.ClearDiscount(ctx, target); err != nil {
		return h.fail(ctx, msg.Chat.ID, err)
	}

	return h.sendBasket(ctx, msg.Chat.ID, view.DiscountCleared)
}

// fail показывает пользователю понятное сообщение для доменных ошибок.
func (h *Handler) fail(ctx *th.Context, chatID int64, err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		logger(ctx).Error("bot command failed", logx.Error(err))
		return h.sendText(ctx, chatID, view.InternalError)
	}

	switch code {
	case errcodes.NoSelection:
		return h.sendText(ctx, chatID, view.NoSelection)
	case errcodes.ItemNotFound:
		return h.sendText(ctx, chatID, view.ItemNotFound)
	case errcodes.DiscountBelowZero, errcodes.DiscountAboveHundred:
		return h.sendText(ctx, chatID, "❌ "+h.svc.State(ctx).DiscountError.Message)
	default:
		logger(ctx).Error("bot command failed", logx.Error(err))
		return h.sendText(ctx, chatID, view.InternalError)
	}
}

func (h *Handler) sendBasket(ctx *th.Context, chatID int64, header string) error {
	state := h.svc.State(ctx)

	text := view.Basket(state)
	if header != "" {
		text = header + "\n\n" + text
	}

	msg := tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML)
	if len(state.Items) > 0 {
		msg = msg.WithReplyMarkup(itemsKeyboard(state.Items))
	}

	_, err := ctx.Bot().SendMessage(ctx, msg)
	return err
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	return err
}

func (h *Handler) sendText(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text))
	return err
}

// itemsKeyboard строит по строке кнопок «выбрать» и «удалить» на товар.
func itemsKeyboard(items []entity.Item) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(items))

	for _, item := range items {
		article := strconv.FormatInt(item.Article, 10)
		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("👉 #"+article).WithCallbackData(view.CallbackSelectPrefix+article),
			tu.InlineKeyboardButton("🗑 #"+article).WithCallbackData(view.CallbackRemovePrefix+article),
		))
	}

	return tu.InlineKeyboard(rows...)
}
