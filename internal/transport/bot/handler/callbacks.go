package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"basket/internal/transport/bot/view"
)

// OnItemCallback обрабатывает кнопки «выбрать» и «удалить» под списком.
func (h *Handler) OnItemCallback(ctx *th.Context, query telego.CallbackQuery) error {
	action, article, ok := ParseItemCallback(query.Data)
	if action == "" {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
	}

	if !ok {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).WithText(view.ArticleUsage))
	}

	var err error
	if action == ActionSelect {
		err = h.svc.Select(ctx, article)
	} else {
		err = h.svc.Remove(ctx, article)
	}

	if err != nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).WithText(view.ItemNotFound).WithShowAlert())
	}

	// Обязательно отвечаем на коллбэк, чтобы убрать часики
	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	if query.Message == nil {
		return nil
	}

	return h.sendBasket(ctx, query.Message.GetChat().ID, "")
}
