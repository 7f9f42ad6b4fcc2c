package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"basket/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Корзина одна, поэтому бот отвечает только администратору
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnList, th.CommandEqual("list"))
	adminGroup.HandleMessage(h.OnAdd, th.CommandEqual("add"))
	adminGroup.HandleMessage(h.OnRemove, th.CommandEqual("remove"))
	adminGroup.HandleMessage(h.OnSelect, th.CommandEqual("select"))
	adminGroup.HandleMessage(h.OnDiscountAll, th.CommandEqual("discount"))
	adminGroup.HandleMessage(h.OnDiscountSelected, th.CommandEqual("discountsel"))
	adminGroup.HandleMessage(h.OnClearAll, th.CommandEqual("clear"))
	adminGroup.HandleMessage(h.OnClearSelected, th.CommandEqual("clearsel"))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnItemCallback, th.AnyCallbackQuery())
}
