package handler

import (
	"context"

	"basket/internal/domain/entity"
	"basket/internal/domain/value"
	"basket/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type basketService interface {
	State(context.Context) entity.State
	Add(context.Context, entity.FormDraft) (entity.Item, error)
	Remove(context.Context, int64) error
	ApplyDiscount(context.Context, float64, value.Target) error
	ClearDiscount(context.Context, value.Target) error
	Select(context.Context, int64) error
}

type Handler struct {
	svc basketService
}

func New(svc basketService) *Handler {
	return &Handler{
		svc: svc,
	}
}
