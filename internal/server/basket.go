package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"basket/internal/domain"
	"basket/internal/domain/entity"
	"basket/internal/domain/value"
	"basket/pkg/errcodes"
	"basket/pkg/httpx/reply"
	"basket/pkg/httpx/req"
	"basket/pkg/rest"
)

type basketService interface {
	State(context.Context) entity.State
	SetDraft(entity.FormDraft)
	SetDiscountInput(float64)
	Add(context.Context, entity.FormDraft) (entity.Item, error)
	Remove(context.Context, int64) error
	ApplyDiscount(context.Context, float64, value.Target) error
	ClearDiscount(context.Context, value.Target) error
	Select(context.Context, int64) error
}

type BasketServer struct {
	basketService basketService
}

func NewBasketServer(basketService basketService) BasketServer {
	return BasketServer{
		basketService: basketService,
	}
}

func (s BasketServer) getV1Basket(w http.ResponseWriter, r *http.Request) error {
	s.replyState(w, r)

	return nil
}

func (s BasketServer) putV1Draft(w http.ResponseWriter, r *http.Request) error {
	var request rest.Draft

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	s.basketService.SetDraft(newDomainDraft(request))

	s.replyState(w, r)

	return nil
}

func (s BasketServer) postV1Item(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.Draft

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if _, err := s.basketService.Add(ctx, newDomainDraft(request)); err != nil {
		return s.replyDomainError(w, r, err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTBasket(s.basketService.State(ctx)))

	return nil
}

func (s BasketServer) deleteV1Item(w http.ResponseWriter, r *http.Request) error {
	article, err := parseArticle(chi.URLParam(r, "article"))
	if err != nil {
		return err
	}

	if err := s.basketService.Remove(r.Context(), article); err != nil {
		return s.replyDomainError(w, r, err)
	}

	s.replyState(w, r)

	return nil
}

func (s BasketServer) putV1DiscountInput(w http.ResponseWriter, r *http.Request) error {
	var request rest.DiscountInputRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	s.basketService.SetDiscountInput(*request.Percent)

	s.replyState(w, r)

	return nil
}

func (s BasketServer) postV1Discount(w http.ResponseWriter, r *http.Request) error {
	var request rest.DiscountRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	target, err := parseTarget(request.Target)
	if err != nil {
		return err
	}

	if err := s.basketService.ApplyDiscount(r.Context(), *request.Percent, target); err != nil {
		return s.replyDomainError(w, r, err)
	}

	s.replyState(w, r)

	return nil
}

func (s BasketServer) deleteV1Discount(w http.ResponseWriter, r *http.Request) error {
	target, err := parseTarget(r.URL.Query().Get("target"))
	if err != nil {
		return err
	}

	if err := s.basketService.ClearDiscount(r.Context(), target); err != nil {
		return s.replyDomainError(w, r, err)
	}

	s.replyState(w, r)

	return nil
}

func (s BasketServer) postV1Selection(w http.ResponseWriter, r *http.Request) error {
	article, err := parseArticle(chi.URLParam(r, "article"))
	if err != nil {
		return err
	}

	if err := s.basketService.Select(r.Context(), article); err != nil {
		return s.replyDomainError(w, r, err)
	}

	s.replyState(w, r)

	return nil
}

func (s BasketServer) replyState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, newRESTBasket(s.basketService.State(ctx)))
}

// replyDomainError отвечает кодом ошибки и текущим снимком, чтобы UI показал
// ошибки полей. Не доменные ошибки уходят в общий обработчик.
func (s BasketServer) replyDomainError(w http.ResponseWriter, r *http.Request, err error) error {
	ctx := r.Context()

	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	status := statusFor(appErr.Code)
	if status == http.StatusInternalServerError {
		return err
	}

	reply.JSON(ctx, w, status, rest.BasketError{
		Error: rest.Error{
			Code:    rest.ErrorCode(appErr.Code),
			Message: appErr.Message,
		},
		Basket: newRESTBasket(s.basketService.State(ctx)),
	})

	return nil
}

func statusFor(code failure.ErrorCode) int {
	switch code {
	case errcodes.ValidationError,
		errcodes.DiscountBelowZero,
		errcodes.DiscountAboveHundred,
		errcodes.InvalidTarget:
		return http.StatusBadRequest
	case errcodes.ItemNotFound:
		return http.StatusNotFound
	case errcodes.NoSelection:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseArticle(raw string) (int64, error) {
	article, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.NewInvalidArgumentError(
			fmt.Errorf("strconv.ParseInt: %w", err).Error(),
			failure.WithCode(errcodes.InvalidArticle),
			failure.WithDescription("article must be an integer"),
		)
	}

	return article, nil
}

func parseTarget(raw string) (value.Target, error) {
	target, err := value.ParseTarget(raw)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseTarget: %w", err),
			failure.WithCode(errcodes.InvalidTarget),
			failure.WithDescription(err.Error()),
		)
	}

	return target, nil
}
