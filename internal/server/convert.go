package server

import (
	"basket/internal/domain/entity"
	"basket/internal/domain/value"
	"basket/pkg/lox"
	"basket/pkg/rest"
)

func newRESTItem(item entity.Item) rest.Item {
	return rest.Item{
		Article:         item.Article,
		Name:            item.Name,
		Price:           item.Price,
		Discount:        item.Discount,
		DiscountedPrice: item.DiscountedPrice(),
	}
}

func newRESTFieldError(e value.FieldError) rest.FieldError {
	return rest.FieldError{
		IsError: e.IsError,
		Message: e.Message,
		Code:    rest.ErrorCode(e.Code),
	}
}

func newRESTBasket(state entity.State) rest.Basket {
	basket := rest.Basket{
		Items: lox.Map(state.Items, newRESTItem),
		Totals: rest.Totals{
			Count:              state.Totals.Count,
			DiscountedCount:    state.Totals.DiscountedCount,
			SumWithoutDiscount: state.Totals.SumWithoutDiscount,
			SumWithDiscount:    state.Totals.SumWithDiscount,
		},
		Draft: rest.Draft{
			Article: state.Draft.Article,
			Name:    state.Draft.Name,
			Price:   state.Draft.Price,
		},
		FormErrors: rest.FormErrors{
			Article: newRESTFieldError(state.FormErrors.Article),
			Name:    newRESTFieldError(state.FormErrors.Name),
			Price:   newRESTFieldError(state.FormErrors.Price),
		},
		DiscountInput: state.DiscountInput,
		DiscountError: newRESTFieldError(state.DiscountError),
	}

	if article, ok := value.SelectedArticle(state.Selection); ok {
		basket.SelectedArticle = &article
	}

	return basket
}

func newDomainDraft(draft rest.Draft) entity.FormDraft {
	return entity.FormDraft{
		Article: draft.Article,
		Name:    draft.Name,
		Price:   draft.Price,
	}
}
