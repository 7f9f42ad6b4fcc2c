package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"
	InvalidArticle      failure.ErrorCode = "InvalidArticle"
	InvalidTarget       failure.ErrorCode = "InvalidTarget"

	// Форма добавления товара
	MissingField  failure.ErrorCode = "MissingField"  // Пустое или нечисловое значение
	NegativeValue failure.ErrorCode = "NegativeValue" // Идентификатор или цена меньше нуля
	DuplicateKey  failure.ErrorCode = "DuplicateKey"  // Товар с таким идентификатором уже в корзине

	// Скидки
	DiscountBelowZero    failure.ErrorCode = "DiscountBelowZero"
	DiscountAboveHundred failure.ErrorCode = "DiscountAboveHundred"
	NoSelection          failure.ErrorCode = "NoSelection" // Скидка на выбранный товар без выбора

	ItemNotFound            failure.ErrorCode = "ItemNotFound"
	PersistenceParseFailure failure.ErrorCode = "PersistenceParseFailure"
)
