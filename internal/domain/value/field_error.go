package value

import "git.appkode.ru/pub/go/failure"

// FieldError хранит состояние ошибки одного поля ввода.
type FieldError struct {
	IsError bool              `json:"isError"`
	Message string            `json:"message"`
	Code    failure.ErrorCode `json:"code,omitempty"`
}

func NewFieldError(code failure.ErrorCode, message string) FieldError {
	return FieldError{IsError: true, Message: message, Code: code}
}

// FormErrors содержит ошибки формы добавления товара и пересчитывается целиком.
type FormErrors struct {
	Article FieldError `json:"article"`
	Name    FieldError `json:"name"`
	Price   FieldError `json:"price"`
}

// Valid сообщает, что ни одно поле не содержит ошибки.
func (e FormErrors) Valid() bool {
	return !e.Article.IsError && !e.Name.IsError && !e.Price.IsError
}
