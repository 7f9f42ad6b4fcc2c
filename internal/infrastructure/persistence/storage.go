package persistence

import "context"

// DefaultKey это ключ, под которым хранится корзина.
const DefaultKey = "_BASKET_"

// Storage хранит строки по ключу и ничего не знает об их содержимом.
type Storage interface {
	// GetItem возвращает значение и признак его наличия.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem перезаписывает значение целиком.
	SetItem(ctx context.Context, key, value string) error
}
