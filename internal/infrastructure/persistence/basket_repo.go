package persistence

import (
	"context"
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"basket/internal/domain"
	"basket/internal/domain/entity"
	"basket/pkg/errcodes"
	"basket/pkg/logx"
	"basket/pkg/lox"
)

// BasketRepository хранит весь список товаров одним значением под одним ключом.
type BasketRepository struct {
	storage Storage
	key     string
}

func NewBasketRepository(storage Storage, key string) *BasketRepository {
	if key == "" {
		key = DefaultKey
	}

	return &BasketRepository{
		storage: storage,
		key:     key,
	}
}

// Save сериализует список и перезаписывает значение под ключом.
func (r *BasketRepository) Save(ctx context.Context, items []entity.Item) error {
	data, err := json.Marshal(lox.Map(items, fromItem))
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal basket")
	}

	if err := r.storage.SetItem(ctx, r.key, string(data)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to save basket")
	}

	return nil
}

// Load читает список. Отсутствие значения, ошибка хранилища или битый JSON
// дают пустую корзину; товары с нарушенными инвариантами отбрасываются.
func (r *BasketRepository) Load(ctx context.Context) []entity.Item {
	raw, found, err := r.storage.GetItem(ctx, r.key)
	if err != nil {
		logger(ctx).Warn("basket load failed, starting empty",
			slog.String(logx.FieldStorageKey, r.key),
			logx.Error(err),
		)
		return []entity.Item{}
	}

	if !found || raw == "" {
		return []entity.Item{}
	}

	var records []jsoniter.RawMessage
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logger(ctx).Warn("basket parse failed, starting empty",
			slog.String(logx.FieldStorageKey, r.key),
			logx.Error(domain.WrapError(err, errcodes.PersistenceParseFailure, "invalid basket payload")),
		)
		return []entity.Item{}
	}

	items := make([]entity.Item, 0, len(records))
	seen := make(map[int64]struct{}, len(records))

	for i, record := range records {
		var schema itemSchema
		if err := json.Unmarshal(record, &schema); err != nil {
			logger(ctx).Warn("dropping unreadable basket item", slog.Int("index", i), logx.Error(err))
			continue
		}

		item, err := schema.toDomain()
		if err != nil {
			logger(ctx).Warn("dropping invalid basket item", slog.Int("index", i), logx.Error(err))
			continue
		}

		if _, dup := seen[item.Article]; dup {
			logger(ctx).Warn("dropping duplicate basket item", slog.Int64(logx.FieldArticle, item.Article))
			continue
		}

		seen[item.Article] = struct{}{}
		items = append(items, item)
	}

	return items
}
