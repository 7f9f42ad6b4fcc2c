package persistence

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"basket/internal/domain"
	"basket/pkg/errcodes"
)

//go:embed migrations/001_basket_storage.sql
var schemaSQL string

// storageSchema описывает строку таблицы basket_storage.
type storageSchema struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PostgresStorage хранит значения в таблице basket_storage.
type PostgresStorage struct {
	db *sqlx.DB
}

func NewPostgresStorage(db *sqlx.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// EnsureSchema создаёт таблицу, если её ещё нет.
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create basket_storage")
	}
	return nil
}

// withTx выполняет функцию в транзакции.
func (s *PostgresStorage) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

func (s *PostgresStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT key, value, updated_at FROM basket_storage WHERE key = $1`

	var row storageSchema
	if err := s.db.GetContext(ctx, &row, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, domain.WrapError(err, errcodes.InternalServerError, "failed to get value")
	}

	return row.Value, true, nil
}

// SetItem делает upsert значения по ключу.
func (s *PostgresStorage) SetItem(ctx context.Context, key, value string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO basket_storage (key, value, updated_at)
			VALUES (:key, :value, :updated_at)
			ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value,
			    updated_at = EXCLUDED.updated_at`

		row := storageSchema{
			Key:       key,
			Value:     value,
			UpdatedAt: time.Now(),
		}

		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to save value")
		}
		return nil
	})
}
