package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"adminpanel/internal/model"
)

var (
	ErrUIConfigNotFound = errors.New("ui config not found")
	ErrInvalidUIConfig  = errors.New("ui config value must be valid json")
)

type UIConfigService struct {
	db *sql.DB
}

func NewUIConfigService(db *sql.DB) *UIConfigService {
	return &UIConfigService{db: db}
}

func (s *UIConfigService) List(ctx context.Context) ([]model.UIConfig, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value, updated_at FROM ui_config ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("query ui config: %w", err)
	}
	defer rows.Close()

	var entries []model.UIConfig
	for rows.Next() {
		var (
			c   model.UIConfig
			raw []byte
		)
		if err := rows.Scan(&c.Key, &raw, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ui config: %w", err)
		}
		c.Value = raw
		entries = append(entries, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return entries, nil
}

func (s *UIConfigService) Get(ctx context.Context, key string) (*model.UIConfig, error) {
	var (
		c   model.UIConfig
		raw []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM ui_config WHERE key = $1`, key,
	).Scan(&c.Key, &raw, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUIConfigNotFound
		}
		return nil, fmt.Errorf("get ui config: %w", err)
	}
	c.Value = raw
	return &c, nil
}

func (s *UIConfigService) Put(ctx context.Context, key string, value json.RawMessage) (*model.UIConfig, error) {
	if key == "" || !json.Valid(value) {
		return nil, ErrInvalidUIConfig
	}

	var c model.UIConfig
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO ui_config (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		RETURNING key, value, updated_at
	`, key, string(value)).Scan(&c.Key, &raw, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert ui config: %w", err)
	}
	c.Value = raw
	return &c, nil
}

// Clear removes the named entry. A missing entry is not an error; removed
// reports whether anything was deleted.
func (s *UIConfigService) Clear(ctx context.Context, key string) (removed bool, err error) {
	slog.Info("clearing ui config cache", "key", key)

	res, err := s.db.ExecContext(ctx, `DELETE FROM ui_config WHERE key = $1`, key)
	if err != nil {
		return false, fmt.Errorf("delete ui config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	slog.Info("ui config cache cleared", "key", key, "removed", n > 0)
	return n > 0, nil
}
