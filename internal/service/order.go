package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"adminpanel/internal/clock"
	"adminpanel/internal/database"
	"adminpanel/internal/model"
)

const (
	maxIDAttempts = 3
	amountScale   = 2
)

// maxAmount is the first value NUMERIC(12,2) cannot hold.
var maxAmount = decimal.New(1, 10)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrIDSpaceExhausted = errors.New("could not allocate a free order id")
)

type IDSource interface {
	Next() string
}

type OrderService struct {
	db       *sql.DB
	ids      IDSource
	clock    clock.Clock
	onChange []func()
}

func NewOrderService(db *sql.DB, ids IDSource, c clock.Clock) *OrderService {
	return &OrderService{db: db, ids: ids, clock: c}
}

// OnChange registers fn to run after every successful order write.
func (s *OrderService) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *OrderService) changed() {
	for _, fn := range s.onChange {
		fn()
	}
}

func validateOrder(customer string, amount decimal.Decimal) error {
	switch {
	case customer == "":
		return fmt.Errorf("%w: customer required", ErrInvalidOrder)
	case amount.IsNegative():
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidOrder)
	case !amount.Equal(amount.Round(amountScale)):
		return fmt.Errorf("%w: amount has more than %d decimal places", ErrInvalidOrder, amountScale)
	case amount.GreaterThanOrEqual(maxAmount):
		return fmt.Errorf("%w: amount must be below %s", ErrInvalidOrder, maxAmount)
	}
	return nil
}

func (s *OrderService) Create(ctx context.Context, customer string, amount decimal.Decimal) (*model.Order, error) {
	if err := validateOrder(customer, amount); err != nil {
		return nil, err
	}

	order := &model.Order{
		Customer: customer,
		Status:   model.OrderStatusNew,
	}

	id, err := insertWithFreshID(s.ids, func(id string) error {
		return s.db.QueryRowContext(ctx,
			`INSERT INTO orders (id, customer, amount, status, created_at) VALUES ($1, $2, $3, $4, $5)
			RETURNING amount, created_at`,
			id, customer, amount, string(order.Status), s.clock.Now(),
		).Scan(&order.Amount, &order.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	order.ID = id
	s.changed()

	return order, nil
}

// insertWithFreshID draws IDs until insert succeeds or a non-collision error occurs.
func insertWithFreshID(ids IDSource, insert func(id string) error) (string, error) {
	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id := ids.Next()
		err := insert(id)
		if err == nil {
			return id, nil
		}
		if !database.IsUniqueViolation(err) {
			return "", fmt.Errorf("insert order: %w", err)
		}
		slog.Warn("order id collision, retrying", "id", id, "attempt", attempt)
	}
	return "", ErrIDSpaceExhausted
}

func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := s.db.QueryRowContext(ctx,
		`SELECT id, customer, amount, status, created_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.Customer, &o.Amount, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (s *OrderService) List(ctx context.Context, limit int) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer, amount, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Customer, &o.Amount, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	res, err := s.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	s.changed()
	return nil
}
