package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"adminpanel/internal/clock"
	"adminpanel/internal/model"
)

type AnalyticsService struct {
	db    *sql.DB
	clock clock.Clock
}

func NewAnalyticsService(db *sql.DB, c clock.Clock) *AnalyticsService {
	return &AnalyticsService{db: db, clock: c}
}

// Summary aggregates order counts per status. Revenue excludes cancelled orders.
func (s *AnalyticsService) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM orders
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	summary := &model.AnalyticsSummary{
		ByStatus:    make(map[model.OrderStatus]int),
		GeneratedAt: s.clock.Now(),
	}
	for rows.Next() {
		var (
			status string
			count  int
			sum    decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &sum); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		addToSummary(summary, model.OrderStatus(status), count, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return summary, nil
}

func addToSummary(s *model.AnalyticsSummary, status model.OrderStatus, count int, sum decimal.Decimal) {
	s.TotalOrders += count
	s.ByStatus[status] += count
	if status != model.OrderStatusCancelled {
		s.Revenue = s.Revenue.Add(sum)
	}
}
