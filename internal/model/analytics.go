package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AnalyticsSummary struct {
	TotalOrders int                 `json:"total_orders"`
	Revenue     decimal.Decimal     `json:"revenue"`
	ByStatus    map[OrderStatus]int `json:"by_status"`
	GeneratedAt time.Time           `json:"generated_at"`
}
