package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adminpanel/internal/cache"
	"adminpanel/internal/clock"
	"adminpanel/internal/model"
)

const summaryKey = "summary"

type SummaryComputer interface {
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)
}

// AnalyticsWorker keeps the analytics summary warm in a TTL cache. Entries
// live for twice the refresh interval so a single slow refresh does not
// expose a cold cache.
type AnalyticsWorker struct {
	source   SummaryComputer
	cache    *cache.TTL[*model.AnalyticsSummary]
	interval time.Duration
}

func NewAnalyticsWorker(source SummaryComputer, c clock.Clock, interval time.Duration) *AnalyticsWorker {
	return &AnalyticsWorker{
		source:   source,
		cache:    cache.NewTTL[*model.AnalyticsSummary](c, 2*interval),
		interval: interval,
	}
}

func (w *AnalyticsWorker) Start(ctx context.Context) {
	slog.Info("starting analytics worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("analytics worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// Summary serves the cached summary, computing it on a miss.
func (w *AnalyticsWorker) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	if s, ok := w.cache.Get(summaryKey); ok {
		return s, nil
	}
	return w.refresh(ctx)
}

// Invalidate drops the cached summary so the next read recomputes it.
func (w *AnalyticsWorker) Invalidate() {
	w.cache.Delete(summaryKey)
}

func (w *AnalyticsWorker) tick(ctx context.Context) {
	if n := w.cache.Sweep(); n > 0 {
		slog.Debug("swept expired analytics entries", "count", n)
	}
	if _, err := w.refresh(ctx); err != nil {
		slog.Error("analytics refresh failed", "error", err)
	}
}

func (w *AnalyticsWorker) refresh(ctx context.Context) (*model.AnalyticsSummary, error) {
	s, err := w.source.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute summary: %w", err)
	}
	w.cache.Set(summaryKey, s)
	return s, nil
}
