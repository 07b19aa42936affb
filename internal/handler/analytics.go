package handler

import (
	"context"
	"log/slog"
	"net/http"

	"adminpanel/internal/model"
)

type SummarySource interface {
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)
}

func AnalyticsSummaryHandler(src SummarySource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := src.Summary(r.Context())
		if err != nil {
			slog.Error("analytics summary failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}
