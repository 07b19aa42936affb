package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"adminpanel/internal/model"
	"adminpanel/internal/mw"
	"adminpanel/internal/orderid"
	"adminpanel/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type OrderStore interface {
	Create(ctx context.Context, customer string, amount decimal.Decimal) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}

type createOrderRequest struct {
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func CreateOrderHandler(orders OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		order, err := orders.Create(r.Context(), req.Customer, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidOrder):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				slog.Error("order create failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		adminID, _ := mw.AdminID(r.Context())
		slog.Info("order created", "id", order.ID, "admin", adminID)

		writeJSON(w, http.StatusCreated, order)
	}
}

func ListOrdersHandler(orders OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = min(n, maxListLimit)
		}

		list, err := orders.List(r.Context(), limit)
		if err != nil {
			slog.Error("order list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(list) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func GetOrderHandler(orders OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !orderid.Valid(id) {
			http.Error(w, "malformed order id", http.StatusBadRequest)
			return
		}

		order, err := orders.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				slog.Error("order get failed", "id", id, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(orders OrderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !orderid.Valid(id) {
			http.Error(w, "malformed order id", http.StatusBadRequest)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := orders.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidStatus):
				http.Error(w, "invalid status", http.StatusUnprocessableEntity)
			case errors.Is(err, service.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				slog.Error("order status update failed", "id", id, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		adminID, _ := mw.AdminID(r.Context())
		slog.Info("order status changed", "id", id, "status", req.Status, "admin", adminID)

		w.WriteHeader(http.StatusNoContent)
	}
}
