package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

const maxUIConfigBody = 64 << 10

type UIConfigStore interface {
	List(ctx context.Context) ([]model.UIConfig, error)
	Get(ctx context.Context, key string) (*model.UIConfig, error)
	Put(ctx context.Context, key string, value json.RawMessage) (*model.UIConfig, error)
	Clear(ctx context.Context, key string) (bool, error)
}

func ListUIConfigHandler(store UIConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.List(r.Context())
		if err != nil {
			slog.Error("ui config list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(entries) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

func GetUIConfigHandler(store UIConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		entry, err := store.Get(r.Context(), key)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUIConfigNotFound):
				http.Error(w, "ui config not found", http.StatusNotFound)
			default:
				slog.Error("ui config get failed", "key", key, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

func PutUIConfigHandler(store UIConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUIConfigBody))
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		entry, err := store.Put(r.Context(), key, body)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidUIConfig):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				slog.Error("ui config put failed", "key", key, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// ClearUIConfigHandler always answers 204 unless storage fails; clearing a
// missing entry is a no-op. Without a key it clears DefaultUIConfigKey.
func ClearUIConfigHandler(store UIConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			key = model.DefaultUIConfigKey
		}

		if _, err := store.Clear(r.Context(), key); err != nil {
			slog.Error("ui config clear failed", "key", key, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
