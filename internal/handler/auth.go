package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adminpanel/internal/model"
	"adminpanel/internal/mw"
	"adminpanel/internal/service"
)

type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) (*model.Admin, error)
	Register(ctx context.Context, login, password string) (*model.Admin, error)
}

type TokenIssuer interface {
	Issue(admin *model.Admin) (string, error)
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func decodeCredentials(r *http.Request) (credentials, error) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if req.Login == "" || req.Password == "" {
		return req, errors.New("login and password required")
	}
	return req, nil
}

func LoginHandler(authSvc Authenticator, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCredentials(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		admin, err := authSvc.Authenticate(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidCredentials):
				http.Error(w, "invalid login or password", http.StatusUnauthorized)
			default:
				slog.Error("login failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		tokenString, err := tokens.Issue(admin)
		if err != nil {
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", "Bearer "+tokenString)
		w.WriteHeader(http.StatusOK)
	}
}

func CreateAdminHandler(authSvc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCredentials(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		admin, err := authSvc.Register(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrLoginExists):
				http.Error(w, "login already exists", http.StatusConflict)
			default:
				slog.Error("create admin failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		actor, _ := mw.AdminID(r.Context())
		slog.Info("admin created", "login", admin.Login, "admin", actor)

		writeJSON(w, http.StatusCreated, admin)
	}
}
