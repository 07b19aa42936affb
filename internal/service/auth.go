package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adminpanel/internal/database"
	"adminpanel/internal/model"
	"adminpanel/internal/passwd"
)

var (
	ErrLoginExists        = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

type AuthService struct {
	db   *sql.DB
	cost int
}

func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(ctx context.Context, login, password string) (*model.Admin, error) {
	hash, err := passwd.Hash(password, s.cost)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO admins (id, login, password_hash) VALUES ($1, $2, $3) RETURNING id, login, created_at`
	row := s.db.QueryRowContext(ctx, query, uuid.NewString(), login, hash)

	var admin model.Admin
	if err := row.Scan(&admin.ID, &admin.Login, &admin.CreatedAt); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrLoginExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	admin.PasswordHash = hash

	return &admin, nil
}

func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*model.Admin, error) {
	query := `SELECT id, login, password_hash, created_at FROM admins WHERE login = $1`
	row := s.db.QueryRowContext(ctx, query, login)

	var admin model.Admin
	if err := row.Scan(&admin.ID, &admin.Login, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	ok, err := passwd.Compare(admin.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// EnsureAdmin creates the bootstrap admin unless the login is already taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return nil
	}

	_, err := s.Register(ctx, login, password)
	switch {
	case err == nil:
		slog.Info("bootstrap admin created", "login", login)
		return nil
	case errors.Is(err, ErrLoginExists):
		return nil
	default:
		return fmt.Errorf("bootstrap admin: %w", err)
	}
}
