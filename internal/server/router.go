package server

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adminpanel/internal/handler"
	"adminpanel/internal/mw"
)

// Deps are the router's collaborators. With no AllowedOrigins the router
// sends no CORS headers; a "*" entry disables credentialed requests.
type Deps struct {
	Auth           handler.Authenticator
	Tokens         handler.TokenIssuer
	Orders         handler.OrderStore
	Analytics      handler.SummarySource
	UIConfig       handler.UIConfigStore
	JWTSecret      string
	AllowedOrigins []string
}

// NewRouter mounts every admin page's API behind one shared auth chain.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(d.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: !slices.Contains(d.AllowedOrigins, "*"),
			MaxAge:           300,
		}))
	}

	r.Get("/health", handler.HealthHandler)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", handler.LoginHandler(d.Auth, d.Tokens))

		r.Group(func(r chi.Router) {
			r.Use(mw.AuthMiddleware(d.JWTSecret))

			r.Post("/admins", handler.CreateAdminHandler(d.Auth))

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", handler.CreateOrderHandler(d.Orders))
				r.Get("/", handler.ListOrdersHandler(d.Orders))
				r.Get("/{id}", handler.GetOrderHandler(d.Orders))
				r.Patch("/{id}/status", handler.UpdateOrderStatusHandler(d.Orders))
			})

			r.Get("/analytics/summary", handler.AnalyticsSummaryHandler(d.Analytics))

			r.Route("/ui-config", func(r chi.Router) {
				r.Get("/", handler.ListUIConfigHandler(d.UIConfig))
				r.Delete("/", handler.ClearUIConfigHandler(d.UIConfig))
				r.Get("/{key}", handler.GetUIConfigHandler(d.UIConfig))
				r.Put("/{key}", handler.PutUIConfigHandler(d.UIConfig))
				r.Delete("/{key}", handler.ClearUIConfigHandler(d.UIConfig))
			})
		})
	})

	return r
}
