package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adminpanel/internal/clock"
	"adminpanel/internal/config"
	"adminpanel/internal/database"
	"adminpanel/internal/orderid"
	"adminpanel/internal/server"
	"adminpanel/internal/service"
	"adminpanel/internal/worker"
)

func main() {
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(ctx, cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := database.InitSchema(ctx, db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	clk := clock.NewSystem()

	// Services
	authSvc := service.NewAuthService(db)
	orderSvc := service.NewOrderService(db, orderid.New(), clk)
	analyticsSvc := service.NewAnalyticsService(db, clk)
	uiConfigSvc := service.NewUIConfigService(db)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, clk)

	if err := authSvc.EnsureAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		slog.Error("failed to bootstrap admin", "error", err)
		os.Exit(1)
	}

	// Worker
	analyticsWorker := worker.NewAnalyticsWorker(analyticsSvc, clk, cfg.AnalyticsRefresh)
	orderSvc.OnChange(analyticsWorker.Invalidate)

	srv := &http.Server{
		Addr: cfg.RunAddress,
		Handler: server.NewRouter(server.Deps{
			Auth:           authSvc,
			Tokens:         tokens,
			Orders:         orderSvc,
			Analytics:      analyticsWorker,
			UIConfig:       uiConfigSvc,
			JWTSecret:      cfg.JWTSecret,
			AllowedOrigins: cfg.AllowedOrigins,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go analyticsWorker.Start(ctx)

	slog.Info("starting server", "addr", cfg.RunAddress)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
