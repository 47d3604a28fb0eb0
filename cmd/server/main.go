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

	"github.com/devservices/backend/internal/config"
	"github.com/devservices/backend/internal/handler"
	"github.com/devservices/backend/internal/logging"
	"github.com/devservices/backend/internal/repository"
	"github.com/devservices/backend/internal/service"
	"github.com/devservices/backend/pkg/auth"
)

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("config load failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	for _, name := range cfg.InsecureDefaults() {
		slog.Warn("insecure default in use; run adminsetup set-password", "setting", name)
	}
	if !cfg.Admin.AuthRequired {
		slog.Warn("admin authentication disabled (ADMIN_AUTH_REQUIRED=false)")
	}

	driver, err := cfg.StoreDriver()
	if err != nil {
		logging.Fatal("invalid store url", "error", err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, driver, cfg.StoreURL(), cfg.Store.Name)
	if err != nil {
		logging.Fatal("failed to connect to store", "driver", driver, "error", err)
	}
	defer store.Close(context.Background())

	if err := store.Init(ctx); err != nil {
		logging.Fatal("store init failed", "driver", driver, "error", err)
	}

	passwordHash, err := service.ResolveAdminPasswordHash(cfg.Admin.Password, cfg.Admin.PasswordHash, auth.DefaultArgon2Params())
	if err != nil {
		logging.Fatal("admin password setup failed", "error", err)
	}
	tokens := auth.NewTokenService([]byte(cfg.Admin.JWTSecret), cfg.Admin.TokenTTL)

	adminAuthService := service.NewAdminAuthService(passwordHash, tokens)
	catalogService := service.NewCatalogService(store.Services)
	quoteService := service.NewQuoteService(store.Quotes)
	consultationService := service.NewConsultationService(store.Consultations)
	statusService := service.NewStatusService(store.Quotes, store.Consultations)
	statsService := service.NewStatsService(store.Quotes, store.Consultations)

	// 管理者ルートのラップ（ADMIN_AUTH_REQUIRED=false ならローカル開発用に素通し）
	adminOnly := auth.OpenAdmin
	if cfg.Admin.AuthRequired {
		adminOnly = auth.RequireAdmin(tokens)
	}

	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)
	defer limiter.Close()

	router := handler.Routes(handler.Handlers{
		Base:          handler.New(store.DB, cfg.CORSOrigins),
		Admin:         handler.NewAdminHandler(adminAuthService),
		Catalog:       handler.NewCatalogHandler(catalogService),
		Quotes:        handler.NewQuoteHandler(quoteService, statusService),
		Consultations: handler.NewConsultationHandler(consultationService, statusService),
		Stats:         handler.NewStatsHandler(statsService),
		AdminOnly:     adminOnly,
		Limiter:       limiter,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "driver", driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
