// Package nutritiontracker собирает приложение: хранилище, сервисы,
// маршруты и HTTP-сервер с корректным завершением.
package nutritiontracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/nutrition-tracker/internal/config"
	"github.com/magabrotheeeer/nutrition-tracker/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/nutrition-tracker/internal/services/auth"
	mealservice "github.com/magabrotheeeer/nutrition-tracker/internal/services/meal"
	"github.com/magabrotheeeer/nutrition-tracker/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New подключает хранилище, собирает сервисы и маршруты, возвращает
// готовое к запуску приложение. Зависимости передаются явно, глобального
// состояния пакет не держит.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(db, jwtMaker)
	mealService := mealservice.New(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, authService, mealService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.Close()
		return err
	}
}
