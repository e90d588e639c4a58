// Package nutritiontracker предоставляет маршруты для основного приложения.
package nutritiontracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/nutrition-tracker/internal/config"
	"github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/health"
	mealcreate "github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/meal/create"
	meallist "github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/meal/list"
	"github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/meal/recommendation"
	userlist "github.com/magabrotheeeer/nutrition-tracker/internal/http/handlers/user/list"
	authservice "github.com/magabrotheeeer/nutrition-tracker/internal/services/auth"
	mealservice "github.com/magabrotheeeer/nutrition-tracker/internal/services/meal"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// JWT middleware на /meals сознательно не навешивается: добавление записи
// принимает необязательный bearer-токен и не проверяет его, см. DESIGN.md.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, authService *authservice.Service, mealService *mealservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
		}),
	)

	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)
	r.Post("/meals", mealcreate.New(logger, mealService).ServeHTTP)
	r.Get("/meals", meallist.New(logger, mealService).ServeHTTP)
	r.Get("/recommendation", recommendation.New(logger, mealService).ServeHTTP)
	r.Get("/users", userlist.New(logger, authService).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
