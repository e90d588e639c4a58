// Package list реализует HTTP-обработчик листинга записей о приёмах пищи.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nutrition-tracker/internal/http/response"
	"github.com/magabrotheeeer/nutrition-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/nutrition-tracker/internal/models"
)

// Service описывает интерфейс бизнес-логики листинга записей.
type Service interface {
	List(ctx context.Context) ([]*models.Meal, error)
}

// Handler обрабатывает HTTP-запросы на листинг записей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей о приёмах пищи
// @Description Возвращает все записи без пагинации и фильтрации.
// @Tags Meals
// @Produce json
// @Success 200 {array} models.Meal "Список записей"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /meals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	meals, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list meals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}
	if meals == nil {
		meals = []*models.Meal{}
	}

	log.Info("meals listed", slog.Int("count", len(meals)))
	render.JSON(w, r, meals)
}
