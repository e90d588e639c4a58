// Package recommendation реализует HTTP-обработчик рекомендации блюда.
// Ответ не зависит от состояния базы.
package recommendation

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nutrition-tracker/internal/models"
)

// Service описывает интерфейс получения рекомендации.
type Service interface {
	Recommendation() models.Recommendation
}

// Handler обрабатывает HTTP-запросы на рекомендацию.
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
// @Summary Рекомендация блюда
// @Description Возвращает фиксированную рекомендацию с макронутриентами.
// @Tags Meals
// @Produce json
// @Success 200 {object} models.Recommendation "Рекомендация"
// @Router /recommendation [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.recommendation"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	log.Info("recommendation requested")
	render.JSON(w, r, h.service.Recommendation())
}
