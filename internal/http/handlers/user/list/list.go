// Package list реализует HTTP-обработчик листинга пользователей.
//
// Листинг отдаёт пользователей вместе с хэшами паролей — унаследованная
// публичная возможность, сохраняемая в неизменном виде.
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

// Service описывает интерфейс бизнес-логики листинга пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Handler обрабатывает HTTP-запросы на листинг пользователей.
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
// @Summary Список пользователей
// @Description Возвращает всех пользователей, включая хэши паролей.
// @Tags Users
// @Produce json
// @Success 200 {array} models.User "Список пользователей"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	log.Info("users listed", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}
