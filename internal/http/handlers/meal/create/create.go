// Package create реализует HTTP-обработчик добавления записи о приёме пищи.
//
// Handler принимает JSON с названием блюда и макронутриентами, валидирует
// структуру и передаёт запись сервису. Заголовок Authorization на этом
// маршруте не проверяется, запись уходит фиксированному владельцу.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/nutrition-tracker/internal/http/response"
	"github.com/magabrotheeeer/nutrition-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/nutrition-tracker/internal/services/meal"
)

// Request — входные данные новой записи. Все поля обязательны; значения
// принимаются как есть, отрицательные не отбрасываются. Числовые поля —
// указатели, чтобы явный ноль проходил проверку required.
type Request struct {
	Name     string   `json:"name" validate:"required"`
	Calories *float64 `json:"calories" validate:"required"`
	Proteins *float64 `json:"proteins" validate:"required"`
	Carbs    *float64 `json:"carbs" validate:"required"`
	Fats     *float64 `json:"fats" validate:"required"`
}

// Response — подтверждение успешного добавления.
type Response struct {
	Message string `json:"message"`
}

// Service описывает интерфейс бизнес-логики добавления записи.
type Service interface {
	Add(ctx context.Context, entry meal.Entry) (int64, error)
}

// Handler обрабатывает HTTP-запросы на добавление записей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить запись о приёме пищи
// @Description Создает запись с названием блюда и макронутриентами.
// @Tags Meals
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные записи"
// @Success 200 {object} Response "Запись успешно добавлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /meals [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.meal.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.Add(r.Context(), meal.Entry{
		Name:     req.Name,
		Calories: *req.Calories,
		Proteins: *req.Proteins,
		Carbs:    *req.Carbs,
		Fats:     *req.Fats,
	})
	if err != nil {
		log.Error("failed to add meal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("meal added successfully", slog.String("name", req.Name), slog.Int64("id", id))
	render.JSON(w, r, Response{Message: "Meal added successfully"})
}
