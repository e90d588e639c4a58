// Package meal содержит логику бизнес-уровня для записей о приёмах пищи
// и для рекомендации блюда.
package meal

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/nutrition-tracker/internal/models"
)

// defaultOwnerID фиксированный владелец новых записей. Добавление приёма пищи
// не сверяет владельца с bearer-токеном и всегда пишет записи на этого
// пользователя; поведение сохранено намеренно, см. DESIGN.md.
const defaultOwnerID = 1

// Entry входные данные для создания записи о приёме пищи.
type Entry struct {
	Name     string
	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
}

// MealRepository описывает контракт для работы с записями в базе данных.
type MealRepository interface {
	// CreateMeal сохраняет запись и возвращает её ID.
	CreateMeal(ctx context.Context, meal models.Meal) (int64, error)

	// ListMeals возвращает все записи.
	ListMeals(ctx context.Context) ([]*models.Meal, error)
}

// Service отвечает за создание и листинг записей о приёмах пищи.
type Service struct {
	meals MealRepository
}

// New создает новый экземпляр Service.
func New(meals MealRepository) *Service {
	return &Service{meals: meals}
}

// Add сохраняет запись о приёме пищи за фиксированным владельцем
// и возвращает её ID.
func (s *Service) Add(ctx context.Context, entry Entry) (int64, error) {
	const op = "services.meal.Add"
	id, err := s.meals.CreateMeal(ctx, models.Meal{
		UserID:   defaultOwnerID,
		Name:     entry.Name,
		Calories: entry.Calories,
		Proteins: entry.Proteins,
		Carbs:    entry.Carbs,
		Fats:     entry.Fats,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// List возвращает все записи о приёмах пищи.
func (s *Service) List(ctx context.Context) ([]*models.Meal, error) {
	return s.meals.ListMeals(ctx)
}

// Recommendation возвращает рекомендацию блюда. Значения фиксированы
// и не зависят от состояния базы.
func (s *Service) Recommendation() models.Recommendation {
	return models.Recommendation{
		Meal:     "Poulet et riz",
		Calories: 600,
		Proteins: 40,
		Carbs:    50,
		Fats:     10,
	}
}
