package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/nutrition-tracker/internal/models"
)

// CreateMeal сохраняет запись о приёме пищи и возвращает её ID.
// Значения макронутриентов записываются как есть, без дополнительной проверки.
func (s *Storage) CreateMeal(ctx context.Context, meal models.Meal) (int64, error) {
	const op = "storage.CreateMeal"

	var newID int64
	query := `INSERT INTO meals (user_id, name, calories, proteins, carbs, fats)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		meal.UserID, meal.Name, meal.Calories, meal.Proteins, meal.Carbs, meal.Fats).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMeals возвращает все записи о приёмах пищи.
func (s *Storage) ListMeals(ctx context.Context) ([]*models.Meal, error) {
	const op = "storage.ListMeals"

	query := `SELECT id, user_id, name, calories, proteins, carbs, fats
			  FROM meals
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Meal
	for rows.Next() {
		var m models.Meal
		if err = rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Calories, &m.Proteins, &m.Carbs, &m.Fats); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
