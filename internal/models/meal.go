package models

// Meal представляет запись о приёме пищи с макронутриентами.
//
// UserID не связан внешним ключом с таблицей пользователей,
// отрицательные значения макронутриентов не отбрасываются.
type Meal struct {
	ID       int64   `json:"id"`       // Уникальный идентификатор записи
	UserID   int64   `json:"user_id"`  // Идентификатор владельца записи
	Name     string  `json:"name"`     // Название блюда, свободный текст
	Calories float64 `json:"calories"` // Калории
	Proteins float64 `json:"proteins"` // Белки
	Carbs    float64 `json:"carbs"`    // Углеводы
	Fats     float64 `json:"fats"`     // Жиры
}

// Recommendation представляет рекомендацию блюда с макронутриентами.
type Recommendation struct {
	Meal     string  `json:"meal"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
