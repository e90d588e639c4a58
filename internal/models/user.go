// Package models содержит доменные модели сервиса учёта питания.
package models

// User представляет зарегистрированного пользователя системы.
//
// Поле PasswordHash отдается наружу листингом пользователей как hashed_password —
// унаследованное публичное поведение, сохраняемое как есть.
type User struct {
	ID           int64  `json:"id"`              // Уникальный идентификатор пользователя
	Email        string `json:"email"`           // Электронная почта, уникальный ключ входа
	PasswordHash string `json:"hashed_password"` // Хэш пароля пользователя
}
