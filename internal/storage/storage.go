// Package storage реализует хранилище данных на основе PostgreSQL
// для пользователей и записей о приёмах пищи. Схема создаётся при старте,
// если её ещё нет; отдельного механизма миграций у сервиса нет.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища, различаемые на границе API через errors.Is.
var (
	// ErrUserAlreadyExists попытка зарегистрировать уже занятый email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound пользователь с таким email не найден.
	ErrUserNotFound = errors.New("user not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и приёмами пищи.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и инициализирует необходимые таблицы.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = initializeSchema(db); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// initializeSchema создаёт таблицы users и meals, если их ещё нет.
// Уникальность email обеспечивается ограничением на уровне базы,
// а не проверкой в коде приложения: гонка двух регистраций разрешается
// одной успешной вставкой и одним нарушением ограничения.
func initializeSchema(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), `
        CREATE TABLE IF NOT EXISTS users(
            id SERIAL PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            hashed_password TEXT NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.ExecContext(context.Background(), `
        CREATE TABLE IF NOT EXISTS meals(
            id SERIAL PRIMARY KEY,
            user_id INTEGER NOT NULL,
            name TEXT NOT NULL,
            calories DOUBLE PRECISION NOT NULL,
            proteins DOUBLE PRECISION NOT NULL,
            carbs DOUBLE PRECISION NOT NULL,
            fats DOUBLE PRECISION NOT NULL
        );
    `)
	if err != nil {
		return fmt.Errorf("failed to create meals table: %w", err)
	}

	return nil
}

// Close закрывает пул соединений с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}
