// Package auth содержит логику бизнес-уровня для регистрации
// и аутентификации пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/nutrition-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/nutrition-tracker/internal/lib/password"
	"github.com/magabrotheeeer/nutrition-tracker/internal/models"
	"github.com/magabrotheeeer/nutrition-tracker/internal/storage"
)

// ErrInvalidCredentials неизвестный email или неподходящий пароль.
// Наружу оба случая выглядят одинаково.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
//
// Занятый email возвращается как storage.ErrUserAlreadyExists.
func (s *Service) Register(ctx context.Context, email, rawPassword string) (int64, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.users.CreateUser(ctx, email, hashed)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет пароль пользователя и генерирует JWT токен доступа.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает id пользователя из токена.
func (s *Service) ValidateToken(_ context.Context, token string) (int64, error) {
	return s.jwtMaker.ParseToken(token)
}

// ListUsers возвращает всех пользователей, включая хэши паролей.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}
