// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// Токен подписывается симметричным ключом (HS256), в subject кладётся
// идентификатор пользователя, срок жизни ограничен TTL.
package jwt

import (
	"errors"
	"time"
)

// Ошибки проверки токена, различаемые на границе API через errors.Is.
var (
	// ErrTokenExpired токен корректно подписан, но срок его жизни истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid подпись или структура токена не прошли проверку.
	ErrTokenInvalid = errors.New("token invalid")
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пользователя с данным id.
	GenerateToken(userID int64) (string, error)
	// ParseToken проверяет токен и возвращает id пользователя из subject.
	ParseToken(tokenStr string) (int64, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
