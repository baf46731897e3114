// Package services defines service contracts for the session service.
package services

import (
	"context"
	"time"
)

// PasswordService определяет контракт хэширования паролей.
type PasswordService interface {
	// Hash возвращает хэш пароля.
	Hash(ctx context.Context, password string) (string, error)

	// Verify сообщает, соответствует ли пароль хэшу.
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// TokenService определяет контракт выпуска и проверки токенов сессии.
type TokenService interface {
	// Generate выпускает токен сессии для пользователя.
	Generate(ctx context.Context, userID string) (string, time.Time, error)

	// Validate проверяет токен и возвращает ID пользователя.
	Validate(ctx context.Context, token string) (string, error)
}

// SessionCache определяет контракт кэша активных сессий.
type SessionCache interface {
	// Store связывает токен сессии с пользователем на время ttl.
	Store(ctx context.Context, token, userID string, ttl time.Duration) error

	// Get возвращает ID пользователя по токену. Неизвестный токен
	// возвращает пустую строку без ошибки.
	Get(ctx context.Context, token string) (string, error)

	// Delete снимает сессию с токена.
	Delete(ctx context.Context, token string) error
}
