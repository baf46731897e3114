// Package repositories defines persistence contracts for the session service.
package repositories

import (
	"context"

	"workdesk/internal/session/domain/entities"
)

// UserRepository определяет контракт хранилища пользователей.
type UserRepository interface {
	// Create сохраняет пользователя и возвращает его ID.
	Create(ctx context.Context, user *entities.User) (string, error)

	// FindByEmail возвращает пользователя по адресу почты
	// или entities.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByID возвращает пользователя по ID или entities.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
