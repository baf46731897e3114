// Package postgres provides the PostgreSQL implementation of the user repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"workdesk/internal/session/domain/entities"
	"workdesk/internal/session/ports/repositories"
	"workdesk/pkg/logger"
)

// Константы для сообщений об ошибках репозитория пользователей.
const (
	errCreateUser      = "failed to create user"
	errFindUserByEmail = "failed to find user by email"
	errFindUserByID    = "failed to find user by id"
)

// PgxPool - подмножество операций pgxpool.Pool, используемое репозиторием.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository реализует хранилище пользователей в PostgreSQL.
type UserRepository struct {
	pool PgxPool
}

// NewUserRepository создает новый репозиторий пользователей.
func NewUserRepository(pool PgxPool) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create сохраняет пользователя и возвращает его ID.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.Create"))
	log.Debug(ctx, "creating user", zap.String("email", user.Email))

	var id string
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, username, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id`,
		user.Email, user.Username, user.PasswordHash,
	).Scan(&id)
	if err != nil {
		log.Error(ctx, errCreateUser, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCreateUser, err)
	}

	return id, nil
}

// FindByEmail возвращает пользователя по адресу почты.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindByEmail"))
	log.Debug(ctx, "finding user", zap.String("email", email))

	var user entities.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, username, password_hash, created_at
         FROM users
         WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, errFindUserByEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFindUserByEmail, err)
	}

	return &user, nil
}

// FindByID возвращает пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "UserRepository.FindByID"))
	log.Debug(ctx, "finding user", zap.String("userID", id))

	var user entities.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, username, password_hash, created_at
         FROM users
         WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, errFindUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFindUserByID, err)
	}

	return &user, nil
}
