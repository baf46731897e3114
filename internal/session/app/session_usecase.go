// Package app implements the session use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"workdesk/internal/session/domain/entities"
	"workdesk/internal/session/ports/repositories"
	svc "workdesk/internal/session/ports/services"
	"workdesk/pkg/logger"
)

// Ошибки уровня приложения сессий.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Константы для сообщений журнала и ошибок сценариев сессии.
const (
	errCheckingEmail   = "error checking existing email"
	errHashingPassword = "error hashing password"
	errCreatingUser    = "error creating user"
	errIssuingToken    = "error issuing session token"
	errStoringSession  = "error storing session"
	errFindingUser     = "error finding user"
	logUserRegistered  = "user registered"
	logUserLoggedIn    = "user logged in"
	logUserLoggedOut   = "user logged out"
	logSessionRevoked  = "session not present in cache"
)

// SessionUseCase реализует регистрацию, вход и проверку сессий.
type SessionUseCase struct {
	users      repositories.UserRepository
	passwords  svc.PasswordService
	tokens     svc.TokenService
	sessions   svc.SessionCache
	sessionTTL time.Duration
}

// NewSessionUseCase создает сценарии работы с сессиями.
func NewSessionUseCase(
	users repositories.UserRepository,
	passwords svc.PasswordService,
	tokens svc.TokenService,
	sessions svc.SessionCache,
	sessionTTL time.Duration,
) *SessionUseCase {
	return &SessionUseCase{
		users:      users,
		passwords:  passwords,
		tokens:     tokens,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register создает нового пользователя.
func (uc *SessionUseCase) Register(ctx context.Context, email, username, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "SessionUseCase.Register"))

	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	if err := entities.ValidateEmail(email); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, entities.ErrEmptyUsername
	}
	if err := entities.ValidatePassword(password); err != nil {
		return nil, err
	}

	_, err := uc.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, errCheckingEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCheckingEmail, err)
	}

	hash, err := uc.passwords.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, errHashingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errHashingPassword, err)
	}

	user := &entities.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}

	id, err := uc.users.Create(ctx, user)
	if err != nil {
		log.Error(ctx, errCreatingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCreatingUser, err)
	}
	user.ID = id

	log.Info(ctx, logUserRegistered, zap.String("userID", id))

	return user, nil
}

// Login проверяет учетные данные и открывает сессию.
func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", "SessionUseCase.Login"))

	email = strings.TrimSpace(strings.ToLower(email))

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		log.Error(ctx, errFindingUser, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errFindingUser, err)
	}

	ok, err := uc.passwords.Verify(ctx, password, user.PasswordHash)
	if err != nil || !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Generate(ctx, user.ID)
	if err != nil {
		log.Error(ctx, errIssuingToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errIssuingToken, err)
	}

	if err := uc.sessions.Store(ctx, token, user.ID, uc.sessionTTL); err != nil {
		log.Error(ctx, errStoringSession, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errStoringSession, err)
	}

	log.Info(ctx, logUserLoggedIn, zap.String("userID", user.ID))

	return token, expiresAt, nil
}

// Logout закрывает сессию токена. Неизвестный токен не является ошибкой.
func (uc *SessionUseCase) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", "SessionUseCase.Logout"))

	if err := uc.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w", err)
	}

	log.Info(ctx, logUserLoggedOut)

	return nil
}

// Authenticate проверяет токен сессии и возвращает ID пользователя.
// Токен должен быть подписан и присутствовать в кэше активных сессий.
func (uc *SessionUseCase) Authenticate(ctx context.Context, token string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "SessionUseCase.Authenticate"))

	if token == "" {
		return "", ErrUnauthorized
	}

	userID, err := uc.tokens.Validate(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	cached, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	if cached == "" || cached != userID {
		log.Debug(ctx, logSessionRevoked)
		return "", ErrUnauthorized
	}

	return userID, nil
}

// CurrentUser возвращает пользователя активной сессии.
func (uc *SessionUseCase) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	userID, err := uc.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%s: %w", errFindingUser, err)
	}

	return user, nil
}
