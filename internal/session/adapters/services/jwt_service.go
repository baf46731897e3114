// Package services contains infrastructure implementations of the session service ports.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	svc "workdesk/internal/session/ports/services"
	"workdesk/pkg/logger"
)

// Константы для работы с токенами сессии.
const (
	methodGenerateToken = "GenerateToken"
	methodValidateToken = "ValidateToken"
	msgGeneratingToken  = "generating session token"
	msgValidatingToken  = "validating session token"
	msgTokenGenerated   = "session token generated"
	msgTokenExpired     = "session token has expired"
	msgInvalidToken     = "invalid session token"
	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken = "error parsing token"
)

// ErrInvalidAlgorithm представляет ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims адаптирует данные сессии к формату библиотеки JWT.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует TokenService поверх подписанных JWT.
type ServiceJWT struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWT создает новый сервис токенов сессии.
func NewJWT(secretKey string, ttl time.Duration) svc.TokenService {
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Generate выпускает подписанный токен сессии для пользователя.
func (s *ServiceJWT) Generate(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateToken),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgGeneratingToken)

	if len(s.secretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%w: empty secret key", svc.ErrGeneratingToken)
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errSigningToken, svc.ErrGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))

	return tokenString, expiresAt, nil
}

// Validate проверяет подпись и срок токена, возвращая ID пользователя.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateToken))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errParsingToken, svc.ErrExpiredToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errParsingToken, svc.ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		log.Debug(ctx, msgInvalidToken)
		return "", svc.ErrInvalidToken
	}

	return claims.UserID, nil
}
