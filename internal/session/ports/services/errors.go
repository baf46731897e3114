package services

import "errors"

// Ошибки сервисов сессии.
var (
	ErrGeneratingToken = errors.New("error generating session token")
	ErrInvalidToken    = errors.New("invalid session token")
	ErrExpiredToken    = errors.New("session token has expired")
	ErrInvalidPassword = errors.New("invalid password")
	ErrHashingFailed   = errors.New("password hashing failed")
)
