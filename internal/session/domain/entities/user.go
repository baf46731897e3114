// Package entities contains the session domain model.
package entities

import (
	"errors"
	"strings"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
	ErrUserNotFound     = errors.New("user not found")
)

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8

// User представляет владельца рабочего пространства.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateEmail грубо проверяет форму адреса почты.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
