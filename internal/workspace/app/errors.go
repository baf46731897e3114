// Package app implements the workspace use cases.
package app

import "errors"

// Ошибки уровня приложения.
var (
	// ErrNotFound возвращается при обращении к несуществующей записи.
	ErrNotFound = errors.New("record not found")

	// ErrValidation возвращается при нарушении доменных правил записи.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidFormat возвращается, когда снимок не соответствует ожидаемой схеме.
	ErrInvalidFormat = errors.New("invalid snapshot format")

	// ErrPartialImport возвращается, когда часть записей снимка не удалось влить.
	ErrPartialImport = errors.New("some records failed to import")
)
