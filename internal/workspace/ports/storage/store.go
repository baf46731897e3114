// Package storage defines persistence contracts for the workspace service.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable сигнализирует о недоступности постоянного хранилища.
// Операции оборачивают им все сбои нижележащего хранилища.
var ErrUnavailable = errors.New("storage unavailable")

// Collection именует постоянную коллекцию хранилища.
type Collection string

// Коллекции рабочего пространства.
const (
	CollectionNotes Collection = "notes"
	CollectionTools Collection = "tools"
)

// Record - запись хранилища, адресуемая идентификатором.
type Record interface {
	Key() string
}

// Store определяет контракт хранилища сущностей одной коллекции.
// Upsert вставляет запись или целиком заменяет существующую с тем же ID.
// Delete несуществующего ID не является ошибкой.
type Store[T Record] interface {
	ListAll(ctx context.Context) ([]T, error)
	Upsert(ctx context.Context, record T) error
	Delete(ctx context.Context, id string) error
}

// SettingsStore хранит единственный блок настроек рабочего пространства.
type SettingsStore interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, value []byte) error
}
