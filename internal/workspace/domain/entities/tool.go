package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Ошибки валидации инструмента.
var (
	ErrToolNameRequired = errors.New("tool name is required")
	ErrToolURLRequired  = errors.New("tool url is required")
)

// Tool представляет собой закладку на инструмент.
type Tool struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Favorite    bool      `json:"favorite"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTool создает новый инструмент со сгенерированным ID и значениями по умолчанию.
func NewTool() *Tool {
	now := time.Now().UTC()
	return &Tool{
		ID:        uuid.NewString(),
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key возвращает идентификатор записи.
func (t *Tool) Key() string {
	return t.ID
}

// HasTag сообщает, содержит ли инструмент тег (точное совпадение).
func (t *Tool) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}

// Validate проверяет обязательные поля перед сохранением.
// Пустые значения допустимы только для несохраненных записей.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrToolNameRequired
	}
	if t.URL == "" {
		return ErrToolURLRequired
	}
	return nil
}
