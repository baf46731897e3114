// Package entities defines the domain entities for the workspace service.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNoteTitle - заголовок заметки по умолчанию.
const DefaultNoteTitle = "Untitled Note"

// Note представляет собой заметку рабочего пространства.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Pinned    bool      `json:"pinned"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewNote создает новую заметку со сгенерированным ID и значениями по умолчанию.
func NewNote() *Note {
	now := time.Now().UTC()
	return &Note{
		ID:        uuid.NewString(),
		Title:     DefaultNoteTitle,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key возвращает идентификатор записи.
func (n *Note) Key() string {
	return n.ID
}

// HasTag сообщает, содержит ли заметка тег (точное совпадение).
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
