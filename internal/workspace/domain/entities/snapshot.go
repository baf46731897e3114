package entities

import (
	"encoding/json"
	"time"
)

// Snapshot - переносимый снимок рабочего пространства для экспорта и импорта.
type Snapshot struct {
	Notes      []*Note   `json:"notes"`
	Tools      []*Tool   `json:"tools"`
	ExportedAt time.Time `json:"exportedAt"`
}

// Marshal сериализует снимок в JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}
