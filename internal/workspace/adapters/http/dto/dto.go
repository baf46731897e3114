// Package dto defines the HTTP request and response payloads.
package dto

import (
	"strings"
	"time"

	"workdesk/internal/workspace/domain/entities"
)

// RegisterRequest - запрос на регистрацию пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest - запрос на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse - сведения о пользователе сессии.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// NoteRequest - запрос на создание или изменение заметки.
// Метки передаются одной строкой через запятую.
type NoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
	Pinned   bool   `json:"pinned"`
	Archived bool   `json:"archived"`
}

// ToolRequest - запрос на создание или изменение инструмента.
// Метки передаются одной строкой через запятую.
type ToolRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Favorite    bool   `json:"favorite"`
}

// SettingsRequest - запрос на изменение настроек.
type SettingsRequest struct {
	Theme                   string `json:"theme"`
	AutosaveIntervalSeconds int    `json:"autosaveIntervalSeconds"`
}

// SettingsResponse - текущие настройки рабочего пространства.
type SettingsResponse struct {
	Theme                   string `json:"theme"`
	AutosaveIntervalSeconds int    `json:"autosaveIntervalSeconds"`
}

// NewSettingsResponse собирает ответ из доменных настроек.
func NewSettingsResponse(settings *entities.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:                   settings.Theme,
		AutosaveIntervalSeconds: int(settings.AutosaveInterval / time.Second),
	}
}

// ParseTags разбирает пользовательский ввод меток: строка режется по
// запятым, края подрезаются, пустые куски отбрасываются. Дубликаты
// сохраняются как есть.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}
