package app

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"workdesk/internal/workspace/domain/entities"
)

// SortKey именует порядок сортировки результатов выборки.
type SortKey string

// Поддерживаемые порядки сортировки. Неизвестный ключ оставляет
// записи в исходном порядке.
const (
	SortByUpdatedDesc SortKey = "updated-desc"
	SortByUpdatedAsc  SortKey = "updated-asc"
	SortByCreatedDesc SortKey = "created-desc"
	SortByCreatedAsc  SortKey = "created-asc"
	SortByTitleAsc    SortKey = "title-asc"
	SortByTitleDesc   SortKey = "title-desc"
)

// Query описывает параметры выборки: фильтр по метке, строку поиска
// и порядок сортировки. Нулевое значение возвращает все записи
// в исходном порядке.
type Query struct {
	Tag    string
	Search string
	Sort   SortKey
}

// fields описывает, как конвейер выборки читает запись типа T.
type fields[T any] struct {
	tags     func(T) []string
	hasTag   func(T, string) bool
	text     func(T) []string
	title    func(T) string
	created  func(T) time.Time
	updated  func(T) time.Time
	priority func(T) bool
}

var noteFields = fields[*entities.Note]{
	tags:     func(n *entities.Note) []string { return n.Tags },
	hasTag:   func(n *entities.Note, tag string) bool { return n.HasTag(tag) },
	text:     func(n *entities.Note) []string { return []string{n.Title, n.Content} },
	title:    func(n *entities.Note) string { return n.Title },
	created:  func(n *entities.Note) time.Time { return n.CreatedAt },
	updated:  func(n *entities.Note) time.Time { return n.UpdatedAt },
	priority: func(n *entities.Note) bool { return n.Pinned },
}

var toolFields = fields[*entities.Tool]{
	tags:     func(t *entities.Tool) []string { return t.Tags },
	hasTag:   func(t *entities.Tool, tag string) bool { return t.HasTag(tag) },
	text:     func(t *entities.Tool) []string { return []string{t.Name, t.Description, t.URL} },
	title:    func(t *entities.Tool) string { return t.Name },
	created:  func(t *entities.Tool) time.Time { return t.CreatedAt },
	updated:  func(t *entities.Tool) time.Time { return t.UpdatedAt },
	priority: func(t *entities.Tool) bool { return t.Favorite },
}

// QueryNotes применяет выборку к списку заметок. Исходный срез
// не модифицируется.
func QueryNotes(notes []*entities.Note, query Query) []*entities.Note {
	return applyQuery(notes, query, noteFields)
}

// QueryTools применяет выборку к списку инструментов. Исходный срез
// не модифицируется.
func QueryTools(tools []*entities.Tool, query Query) []*entities.Tool {
	return applyQuery(tools, query, toolFields)
}

// applyQuery прогоняет записи через конвейер: фильтр по метке, поиск,
// сортировка, затем устойчивый подъем приоритетных записей наверх.
func applyQuery[T any](records []T, query Query, f fields[T]) []T {
	out := make([]T, len(records))
	copy(out, records)

	if query.Tag != "" {
		out = filterRecords(out, func(record T) bool {
			return f.hasTag(record, query.Tag)
		})
	}

	if needle := strings.ToLower(strings.TrimSpace(query.Search)); needle != "" {
		out = filterRecords(out, func(record T) bool {
			return matchesSearch(f.text(record), f.tags(record), needle)
		})
	}

	sortRecords(out, query.Sort, f)

	sort.SliceStable(out, func(i, j int) bool {
		return f.priority(out[i]) && !f.priority(out[j])
	})

	return out
}

// sortRecords упорядочивает записи по выбранному ключу. Временные метки
// сравниваются хронологически, текст через локале-зависимый коллатор.
func sortRecords[T any](records []T, key SortKey, f fields[T]) {
	switch key {
	case SortByUpdatedDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return f.updated(records[i]).After(f.updated(records[j]))
		})
	case SortByUpdatedAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return f.updated(records[i]).Before(f.updated(records[j]))
		})
	case SortByCreatedDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return f.created(records[i]).After(f.created(records[j]))
		})
	case SortByCreatedAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return f.created(records[i]).Before(f.created(records[j]))
		})
	case SortByTitleAsc:
		collator := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(f.title(records[i]), f.title(records[j])) < 0
		})
	case SortByTitleDesc:
		collator := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(records, func(i, j int) bool {
			return collator.CompareString(f.title(records[i]), f.title(records[j])) > 0
		})
	}
}

func filterRecords[T any](records []T, keep func(T) bool) []T {
	out := records[:0]
	for _, record := range records {
		if keep(record) {
			out = append(out, record)
		}
	}

	return out
}

// matchesSearch ищет подстроку без учета регистра в текстовых полях
// и метках записи.
func matchesSearch(text, tags []string, needle string) bool {
	for _, field := range text {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}

	return false
}
