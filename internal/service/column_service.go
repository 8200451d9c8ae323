package service

import (
	"context"
	"encoding/json"

	"github.com/bagdasarian/taskboard/internal/auth"
)

// ColumnTaskInput - один элемент батча PATCH /columns/: задача, которую
// нужно поместить в целевую колонку с новым порядком и исполнителем
type ColumnTaskInput struct {
	ID    json.RawMessage
	Title *string
	Order json.RawMessage
	User  *string
}

type ColumnService interface {
	UpdateTasks(ctx context.Context, creds auth.Credentials, rawID string, items []ColumnTaskInput) error
}
