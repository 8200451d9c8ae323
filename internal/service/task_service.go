package service

import (
	"context"
	"encoding/json"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
)

type SubtaskCreateInput struct {
	Title *string
}

type TaskCreateInput struct {
	Column      json.RawMessage
	Title       *string
	Description *string
	Subtasks    []SubtaskCreateInput
}

// SubtaskReplaceInput - элемент полной замены набора подзадач при
// обновлении задачи
type SubtaskReplaceInput struct {
	Title *string
	Order json.RawMessage
	Done  json.RawMessage
}

type TaskUpdateInput struct {
	Column      json.RawMessage
	Title       *string
	Description json.RawMessage
	Order       json.RawMessage
	User        *string
	Subtasks    *[]SubtaskReplaceInput
}

type SubtaskUpdateInput struct {
	Title *string
	Order json.RawMessage
	Done  json.RawMessage
}

// TaskWithSubtasks - задача вместе с её подзадачами для конверта ответа
type TaskWithSubtasks struct {
	Task     *domain.Task
	Subtasks []*domain.Subtask
}

type TaskService interface {
	Create(ctx context.Context, creds auth.Credentials, input TaskCreateInput) (*TaskWithSubtasks, error)
	Update(ctx context.Context, creds auth.Credentials, rawID string, input TaskUpdateInput) (*TaskWithSubtasks, error)
	Delete(ctx context.Context, creds auth.Credentials, rawID string) error
	UpdateSubtask(ctx context.Context, creds auth.Credentials, rawID string, input SubtaskUpdateInput) (*domain.Subtask, error)
}
