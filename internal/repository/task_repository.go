package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	// GetByBoardID загружает все задачи выбранной доски одним запросом
	GetByBoardID(ctx context.Context, boardID int) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int) error
	// ShiftColumnTasks сдвигает order всех задач колонки на +1,
	// освобождая место под order=0
	ShiftColumnTasks(ctx context.Context, columnID int) error

	CreateSubtask(ctx context.Context, subtask *domain.Subtask) error
	GetSubtaskByID(ctx context.Context, id int) (*domain.Subtask, error)
	GetSubtasksByBoardID(ctx context.Context, boardID int) ([]*domain.Subtask, error)
	UpdateSubtask(ctx context.Context, subtask *domain.Subtask) error
	DeleteSubtasksByTaskID(ctx context.Context, taskID int) error
}
