package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/validation"
)

type taskService struct {
	db            *sql.DB
	taskRepo      repository.TaskRepository
	boardRepo     repository.BoardRepository
	userRepo      repository.UserRepository
	authenticator *auth.Authenticator
}

func NewTaskService(
	db *sql.DB,
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	authenticator *auth.Authenticator,
) TaskService {
	return &taskService{
		db:            db,
		taskRepo:      taskRepo,
		boardRepo:     boardRepo,
		userRepo:      userRepo,
		authenticator: authenticator,
	}
}

// resolveBoard поднимает колонку и её доску; поле ошибки задаёт вызывающий
func (s *taskService) resolveBoard(ctx context.Context, columnID int, field string) (*domain.Column, *domain.Board, error) {
	column, err := s.boardRepo.GetColumnByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.NewValidationError(field, "Column not found.", domain.CodeDoesNotExist)
		}
		return nil, nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, column.BoardID)
	if err != nil {
		return nil, nil, err
	}

	return column, board, nil
}

func (s *taskService) Create(ctx context.Context, creds auth.Credentials, input TaskCreateInput) (*TaskWithSubtasks, error) {
	columnID, verr := validation.IntField("column", input.Column)
	if verr != nil {
		return nil, verr
	}
	if input.Title == nil {
		return nil, domain.NewFieldError("title", "Task title cannot be empty.", domain.CodeBlank)
	}
	if verr := validation.TaskTitle("title", *input.Title); verr != nil {
		return nil, verr
	}
	for _, subtask := range input.Subtasks {
		title := ""
		if subtask.Title != nil {
			title = *subtask.Title
		}
		if verr := validation.SubtaskTitle("subtasks", title); verr != nil {
			return nil, verr
		}
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return nil, err
	}

	column, board, err := s.resolveBoard(ctx, columnID, "column")
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeAdmin(user, board.TeamID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	taskRepo := postgres.NewTaskRepositoryWithTx(tx)

	// Существующие задачи колонки сдвигаются, новая встаёт на order=0
	if err := taskRepo.ShiftColumnTasks(ctx, column.ID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ColumnID:    column.ID,
		Title:       *input.Title,
		Description: input.Description,
		Order:       0,
	}
	if err := taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	subtasks := make([]*domain.Subtask, 0, len(input.Subtasks))
	for i, item := range input.Subtasks {
		subtask := &domain.Subtask{TaskID: task.ID, Title: *item.Title, Order: i}
		if err := taskRepo.CreateSubtask(ctx, subtask); err != nil {
			return nil, err
		}
		subtasks = append(subtasks, subtask)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &TaskWithSubtasks{Task: task, Subtasks: subtasks}, nil
}

var jsonNull = []byte("null")

func (s *taskService) Update(ctx context.Context, creds auth.Credentials, rawID string, input TaskUpdateInput) (*TaskWithSubtasks, error) {
	id, verr := validation.QueryID("id", rawID)
	if verr != nil {
		return nil, verr
	}

	if input.Column == nil && input.Title == nil && input.Description == nil &&
		input.Order == nil && input.User == nil && input.Subtasks == nil {
		return nil, domain.NewValidationError("data", "Payload cannot be empty.", domain.CodeBlank)
	}

	// Каждое поле проверяется, только если присутствует в теле; пустое
	// значение присутствующего поля - blank, частичное обновление не
	// затирает обязательные поля
	if input.Title != nil {
		if verr := validation.TaskTitle("title", *input.Title); verr != nil {
			return nil, verr
		}
	}
	var order int
	if input.Order != nil {
		if order, verr = validation.IntField("order", input.Order); verr != nil {
			return nil, verr
		}
	}
	var newSubtasks []*domain.Subtask
	if input.Subtasks != nil {
		for _, item := range *input.Subtasks {
			title := ""
			if item.Title != nil {
				title = *item.Title
			}
			if verr := validation.SubtaskTitle("subtasks", title); verr != nil {
				return nil, verr
			}
			itemOrder, verr := validation.IntField("order", item.Order)
			if verr != nil {
				return nil, verr
			}
			itemDone, verr := validation.BoolField("done", item.Done)
			if verr != nil {
				return nil, verr
			}
			newSubtasks = append(newSubtasks, &domain.Subtask{
				Title: title,
				Order: itemOrder,
				Done:  itemDone,
			})
		}
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("id", "Task not found.")
		}
		return nil, err
	}

	_, board, err := s.resolveBoard(ctx, task.ColumnID, "column")
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeTaskWrite(user, board.TeamID, task.Assignee); err != nil {
		return nil, err
	}

	if input.Column != nil {
		columnID, verr := validation.IntField("column", input.Column)
		if verr != nil {
			return nil, verr
		}
		newColumn, _, err := s.resolveBoard(ctx, columnID, "column")
		if err != nil {
			return nil, err
		}
		// Перенос между досками запрещён
		if newColumn.BoardID != board.ID {
			return nil, domain.NewValidationError("data.column", "Invalid column id.", domain.CodeInvalid)
		}
		task.ColumnID = newColumn.ID
	}
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		if bytes.Equal(bytes.TrimSpace(input.Description), jsonNull) {
			task.Description = nil
		} else {
			var description string
			if err := json.Unmarshal(input.Description, &description); err != nil {
				return nil, domain.NewValidationError("description", "description must be a string.", domain.CodeIncorrectType)
			}
			task.Description = &description
		}
	}
	if input.Order != nil {
		task.Order = order
	}
	if input.User != nil {
		if *input.User == "" {
			task.Assignee = nil
		} else {
			assignee, aerr := s.resolveAssignee(ctx, board.ID, *input.User)
			if aerr != nil {
				return nil, aerr
			}
			task.Assignee = &assignee.Username
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	taskRepo := postgres.NewTaskRepositoryWithTx(tx)
	if err := taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	// Набор подзадач заменяется целиком: старые удаляются, новые создаются
	if input.Subtasks != nil {
		if err := taskRepo.DeleteSubtasksByTaskID(ctx, task.ID); err != nil {
			return nil, err
		}
		for _, subtask := range newSubtasks {
			subtask.TaskID = task.ID
			if err := taskRepo.CreateSubtask(ctx, subtask); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &TaskWithSubtasks{Task: task, Subtasks: newSubtasks}, nil
}

// resolveAssignee проверяет, что исполнитель существует и назначен на доску
func (s *taskService) resolveAssignee(ctx context.Context, boardID int, username string) (*domain.User, error) {
	assignee, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("user", "User not found.", domain.CodeDoesNotExist)
		}
		return nil, err
	}

	assigned, err := s.boardRepo.IsAssigned(ctx, boardID, assignee.Username)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.NewValidationError("user", "Assignee must be a member of the board.", domain.CodeInvalid)
	}

	return assignee, nil
}

func (s *taskService) Delete(ctx context.Context, creds auth.Credentials, rawID string) error {
	id, verr := validation.QueryID("id", rawID)
	if verr != nil {
		return verr
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("id", "Task not found.")
		}
		return err
	}

	_, board, err := s.resolveBoard(ctx, task.ColumnID, "column")
	if err != nil {
		return err
	}

	if err := auth.AuthorizeAdmin(user, board.TeamID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := postgres.NewTaskRepositoryWithTx(tx).Delete(ctx, task.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *taskService) UpdateSubtask(ctx context.Context, creds auth.Credentials, rawID string, input SubtaskUpdateInput) (*domain.Subtask, error) {
	id, verr := validation.QueryID("id", rawID)
	if verr != nil {
		return nil, verr
	}

	if input.Title == nil && input.Order == nil && input.Done == nil {
		return nil, domain.NewValidationError("data", "Payload cannot be empty.", domain.CodeBlank)
	}

	if input.Title != nil {
		if verr := validation.SubtaskTitle("title", *input.Title); verr != nil {
			return nil, verr
		}
	}
	var order int
	if input.Order != nil {
		if order, verr = validation.IntField("order", input.Order); verr != nil {
			return nil, verr
		}
	}
	var done bool
	if input.Done != nil {
		if done, verr = validation.BoolField("done", input.Done); verr != nil {
			return nil, verr
		}
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return nil, err
	}

	subtask, err := s.taskRepo.GetSubtaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("id", "Subtask not found.")
		}
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, subtask.TaskID)
	if err != nil {
		return nil, err
	}

	_, board, err := s.resolveBoard(ctx, task.ColumnID, "column")
	if err != nil {
		return nil, err
	}

	// Подзадачу правит админ команды либо исполнитель содержащей задачи
	if err := auth.AuthorizeTaskWrite(user, board.TeamID, task.Assignee); err != nil {
		return nil, err
	}

	if input.Title != nil {
		subtask.Title = *input.Title
	}
	if input.Order != nil {
		subtask.Order = order
	}
	if input.Done != nil {
		subtask.Done = done
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := postgres.NewTaskRepositoryWithTx(tx).UpdateSubtask(ctx, subtask); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return subtask, nil
}
