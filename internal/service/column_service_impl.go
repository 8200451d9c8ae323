package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/validation"
)

type columnService struct {
	db            *sql.DB
	boardRepo     repository.BoardRepository
	userRepo      repository.UserRepository
	authenticator *auth.Authenticator
}

func NewColumnService(
	db *sql.DB,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	authenticator *auth.Authenticator,
) ColumnService {
	return &columnService{
		db:            db,
		boardRepo:     boardRepo,
		userRepo:      userRepo,
		authenticator: authenticator,
	}
}

// UpdateTasks переставляет и перераспределяет несколько задач внутри одной
// колонки одним вызовом. Весь батч - одна транзакция: провал любого
// элемента откатывает остальные.
func (s *columnService) UpdateTasks(ctx context.Context, creds auth.Credentials, rawID string, items []ColumnTaskInput) error {
	columnID, verr := validation.QueryID("id", rawID)
	if verr != nil {
		return verr
	}
	if len(items) == 0 {
		return domain.NewValidationError("data", "Payload cannot be empty.", domain.CodeBlank)
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return err
	}

	column, err := s.boardRepo.GetColumnByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("id", "Column not found.")
		}
		return err
	}

	board, err := s.boardRepo.GetByID(ctx, column.BoardID)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeMember(user, board.TeamID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	taskRepo := postgres.NewTaskRepositoryWithTx(tx)

	for _, item := range items {
		if item.ID == nil {
			return domain.NewValidationError("task.id", "Task ID cannot be empty.", domain.CodeBlank)
		}
		taskID, verr := validation.IntField("task.id", item.ID)
		if verr != nil {
			if verr.Code == domain.CodeBlank || verr.Code == domain.CodeNull {
				return domain.NewValidationError("task.id", "Task ID cannot be empty.", domain.CodeBlank)
			}
			return verr
		}

		task, err := taskRepo.GetByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NewNotFoundError("task.id", "Task not found.")
			}
			return err
		}

		sourceColumn, err := s.boardRepo.GetColumnByID(ctx, task.ColumnID)
		if err != nil {
			return err
		}
		if sourceColumn.BoardID != board.ID {
			return domain.NewValidationError("task.id", "Invalid task id.", domain.CodeInvalid)
		}

		// Не-админ правит только свои задачи и не двигает их между колонками
		if !user.IsAdmin {
			if task.Assignee == nil || *task.Assignee != user.Username {
				return domain.ErrNotAuthorized
			}
			if task.ColumnID != column.ID {
				return domain.ErrNotAuthorized
			}
		}

		if item.Title != nil {
			if verr := validation.TaskTitle("title", *item.Title); verr != nil {
				return verr
			}
			task.Title = *item.Title
		}
		if item.Order != nil {
			order, verr := validation.IntField("order", item.Order)
			if verr != nil {
				return verr
			}
			task.Order = order
		}
		if item.User != nil {
			if *item.User == "" {
				task.Assignee = nil
			} else {
				assignee, aerr := s.resolveMember(ctx, board.ID, *item.User)
				if aerr != nil {
					return aerr
				}
				task.Assignee = &assignee.Username
			}
		}
		task.ColumnID = column.ID

		if err := taskRepo.Update(ctx, task); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *columnService) resolveMember(ctx context.Context, boardID int, username string) (*domain.User, error) {
	member, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("user", "User not found.", domain.CodeDoesNotExist)
		}
		return nil, err
	}

	assigned, err := s.boardRepo.IsAssigned(ctx, boardID, member.Username)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.NewValidationError("user", "Assignee must be a member of the board.", domain.CodeInvalid)
	}

	return member, nil
}
