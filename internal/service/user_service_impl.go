package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/validation"
)

type userService struct {
	db            *sql.DB
	userRepo      repository.UserRepository
	boardRepo     repository.BoardRepository
	authenticator *auth.Authenticator
}

func NewUserService(
	db *sql.DB,
	userRepo repository.UserRepository,
	boardRepo repository.BoardRepository,
	authenticator *auth.Authenticator,
) UserService {
	return &userService{
		db:            db,
		userRepo:      userRepo,
		boardRepo:     boardRepo,
		authenticator: authenticator,
	}
}

func (s *userService) SetBoardMembership(ctx context.Context, creds auth.Credentials, username string, input MembershipInput) error {
	if username == "" {
		return domain.NewValidationError("username", "Username cannot be empty.", domain.CodeBlank)
	}
	boardID, verr := validation.IntField("board_id", input.BoardID)
	if verr != nil {
		return verr
	}
	isActive, verr := validation.BoolField("is_active", input.IsActive)
	if verr != nil {
		return verr
	}

	caller, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return err
	}

	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("username", "User not found.")
		}
		return err
	}

	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewValidationError("board_id", "Board not found.", domain.CodeDoesNotExist)
		}
		return err
	}

	if err := auth.AuthorizeAdmin(caller, board.TeamID); err != nil {
		return err
	}
	// Цель должна быть из команды вызывающего
	if target.TeamID != caller.TeamID {
		return domain.ErrNotAuthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	boardRepo := postgres.NewBoardRepositoryWithTx(tx)
	if isActive {
		err = boardRepo.AssignUser(ctx, board.ID, target.Username)
	} else {
		err = boardRepo.UnassignUser(ctx, board.ID, target.Username)
	}
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *userService) Delete(ctx context.Context, creds auth.Credentials, username string) error {
	if username == "" {
		return domain.NewValidationError("username", "Username cannot be empty.", domain.CodeBlank)
	}

	caller, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return err
	}

	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("username", "User not found.")
		}
		return err
	}

	if err := auth.AuthorizeAdmin(caller, target.TeamID); err != nil {
		return err
	}

	// Пока команда существует, её админы неприкосновенны
	if target.IsAdmin {
		return &domain.Error{
			Field:   "username",
			Message: "Admins cannot be deleted from their teams.",
			Code:    domain.CodeForbidden,
			Status:  http.StatusForbidden,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userRepo := postgres.NewUserRepositoryWithTx(tx)
	if err := userRepo.Delete(ctx, target.Username); err != nil {
		return err
	}

	// Команда живёт, пока в ней есть хотя бы один пользователь
	remaining, err := userRepo.CountByTeamID(ctx, target.TeamID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		if err := postgres.NewTeamRepositoryWithTx(tx).Delete(ctx, target.TeamID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
