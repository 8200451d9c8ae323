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

type boardService struct {
	db            *sql.DB
	boardRepo     repository.BoardRepository
	teamRepo      repository.TeamRepository
	authenticator *auth.Authenticator
}

func NewBoardService(
	db *sql.DB,
	boardRepo repository.BoardRepository,
	teamRepo repository.TeamRepository,
	authenticator *auth.Authenticator,
) BoardService {
	return &boardService{
		db:            db,
		boardRepo:     boardRepo,
		teamRepo:      teamRepo,
		authenticator: authenticator,
	}
}

func (s *boardService) Create(ctx context.Context, creds auth.Credentials, input BoardCreateInput) (*domain.Board, error) {
	teamID, verr := validation.IntField("team_id", input.TeamID)
	if verr != nil {
		return nil, verr
	}
	if input.Name == nil {
		return nil, domain.NewFieldError("name", "Board name cannot be blank.", domain.CodeBlank)
	}
	if verr := validation.BoardName(*input.Name); verr != nil {
		return nil, verr
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("team_id", "Team not found.", domain.CodeDoesNotExist)
		}
		return nil, err
	}

	if err := auth.AuthorizeAdmin(user, team.ID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	board := &domain.Board{TeamID: team.ID, Name: *input.Name}
	if _, err := postgres.NewBoardRepositoryWithTx(tx).CreateWithColumns(ctx, board); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return board, nil
}

func (s *boardService) Update(ctx context.Context, creds auth.Credentials, rawID string, name *string) (*domain.Board, error) {
	id, verr := validation.QueryID("id", rawID)
	if verr != nil {
		return nil, verr
	}
	// Единственное записываемое поле доски - name; тело без него пустое
	if name == nil {
		return nil, domain.NewValidationError("data", "Payload cannot be empty.", domain.CodeBlank)
	}
	if verr := validation.BoardName(*name); verr != nil {
		return nil, verr
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("id", "Board not found.")
		}
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

	if err := postgres.NewBoardRepositoryWithTx(tx).UpdateName(ctx, board.ID, *name); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	board.Name = *name
	return board, nil
}

func (s *boardService) Delete(ctx context.Context, creds auth.Credentials, rawID string) error {
	id, verr := validation.QueryID("id", rawID)
	if verr != nil {
		return verr
	}

	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return err
	}

	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("id", "Board not found.")
		}
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

	// Команда никогда не остаётся без досок: считаем под блокировкой
	// строки команды, иначе два параллельных удаления пройдут оба
	if err := postgres.NewTeamRepositoryWithTx(tx).LockByID(ctx, board.TeamID); err != nil {
		return err
	}

	count, err := postgres.NewBoardRepositoryWithTx(tx).CountByTeamID(ctx, board.TeamID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domain.NewValidationError("id", "You cannot delete the last remaining board.", domain.CodeInvalid)
	}

	if err := postgres.NewBoardRepositoryWithTx(tx).Delete(ctx, board.ID); err != nil {
		return err
	}

	return tx.Commit()
}
