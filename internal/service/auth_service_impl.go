package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/seed"
	"github.com/bagdasarian/taskboard/internal/validation"
)

const pgUniqueViolation = "23505"

type authService struct {
	db       *sql.DB
	userRepo repository.UserRepository
	teamRepo repository.TeamRepository
	hasher   *auth.Hasher
}

func NewAuthService(
	db *sql.DB,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	hasher *auth.Hasher,
) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		teamRepo: teamRepo,
		hasher:   hasher,
	}
}

// Register создает пользователя и, для админа без инвайт-кода, всю стартовую
// обвязку: команду, доску "New Board" с четырьмя колонками, туториальные
// задачи в колонке с индексом 1 и демонстрационного участника. Всё - одной
// транзакцией.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := validation.Username(input.Username); err != nil {
		return nil, err
	}
	if err := validation.Password(input.Password); err != nil {
		return nil, err
	}
	if err := validation.PasswordConfirmation(input.Password, input.PasswordConfirmation); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err == nil {
		return nil, domain.NewFieldError("username", "Username is already taken.", domain.CodeInvalid)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// Инвайт-код определяет роль: с кодом регистрируется рядовой участник,
	// без кода создается новая команда с этим пользователем как админом
	var joinTeam *domain.Team
	if input.InviteCode != "" {
		inviteCode, verr := validation.InviteCode(input.InviteCode)
		if verr != nil {
			return nil, verr
		}
		joinTeam, err = s.teamRepo.GetByInviteCode(ctx, inviteCode)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, domain.NewValidationError("invite_code", "Team not found.", domain.CodeDoesNotExist)
			}
			return nil, err
		}
	}

	passwordHash, err := s.hasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	teamRepo := postgres.NewTeamRepositoryWithTx(tx)
	userRepo := postgres.NewUserRepositoryWithTx(tx)
	boardRepo := postgres.NewBoardRepositoryWithTx(tx)
	taskRepo := postgres.NewTaskRepositoryWithTx(tx)

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		TeamID:       0,
		IsAdmin:      joinTeam == nil,
	}

	if joinTeam != nil {
		user.TeamID = joinTeam.ID
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, mapUsernameConflict(err)
		}
	} else {
		team := &domain.Team{InviteCode: uuid.NewString()}
		if err := teamRepo.Create(ctx, team); err != nil {
			return nil, err
		}
		user.TeamID = team.ID

		if err := userRepo.Create(ctx, user); err != nil {
			return nil, mapUsernameConflict(err)
		}

		if err := s.provisionTeam(ctx, userRepo, boardRepo, taskRepo, team, user); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	token, err := s.hasher.DeriveToken(user.Username, user.PasswordHash)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Username: user.Username,
		Token:    token,
		TeamID:   user.TeamID,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// provisionTeam наполняет свежую команду: доска с колонками, назначение
// админа, туториальный контент и демонстрационный участник
func (s *authService) provisionTeam(
	ctx context.Context,
	userRepo repository.UserRepository,
	boardRepo repository.BoardRepository,
	taskRepo repository.TaskRepository,
	team *domain.Team,
	admin *domain.User,
) error {
	board := &domain.Board{TeamID: team.ID, Name: "New Board"}
	columns, err := boardRepo.CreateWithColumns(ctx, board)
	if err != nil {
		return err
	}

	if err := boardRepo.AssignUser(ctx, board.ID, admin.Username); err != nil {
		return err
	}

	tutorial, err := seed.TutorialTasks()
	if err != nil {
		return err
	}

	tutorialColumn := columns[1]
	for i, entry := range tutorial {
		description := entry.Description
		task := &domain.Task{
			ColumnID:    tutorialColumn.ID,
			Title:       entry.Title,
			Description: &description,
			Order:       i,
		}
		if err := taskRepo.Create(ctx, task); err != nil {
			return err
		}
		for j, title := range entry.Subtasks {
			subtask := &domain.Subtask{TaskID: task.ID, Title: title, Order: j}
			if err := taskRepo.CreateSubtask(ctx, subtask); err != nil {
				return err
			}
		}
	}

	demoPassword := make([]byte, 16)
	if _, err := rand.Read(demoPassword); err != nil {
		return err
	}
	demoHash, err := s.hasher.Hash([]byte(hex.EncodeToString(demoPassword)))
	if err != nil {
		return err
	}

	demo := &domain.User{
		Username:     fmt.Sprintf("demo-member-%d", team.ID),
		PasswordHash: demoHash,
		TeamID:       team.ID,
	}
	if err := userRepo.Create(ctx, demo); err != nil {
		return err
	}

	return boardRepo.AssignUser(ctx, board.ID, demo.Username)
}

// Login - единственное место, где различие "нет такого пользователя" и
// "неверный пароль" намеренно видно клиенту
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewValidationError("username", "Invalid username.", domain.CodeInvalid)
		}
		return nil, err
	}

	if !s.hasher.Check([]byte(password), user.PasswordHash) {
		return nil, domain.NewValidationError("password", "Invalid password.", domain.CodeInvalid)
	}

	token, err := s.hasher.DeriveToken(user.Username, user.PasswordHash)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Username: user.Username,
		Token:    token,
		TeamID:   user.TeamID,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// mapUsernameConflict переводит нарушение уникального индекса username в ту
// же ошибку, что и проверка до транзакции: две конкурентные регистрации не
// могут пройти обе
func mapUsernameConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &domain.Error{
			Field:   "username",
			Message: "Username is already taken.",
			Code:    domain.CodeInvalid,
			Status:  http.StatusBadRequest,
			Many:    true,
		}
	}
	return err
}
