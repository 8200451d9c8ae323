package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (invite_code, created_at)
		VALUES ($1::uuid, $2)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(ctx, query, team.InviteCode, time.Now()).
		Scan(&team.ID, &team.CreatedAt)
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT id, invite_code::text, created_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.InviteCode,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*domain.Team, error) {
	query := `
		SELECT id, invite_code::text, created_at
		FROM teams
		WHERE invite_code = $1::uuid
	`

	team := &domain.Team{}
	err := r.executor.QueryRowContext(ctx, query, inviteCode).Scan(
		&team.ID,
		&team.InviteCode,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return team, nil
}

// LockByID берёт блокировку строки команды до конца транзакции;
// конкурентные удаления досок одной команды сериализуются на ней
func (r *teamRepository) LockByID(ctx context.Context, id int) error {
	var lockedID int
	err := r.executor.QueryRowContext(ctx, `SELECT id FROM teams WHERE id = $1 FOR UPDATE`, id).
		Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}

	return nil
}

// Delete каскадно сносит пользователей, доски, колонки, задачи и подзадачи
func (r *teamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
