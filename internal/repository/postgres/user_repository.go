package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, password_hash, is_admin, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.PasswordHash,
		user.IsAdmin,
		user.TeamID,
		time.Now(),
	).Scan(&user.CreatedAt)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, password_hash, is_admin, team_id, created_at
		FROM users
		WHERE username = $1
	`

	user := &domain.User{}
	err := r.executor.QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.TeamID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetByTeamID(ctx context.Context, teamID int) ([]*domain.User, error) {
	// Админы впереди, дальше по времени создания
	query := `
		SELECT username, password_hash, is_admin, team_id, created_at
		FROM users
		WHERE team_id = $1
		ORDER BY is_admin DESC, created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.Username,
			&user.PasswordHash,
			&user.IsAdmin,
			&user.TeamID,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) CountByTeamID(ctx context.Context, teamID int) (int, error) {
	var count int
	err := r.executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE team_id = $1`, teamID).Scan(&count)
	return count, err
}

func (r *userRepository) Delete(ctx context.Context, username string) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
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
