package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type boardRepository struct {
	executor DBExecutor
}

func NewBoardRepository(db *sql.DB) *boardRepository {
	return &boardRepository{executor: db}
}

func NewBoardRepositoryWithTx(tx *sql.Tx) *boardRepository {
	return &boardRepository{executor: tx}
}

// CreateWithColumns создает доску и её четыре колонки. Вызывающий обязан
// держать метод внутри транзакции, иначе инвариант "ровно четыре колонки"
// не атомарен.
func (r *boardRepository) CreateWithColumns(ctx context.Context, board *domain.Board) ([]*domain.Column, error) {
	query := `
		INSERT INTO boards (team_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(ctx, query, board.TeamID, board.Name, time.Now()).
		Scan(&board.ID, &board.CreatedAt)
	if err != nil {
		return nil, err
	}

	columns := make([]*domain.Column, 0, domain.ColumnCount)
	for ord := 0; ord < domain.ColumnCount; ord++ {
		column := &domain.Column{BoardID: board.ID, Order: ord}
		err := r.executor.QueryRowContext(
			ctx,
			`INSERT INTO columns (board_id, ord) VALUES ($1, $2) RETURNING id`,
			board.ID,
			ord,
		).Scan(&column.ID)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	return columns, nil
}

func (r *boardRepository) GetByID(ctx context.Context, id int) (*domain.Board, error) {
	query := `
		SELECT id, team_id, name, created_at
		FROM boards
		WHERE id = $1
	`

	board := &domain.Board{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.TeamID,
		&board.Name,
		&board.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return board, nil
}

func (r *boardRepository) GetByMember(ctx context.Context, username string) ([]*domain.Board, error) {
	query := `
		SELECT b.id, b.team_id, b.name, b.created_at
		FROM boards b
		JOIN board_users bu ON bu.board_id = b.id
		WHERE bu.username = $1
		ORDER BY b.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*domain.Board
	for rows.Next() {
		board := &domain.Board{}
		err := rows.Scan(&board.ID, &board.TeamID, &board.Name, &board.CreatedAt)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, rows.Err()
}

func (r *boardRepository) CountByTeamID(ctx context.Context, teamID int) (int, error) {
	var count int
	err := r.executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM boards WHERE team_id = $1`, teamID).Scan(&count)
	return count, err
}

func (r *boardRepository) UpdateName(ctx context.Context, id int, name string) error {
	result, err := r.executor.ExecContext(ctx,
		`UPDATE boards SET name = $2 WHERE id = $1`, id, name)
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

// Delete каскадно сносит колонки, задачи и подзадачи доски
func (r *boardRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
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

func (r *boardRepository) AssignUser(ctx context.Context, boardID int, username string) error {
	_, err := r.executor.ExecContext(ctx, `
		INSERT INTO board_users (board_id, username)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, boardID, username)
	return err
}

func (r *boardRepository) UnassignUser(ctx context.Context, boardID int, username string) error {
	_, err := r.executor.ExecContext(ctx,
		`DELETE FROM board_users WHERE board_id = $1 AND username = $2`, boardID, username)
	return err
}

func (r *boardRepository) IsAssigned(ctx context.Context, boardID int, username string) (bool, error) {
	var assigned bool
	err := r.executor.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM board_users WHERE board_id = $1 AND username = $2
		)
	`, boardID, username).Scan(&assigned)
	return assigned, err
}

func (r *boardRepository) GetMembers(ctx context.Context, boardID int) ([]string, error) {
	rows, err := r.executor.QueryContext(ctx,
		`SELECT username FROM board_users WHERE board_id = $1`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		usernames = append(usernames, username)
	}

	return usernames, rows.Err()
}

func (r *boardRepository) GetColumns(ctx context.Context, boardID int) ([]*domain.Column, error) {
	query := `
		SELECT id, board_id, ord
		FROM columns
		WHERE board_id = $1
		ORDER BY ord
	`

	rows, err := r.executor.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*domain.Column
	for rows.Next() {
		column := &domain.Column{}
		err := rows.Scan(&column.ID, &column.BoardID, &column.Order)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}

	return columns, rows.Err()
}

func (r *boardRepository) GetColumnByID(ctx context.Context, id int) (*domain.Column, error) {
	query := `
		SELECT id, board_id, ord
		FROM columns
		WHERE id = $1
	`

	column := &domain.Column{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&column.ID,
		&column.BoardID,
		&column.Order,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return column, nil
}
