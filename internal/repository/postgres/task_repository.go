package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

func NewTaskRepositoryWithTx(tx *sql.Tx) *taskRepository {
	return &taskRepository{executor: tx}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (column_id, title, description, ord, assignee)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		task.ColumnID,
		task.Title,
		task.Description,
		task.Order,
		task.Assignee,
	).Scan(&task.ID)
}

func (r *taskRepository) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `
		SELECT id, column_id, title, description, ord, assignee
		FROM tasks
		WHERE id = $1
	`

	task := &domain.Task{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.ColumnID,
		&task.Title,
		&task.Description,
		&task.Order,
		&task.Assignee,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return task, nil
}

// GetByBoardID собирает задачи всех колонок доски одним запросом,
// чтобы проекция не ходила в базу по разу на колонку
func (r *taskRepository) GetByBoardID(ctx context.Context, boardID int) ([]*domain.Task, error) {
	query := `
		SELECT t.id, t.column_id, t.title, t.description, t.ord, t.assignee
		FROM tasks t
		JOIN columns c ON t.column_id = c.id
		WHERE c.board_id = $1
		ORDER BY c.ord, t.ord
	`

	rows, err := r.executor.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task := &domain.Task{}
		err := rows.Scan(
			&task.ID,
			&task.ColumnID,
			&task.Title,
			&task.Description,
			&task.Order,
			&task.Assignee,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET column_id = $2, title = $3, description = $4, ord = $5, assignee = $6
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		task.ID,
		task.ColumnID,
		task.Title,
		task.Description,
		task.Order,
		task.Assignee,
	)
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

// Delete каскадно сносит подзадачи
func (r *taskRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
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

func (r *taskRepository) ShiftColumnTasks(ctx context.Context, columnID int) error {
	_, err := r.executor.ExecContext(ctx,
		`UPDATE tasks SET ord = ord + 1 WHERE column_id = $1`, columnID)
	return err
}

func (r *taskRepository) CreateSubtask(ctx context.Context, subtask *domain.Subtask) error {
	query := `
		INSERT INTO subtasks (task_id, title, ord, done)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		subtask.TaskID,
		subtask.Title,
		subtask.Order,
		subtask.Done,
	).Scan(&subtask.ID)
}

func (r *taskRepository) GetSubtaskByID(ctx context.Context, id int) (*domain.Subtask, error) {
	query := `
		SELECT id, task_id, title, ord, done
		FROM subtasks
		WHERE id = $1
	`

	subtask := &domain.Subtask{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&subtask.ID,
		&subtask.TaskID,
		&subtask.Title,
		&subtask.Order,
		&subtask.Done,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return subtask, nil
}

func (r *taskRepository) GetSubtasksByBoardID(ctx context.Context, boardID int) ([]*domain.Subtask, error) {
	query := `
		SELECT s.id, s.task_id, s.title, s.ord, s.done
		FROM subtasks s
		JOIN tasks t ON s.task_id = t.id
		JOIN columns c ON t.column_id = c.id
		WHERE c.board_id = $1
		ORDER BY s.ord
	`

	rows, err := r.executor.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []*domain.Subtask
	for rows.Next() {
		subtask := &domain.Subtask{}
		err := rows.Scan(
			&subtask.ID,
			&subtask.TaskID,
			&subtask.Title,
			&subtask.Order,
			&subtask.Done,
		)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, subtask)
	}

	return subtasks, rows.Err()
}

func (r *taskRepository) UpdateSubtask(ctx context.Context, subtask *domain.Subtask) error {
	query := `
		UPDATE subtasks
		SET title = $2, ord = $3, done = $4
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		subtask.ID,
		subtask.Title,
		subtask.Order,
		subtask.Done,
	)
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

func (r *taskRepository) DeleteSubtasksByTaskID(ctx context.Context, taskID int) error {
	_, err := r.executor.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = $1`, taskID)
	return err
}
