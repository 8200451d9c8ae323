package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type BoardRepository interface {
	// CreateWithColumns создает доску и все четыре её колонки атомарно
	CreateWithColumns(ctx context.Context, board *domain.Board) ([]*domain.Column, error)
	GetByID(ctx context.Context, id int) (*domain.Board, error)
	GetByMember(ctx context.Context, username string) ([]*domain.Board, error)
	CountByTeamID(ctx context.Context, teamID int) (int, error)
	UpdateName(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error

	AssignUser(ctx context.Context, boardID int, username string) error
	UnassignUser(ctx context.Context, boardID int, username string) error
	IsAssigned(ctx context.Context, boardID int, username string) (bool, error)
	// GetMembers возвращает username всех назначенных на доску пользователей
	GetMembers(ctx context.Context, boardID int) ([]string, error)

	GetColumns(ctx context.Context, boardID int) ([]*domain.Column, error)
	GetColumnByID(ctx context.Context, id int) (*domain.Column, error)
}
