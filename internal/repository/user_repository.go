package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByTeamID(ctx context.Context, teamID int) ([]*domain.User, error)
	CountByTeamID(ctx context.Context, teamID int) (int, error)
	Delete(ctx context.Context, username string) error
}
