package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*domain.Team, error)
	LockByID(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}
