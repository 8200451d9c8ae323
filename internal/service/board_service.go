package service

import (
	"context"
	"encoding/json"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
)

type BoardCreateInput struct {
	TeamID json.RawMessage
	Name   *string
}

type BoardService interface {
	Create(ctx context.Context, creds auth.Credentials, input BoardCreateInput) (*domain.Board, error)
	Update(ctx context.Context, creds auth.Credentials, rawID string, name *string) (*domain.Board, error)
	Delete(ctx context.Context, creds auth.Credentials, rawID string) error
}
