package service

import (
	"context"
	"encoding/json"

	"github.com/bagdasarian/taskboard/internal/auth"
)

// MembershipInput - тело PATCH /users/: включить или выключить участие
// пользователя в доске
type MembershipInput struct {
	BoardID  json.RawMessage
	IsActive json.RawMessage
}

type UserService interface {
	SetBoardMembership(ctx context.Context, creds auth.Credentials, username string, input MembershipInput) error
	Delete(ctx context.Context, creds auth.Credentials, username string) error
}
