package auth

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

// Authenticator разрешает пару (username, token) в пользователя.
// Любой провал - пользователя нет, хеш битый, токен не сошёлся -
// возвращает один и тот же ErrNotAuthenticated.
type Authenticator struct {
	userRepo repository.UserRepository
	hasher   *Hasher
}

func NewAuthenticator(userRepo repository.UserRepository, hasher *Hasher) *Authenticator {
	return &Authenticator{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (a *Authenticator) Authenticate(ctx context.Context, username, token string) (*domain.User, error) {
	if username == "" || token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}

	if !a.hasher.VerifyToken(user.Username, user.PasswordHash, token) {
		return nil, domain.ErrNotAuthenticated
	}

	return user, nil
}
