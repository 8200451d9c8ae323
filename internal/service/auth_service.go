package service

import "context"

type RegisterInput struct {
	Username             string
	Password             string
	PasswordConfirmation string
	// InviteCode - из тела либо из query; пустая строка значит
	// "регистрация новой команды"
	InviteCode string
}

// AuthResult - то, что уходит клиенту после register и login
type AuthResult struct {
	Username string
	Token    string
	TeamID   int
	IsAdmin  bool
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
