package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
)

// ClientState - полный рабочий набор для пользователя, открывшего
// приложение: он сам, его доски, активная доска со всем деревом и
// участники команды
type ClientState struct {
	User        *domain.User
	Team        *domain.Team // только для админа
	Boards      []*domain.Board
	ActiveBoard *ActiveBoard
	Members     []Member
}

type ActiveBoard struct {
	Board   *domain.Board
	Columns []ColumnState
}

type ColumnState struct {
	Column *domain.Column
	Tasks  []*TaskWithSubtasks
}

type Member struct {
	Username string
	IsAdmin  bool
	// IsActive - участник назначен на активную доску
	IsActive bool
}

type StateService interface {
	Load(ctx context.Context, creds auth.Credentials, rawBoardID string) (*ClientState, error)
}
