package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
	"github.com/bagdasarian/taskboard/internal/validation"
)

type stateService struct {
	userRepo      repository.UserRepository
	teamRepo      repository.TeamRepository
	boardRepo     repository.BoardRepository
	taskRepo      repository.TaskRepository
	authenticator *auth.Authenticator
}

func NewStateService(
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	boardRepo repository.BoardRepository,
	taskRepo repository.TaskRepository,
	authenticator *auth.Authenticator,
) StateService {
	return &stateService{
		userRepo:      userRepo,
		teamRepo:      teamRepo,
		boardRepo:     boardRepo,
		taskRepo:      taskRepo,
		authenticator: authenticator,
	}
}

// Load собирает проекцию одним аутентифицированным чтением: доски
// пользователя, участники команды и - для выбранной доски - колонки,
// задачи и подзадачи, по одному запросу на уровень вложенности
func (s *stateService) Load(ctx context.Context, creds auth.Credentials, rawBoardID string) (*ClientState, error) {
	user, err := s.authenticator.Authenticate(ctx, creds.Username, creds.Token)
	if err != nil {
		return nil, err
	}

	boards, err := s.boardRepo.GetByMember(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, domain.NewValidationError(
			"boards",
			"Please ask your team admin to add you to a board and try again.",
			domain.CodeInvalid,
		)
	}

	// Активная доска: запрошенная, если пользователь на неё назначен,
	// иначе первая из его досок. Чужая доска - и чужой команды тоже -
	// отдаёт authorization_error.
	active := boards[0]
	if rawBoardID != "" {
		boardID, verr := validation.QueryID("boardId", rawBoardID)
		if verr != nil {
			return nil, verr
		}
		active = nil
		for _, board := range boards {
			if board.ID == boardID {
				active = board
				break
			}
		}
		if active == nil {
			return nil, domain.ErrNotAuthorized
		}
	}

	state := &ClientState{User: user, Boards: boards}

	if user.IsAdmin {
		team, err := s.teamRepo.GetByID(ctx, user.TeamID)
		if err != nil {
			return nil, err
		}
		state.Team = team
	}

	columns, err := s.boardRepo.GetColumns(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.GetByBoardID(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	subtasks, err := s.taskRepo.GetSubtasksByBoardID(ctx, active.ID)
	if err != nil {
		return nil, err
	}

	subtasksByTask := make(map[int][]*domain.Subtask, len(tasks))
	for _, subtask := range subtasks {
		subtasksByTask[subtask.TaskID] = append(subtasksByTask[subtask.TaskID], subtask)
	}

	tasksByColumn := make(map[int][]*TaskWithSubtasks, len(columns))
	for _, task := range tasks {
		tasksByColumn[task.ColumnID] = append(tasksByColumn[task.ColumnID], &TaskWithSubtasks{
			Task:     task,
			Subtasks: subtasksByTask[task.ID],
		})
	}

	activeBoard := &ActiveBoard{Board: active, Columns: make([]ColumnState, 0, len(columns))}
	for _, column := range columns {
		activeBoard.Columns = append(activeBoard.Columns, ColumnState{
			Column: column,
			Tasks:  tasksByColumn[column.ID],
		})
	}
	state.ActiveBoard = activeBoard

	teamUsers, err := s.userRepo.GetByTeamID(ctx, user.TeamID)
	if err != nil {
		return nil, err
	}
	assigned, err := s.boardRepo.GetMembers(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	assignedSet := make(map[string]bool, len(assigned))
	for _, username := range assigned {
		assignedSet[username] = true
	}

	// Репозиторий отдаёт участников с админами впереди
	state.Members = make([]Member, 0, len(teamUsers))
	for _, member := range teamUsers {
		state.Members = append(state.Members, Member{
			Username: member.Username,
			IsAdmin:  member.IsAdmin,
			IsActive: assignedSet[member.Username],
		})
	}

	return state, nil
}
