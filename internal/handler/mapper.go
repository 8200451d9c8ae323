package handler

import (
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/service"
)

func authResultToHTTP(msg string, result *service.AuthResult) AuthResponse {
	return AuthResponse{
		Msg:      msg,
		Username: result.Username,
		Token:    result.Token,
		TeamID:   result.TeamID,
		IsAdmin:  result.IsAdmin,
	}
}

func boardToHTTP(board *domain.Board) BoardResponse {
	return BoardResponse{
		ID:     board.ID,
		Name:   board.Name,
		TeamID: board.TeamID,
	}
}

func subtaskToHTTP(subtask *domain.Subtask) SubtaskResponse {
	return SubtaskResponse{
		ID:    subtask.ID,
		Title: subtask.Title,
		Order: subtask.Order,
		Done:  subtask.Done,
	}
}

func taskToHTTP(task *service.TaskWithSubtasks) TaskResponse {
	subtasks := make([]SubtaskResponse, 0, len(task.Subtasks))
	for _, subtask := range task.Subtasks {
		subtasks = append(subtasks, subtaskToHTTP(subtask))
	}

	return TaskResponse{
		ID:          task.Task.ID,
		Title:       task.Task.Title,
		Description: task.Task.Description,
		Order:       task.Task.Order,
		User:        task.Task.Assignee,
		Subtasks:    subtasks,
	}
}

func clientStateToHTTP(state *service.ClientState) ClientStateResponse {
	response := ClientStateResponse{
		User: UserStateResponse{
			Username:        state.User.Username,
			TeamID:          state.User.TeamID,
			IsAdmin:         state.User.IsAdmin,
			IsAuthenticated: true,
		},
		Boards:  make([]BoardSummaryResponse, 0, len(state.Boards)),
		Members: make([]MemberResponse, 0, len(state.Members)),
	}

	if state.Team != nil {
		response.Team = &TeamStateResponse{
			ID:         state.Team.ID,
			InviteCode: state.Team.InviteCode,
		}
	}

	for _, board := range state.Boards {
		response.Boards = append(response.Boards, BoardSummaryResponse{
			ID:   board.ID,
			Name: board.Name,
		})
	}

	response.ActiveBoard = ActiveBoardResponse{
		ID:      state.ActiveBoard.Board.ID,
		Name:    state.ActiveBoard.Board.Name,
		Columns: make([]ColumnResponse, 0, len(state.ActiveBoard.Columns)),
	}
	for _, column := range state.ActiveBoard.Columns {
		tasks := make([]TaskResponse, 0, len(column.Tasks))
		for _, task := range column.Tasks {
			tasks = append(tasks, taskToHTTP(task))
		}
		response.ActiveBoard.Columns = append(response.ActiveBoard.Columns, ColumnResponse{
			ID:    column.Column.ID,
			Order: column.Column.Order,
			Tasks: tasks,
		})
	}

	for _, member := range state.Members {
		response.Members = append(response.Members, MemberResponse{
			Username: member.Username,
			IsActive: member.IsActive,
			IsAdmin:  member.IsAdmin,
		})
	}

	return response
}
