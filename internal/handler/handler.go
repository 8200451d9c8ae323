package handler

import (
	"net/http"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/service"
)

type Handler struct {
	authService   service.AuthService
	userService   service.UserService
	boardService  service.BoardService
	columnService service.ColumnService
	taskService   service.TaskService
	stateService  service.StateService
}

func NewHandler(
	authService service.AuthService,
	userService service.UserService,
	boardService service.BoardService,
	columnService service.ColumnService,
	taskService service.TaskService,
	stateService service.StateService,
) *Handler {
	return &Handler{
		authService:   authService,
		userService:   userService,
		boardService:  boardService,
		columnService: columnService,
		taskService:   taskService,
		stateService:  stateService,
	}
}

// credentials снимает заголовки Auth-User / Auth-Token; их проверка -
// дело аутентификатора, хендлер их не интерпретирует
func credentials(r *http.Request) auth.Credentials {
	return auth.Credentials{
		Username: r.Header.Get("Auth-User"),
		Token:    r.Header.Get("Auth-Token"),
	}
}
