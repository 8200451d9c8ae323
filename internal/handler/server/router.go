package server

import (
	"net/http"

	"github.com/bagdasarian/taskboard/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /register/", h.Register)
	mux.HandleFunc("POST /login/", h.Login)
	mux.HandleFunc("PATCH /users/", h.UpdateUser)
	mux.HandleFunc("DELETE /users/", h.DeleteUser)
	mux.HandleFunc("POST /boards/", h.CreateBoard)
	mux.HandleFunc("PATCH /boards/", h.UpdateBoard)
	mux.HandleFunc("DELETE /boards/", h.DeleteBoard)
	mux.HandleFunc("PATCH /columns/", h.UpdateColumn)
	mux.HandleFunc("POST /tasks/", h.CreateTask)
	mux.HandleFunc("PATCH /tasks/", h.UpdateTask)
	mux.HandleFunc("DELETE /tasks/", h.DeleteTask)
	mux.HandleFunc("PATCH /subtasks/", h.UpdateSubtask)
	mux.HandleFunc("GET /client-state/", h.GetClientState)
}
