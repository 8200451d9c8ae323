package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	subtasks := make([]service.SubtaskCreateInput, 0, len(req.Subtasks))
	for _, subtask := range req.Subtasks {
		subtasks = append(subtasks, service.SubtaskCreateInput{Title: subtask.Title})
	}

	task, err := h.taskService.Create(r.Context(), credentials(r), service.TaskCreateInput{
		Column:      req.Column,
		Title:       req.Title,
		Description: req.Description,
		Subtasks:    subtasks,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(TaskEnvelope{
		Msg:  "Task created successfully.",
		Task: taskToHTTP(task),
	})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	input := service.TaskUpdateInput{
		Column:      req.Column,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		User:        req.User,
	}
	if req.Subtasks != nil {
		subtasks := make([]service.SubtaskReplaceInput, 0, len(*req.Subtasks))
		for _, subtask := range *req.Subtasks {
			subtasks = append(subtasks, service.SubtaskReplaceInput{
				Title: subtask.Title,
				Order: subtask.Order,
				Done:  subtask.Done,
			})
		}
		input.Subtasks = &subtasks
	}

	task, err := h.taskService.Update(r.Context(), credentials(r), r.URL.Query().Get("id"), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(TaskEnvelope{
		Msg:  "Task updated successfully.",
		Task: taskToHTTP(task),
	})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	err := h.taskService.Delete(r.Context(), credentials(r), r.URL.Query().Get("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Msg: "Task deleted successfully."})
}
