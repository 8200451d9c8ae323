package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	var req SubtaskUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	subtask, err := h.taskService.UpdateSubtask(r.Context(), credentials(r), r.URL.Query().Get("id"), service.SubtaskUpdateInput{
		Title: req.Title,
		Order: req.Order,
		Done:  req.Done,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SubtaskEnvelope{
		Msg:     "Subtask updated successfully.",
		Subtask: subtaskToHTTP(subtask),
	})
}
