package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/service"
)

// UpdateColumn принимает список задач, которые нужно разложить в колонке:
// перестановка порядка, переназначение исполнителей, перенос админом из
// других колонок той же доски
func (h *Handler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	var req []ColumnTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	items := make([]service.ColumnTaskInput, 0, len(req))
	for _, item := range req {
		items = append(items, service.ColumnTaskInput{
			ID:    item.ID,
			Title: item.Title,
			Order: item.Order,
			User:  item.User,
		})
	}

	err := h.columnService.UpdateTasks(r.Context(), credentials(r), r.URL.Query().Get("id"), items)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Msg: "Column updated successfully."})
}
