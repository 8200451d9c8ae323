package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) GetClientState(w http.ResponseWriter, r *http.Request) {
	state, err := h.stateService.Load(r.Context(), credentials(r), r.URL.Query().Get("boardId"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(clientStateToHTTP(state))
}
