package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req BoardCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	board, err := h.boardService.Create(r.Context(), credentials(r), service.BoardCreateInput{
		TeamID: req.TeamID,
		Name:   req.Name,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(BoardEnvelope{
		Msg:   "Board created successfully.",
		Board: boardToHTTP(board),
	})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	var req BoardUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	board, err := h.boardService.Update(r.Context(), credentials(r), r.URL.Query().Get("id"), req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(BoardEnvelope{
		Msg:   "Board updated successfully.",
		Board: boardToHTTP(board),
	})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	err := h.boardService.Delete(r.Context(), credentials(r), r.URL.Query().Get("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Msg: "Board deleted successfully."})
}
