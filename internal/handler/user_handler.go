package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	err := h.userService.SetBoardMembership(
		r.Context(),
		credentials(r),
		r.URL.Query().Get("username"),
		service.MembershipInput{BoardID: req.BoardID, IsActive: req.IsActive},
	)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Msg: "Membership updated successfully."})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.userService.Delete(r.Context(), credentials(r), r.URL.Query().Get("username"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Msg: "User deleted successfully."})
}
