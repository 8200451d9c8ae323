package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	// Инвайт-код принимается и телом, и query-параметром
	inviteCode := req.InviteCode
	if inviteCode == "" {
		inviteCode = r.URL.Query().Get("invite_code")
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username:             req.Username,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
		InviteCode:           inviteCode,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(authResultToHTTP("Registration successful.", result))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleDecodeError(w)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(authResultToHTTP("Login successful.", result))
}
