package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
)

// handleError переводит *domain.Error в конверт {<field>: {string, code}}
// (или {<field>: [{string, code}]} для ошибок объявленных полей). Всё
// остальное - внутренняя ошибка: детали в лог, клиенту 500 с общим текстом.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		detail := ErrorDetail{
			String: domainErr.Message,
			Code:   string(domainErr.Code),
		}
		var value any = detail
		if domainErr.Many {
			value = []ErrorDetail{detail}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(domainErr.Status)
		json.NewEncoder(w).Encode(map[string]any{domainErr.Field: value})
		return
	}

	log.Printf("internal error: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]any{
		"error": ErrorDetail{String: "Something went wrong.", Code: "error"},
	})
}

// handleDecodeError - синтаксически битое тело запроса
func (h *Handler) handleDecodeError(w http.ResponseWriter) {
	h.handleError(w, domain.NewValidationError("data", "Invalid request body.", domain.CodeInvalid))
}
