package domain

import "net/http"

// Code - машинно-читаемый код ошибки, который уходит клиенту в конверте
type Code string

const (
	CodeBlank            Code = "blank"
	CodeNull             Code = "null"
	CodeInvalid          Code = "invalid"
	CodeIncorrectType    Code = "incorrect_type"
	CodeMaxLength        Code = "max_length"
	CodeMinLength        Code = "min_length"
	CodeDoesNotExist     Code = "does_not_exist"
	CodeNotFound         Code = "not_found"
	CodeNotAuthenticated Code = "not_authenticated"
	CodeNotAuthorized    Code = "not_authorized"
	CodeForbidden        Code = "forbidden"
	CodeNoMatch          Code = "no_match"
)

// Error - единица таксономии ошибок: поле, сообщение клиенту, код и
// HTTP-статус. Many=true означает, что значение поля в конверте
// сериализуется списком (так ведут себя ошибки объявленных полей),
// иначе - одиночным объектом.
type Error struct {
	Field   string
	Message string
	Code    Code
	Status  int
	Many    bool
}

func (e *Error) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is() по коду
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewFieldError - ошибка валидации объявленного поля (в конверте - список)
func NewFieldError(field, message string, code Code) *Error {
	return &Error{
		Field:   field,
		Message: message,
		Code:    code,
		Status:  http.StatusBadRequest,
		Many:    true,
	}
}

// NewValidationError - кросс-полевая/семантическая ошибка (одиночный объект)
func NewValidationError(field, message string, code Code) *Error {
	return &Error{
		Field:   field,
		Message: message,
		Code:    code,
		Status:  http.StatusBadRequest,
	}
}

// NewNotFoundError - ссылка на несуществующую сущность
func NewNotFoundError(field, message string) *Error {
	return &Error{
		Field:   field,
		Message: message,
		Code:    CodeNotFound,
		Status:  http.StatusNotFound,
	}
}

var (
	// ErrNotAuthenticated - единый ответ на любой провал аутентификации.
	// Какая именно ветка провалилась - наружу не утекает.
	ErrNotAuthenticated = &Error{
		Field:   "auth",
		Message: "Authentication failure.",
		Code:    CodeNotAuthenticated,
		Status:  http.StatusForbidden,
	}

	// ErrNotAuthorized - провал проверки роли или тенантности
	ErrNotAuthorized = &Error{
		Field:   "auth",
		Message: "Authorization failure.",
		Code:    CodeNotAuthorized,
		Status:  http.StatusUnauthorized,
	}
)
