package validation

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/bagdasarian/taskboard/internal/domain"
)

// Валидаторы - чистые функции из сырого входа либо в значение, либо в
// *domain.Error. Композиция короткозамкнутая: первый провал возвращается,
// никакой частичной мутации не происходит.

const (
	UsernameMinLength = 5
	UsernameMaxLength = 35
	PasswordMinLength = 8
	PasswordMaxLength = 255
	TitleMaxLength    = 50
)

func Username(value string) *domain.Error {
	if value == "" {
		return domain.NewFieldError("username", "Username cannot be empty.", domain.CodeBlank)
	}
	// Лимиты считаются в символах, не в байтах: VARCHAR(35) в Postgres
	// тоже считает символы
	if utf8.RuneCountInString(value) < UsernameMinLength {
		return domain.NewFieldError("username", "Username must be at least 5 characters.", domain.CodeMinLength)
	}
	if utf8.RuneCountInString(value) > UsernameMaxLength {
		return domain.NewFieldError("username", "Username cannot be longer than 35 characters.", domain.CodeMaxLength)
	}
	return nil
}

func Password(value string) *domain.Error {
	if value == "" {
		return domain.NewFieldError("password", "Password cannot be empty.", domain.CodeBlank)
	}
	if utf8.RuneCountInString(value) < PasswordMinLength {
		return domain.NewFieldError("password", "Password must be at least 8 characters.", domain.CodeMinLength)
	}
	if utf8.RuneCountInString(value) > PasswordMaxLength {
		return domain.NewFieldError("password", "Password cannot be longer than 255 characters.", domain.CodeMaxLength)
	}
	return nil
}

func PasswordConfirmation(password, confirmation string) *domain.Error {
	if confirmation == "" {
		return domain.NewFieldError("password_confirmation", "Confirmation cannot be empty.", domain.CodeBlank)
	}
	if confirmation != password {
		return domain.NewValidationError("password_confirmation", "Confirmation must match the password.", domain.CodeInvalid)
	}
	return nil
}

// InviteCode проверяет, что код - синтаксически корректный UUID
func InviteCode(value string) (string, *domain.Error) {
	if value == "" {
		return "", domain.NewValidationError("invite_code", "Invite code cannot be empty.", domain.CodeBlank)
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", domain.NewValidationError("invite_code", "Invalid invite code.", domain.CodeInvalid)
	}
	return parsed.String(), nil
}

func BoardName(value string) *domain.Error {
	if value == "" {
		return domain.NewFieldError("name", "Board name cannot be blank.", domain.CodeBlank)
	}
	return nil
}

func TaskTitle(field, value string) *domain.Error {
	if value == "" {
		return domain.NewFieldError(field, "Task title cannot be empty.", domain.CodeBlank)
	}
	if utf8.RuneCountInString(value) > TitleMaxLength {
		return domain.NewFieldError(field, "Task title cannot be longer than 50 characters.", domain.CodeMaxLength)
	}
	return nil
}

func SubtaskTitle(field, value string) *domain.Error {
	if value == "" {
		return domain.NewFieldError(field, "Subtask title cannot be empty.", domain.CodeBlank)
	}
	if utf8.RuneCountInString(value) > TitleMaxLength {
		return domain.NewFieldError(field, "Subtask title cannot be longer than 50 characters.", domain.CodeMaxLength)
	}
	return nil
}

// QueryID разбирает идентификатор из query-параметра. Отсутствие, нечисловое
// значение и несуществующая ссылка - три разных кода; последний поднимает
// уже сервис после чтения из базы.
func QueryID(field, raw string) (int, *domain.Error) {
	if raw == "" {
		return 0, domain.NewValidationError(field, field+" cannot be null.", domain.CodeNull)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, field+" must be a number.", domain.CodeIncorrectType)
	}
	return id, nil
}

var (
	jsonNull        = []byte("null")
	jsonEmptyString = []byte(`""`)
	jsonTrue        = []byte("true")
	jsonFalse       = []byte("false")
)

// IntField разбирает числовое поле тела запроса. Пустая строка считается
// blank даже при присутствующем ключе: частичное обновление не должно
// затирать обязательные поля.
func IntField(field string, raw json.RawMessage) (int, *domain.Error) {
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return 0, domain.NewValidationError(field, field+" cannot be null.", domain.CodeNull)
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonEmptyString) {
		return 0, domain.NewFieldError(field, field+" cannot be empty.", domain.CodeBlank)
	}
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, domain.NewValidationError(field, field+" must be a number.", domain.CodeIncorrectType)
	}
	return value, nil
}

// BoolField - булева коэрция, отвергающая пустую строку и всё, что не bool
func BoolField(field string, raw json.RawMessage) (bool, *domain.Error) {
	trimmed := bytes.TrimSpace(raw)
	if raw == nil || bytes.Equal(trimmed, jsonNull) {
		return false, domain.NewValidationError(field, field+" cannot be null.", domain.CodeNull)
	}
	if bytes.Equal(trimmed, jsonEmptyString) {
		return false, domain.NewFieldError(field, field+" cannot be empty.", domain.CodeBlank)
	}
	switch {
	case bytes.Equal(trimmed, jsonTrue):
		return true, nil
	case bytes.Equal(trimmed, jsonFalse):
		return false, nil
	}
	return false, domain.NewValidationError(field, field+" must be a boolean.", domain.CodeIncorrectType)
}
