package auth

import "github.com/bagdasarian/taskboard/internal/domain"

// Предикаты авторизации. Оба провала - роль и тенантность - дают один
// и тот же ErrNotAuthorized, какая именно проверка не прошла, клиенту
// не сообщается.

// AuthorizeAdmin требует is_admin и принадлежность к команде цели
func AuthorizeAdmin(user *domain.User, teamID int) error {
	if !user.IsAdmin || user.TeamID != teamID {
		return domain.ErrNotAuthorized
	}
	return nil
}

// AuthorizeMember требует только принадлежность к команде цели
func AuthorizeMember(user *domain.User, teamID int) error {
	if user.TeamID != teamID {
		return domain.ErrNotAuthorized
	}
	return nil
}

// AuthorizeTaskWrite допускает админа команды либо исполнителя задачи
func AuthorizeTaskWrite(user *domain.User, teamID int, assignee *string) error {
	if user.TeamID != teamID {
		return domain.ErrNotAuthorized
	}
	if user.IsAdmin {
		return nil
	}
	if assignee != nil && *assignee == user.Username {
		return nil
	}
	return domain.ErrNotAuthorized
}
