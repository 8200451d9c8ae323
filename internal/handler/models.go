package handler

import "encoding/json"

// Сырые поля (json.RawMessage) там, где контракт различает "ключ
// отсутствует", "null" и "пустая строка": валидаторы разбирают их сами.

type ErrorDetail struct {
	String string `json:"string"`
	Code   string `json:"code"`
}

type RegisterRequest struct {
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	InviteCode           string `json:"invite_code"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Msg      string `json:"msg"`
	Username string `json:"username"`
	Token    string `json:"token"`
	TeamID   int    `json:"teamId"`
	IsAdmin  bool   `json:"isAdmin"`
}

type BoardCreateRequest struct {
	TeamID json.RawMessage `json:"team_id"`
	Name   *string         `json:"name"`
}

type BoardUpdateRequest struct {
	Name *string `json:"name"`
}

type BoardResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	TeamID int    `json:"teamId"`
}

type BoardEnvelope struct {
	Msg   string        `json:"msg"`
	Board BoardResponse `json:"board"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

type MembershipRequest struct {
	BoardID  json.RawMessage `json:"board_id"`
	IsActive json.RawMessage `json:"is_active"`
}

type ColumnTaskRequest struct {
	ID    json.RawMessage `json:"id"`
	Title *string         `json:"title"`
	Order json.RawMessage `json:"order"`
	User  *string         `json:"user"`
}

type SubtaskTitleRequest struct {
	Title *string `json:"title"`
}

type TaskCreateRequest struct {
	Column      json.RawMessage       `json:"column"`
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Subtasks    []SubtaskTitleRequest `json:"subtasks"`
}

type SubtaskReplaceRequest struct {
	Title *string         `json:"title"`
	Order json.RawMessage `json:"order"`
	Done  json.RawMessage `json:"done"`
}

type TaskUpdateRequest struct {
	Column      json.RawMessage          `json:"column"`
	Title       *string                  `json:"title"`
	Description json.RawMessage          `json:"description"`
	Order       json.RawMessage          `json:"order"`
	User        *string                  `json:"user"`
	Subtasks    *[]SubtaskReplaceRequest `json:"subtasks"`
}

type SubtaskUpdateRequest struct {
	Title *string         `json:"title"`
	Order json.RawMessage `json:"order"`
	Done  json.RawMessage `json:"done"`
}

type SubtaskResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
	Done  bool   `json:"done"`
}

type TaskResponse struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Order       int               `json:"order"`
	User        *string           `json:"user"`
	Subtasks    []SubtaskResponse `json:"subtasks"`
}

type TaskEnvelope struct {
	Msg  string       `json:"msg"`
	Task TaskResponse `json:"task"`
}

type SubtaskEnvelope struct {
	Msg     string          `json:"msg"`
	Subtask SubtaskResponse `json:"subtask"`
}

type UserStateResponse struct {
	Username        string `json:"username"`
	TeamID          int    `json:"teamId"`
	IsAdmin         bool   `json:"isAdmin"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type TeamStateResponse struct {
	ID         int    `json:"id"`
	InviteCode string `json:"inviteCode"`
}

type BoardSummaryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ColumnResponse struct {
	ID    int            `json:"id"`
	Order int            `json:"order"`
	Tasks []TaskResponse `json:"tasks"`
}

type ActiveBoardResponse struct {
	ID      int              `json:"id"`
	Name    string           `json:"name"`
	Columns []ColumnResponse `json:"columns"`
}

type MemberResponse struct {
	Username string `json:"username"`
	IsActive bool   `json:"isActive"`
	IsAdmin  bool   `json:"isAdmin"`
}

type ClientStateResponse struct {
	User        UserStateResponse      `json:"user"`
	Team        *TeamStateResponse     `json:"team,omitempty"`
	Boards      []BoardSummaryResponse `json:"boards"`
	ActiveBoard ActiveBoardResponse    `json:"activeBoard"`
	Members     []MemberResponse       `json:"members"`
}
