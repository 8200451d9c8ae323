//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/service"
)

func stringPtr(s string) *string { return &s }

func rawInt(v int) json.RawMessage { return json.RawMessage(strconv.Itoa(v)) }

func TestBoardLifecycle(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	result, creds := registerAdmin(t, app, "firstadmin")

	board, err := app.boardService.Create(ctx, creds, service.BoardCreateInput{
		TeamID: rawInt(result.TeamID),
		Name:   stringPtr("Вторая доска"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Вторая доска", board.Name)

	renamed, err := app.boardService.Update(ctx, creds, strconv.Itoa(board.ID), stringPtr("Переименованная"))
	require.NoError(t, err)
	assert.Equal(t, "Переименованная", renamed.Name)

	// Первую доску теперь можно удалить, останется одна
	state, err := app.stateService.Load(ctx, creds, "")
	require.NoError(t, err)
	require.Len(t, state.Boards, 2)
	firstBoardID := state.Boards[0].ID

	require.NoError(t, app.boardService.Delete(ctx, creds, strconv.Itoa(firstBoardID)))

	// Последняя оставшаяся доска защищена
	err = app.boardService.Delete(ctx, creds, strconv.Itoa(board.ID))
	require.Error(t, err)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "You cannot delete the last remaining board.", domainErr.Message)
}

func TestTaskLifecycle(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	_, creds := registerAdmin(t, app, "firstadmin")

	state, err := app.stateService.Load(ctx, creds, "")
	require.NoError(t, err)
	columns := state.ActiveBoard.Columns
	firstColumn := columns[0].Column
	secondColumn := columns[1].Column

	created, err := app.taskService.Create(ctx, creds, service.TaskCreateInput{
		Column:      rawInt(firstColumn.ID),
		Title:       stringPtr("Новая задача"),
		Description: stringPtr("Описание"),
		Subtasks: []service.SubtaskCreateInput{
			{Title: stringPtr("Первый шаг")},
			{Title: stringPtr("Второй шаг")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Task.Order)
	require.Len(t, created.Subtasks, 2)

	// Вторая задача в той же колонке сдвигает первую
	another, err := app.taskService.Create(ctx, creds, service.TaskCreateInput{
		Column: rawInt(firstColumn.ID),
		Title:  stringPtr("Срочная задача"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, another.Task.Order)

	state, err = app.stateService.Load(ctx, creds, "")
	require.NoError(t, err)
	tasks := state.ActiveBoard.Columns[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Срочная задача", tasks[0].Task.Title)
	assert.Equal(t, "Новая задача", tasks[1].Task.Title)

	// Перенос в соседнюю колонку через PATCH задачи
	moved, err := app.taskService.Update(ctx, creds, strconv.Itoa(created.Task.ID), service.TaskUpdateInput{
		Column: rawInt(secondColumn.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, secondColumn.ID, moved.Task.ColumnID)

	// Явный null стирает описание
	cleared, err := app.taskService.Update(ctx, creds, strconv.Itoa(created.Task.ID), service.TaskUpdateInput{
		Description: json.RawMessage("null"),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.Task.Description)

	// Подзадача отмечается выполненной
	subtask, err := app.taskService.UpdateSubtask(ctx, creds, strconv.Itoa(created.Subtasks[0].ID), service.SubtaskUpdateInput{
		Done: json.RawMessage("true"),
	})
	require.NoError(t, err)
	assert.True(t, subtask.Done)

	require.NoError(t, app.taskService.Delete(ctx, creds, strconv.Itoa(created.Task.ID)))

	_, err = app.taskService.Update(ctx, creds, strconv.Itoa(created.Task.ID), service.TaskUpdateInput{
		Title: stringPtr("Призрак"),
	})
	require.Error(t, err)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestColumnBatchMove(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	_, creds := registerAdmin(t, app, "firstadmin")

	state, err := app.stateService.Load(ctx, creds, "")
	require.NoError(t, err)
	firstColumn := state.ActiveBoard.Columns[0].Column
	targetColumn := state.ActiveBoard.Columns[2].Column

	first, err := app.taskService.Create(ctx, creds, service.TaskCreateInput{
		Column: rawInt(firstColumn.ID),
		Title:  stringPtr("Первая"),
	})
	require.NoError(t, err)
	second, err := app.taskService.Create(ctx, creds, service.TaskCreateInput{
		Column: rawInt(firstColumn.ID),
		Title:  stringPtr("Вторая"),
	})
	require.NoError(t, err)

	err = app.columnService.UpdateTasks(ctx, creds, strconv.Itoa(targetColumn.ID), []service.ColumnTaskInput{
		{ID: rawInt(first.Task.ID), Order: rawInt(0)},
		{ID: rawInt(second.Task.ID), Order: rawInt(1)},
	})
	require.NoError(t, err)

	state, err = app.stateService.Load(ctx, creds, "")
	require.NoError(t, err)
	assert.Empty(t, state.ActiveBoard.Columns[0].Tasks)
	moved := state.ActiveBoard.Columns[2].Tasks
	require.Len(t, moved, 2)
	assert.Equal(t, "Первая", moved[0].Task.Title)
	assert.Equal(t, "Вторая", moved[1].Task.Title)
}

func TestMembershipAndAssigneeFlow(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	adminResult, adminCreds := registerAdmin(t, app, "firstadmin")

	adminState, err := app.stateService.Load(ctx, adminCreds, "")
	require.NoError(t, err)
	boardID := adminState.ActiveBoard.Board.ID
	firstColumn := adminState.ActiveBoard.Columns[0].Column

	memberResult, err := app.authService.Register(ctx, service.RegisterInput{
		Username:             "newmember",
		Password:             "password123",
		PasswordConfirmation: "password123",
		InviteCode:           adminState.Team.InviteCode,
	})
	require.NoError(t, err)
	require.Equal(t, adminResult.TeamID, memberResult.TeamID)
	memberCreds := authCredentials(memberResult)

	// Админ назначает участника на доску
	err = app.userService.SetBoardMembership(ctx, adminCreds, "newmember", service.MembershipInput{
		BoardID:  rawInt(boardID),
		IsActive: json.RawMessage("true"),
	})
	require.NoError(t, err)

	memberState, err := app.stateService.Load(ctx, memberCreds, "")
	require.NoError(t, err)
	assert.Nil(t, memberState.Team)
	require.Len(t, memberState.Boards, 1)

	// Задача с исполнителем; исполнитель двигает её внутри своей колонки
	task, err := app.taskService.Create(ctx, adminCreds, service.TaskCreateInput{
		Column: rawInt(firstColumn.ID),
		Title:  stringPtr("Для участника"),
	})
	require.NoError(t, err)

	assigned, err := app.taskService.Update(ctx, adminCreds, strconv.Itoa(task.Task.ID), service.TaskUpdateInput{
		User: stringPtr("newmember"),
	})
	require.NoError(t, err)
	require.NotNil(t, assigned.Task.Assignee)
	assert.Equal(t, "newmember", *assigned.Task.Assignee)

	// Участник переименовывает свою задачу, но не может её удалить
	_, err = app.taskService.Update(ctx, memberCreds, strconv.Itoa(task.Task.ID), service.TaskUpdateInput{
		Title: stringPtr("Моя задача"),
	})
	require.NoError(t, err)

	err = app.taskService.Delete(ctx, memberCreds, strconv.Itoa(task.Task.ID))
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	// Снятие с доски лишает участника доступа
	err = app.userService.SetBoardMembership(ctx, adminCreds, "newmember", service.MembershipInput{
		BoardID:  rawInt(boardID),
		IsActive: json.RawMessage("false"),
	})
	require.NoError(t, err)

	_, err = app.stateService.Load(ctx, memberCreds, "")
	require.Error(t, err)

	// Удаление участника; админ неприкосновенен
	require.NoError(t, app.userService.Delete(ctx, adminCreds, "newmember"))

	err = app.userService.Delete(ctx, adminCreds, "firstadmin")
	require.Error(t, err)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Admins cannot be deleted from their teams.", domainErr.Message)
}
