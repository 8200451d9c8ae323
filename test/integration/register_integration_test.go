//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/taskboard/internal/auth"
	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository/postgres"
	"github.com/bagdasarian/taskboard/internal/service"
)

type testApp struct {
	db            *sql.DB
	hasher        *auth.Hasher
	authService   service.AuthService
	boardService  service.BoardService
	columnService service.ColumnService
	taskService   service.TaskService
	userService   service.UserService
	stateService  service.StateService
}

func newTestApp(db *sql.DB) *testApp {
	teamRepo := postgres.NewTeamRepository(db)
	userRepo := postgres.NewUserRepository(db)
	boardRepo := postgres.NewBoardRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	hasher := auth.NewHasher(bcrypt.MinCost)
	authenticator := auth.NewAuthenticator(userRepo, hasher)

	return &testApp{
		db:            db,
		hasher:        hasher,
		authService:   service.NewAuthService(db, userRepo, teamRepo, hasher),
		boardService:  service.NewBoardService(db, boardRepo, teamRepo, authenticator),
		columnService: service.NewColumnService(db, boardRepo, userRepo, authenticator),
		taskService:   service.NewTaskService(db, taskRepo, boardRepo, userRepo, authenticator),
		userService:   service.NewUserService(db, userRepo, boardRepo, authenticator),
		stateService:  service.NewStateService(userRepo, teamRepo, boardRepo, taskRepo, authenticator),
	}
}

func authCredentials(result *service.AuthResult) auth.Credentials {
	return auth.Credentials{Username: result.Username, Token: result.Token}
}

func registerAdmin(t *testing.T, app *testApp, username string) (*service.AuthResult, auth.Credentials) {
	t.Helper()
	result, err := app.authService.Register(context.Background(), service.RegisterInput{
		Username:             username,
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	require.NoError(t, err)
	return result, auth.Credentials{Username: result.Username, Token: result.Token}
}

func TestRegisterProvisionsTeam(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	result, creds := registerAdmin(t, app, "firstadmin")

	assert.True(t, result.IsAdmin)
	assert.NotEmpty(t, result.Token)

	// Стартовая обвязка: одна доска, четыре колонки, туториальные задачи
	// во второй колонке и демонстрационный участник
	state, err := app.stateService.Load(ctx, creds, "")
	require.NoError(t, err)

	require.NotNil(t, state.Team, "админ должен видеть команду с инвайт-кодом")
	assert.NotEmpty(t, state.Team.InviteCode)
	require.Len(t, state.Boards, 1)
	assert.Equal(t, "New Board", state.Boards[0].Name)
	require.Len(t, state.ActiveBoard.Columns, 4)

	assert.Empty(t, state.ActiveBoard.Columns[0].Tasks)
	tutorialTasks := state.ActiveBoard.Columns[1].Tasks
	assert.NotEmpty(t, tutorialTasks, "туториальные задачи лежат в колонке с индексом 1")
	for _, task := range tutorialTasks {
		assert.NotNil(t, task.Task.Description)
	}

	require.Len(t, state.Members, 2)
	assert.Equal(t, "firstadmin", state.Members[0].Username)
	assert.True(t, state.Members[0].IsAdmin)
	assert.Contains(t, state.Members[1].Username, "demo-member-")
	assert.True(t, state.Members[1].IsActive, "демо-участник назначен на стартовую доску")
}

func TestRegisterWithInviteCode(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	_, adminCreds := registerAdmin(t, app, "firstadmin")

	adminState, err := app.stateService.Load(ctx, adminCreds, "")
	require.NoError(t, err)

	memberResult, err := app.authService.Register(ctx, service.RegisterInput{
		Username:             "newmember",
		Password:             "password123",
		PasswordConfirmation: "password123",
		InviteCode:           adminState.Team.InviteCode,
	})
	require.NoError(t, err)
	assert.False(t, memberResult.IsAdmin)
	assert.Equal(t, adminState.Team.ID, memberResult.TeamID)

	// Новый участник ещё не назначен ни на одну доску
	memberCreds := auth.Credentials{Username: memberResult.Username, Token: memberResult.Token}
	_, err = app.stateService.Load(ctx, memberCreds, "")
	require.Error(t, err)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Please ask your team admin to add you to a board and try again.", domainErr.Message)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	registerAdmin(t, app, "firstadmin")

	_, err := app.authService.Register(ctx, service.RegisterInput{
		Username:             "firstadmin",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	require.Error(t, err)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Username is already taken.", domainErr.Message)
}

func TestLoginAfterRegister(t *testing.T) {
	db := setupTestDB(t)
	app := newTestApp(db)
	ctx := context.Background()

	registerAdmin(t, app, "firstadmin")

	result, err := app.authService.Login(ctx, "firstadmin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "firstadmin", result.Username)
	assert.True(t, result.IsAdmin)

	_, err = app.authService.Login(ctx, "firstadmin", "wrong-password")
	require.Error(t, err)
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Invalid password.", domainErr.Message)
}
