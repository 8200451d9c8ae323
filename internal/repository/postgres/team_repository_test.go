package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

func setupTeamRepo(t *testing.T) (*teamRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTeamRepository(db), mock
}

func TestTeamRepository_Create(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		now := time.Now()
		team := &domain.Team{InviteCode: "2ce7e405-e260-4b3f-8d9b-ab5b4e38a41e"}

		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now)
		mock.ExpectQuery("INSERT INTO teams").
			WithArgs(team.InviteCode, sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(ctx, team)

		require.NoError(t, err)
		assert.Equal(t, 1, team.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTeamRepository_GetByInviteCode(t *testing.T) {
	t.Run("команда найдена по коду", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id", "invite_code", "created_at"}).
			AddRow(3, "2ce7e405-e260-4b3f-8d9b-ab5b4e38a41e", time.Now())
		mock.ExpectQuery("SELECT id, invite_code::text, created_at").
			WithArgs("2ce7e405-e260-4b3f-8d9b-ab5b4e38a41e").
			WillReturnRows(rows)

		team, err := repo.GetByInviteCode(ctx, "2ce7e405-e260-4b3f-8d9b-ab5b4e38a41e")

		require.NoError(t, err)
		assert.Equal(t, 3, team.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("нет команды с таким кодом", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT id, invite_code::text, created_at").
			WithArgs("00000000-0000-0000-0000-000000000000").
			WillReturnRows(sqlmock.NewRows([]string{"id", "invite_code", "created_at"}))

		team, err := repo.GetByInviteCode(ctx, "00000000-0000-0000-0000-000000000000")

		assert.Nil(t, team)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestTeamRepository_LockByID(t *testing.T) {
	t.Run("строка команды блокируется", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT id FROM teams WHERE id = \\$1 FOR UPDATE").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		assert.NoError(t, repo.LockByID(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("команда не существует", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectQuery("SELECT id FROM teams WHERE id = \\$1 FOR UPDATE").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		assert.ErrorIs(t, repo.LockByID(ctx, 99), repository.ErrNotFound)
	})
}

func TestTeamRepository_Delete(t *testing.T) {
	t.Run("удаление существующей команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectExec("DELETE FROM teams").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("удаление несуществующей команды", func(t *testing.T) {
		repo, mock := setupTeamRepo(t)
		ctx := context.Background()

		mock.ExpectExec("DELETE FROM teams").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), repository.ErrNotFound)
	})
}
