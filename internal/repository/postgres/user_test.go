package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
		AddRow(u.ID, u.Login, u.PasswordHash, u.CreatedAt)
}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expected := &domain.User{ID: 1, Login: "budi", PasswordHash: "hash", CreatedAt: time.Now()}

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("budi", "hash").
			WillReturnRows(userRows(expected))

		user, err := repo.CreateUser(ctx, "budi", "hash")
		require.NoError(t, err)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, expected.Login, user.Login)
		assert.Equal(t, expected.PasswordHash, user.PasswordHash)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("budi", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, "budi", "hash")
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("budi", "hash").
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "budi", "hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Lookup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()
	stored := &domain.User{ID: 7, Login: "siti", PasswordHash: "hash", CreatedAt: time.Now()}

	t.Run("By login", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, password_hash, created_at FROM users WHERE login`).
			WithArgs("siti").
			WillReturnRows(userRows(stored))

		user, err := repo.GetUserByLogin(ctx, "siti")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By id", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, password_hash, created_at FROM users WHERE id`).
			WithArgs(int64(7)).
			WillReturnRows(userRows(stored))

		user, err := repo.GetUserByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "siti", user.Login)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM users WHERE login`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetUserByLogin(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetUserByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM users WHERE id`).
			WithArgs(int64(1)).
			WillReturnError(errors.New("database error"))

		user, err := repo.GetUserByID(ctx, 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
