package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"go-lists-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "avatar", "password", "created_at"}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email, avatar, password)")).
		WithArgs("ann", "ann@example.com", "//avatar", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	user := &model.User{Name: "ann", Email: "ann@example.com", Avatar: "//avatar", Password: "hash"}
	require.NoError(t, repo.CreateUser(context.Background(), user))

	assert.Equal(t, 7, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ann@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "ann", "ann@example.com", "", "hash", time.Now()))

		user, err := repo.GetUserByEmail(context.Background(), "ann@example.com")

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "hash", user.Password)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetAllUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "ann", "ann@example.com", "", "h1", time.Now()).
			AddRow(2, "bob", "bob@example.com", "", "h2", time.Now()))

	users, err := repo.GetAllUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
