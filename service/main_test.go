package service

import (
	"context"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	"go-lists-api/logger"
	"go-lists-api/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// TestMain silences the logger for the package's tests.
func TestMain(m *testing.M) {
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*model.User), args.Error(1)
}

type mockListRepo struct{ mock.Mock }

func (m *mockListRepo) CreateList(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}
func (m *mockListRepo) GetListByID(ctx context.Context, id int) (*model.List, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}
func (m *mockListRepo) GetAllLists(ctx context.Context) ([]*model.List, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.List), args.Error(1)
}
func (m *mockListRepo) GetListForUpdate(ctx context.Context, tx *sql.Tx, id int) (*model.List, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}
func (m *mockListRepo) UpdateList(ctx context.Context, tx *sql.Tx, list *model.List) error {
	args := m.Called(ctx, tx, list)
	return args.Error(0)
}
func (m *mockListRepo) DeleteList(ctx context.Context, tx *sql.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *mockCommentRepo) GetCommentsByListID(ctx context.Context, listID int) ([]*model.Comment, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}
func (m *mockCommentRepo) GetCommentForUpdate(ctx context.Context, tx *sql.Tx, listID, commentID int) (*model.Comment, error) {
	args := m.Called(ctx, tx, listID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}
func (m *mockCommentRepo) DeleteComment(ctx context.Context, tx *sql.Tx, commentID int) error {
	args := m.Called(ctx, tx, commentID)
	return args.Error(0)
}

type mockBookmarkRepo struct{ mock.Mock }

func (m *mockBookmarkRepo) AddBookmark(ctx context.Context, userID, listID int) error {
	args := m.Called(ctx, userID, listID)
	return args.Error(0)
}
func (m *mockBookmarkRepo) GetBookmarksByUserID(ctx context.Context, userID int) ([]*model.Bookmark, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Bookmark), args.Error(1)
}
func (m *mockBookmarkRepo) GetBookmarkByID(ctx context.Context, id int) (*model.Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}
func (m *mockBookmarkRepo) DeleteBookmark(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}
func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult("OK", args.Error(0))
}
func (m *mockCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return redis.NewIntResult(1, args.Error(0))
}
