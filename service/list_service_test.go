// file: service/list_service_test.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-lists-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listServiceFixture struct {
	db       sqlmock.Sqlmock
	lists    *mockListRepo
	comments *mockCommentRepo
	users    *mockUserRepo
	cache    *mockCache
	svc      *ListService
}

func newListServiceFixture(t *testing.T, withCache bool) *listServiceFixture {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &listServiceFixture{
		db:       dbMock,
		lists:    new(mockListRepo),
		comments: new(mockCommentRepo),
		users:    new(mockUserRepo),
		cache:    new(mockCache),
	}
	var cache ICacheClient
	if withCache {
		cache = f.cache
	}
	f.svc = NewListService(db, f.lists, f.comments, f.users, cache, time.Minute)
	return f
}

func TestListService_DeleteList(t *testing.T) {
	ctx := context.Background()
	owner := model.Identity{ID: 1}
	intruder := model.Identity{ID: 2}

	t.Run("owner deletes exactly once", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		f.db.ExpectBegin()
		f.lists.On("GetListForUpdate", ctx, mock.Anything, 10).Return(&model.List{ID: 10, UserID: 1}, nil).Once()
		f.lists.On("DeleteList", ctx, mock.Anything, 10).Return(nil).Once()
		f.db.ExpectCommit()
		f.cache.On("Del", ctx, []string{listsCacheKey}).Return(nil).Once()

		err := f.svc.DeleteList(ctx, owner, 10)

		assert.NoError(t, err)
		f.lists.AssertNumberOfCalls(t, "DeleteList", 1)
		f.lists.AssertExpectations(t)
		f.cache.AssertExpectations(t)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("non-owner is denied and nothing is deleted", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		f.db.ExpectBegin()
		f.lists.On("GetListForUpdate", ctx, mock.Anything, 10).Return(&model.List{ID: 10, UserID: 1}, nil).Once()
		f.db.ExpectRollback()

		err := f.svc.DeleteList(ctx, intruder, 10)

		assert.ErrorIs(t, err, ErrNotAuthorized)
		f.lists.AssertNotCalled(t, "DeleteList", mock.Anything, mock.Anything, mock.Anything)
		f.cache.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("missing list is reported before ownership", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.db.ExpectBegin()
		f.lists.On("GetListForUpdate", ctx, mock.Anything, 11).Return(nil, sql.ErrNoRows).Once()
		f.db.ExpectRollback()

		err := f.svc.DeleteList(ctx, intruder, 11)

		assert.ErrorIs(t, err, ErrListNotFound)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("commit failure surfaces", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		f.db.ExpectBegin()
		f.lists.On("GetListForUpdate", ctx, mock.Anything, 10).Return(&model.List{ID: 10, UserID: 1}, nil).Once()
		f.lists.On("DeleteList", ctx, mock.Anything, 10).Return(nil).Once()
		f.db.ExpectCommit().WillReturnError(errors.New("commit failed"))

		err := f.svc.DeleteList(ctx, owner, 10)

		assert.Error(t, err)
		f.cache.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})
}

func TestListService_UpdateList(t *testing.T) {
	ctx := context.Background()
	req := model.ListRequest{Title: "new title", Tag: "misc", Content: json.RawMessage(`{"items":[]}`)}

	t.Run("owner updates", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.db.ExpectBegin()
		f.lists.On("GetListForUpdate", ctx, mock.Anything, 4).Return(&model.List{ID: 4, UserID: 9, Title: "old"}, nil).Once()
		f.lists.On("UpdateList", ctx, mock.Anything, mock.MatchedBy(func(l *model.List) bool {
			return l.ID == 4 && l.UserID == 9 && l.Title == "new title" && l.Tag == "misc"
		})).Return(nil).Once()
		f.db.ExpectCommit()

		list, err := f.svc.UpdateList(ctx, model.Identity{ID: 9}, 4, req)

		require.NoError(t, err)
		assert.Equal(t, "new title", list.Title)
		assert.Equal(t, 9, list.UserID, "owner must not change")
		f.lists.AssertExpectations(t)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.db.ExpectBegin()
		f.lists.On("GetListForUpdate", ctx, mock.Anything, 4).Return(&model.List{ID: 4, UserID: 9}, nil).Once()
		f.db.ExpectRollback()

		_, err := f.svc.UpdateList(ctx, model.Identity{ID: 8}, 4, req)

		assert.ErrorIs(t, err, ErrNotAuthorized)
		f.lists.AssertNotCalled(t, "UpdateList", mock.Anything, mock.Anything, mock.Anything)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})
}

func TestListService_CreateList(t *testing.T) {
	ctx := context.Background()

	t.Run("copies author name and owner", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		f.users.On("GetUserByID", ctx, 3).Return(&model.User{ID: 3, Name: "ann"}, nil).Once()
		f.lists.On("CreateList", ctx, mock.MatchedBy(func(l *model.List) bool {
			return l.UserID == 3 && l.Name == "ann" && l.Title == "todo"
		})).Return(nil).Once()
		f.cache.On("Del", ctx, []string{listsCacheKey}).Return(nil).Once()

		list, err := f.svc.CreateList(ctx, model.Identity{ID: 3}, model.ListRequest{Title: "todo"})

		require.NoError(t, err)
		assert.Equal(t, 3, list.UserID)
		f.lists.AssertExpectations(t)
		f.cache.AssertExpectations(t)
	})

	t.Run("unknown author", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.users.On("GetUserByID", ctx, 3).Return(nil, sql.ErrNoRows).Once()

		_, err := f.svc.CreateList(ctx, model.Identity{ID: 3}, model.ListRequest{Title: "todo"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		f.lists.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
	})
}

func TestListService_GetLists_Cache(t *testing.T) {
	ctx := context.Background()
	stored := []*model.List{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		data, _ := json.Marshal(stored)
		f.cache.On("Get", ctx, listsCacheKey).Return(string(data), nil).Once()

		lists, err := f.svc.GetLists(ctx)

		require.NoError(t, err)
		assert.Len(t, lists, 2)
		f.lists.AssertNotCalled(t, "GetAllLists", mock.Anything)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		f.cache.On("Get", ctx, listsCacheKey).Return("", redis.Nil).Once()
		f.lists.On("GetAllLists", ctx).Return(stored, nil).Once()
		f.cache.On("Set", ctx, listsCacheKey, mock.Anything, time.Minute).Return(nil).Once()

		lists, err := f.svc.GetLists(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, lists)
		f.cache.AssertExpectations(t)
		f.lists.AssertExpectations(t)
	})

	t.Run("write during load does not repopulate", func(t *testing.T) {
		f := newListServiceFixture(t, true)
		f.cache.On("Get", ctx, listsCacheKey).Return("", redis.Nil).Once()
		f.cache.On("Del", ctx, []string{listsCacheKey}).Return(nil).Once()
		f.lists.On("GetAllLists", ctx).Return(stored, nil).Once().Run(func(mock.Arguments) {
			// A concurrent write commits after the index was read.
			f.svc.invalidate(ctx)
		})

		lists, err := f.svc.GetLists(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, lists)
		f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.cache.AssertExpectations(t)
	})

	t.Run("no cache configured", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.lists.On("GetAllLists", ctx).Return(stored, nil).Once()

		lists, err := f.svc.GetLists(ctx)

		require.NoError(t, err)
		assert.Equal(t, stored, lists)
		f.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestListService_GetList(t *testing.T) {
	ctx := context.Background()

	t.Run("with comments", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.lists.On("GetListByID", ctx, 5).Return(&model.List{ID: 5}, nil).Once()
		f.comments.On("GetCommentsByListID", ctx, 5).Return([]*model.Comment{{ID: 1, ListID: 5}}, nil).Once()

		list, err := f.svc.GetList(ctx, 5)

		require.NoError(t, err)
		assert.Len(t, list.Comments, 1)
	})

	t.Run("not found", func(t *testing.T) {
		f := newListServiceFixture(t, false)
		f.lists.On("GetListByID", ctx, 6).Return(nil, sql.ErrNoRows).Once()

		_, err := f.svc.GetList(ctx, 6)

		assert.ErrorIs(t, err, ErrListNotFound)
	})
}
