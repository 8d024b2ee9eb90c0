package service

import (
	"context"
	"database/sql"
	"testing"

	"go-lists-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookmarkService() (*BookmarkService, *mockUserRepo, *mockListRepo, *mockBookmarkRepo) {
	users, lists, bookmarks := new(mockUserRepo), new(mockListRepo), new(mockBookmarkRepo)
	return NewBookmarkService(users, lists, bookmarks), users, lists, bookmarks
}

func TestBookmarkService_AddBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("owner adds", func(t *testing.T) {
		svc, users, lists, bookmarks := newBookmarkService()
		users.On("GetUserByID", ctx, 2).Return(&model.User{ID: 2}, nil).Once()
		lists.On("GetListByID", ctx, 8).Return(&model.List{ID: 8}, nil).Once()
		bookmarks.On("AddBookmark", ctx, 2, 8).Return(nil).Once()
		all := []*model.Bookmark{{ID: 1, UserID: 2, ListID: 8}}
		bookmarks.On("GetBookmarksByUserID", ctx, 2).Return(all, nil).Once()

		got, err := svc.AddBookmark(ctx, model.Identity{ID: 2}, 2, 8)

		require.NoError(t, err)
		assert.Equal(t, all, got)
		bookmarks.AssertExpectations(t)
	})

	t.Run("another user's collection", func(t *testing.T) {
		svc, users, _, bookmarks := newBookmarkService()
		users.On("GetUserByID", ctx, 2).Return(&model.User{ID: 2}, nil).Once()

		_, err := svc.AddBookmark(ctx, model.Identity{ID: 3}, 2, 8)

		assert.ErrorIs(t, err, ErrNotAuthorized)
		bookmarks.AssertNotCalled(t, "AddBookmark", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown list", func(t *testing.T) {
		svc, users, lists, _ := newBookmarkService()
		users.On("GetUserByID", ctx, 2).Return(&model.User{ID: 2}, nil).Once()
		lists.On("GetListByID", ctx, 8).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.AddBookmark(ctx, model.Identity{ID: 2}, 2, 8)

		assert.ErrorIs(t, err, ErrListNotFound)
	})
}

func TestBookmarkService_DeleteBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, _, _, bookmarks := newBookmarkService()
		bookmarks.On("GetBookmarkByID", ctx, 1).Return(&model.Bookmark{ID: 1, UserID: 2, ListID: 8}, nil).Once()
		bookmarks.On("DeleteBookmark", ctx, 1).Return(nil).Once()
		bookmarks.On("GetBookmarksByUserID", ctx, 2).Return([]*model.Bookmark{}, nil).Once()

		remaining, err := svc.DeleteBookmark(ctx, model.Identity{ID: 2}, 2, 1)

		require.NoError(t, err)
		assert.Empty(t, remaining)
		bookmarks.AssertNumberOfCalls(t, "DeleteBookmark", 1)
	})

	t.Run("intruder is denied", func(t *testing.T) {
		svc, _, _, bookmarks := newBookmarkService()
		bookmarks.On("GetBookmarkByID", ctx, 1).Return(&model.Bookmark{ID: 1, UserID: 2}, nil).Once()

		_, err := svc.DeleteBookmark(ctx, model.Identity{ID: 3}, 2, 1)

		assert.ErrorIs(t, err, ErrNotAuthorized)
		bookmarks.AssertNotCalled(t, "DeleteBookmark", mock.Anything, mock.Anything)
	})

	t.Run("bookmark of a different user is not found", func(t *testing.T) {
		svc, _, _, bookmarks := newBookmarkService()
		bookmarks.On("GetBookmarkByID", ctx, 1).Return(&model.Bookmark{ID: 1, UserID: 4}, nil).Once()

		_, err := svc.DeleteBookmark(ctx, model.Identity{ID: 2}, 2, 1)

		assert.ErrorIs(t, err, ErrBookmarkNotFound)
	})

	t.Run("missing bookmark", func(t *testing.T) {
		svc, _, _, bookmarks := newBookmarkService()
		bookmarks.On("GetBookmarkByID", ctx, 1).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.DeleteBookmark(ctx, model.Identity{ID: 2}, 2, 1)

		assert.ErrorIs(t, err, ErrBookmarkNotFound)
	})
}

func TestBookmarkService_GetBookmarks_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, users, _, _ := newBookmarkService()
	users.On("GetUserByID", ctx, 7).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.GetBookmarks(ctx, 7)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
