package service

import (
	"context"
	"database/sql"
	"errors"
	"go-lists-api/logger"
	"go-lists-api/model"
	"go-lists-api/repository"

	"github.com/sirupsen/logrus"
)

// BookmarkService manages the bookmarks a user keeps on lists. A user's
// bookmark collection is owned by that user.
type BookmarkService struct {
	users     repository.IUserRepository
	lists     repository.IListRepository
	bookmarks repository.IBookmarkRepository
}

func NewBookmarkService(users repository.IUserRepository, lists repository.IListRepository, bookmarks repository.IBookmarkRepository) *BookmarkService {
	return &BookmarkService{users: users, lists: lists, bookmarks: bookmarks}
}

func (s *BookmarkService) ensureUser(ctx context.Context, userID int) error {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *BookmarkService) GetBookmarks(ctx context.Context, userID int) ([]*model.Bookmark, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.bookmarks.GetBookmarksByUserID(ctx, userID)
}

// GetBookmark returns a bookmark only if it belongs to userID.
func (s *BookmarkService) GetBookmark(ctx context.Context, userID, bookmarkID int) (*model.Bookmark, error) {
	b, err := s.bookmarks.GetBookmarkByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookmarkNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrBookmarkNotFound
	}
	return b, nil
}

// AddBookmark bookmarks listID in userID's collection on behalf of actor and
// returns the collection.
func (s *BookmarkService) AddBookmark(ctx context.Context, actor model.Identity, userID, listID int) ([]*model.Bookmark, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := RequireOwner(actor, userID); err != nil {
		logger.Log.WithFields(logrus.Fields{"user_id": userID, "actor_id": actor.ID}).Warn("Permission denied for bookmark creation")
		return nil, err
	}

	if _, err := s.lists.GetListByID(ctx, listID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	if err := s.bookmarks.AddBookmark(ctx, userID, listID); err != nil {
		return nil, err
	}
	return s.bookmarks.GetBookmarksByUserID(ctx, userID)
}

// DeleteBookmark removes one bookmark and returns the remaining collection.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, actor model.Identity, userID, bookmarkID int) ([]*model.Bookmark, error) {
	b, err := s.GetBookmark(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if err := RequireOwner(actor, b.UserID); err != nil {
		logger.Log.WithFields(logrus.Fields{"bookmark_id": bookmarkID, "actor_id": actor.ID}).Warn("Permission denied for bookmark deletion")
		return nil, err
	}

	if err := s.bookmarks.DeleteBookmark(ctx, bookmarkID); err != nil {
		return nil, err
	}
	return s.bookmarks.GetBookmarksByUserID(ctx, userID)
}
