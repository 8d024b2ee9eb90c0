// file: service/list_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"go-lists-api/logger"
	"go-lists-api/model"
	"go-lists-api/repository"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const listsCacheKey = "lists:all"

// ListService owns the list lifecycle. The index of all lists is cached
// cache-aside when a cache client is configured; any write invalidates it.
//
// A read that overlaps a write in this process does not repopulate the
// cache. Writes made by other instances can still leave a stale index in
// place for at most cacheTTL.
type ListService struct {
	db       *sql.DB
	lists    repository.IListRepository
	comments repository.ICommentRepository
	users    repository.IUserRepository
	cache    ICacheClient
	cacheTTL time.Duration
	// writes counts invalidations; GetLists skips Set if it moved.
	writes atomic.Uint64
}

// NewListService builds a ListService. cache may be nil.
func NewListService(
	db *sql.DB,
	lists repository.IListRepository,
	comments repository.ICommentRepository,
	users repository.IUserRepository,
	cache ICacheClient,
	cacheTTL time.Duration,
) *ListService {
	return &ListService{
		db:       db,
		lists:    lists,
		comments: comments,
		users:    users,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// CreateList stores a new list owned by actor. The author's name is copied
// onto the list.
func (s *ListService) CreateList(ctx context.Context, actor model.Identity, req model.ListRequest) (*model.List, error) {
	user, err := s.users.GetUserByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	list := &model.List{
		UserID:  actor.ID,
		Name:    user.Name,
		Title:   req.Title,
		Tag:     req.Tag,
		Content: req.Content,
	}
	if err := s.lists.CreateList(ctx, list); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	logger.Log.WithFields(logrus.Fields{"list_id": list.ID, "user_id": actor.ID}).Info("List created")
	return list, nil
}

// GetLists returns all lists, newest first.
func (s *ListService) GetLists(ctx context.Context) ([]*model.List, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listsCacheKey).Result()
		if err == nil {
			var lists []*model.List
			if err := json.Unmarshal([]byte(cached), &lists); err == nil {
				return lists, nil
			}
		}
	}

	seen := s.writes.Load()
	lists, err := s.lists.GetAllLists(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.writes.Load() == seen {
		if data, err := json.Marshal(lists); err == nil {
			if err := s.cache.Set(ctx, listsCacheKey, data, s.cacheTTL).Err(); err != nil {
				logger.Log.WithError(err).Warn("Failed to cache lists")
			}
		}
	}

	return lists, nil
}

// GetList returns one list together with its comments.
func (s *ListService) GetList(ctx context.Context, id int) (*model.List, error) {
	list, err := s.lists.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	comments, err := s.comments.GetCommentsByListID(ctx, id)
	if err != nil {
		return nil, err
	}
	list.Comments = comments
	return list, nil
}

// UpdateList replaces title, tag and content of a list owned by actor.
func (s *ListService) UpdateList(ctx context.Context, actor model.Identity, id int, req model.ListRequest) (*model.List, error) {
	var updated *model.List

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		list, err := s.loadOwnedForUpdate(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		list.Title = req.Title
		list.Tag = req.Tag
		list.Content = req.Content
		if err := s.lists.UpdateList(ctx, tx, list); err != nil {
			return fmt.Errorf("could not update list: %w", err)
		}
		updated = list
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

// DeleteList removes a list owned by actor, along with its comments and
// bookmarks.
func (s *ListService) DeleteList(ctx context.Context, actor model.Identity, id int) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.loadOwnedForUpdate(ctx, tx, actor, id); err != nil {
			return err
		}
		if err := s.lists.DeleteList(ctx, tx, id); err != nil {
			return fmt.Errorf("could not delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	logger.Log.WithFields(logrus.Fields{"list_id": id, "user_id": actor.ID}).Info("List removed")
	return nil
}

func (s *ListService) loadOwnedForUpdate(ctx context.Context, tx *sql.Tx, actor model.Identity, id int) (*model.List, error) {
	list, err := s.lists.GetListForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	if err := RequireOwner(actor, list.UserID); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"list_id":  id,
			"owner_id": list.UserID,
			"actor_id": actor.ID,
		}).Warn("Permission denied for list mutation")
		return nil, err
	}
	return list, nil
}

func (s *ListService) invalidate(ctx context.Context) {
	s.writes.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listsCacheKey).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate lists cache")
	}
}
