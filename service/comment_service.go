package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-lists-api/logger"
	"go-lists-api/model"
	"go-lists-api/repository"

	"github.com/sirupsen/logrus"
)

type CommentService struct {
	db       *sql.DB
	lists    repository.IListRepository
	comments repository.ICommentRepository
	users    repository.IUserRepository
}

func NewCommentService(db *sql.DB, lists repository.IListRepository, comments repository.ICommentRepository, users repository.IUserRepository) *CommentService {
	return &CommentService{db: db, lists: lists, comments: comments, users: users}
}

// AddComment appends a comment by actor to a list and returns the list's
// comments, newest first.
func (s *CommentService) AddComment(ctx context.Context, actor model.Identity, listID int, req model.CommentRequest) ([]*model.Comment, error) {
	if _, err := s.lists.GetListByID(ctx, listID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		ListID: listID,
		UserID: actor.ID,
		Text:   req.Text,
		Name:   user.Name,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.comments.GetCommentsByListID(ctx, listID)
}

// DeleteComment removes a comment. Only the comment's author may delete it;
// the owner of the list has no say. The remaining comments are returned.
func (s *CommentService) DeleteComment(ctx context.Context, actor model.Identity, listID, commentID int) ([]*model.Comment, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"list_id":    listID,
		"comment_id": commentID,
		"actor_id":   actor.ID,
	})

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.lists.GetListForUpdate(ctx, tx, listID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrListNotFound
			}
			return err
		}

		comment, err := s.comments.GetCommentForUpdate(ctx, tx, listID, commentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCommentNotFound
			}
			return err
		}

		if err := RequireOwner(actor, comment.UserID); err != nil {
			log.Warn("Permission denied for comment deletion")
			return err
		}

		if err := s.comments.DeleteComment(ctx, tx, commentID); err != nil {
			return fmt.Errorf("could not delete comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Comment removed")
	return s.comments.GetCommentsByListID(ctx, listID)
}
