package repository

import (
	"context"
	"database/sql"
	"go-lists-api/logger"
	"go-lists-api/model"

	"github.com/sirupsen/logrus"
)

// ICommentRepository defines the contract for comment database operations.
type ICommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentsByListID(ctx context.Context, listID int) ([]*model.Comment, error)
	GetCommentForUpdate(ctx context.Context, tx *sql.Tx, listID, commentID int) (*model.Comment, error)
	DeleteComment(ctx context.Context, tx *sql.Tx, commentID int) error
}

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	log := logger.Log.WithFields(logrus.Fields{
		"list_id": comment.ListID,
		"user_id": comment.UserID,
	})
	log.Debug("Executing query to create a new comment")

	query := `INSERT INTO comments (list_id, user_id, text, name) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, comment.ListID, comment.UserID, comment.Text, comment.Name).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create comment query")
		return err
	}
	return nil
}

// GetCommentsByListID returns the comments of a list, newest first.
func (r *CommentRepository) GetCommentsByListID(ctx context.Context, listID int) ([]*model.Comment, error) {
	log := logger.Log.WithField("list_id", listID)

	query := `
		SELECT id, list_id, user_id, text, name, created_at
		FROM comments
		WHERE list_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, listID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for comments by list ID")
		return nil, err
	}
	defer rows.Close()

	comments := []*model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ListID, &c.UserID, &c.Text, &c.Name, &c.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan comment row")
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// GetCommentForUpdate loads a comment belonging to listID and locks it.
func (r *CommentRepository) GetCommentForUpdate(ctx context.Context, tx *sql.Tx, listID, commentID int) (*model.Comment, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"list_id":    listID,
		"comment_id": commentID,
	})

	c := &model.Comment{}
	query := `SELECT id, list_id, user_id, text, name, created_at FROM comments WHERE id = $1 AND list_id = $2 FOR UPDATE`
	err := tx.QueryRowContext(ctx, query, commentID, listID).Scan(&c.ID, &c.ListID, &c.UserID, &c.Text, &c.Name, &c.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get comment for update query")
		}
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, tx *sql.Tx, commentID int) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID); err != nil {
		logger.Log.WithError(err).WithField("comment_id", commentID).Error("Failed to execute delete comment query")
		return err
	}
	return nil
}
