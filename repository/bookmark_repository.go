package repository

import (
	"context"
	"database/sql"
	"go-lists-api/logger"
	"go-lists-api/model"

	"github.com/sirupsen/logrus"
)

// IBookmarkRepository defines the contract for bookmark database operations.
type IBookmarkRepository interface {
	AddBookmark(ctx context.Context, userID, listID int) error
	GetBookmarksByUserID(ctx context.Context, userID int) ([]*model.Bookmark, error)
	GetBookmarkByID(ctx context.Context, id int) (*model.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int) error
}

type BookmarkRepository struct {
	DB *sql.DB
}

func NewBookmarkRepository(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

// AddBookmark is idempotent: bookmarking the same list twice keeps one row.
func (r *BookmarkRepository) AddBookmark(ctx context.Context, userID, listID int) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"list_id": listID,
	})
	log.Debug("Executing query to add a bookmark")

	query := `INSERT INTO bookmarks (user_id, list_id) VALUES ($1, $2) ON CONFLICT (user_id, list_id) DO NOTHING`
	if _, err := r.DB.ExecContext(ctx, query, userID, listID); err != nil {
		log.WithError(err).Error("Failed to execute add bookmark query")
		return err
	}
	return nil
}

// GetBookmarksByUserID returns a user's bookmarks, newest first.
func (r *BookmarkRepository) GetBookmarksByUserID(ctx context.Context, userID int) ([]*model.Bookmark, error) {
	log := logger.Log.WithField("user_id", userID)

	query := `SELECT id, user_id, list_id, created_at FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for bookmarks by user ID")
		return nil, err
	}
	defer rows.Close()

	bookmarks := []*model.Bookmark{}
	for rows.Next() {
		var b model.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.ListID, &b.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan bookmark row")
			return nil, err
		}
		bookmarks = append(bookmarks, &b)
	}
	return bookmarks, rows.Err()
}

func (r *BookmarkRepository) GetBookmarkByID(ctx context.Context, id int) (*model.Bookmark, error) {
	b := &model.Bookmark{}
	query := `SELECT id, user_id, list_id, created_at FROM bookmarks WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.UserID, &b.ListID, &b.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("bookmark_id", id).Error("Failed to execute get bookmark query")
		}
		return nil, err
	}
	return b, nil
}

func (r *BookmarkRepository) DeleteBookmark(ctx context.Context, id int) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1`, id); err != nil {
		logger.Log.WithError(err).WithField("bookmark_id", id).Error("Failed to execute delete bookmark query")
		return err
	}
	return nil
}
