package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"go-lists-api/logger"
	"go-lists-api/model"

	"github.com/sirupsen/logrus"
)

// IListRepository defines the contract for list database operations.
// Methods taking a *sql.Tx are meant to run inside a caller-owned transaction.
type IListRepository interface {
	CreateList(ctx context.Context, list *model.List) error
	GetListByID(ctx context.Context, id int) (*model.List, error)
	GetAllLists(ctx context.Context) ([]*model.List, error)
	GetListForUpdate(ctx context.Context, tx *sql.Tx, id int) (*model.List, error)
	UpdateList(ctx context.Context, tx *sql.Tx, list *model.List) error
	DeleteList(ctx context.Context, tx *sql.Tx, id int) error
}

type ListRepository struct {
	DB *sql.DB
}

func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{DB: db}
}

const listColumns = `id, user_id, name, title, tag, content, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanList(row rowScanner) (*model.List, error) {
	var (
		list    model.List
		content []byte
	)
	if err := row.Scan(&list.ID, &list.UserID, &list.Name, &list.Title, &list.Tag, &content, &list.CreatedAt); err != nil {
		return nil, err
	}
	list.Content = json.RawMessage(content)
	return &list, nil
}

func contentOrEmpty(c json.RawMessage) []byte {
	if len(c) == 0 {
		return []byte("{}")
	}
	return c
}

func (r *ListRepository) CreateList(ctx context.Context, list *model.List) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": list.UserID,
		"title":   list.Title,
	})
	log.Debug("Executing query to create a new list")

	query := `INSERT INTO lists (user_id, name, title, tag, content) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, list.UserID, list.Name, list.Title, list.Tag, contentOrEmpty(list.Content)).
		Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create list query")
		return err
	}
	return nil
}

func (r *ListRepository) GetListByID(ctx context.Context, id int) (*model.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE id = $1`
	list, err := scanList(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("list_id", id).Error("Failed to execute get list query")
		}
		return nil, err
	}
	return list, nil
}

// GetAllLists returns every list, newest first.
func (r *ListRepository) GetAllLists(ctx context.Context) ([]*model.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all lists")
		return nil, err
	}
	defer rows.Close()

	lists := []*model.List{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan list row")
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

// GetListForUpdate loads a list and locks its row until tx ends.
func (r *ListRepository) GetListForUpdate(ctx context.Context, tx *sql.Tx, id int) (*model.List, error) {
	log := logger.Log.WithField("list_id", id)

	query := `SELECT ` + listColumns + ` FROM lists WHERE id = $1 FOR UPDATE`
	list, err := scanList(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("List not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get list for update query")
		}
		return nil, err
	}
	return list, nil
}

// UpdateList writes the mutable fields of list. user_id is never written.
func (r *ListRepository) UpdateList(ctx context.Context, tx *sql.Tx, list *model.List) error {
	log := logger.Log.WithField("list_id", list.ID)

	query := `UPDATE lists SET title = $1, tag = $2, content = $3 WHERE id = $4`
	if _, err := tx.ExecContext(ctx, query, list.Title, list.Tag, contentOrEmpty(list.Content), list.ID); err != nil {
		log.WithError(err).Error("Failed to execute update list query")
		return err
	}
	return nil
}

func (r *ListRepository) DeleteList(ctx context.Context, tx *sql.Tx, id int) error {
	log := logger.Log.WithField("list_id", id)

	if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = $1`, id); err != nil {
		log.WithError(err).Error("Failed to execute delete list query")
		return err
	}
	return nil
}
