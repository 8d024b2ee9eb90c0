package model

import (
	"encoding/json"
	"time"
)

// List is a user-authored document. UserID is the owner reference and is
// never changed after creation.
type List struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user"`
	Name      string          `json:"name"`
	Title     string          `json:"title"`
	Tag       string          `json:"tag"`
	Content   json.RawMessage `json:"content" swaggertype:"object"`
	CreatedAt time.Time       `json:"date"`
	Comments  []*Comment      `json:"comments,omitempty"`
}

type Comment struct {
	ID        int       `json:"id"`
	ListID    int       `json:"list_id"`
	UserID    int       `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"date"`
}

type Bookmark struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user"`
	ListID    int       `json:"list"`
	CreatedAt time.Time `json:"date"`
}
