// file: model/request.go

package model

import "encoding/json"

// RegisterRequest defines the payload for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ListRequest is used both to create and to update a list.
type ListRequest struct {
	Title   string          `json:"title" validate:"required,max=200"`
	Tag     string          `json:"tag" validate:"max=50"`
	Content json.RawMessage `json:"content" swaggertype:"object"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type BookmarkRequest struct {
	ListID int `json:"list" validate:"required,gt=0"`
}

// MessageResponse is the body of responses that carry only a message.
type MessageResponse struct {
	Msg string `json:"msg"`
}
