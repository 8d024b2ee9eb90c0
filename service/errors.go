package service

import "errors"

var (
	ErrInvalidToken       = errors.New("token is not valid")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrUserNotFound       = errors.New("profile does not exist")
	ErrListNotFound       = errors.New("list not found")
	ErrCommentNotFound    = errors.New("comment does not exist")
	ErrBookmarkNotFound   = errors.New("bookmark does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)
