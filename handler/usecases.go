package handler

import (
	"context"
	"go-lists-api/model"
)

// The interfaces below are the parts of the service layer each handler
// depends on. The concrete *service types satisfy them.

type TokenVerifier interface {
	Verify(raw string) (model.Identity, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (string, error)
	CurrentUser(ctx context.Context, identity model.Identity) (*model.User, error)
}

type UserUseCase interface {
	GetUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
}

type ListUseCase interface {
	CreateList(ctx context.Context, actor model.Identity, req model.ListRequest) (*model.List, error)
	GetLists(ctx context.Context) ([]*model.List, error)
	GetList(ctx context.Context, id int) (*model.List, error)
	UpdateList(ctx context.Context, actor model.Identity, id int, req model.ListRequest) (*model.List, error)
	DeleteList(ctx context.Context, actor model.Identity, id int) error
}

type CommentUseCase interface {
	AddComment(ctx context.Context, actor model.Identity, listID int, req model.CommentRequest) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, actor model.Identity, listID, commentID int) ([]*model.Comment, error)
}

type BookmarkUseCase interface {
	GetBookmarks(ctx context.Context, userID int) ([]*model.Bookmark, error)
	GetBookmark(ctx context.Context, userID, bookmarkID int) (*model.Bookmark, error)
	AddBookmark(ctx context.Context, actor model.Identity, userID, listID int) ([]*model.Bookmark, error)
	DeleteBookmark(ctx context.Context, actor model.Identity, userID, bookmarkID int) ([]*model.Bookmark, error)
}
