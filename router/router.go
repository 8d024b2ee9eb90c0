package router

import (
	_ "go-lists-api/docs"
	"go-lists-api/handler"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Lists     *handler.ListHandler
	Comments  *handler.CommentHandler
	Bookmarks *handler.BookmarkHandler
	Require   *handler.AuthMiddleware
}

type Options struct {
	CORSOrigins []string
	TokenHeader string
	// StaticDir, when set, is served at / as a single-page client.
	StaticDir string
}

func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()

	public := func(fn handler.AppHandler) http.Handler {
		return handler.ErrorHandlingMiddleware(fn)
	}
	private := func(fn handler.AppHandler) http.Handler {
		return h.Require.Require(handler.ErrorHandlingMiddleware(fn))
	}

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.Handle("POST /api/users", public(h.Users.Register))
	mux.Handle("GET /api/users", public(h.Users.ListUsers))
	mux.Handle("GET /api/users/{id}", public(h.Users.GetUser))
	mux.Handle("GET /api/users/{id}/bookmarks", public(h.Bookmarks.GetBookmarks))
	mux.Handle("POST /api/users/{id}/bookmarks", private(h.Bookmarks.AddBookmark))
	mux.Handle("GET /api/users/{id}/bookmarks/{bookmarkId}", public(h.Bookmarks.GetBookmark))
	mux.Handle("DELETE /api/users/{id}/bookmarks/{bookmarkId}", private(h.Bookmarks.DeleteBookmark))

	mux.Handle("GET /api/auth", private(h.Auth.Me))
	mux.Handle("POST /api/auth", public(h.Auth.Login))

	mux.Handle("POST /api/lists", private(h.Lists.CreateList))
	mux.Handle("GET /api/lists", public(h.Lists.GetLists))
	mux.Handle("GET /api/lists/{id}", public(h.Lists.GetList))
	mux.Handle("PUT /api/lists/{id}", private(h.Lists.UpdateList))
	mux.Handle("DELETE /api/lists/{id}", private(h.Lists.DeleteList))
	mux.Handle("POST /api/lists/comment/{id}", private(h.Comments.AddComment))
	mux.Handle("DELETE /api/lists/comment/{id}/{commentId}", private(h.Comments.DeleteComment))

	if opts.StaticDir != "" {
		mux.Handle("GET /", handler.StaticHandler(opts.StaticDir))
	}

	c := cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", opts.TokenHeader},
	})

	return handler.LoggingMiddleware(c.Handler(mux))
}
