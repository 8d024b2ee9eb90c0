package handler

import (
	"errors"
	"go-lists-api/common"
	"go-lists-api/service"
	"net/http"
	"strconv"
)

// AppHandler is a handler that reports failures as an *common.AppError.
type AppHandler func(http.ResponseWriter, *http.Request) *common.AppError

func ErrorHandlingMiddleware(next AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// serviceError maps a service-layer error to the response the client sees.
// Unknown errors become a 500 with fallback as the message.
func serviceError(err error, fallback string) *common.AppError {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		return common.NewAppError(http.StatusUnauthorized, "User not authorized", nil)
	case errors.Is(err, service.ErrInvalidToken):
		return common.NewAppError(http.StatusUnauthorized, MsgInvalidToken, nil)
	case errors.Is(err, service.ErrListNotFound):
		return common.NewAppError(http.StatusNotFound, "List not found", nil)
	case errors.Is(err, service.ErrCommentNotFound):
		return common.NewAppError(http.StatusNotFound, "Comment does not exist", nil)
	case errors.Is(err, service.ErrBookmarkNotFound):
		return common.NewAppError(http.StatusNotFound, "Bookmark does not exist", nil)
	case errors.Is(err, service.ErrUserNotFound):
		return common.NewAppError(http.StatusNotFound, "Profile does not exist", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusBadRequest, "Invalid credentials", nil)
	case errors.Is(err, service.ErrUserExists):
		return common.NewAppError(http.StatusBadRequest, "User already exists", nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}

// pathID parses a positive 32-bit integer path parameter.
func pathID(r *http.Request, name, label string) (int, *common.AppError) {
	// IDs are INTEGER columns; anything wider can never match a row.
	id, err := strconv.ParseInt(r.PathValue(name), 10, 32)
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid "+label+" ID", nil)
	}
	return int(id), nil
}
