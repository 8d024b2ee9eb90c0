package handler

import (
	"go-lists-api/common"
	"go-lists-api/model"
	"net/http"
)

type BookmarkHandler struct {
	service BookmarkUseCase
}

func NewBookmarkHandler(service BookmarkUseCase) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// GetBookmarks godoc
// @Summary      List a user's bookmarks
// @Tags         bookmarks
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      200  {array}   model.Bookmark
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id}/bookmarks [get]
func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := pathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}

	bookmarks, err := h.service.GetBookmarks(r.Context(), userID)
	if err != nil {
		return serviceError(err, "Could not retrieve bookmarks")
	}

	common.WriteJSON(w, http.StatusOK, bookmarks)
	return nil
}

// GetBookmark godoc
// @Summary      Get one bookmark of a user
// @Tags         bookmarks
// @Produce      json
// @Param        id          path  int  true  "User ID"
// @Param        bookmarkId  path  int  true  "Bookmark ID"
// @Success      200  {object}  model.Bookmark
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id}/bookmarks/{bookmarkId} [get]
func (h *BookmarkHandler) GetBookmark(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := pathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}
	bookmarkID, appErr := pathID(r, "bookmarkId", "bookmark")
	if appErr != nil {
		return appErr
	}

	bookmark, err := h.service.GetBookmark(r.Context(), userID, bookmarkID)
	if err != nil {
		return serviceError(err, "Could not retrieve bookmark")
	}

	common.WriteJSON(w, http.StatusOK, bookmark)
	return nil
}

// AddBookmark godoc
// @Summary      Bookmark a list
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id        path  int                    true  "User ID"
// @Param        bookmark  body  model.BookmarkRequest  true  "List to bookmark"
// @Success      200  {array}   model.Bookmark
// @Failure      401  {object}  common.AppError "Invalid token or not your collection"
// @Failure      404  {object}  common.AppError "User or list not found"
// @Router       /api/users/{id}/bookmarks [post]
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}
	userID, appErr := pathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}

	var req model.BookmarkRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	bookmarks, err := h.service.AddBookmark(r.Context(), identity, userID, req.ListID)
	if err != nil {
		return serviceError(err, "Could not add bookmark")
	}

	common.WriteJSON(w, http.StatusOK, bookmarks)
	return nil
}

// DeleteBookmark godoc
// @Summary      Remove a bookmark
// @Description  Returns the remaining bookmarks.
// @Tags         bookmarks
// @Produce      json
// @Security     TokenAuth
// @Param        id          path  int  true  "User ID"
// @Param        bookmarkId  path  int  true  "Bookmark ID"
// @Success      200  {array}   model.Bookmark
// @Failure      401  {object}  common.AppError "Invalid token or not the owner"
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id}/bookmarks/{bookmarkId} [delete]
func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}
	userID, appErr := pathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}
	bookmarkID, appErr := pathID(r, "bookmarkId", "bookmark")
	if appErr != nil {
		return appErr
	}

	bookmarks, err := h.service.DeleteBookmark(r.Context(), identity, userID, bookmarkID)
	if err != nil {
		return serviceError(err, "Could not delete bookmark")
	}

	common.WriteJSON(w, http.StatusOK, bookmarks)
	return nil
}
