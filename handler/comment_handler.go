package handler

import (
	"go-lists-api/common"
	"go-lists-api/model"
	"net/http"
)

type CommentHandler struct {
	service CommentUseCase
}

func NewCommentHandler(service CommentUseCase) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddComment godoc
// @Summary      Comment on a list
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id      path  int                   true  "List ID"
// @Param        comment body  model.CommentRequest  true  "Comment"
// @Success      200  {array}   model.Comment
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/lists/comment/{id} [post]
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}
	listID, appErr := pathID(r, "id", "list")
	if appErr != nil {
		return appErr
	}

	var req model.CommentRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	comments, err := h.service.AddComment(r.Context(), identity, listID, req)
	if err != nil {
		return serviceError(err, "Could not add comment")
	}

	common.WriteJSON(w, http.StatusOK, comments)
	return nil
}

// DeleteComment godoc
// @Summary      Delete your comment
// @Description  Only the comment's author may delete it. Returns the remaining comments.
// @Tags         comments
// @Produce      json
// @Security     TokenAuth
// @Param        id         path  int  true  "List ID"
// @Param        commentId  path  int  true  "Comment ID"
// @Success      200  {array}   model.Comment
// @Failure      401  {object}  common.AppError "Invalid token or not the author"
// @Failure      404  {object}  common.AppError "List or comment not found"
// @Router       /api/lists/comment/{id}/{commentId} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}
	listID, appErr := pathID(r, "id", "list")
	if appErr != nil {
		return appErr
	}
	commentID, appErr := pathID(r, "commentId", "comment")
	if appErr != nil {
		return appErr
	}

	comments, err := h.service.DeleteComment(r.Context(), identity, listID, commentID)
	if err != nil {
		return serviceError(err, "Could not delete comment")
	}

	common.WriteJSON(w, http.StatusOK, comments)
	return nil
}
