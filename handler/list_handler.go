package handler

import (
	"go-lists-api/common"
	"go-lists-api/logger"
	"go-lists-api/model"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ListHandler struct {
	service ListUseCase
}

func NewListHandler(service ListUseCase) *ListHandler {
	return &ListHandler{service: service}
}

// CreateList godoc
// @Summary      Create a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        list body model.ListRequest true "List to create"
// @Success      201  {object}  model.List
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/lists [post]
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}

	var req model.ListRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": identity.ID,
		"title":   req.Title,
	}).Debug("Create list request received")

	list, err := h.service.CreateList(r.Context(), identity, req)
	if err != nil {
		return serviceError(err, "Could not create list")
	}

	common.WriteJSON(w, http.StatusCreated, list)
	return nil
}

// GetLists godoc
// @Summary      List all lists, newest first
// @Tags         lists
// @Produce      json
// @Success      200  {array}   model.List
// @Router       /api/lists [get]
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) *common.AppError {
	lists, err := h.service.GetLists(r.Context())
	if err != nil {
		return serviceError(err, "Could not retrieve lists")
	}

	common.WriteJSON(w, http.StatusOK, lists)
	return nil
}

// GetList godoc
// @Summary      Get a list with its comments
// @Tags         lists
// @Produce      json
// @Param        id   path  int  true  "List ID"
// @Success      200  {object}  model.List
// @Failure      404  {object}  common.AppError
// @Router       /api/lists/{id} [get]
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id", "list")
	if appErr != nil {
		return appErr
	}

	list, err := h.service.GetList(r.Context(), id)
	if err != nil {
		return serviceError(err, "Could not retrieve list")
	}

	common.WriteJSON(w, http.StatusOK, list)
	return nil
}

// UpdateList godoc
// @Summary      Update a list you own
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id   path  int  true  "List ID"
// @Param        list body model.ListRequest true "New values"
// @Success      200  {object}  model.List
// @Failure      401  {object}  common.AppError "Invalid token or not the owner"
// @Failure      404  {object}  common.AppError
// @Router       /api/lists/{id} [put]
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r, "id", "list")
	if appErr != nil {
		return appErr
	}

	var req model.ListRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	list, err := h.service.UpdateList(r.Context(), identity, id, req)
	if err != nil {
		return serviceError(err, "Could not update list")
	}

	common.WriteJSON(w, http.StatusOK, list)
	return nil
}

// DeleteList godoc
// @Summary      Delete a list you own
// @Tags         lists
// @Produce      json
// @Security     TokenAuth
// @Param        id   path  int  true  "List ID"
// @Success      200  {object}  model.MessageResponse
// @Failure      401  {object}  common.AppError "Invalid token or not the owner"
// @Failure      404  {object}  common.AppError
// @Router       /api/lists/{id} [delete]
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r, "id", "list")
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteList(r.Context(), identity, id); err != nil {
		return serviceError(err, "Could not delete list")
	}

	common.WriteJSON(w, http.StatusOK, model.MessageResponse{Msg: "List removed"})
	return nil
}
