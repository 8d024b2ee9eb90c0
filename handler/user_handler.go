package handler

import (
	"go-lists-api/common"
	"go-lists-api/model"
	"net/http"
)

type UserHandler struct {
	auth  AuthUseCase
	users UserUseCase
}

func NewUserHandler(auth AuthUseCase, users UserUseCase) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "New user"
// @Success      201  {object}  model.MessageResponse
// @Failure      400  {object}  common.AppError "Invalid payload or user already exists"
// @Failure      500  {object}  common.AppError
// @Router       /api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	if _, err := h.auth.Register(r.Context(), req); err != nil {
		return serviceError(err, "Server Error")
	}

	common.WriteJSON(w, http.StatusCreated, model.MessageResponse{Msg: "User registered"})
	return nil
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   model.User
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.users.GetUsers(r.Context())
	if err != nil {
		return serviceError(err, "Could not retrieve users")
	}

	common.WriteJSON(w, http.StatusOK, users)
	return nil
}

// GetUser godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      200  {object}  model.User
// @Failure      404  {object}  common.AppError
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id", "user")
	if appErr != nil {
		return appErr
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		return serviceError(err, "Could not retrieve user")
	}

	common.WriteJSON(w, http.StatusOK, user)
	return nil
}
