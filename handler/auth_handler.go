package handler

import (
	"go-lists-api/common"
	"go-lists-api/model"
	"net/http"
)

type AuthHandler struct {
	service AuthUseCase
}

func NewAuthHandler(service AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Authenticate and get a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Email and password"
// @Success      200  {object}  model.TokenResponse
// @Failure      400  {object}  common.AppError "Invalid payload or invalid credentials"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	token, err := h.service.Login(r.Context(), req)
	if err != nil {
		return serviceError(err, "Server Error")
	}

	common.WriteJSON(w, http.StatusOK, model.TokenResponse{Token: token})
	return nil
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  model.User
// @Failure      400  {object}  common.AppError "No token"
// @Failure      401  {object}  common.AppError "Invalid token"
// @Failure      404  {object}  common.AppError
// @Router       /api/auth [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	identity, appErr := requireIdentity(r)
	if appErr != nil {
		return appErr
	}

	user, err := h.service.CurrentUser(r.Context(), identity)
	if err != nil {
		return serviceError(err, "Server Error")
	}

	common.WriteJSON(w, http.StatusOK, user)
	return nil
}
