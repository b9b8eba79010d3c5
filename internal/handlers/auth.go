// internal/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenbasket/catalog-api/internal/services"
	"github.com/greenbasket/catalog-api/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Account  string `json:"account" validate:"required,account"`
	Password string `json:"password" validate:"required,min=8"`
}

type signInRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /users/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.KeyErrorResponse(c)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": utils.MsgKeyError,
			"errors":  utils.GetValidationErrors(err),
		})
		return
	}

	if err := h.authService.SignUp(req.Account, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateAccount) {
			utils.MessageResponse(c, http.StatusConflict, "DUPLICATE_ACCOUNT")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.MessageResponse(c, http.StatusCreated, utils.MsgSuccess)
}

// POST /users/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.KeyErrorResponse(c)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.KeyErrorResponse(c)
		return
	}

	token, err := h.authService.SignIn(req.Account, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
