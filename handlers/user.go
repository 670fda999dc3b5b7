package handlers

import (
	"errors"
	"net/http"

	"medicare/models"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user and token endpoints.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// RegisterRequest is the validated POST /users body.
type RegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// RegisterUser handles POST /users. A known email is answered as a login,
// not an error.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Register(&models.User{Email: req.Email, Name: req.Name})
	if err != nil {
		if errors.Is(err, user.ErrNotCompleted) {
			utils.SendFailure(c, "Something went wrong")
			return
		}
		h.Logger.Error("registration failed", zap.String("email", req.Email), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	if created {
		utils.SendMessage(c, "Successfully registered")
		return
	}
	utils.SendMessage(c, "Successfully logged in")
}

// GetUsers handles GET /users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("user list failed", zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	utils.SendData(c, users)
}

// IssueToken handles GET /jwt?email=. Tokens are only issued for emails
// with a registered account.
func (h *UserHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Service.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
			return
		}
		h.Logger.Error("token issuance failed", zap.String("email", email), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// CheckAdmin handles GET /users/admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		h.Logger.Error("admin check failed", zap.String("email", email), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, utils.APIResponse{Success: true, IsAdmin: &isAdmin})
}

// MakeAdmin handles PUT /users/admin/:id. The store's matched count drives
// the success flag.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	id := c.Param("id")

	matched, err := h.Service.PromoteToAdmin(id)
	if err != nil {
		h.Logger.Error("promotion failed", zap.String("id", id), zap.Error(err))
		utils.SendFailure(c, err.Error())
		return
	}
	if !matched {
		utils.SendFailure(c, "Something went wrong")
		return
	}
	utils.SendMessage(c, "Successfully made admin")
}
