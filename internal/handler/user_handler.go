package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/service/domain"
)

type UserHandler struct {
	app *app.App
}

func NewUserHandler(app *app.App) *UserHandler {
	return &UserHandler{
		app: app,
	}
}

func (h *UserHandler) HandleGetUsers(c *gin.Context) {
	users, err := h.app.UserService.GetAllUsers()
	if err != nil {
		respondError(c, h.app.Logger, "getUsers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"users":  users,
	})
}

func (h *UserHandler) HandleCreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createUser", err)
		return
	}
	h.app.Logger.Info("creating user",
		zap.String("username", req.Username), zap.String("type", req.Type))

	id, err := h.app.UserService.CreateUser(domain.UserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
		Type:        model.UserType(req.Type),
		CinemaID:    req.CinemaID,
	})
	if err != nil {
		respondError(c, h.app.Logger, "createUser", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     id,
	})
}

func (h *UserHandler) HandleUpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "updateUser", err)
		return
	}
	h.app.Logger.Info("updating user", zap.Uint("id", req.ID), zap.String("type", req.Type))

	err := h.app.UserService.UpdateUser(req.ID, domain.UserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
		Type:        model.UserType(req.Type),
		CinemaID:    req.CinemaID,
	})
	if err != nil {
		respondError(c, h.app.Logger, "updateUser", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *UserHandler) HandleDeleteUser(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "deleteUser", err)
		return
	}
	h.app.Logger.Info("deleting user", zap.Uint("id", req.ID))

	if err := h.app.UserService.DeleteUser(req.ID); err != nil {
		respondError(c, h.app.Logger, "deleteUser", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type UserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	CinemaID    *uint  `json:"cinemaId"`
}

type UpdateUserRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Username    string `json:"username"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required"`
	CinemaID    *uint  `json:"cinemaId"`
}
