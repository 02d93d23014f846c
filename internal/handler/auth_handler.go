package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/middleware"
	"github.com/irankiai/cinema-admin/internal/service"
)

type AuthHandler struct {
	app *app.App
}

func NewAuthHandler(app *app.App) *AuthHandler {
	return &AuthHandler{
		app: app,
	}
}

func (h *AuthHandler) HandleSignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "signUp", err)
		return
	}
	h.app.Logger.Info("signing up", zap.String("email", req.Email))

	id, token, err := h.app.UserService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, h.app.Logger, "signUp", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     id,
		"token":  token,
	})
}

func (h *AuthHandler) HandleSignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "signIn", err)
		return
	}

	token, err := h.app.UserService.SignIn(req.Email, req.Password)
	if err != nil {
		respondError(c, h.app.Logger, "signIn", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  token,
	})
}

// HandleGetProfile returns the signed-in principal's own profile, which is
// how a client learns its role. A principal whose profile does not exist
// yet gets not_found, not an error page.
func (h *AuthHandler) HandleGetProfile(c *gin.Context) {
	principalID, ok := middleware.Principal(c)
	if !ok {
		respondError(c, h.app.Logger, "getProfile", service.ErrUnauthenticated)
		return
	}
	profile, err := h.app.UserService.GetProfileByID(principalID)
	if err != nil {
		respondError(c, h.app.Logger, "getProfile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user":   profile,
	})
}

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
