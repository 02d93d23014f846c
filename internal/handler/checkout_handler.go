package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/middleware"
	"github.com/irankiai/cinema-admin/internal/service"
)

type CheckoutHandler struct {
	app *app.App
}

func NewCheckoutHandler(app *app.App) *CheckoutHandler {
	return &CheckoutHandler{
		app: app,
	}
}

func (h *CheckoutHandler) HandleCreateCheckoutSession(c *gin.Context) {
	principalID, ok := middleware.Principal(c)
	if !ok {
		respondError(c, h.app.Logger, "createCheckoutSession", service.ErrUnauthenticated)
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createCheckoutSession", err)
		return
	}
	h.app.Logger.Info("creating checkout session",
		zap.Uint("principal_id", principalID), zap.Uint("screening_id", req.ScreeningID))

	sessionID, err := h.app.CheckoutService.CreateCheckoutSession(c.Request.Context(), principalID, req.ScreeningID)
	if err != nil {
		respondError(c, h.app.Logger, "createCheckoutSession", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"sessionId": sessionID,
	})
}

func (h *CheckoutHandler) HandleConfirmCheckout(c *gin.Context) {
	var req ConfirmCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "confirmCheckout", err)
		return
	}
	h.app.Logger.Info("confirming checkout",
		zap.Uint("screening_id", req.ScreeningID), zap.String("session_id", req.SessionID))

	if err := h.app.CheckoutService.ConfirmCheckout(c.Request.Context(), req.ScreeningID, req.SessionID); err != nil {
		respondError(c, h.app.Logger, "confirmCheckout", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type CheckoutRequest struct {
	ScreeningID uint `json:"screeningId" binding:"required"`
}

type ConfirmCheckoutRequest struct {
	ScreeningID uint   `json:"screeningId" binding:"required"`
	SessionID   string `json:"sessionId" binding:"required"`
}
