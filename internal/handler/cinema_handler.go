package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/model"
)

type CinemaHandler struct {
	app *app.App
}

func NewCinemaHandler(app *app.App) *CinemaHandler {
	return &CinemaHandler{
		app: app,
	}
}

func (h *CinemaHandler) HandleGetCinemas(c *gin.Context) {
	cinemas, err := h.app.CinemaService.GetAllCinemas()
	if err != nil {
		respondError(c, h.app.Logger, "getCinemas", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"cinemas": cinemas,
	})
}

func (h *CinemaHandler) HandleCreateCinema(c *gin.Context) {
	var req CinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createCinema", err)
		return
	}
	h.app.Logger.Info("creating cinema", zap.String("name", req.Name))

	cinema := &model.Cinema{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := h.app.CinemaService.CreateCinema(cinema); err != nil {
		respondError(c, h.app.Logger, "createCinema", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     cinema.ID,
	})
}

func (h *CinemaHandler) HandleUpdateCinema(c *gin.Context) {
	var req UpdateCinemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "updateCinema", err)
		return
	}
	h.app.Logger.Info("updating cinema", zap.Uint("id", req.ID))

	cinema := &model.Cinema{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := h.app.CinemaService.UpdateCinema(cinema); err != nil {
		respondError(c, h.app.Logger, "updateCinema", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *CinemaHandler) HandleDeleteCinema(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "deleteCinema", err)
		return
	}
	h.app.Logger.Info("deleting cinema", zap.Uint("id", req.ID))

	if err := h.app.CinemaService.DeleteCinema(req.ID); err != nil {
		respondError(c, h.app.Logger, "deleteCinema", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type CinemaRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type UpdateCinemaRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email"`
}
