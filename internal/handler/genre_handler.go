package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/model"
)

type GenreHandler struct {
	app *app.App
}

func NewGenreHandler(app *app.App) *GenreHandler {
	return &GenreHandler{
		app: app,
	}
}

func (h *GenreHandler) HandleGetGenres(c *gin.Context) {
	genres, err := h.app.GenreService.GetAllGenres()
	if err != nil {
		respondError(c, h.app.Logger, "getGenres", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"genres": genres,
	})
}

func (h *GenreHandler) HandleCreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createGenre", err)
		return
	}
	h.app.Logger.Info("creating genre", zap.String("name", req.Name))

	genre := &model.Genre{Name: req.Name}
	if err := h.app.GenreService.CreateGenre(genre); err != nil {
		respondError(c, h.app.Logger, "createGenre", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     genre.ID,
	})
}

func (h *GenreHandler) HandleDeleteGenre(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "deleteGenre", err)
		return
	}
	h.app.Logger.Info("deleting genre", zap.Uint("id", req.ID))

	if err := h.app.GenreService.DeleteGenre(req.ID); err != nil {
		respondError(c, h.app.Logger, "deleteGenre", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}
