package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/middleware"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/service"
)

type PersonalMovieHandler struct {
	app *app.App
}

func NewPersonalMovieHandler(app *app.App) *PersonalMovieHandler {
	return &PersonalMovieHandler{
		app: app,
	}
}

func (h *PersonalMovieHandler) HandleGetPersonalMovies(c *gin.Context) {
	entries, err := h.app.PersonalMovieService.GetAllPersonalMovies()
	if err != nil {
		respondError(c, h.app.Logger, "getPersonalMovies", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"personalMovies": entries,
	})
}

func (h *PersonalMovieHandler) HandleCreatePersonalMovie(c *gin.Context) {
	actor, ok := middleware.Profile(c)
	if !ok {
		respondError(c, h.app.Logger, "createPersonalMovie", service.ErrUnauthenticated)
		return
	}
	var req CreatePersonalMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createPersonalMovie", err)
		return
	}
	h.app.Logger.Info("creating personal movie",
		zap.Uint("user_id", req.UserID), zap.Uint("movie_id", req.MovieID),
		zap.String("state", req.State))

	entry := &model.PersonalMovie{
		UserID:  req.UserID,
		MovieID: req.MovieID,
		State:   model.WatchState(req.State),
		Rating:  req.Rating,
		Review:  req.Review,
	}
	if err := h.app.PersonalMovieService.CreatePersonalMovie(actor, entry); err != nil {
		respondError(c, h.app.Logger, "createPersonalMovie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     entry.ID,
	})
}

func (h *PersonalMovieHandler) HandleUpdatePersonalMovie(c *gin.Context) {
	actor, ok := middleware.Profile(c)
	if !ok {
		respondError(c, h.app.Logger, "updatePersonalMovie", service.ErrUnauthenticated)
		return
	}
	var req UpdatePersonalMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "updatePersonalMovie", err)
		return
	}
	h.app.Logger.Info("updating personal movie", zap.Uint("id", req.ID))

	entry := &model.PersonalMovie{
		ID:     req.ID,
		State:  model.WatchState(req.State),
		Rating: req.Rating,
		Review: req.Review,
	}
	if err := h.app.PersonalMovieService.UpdatePersonalMovie(actor, entry); err != nil {
		respondError(c, h.app.Logger, "updatePersonalMovie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *PersonalMovieHandler) HandleDeletePersonalMovie(c *gin.Context) {
	actor, ok := middleware.Profile(c)
	if !ok {
		respondError(c, h.app.Logger, "deletePersonalMovie", service.ErrUnauthenticated)
		return
	}
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "deletePersonalMovie", err)
		return
	}
	h.app.Logger.Info("deleting personal movie", zap.Uint("id", req.ID))

	if err := h.app.PersonalMovieService.DeletePersonalMovie(actor, req.ID); err != nil {
		respondError(c, h.app.Logger, "deletePersonalMovie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type CreatePersonalMovieRequest struct {
	State   string `json:"state" binding:"required"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
	MovieID uint   `json:"movieId" binding:"required"`
	UserID  uint   `json:"userId" binding:"required"`
}

type UpdatePersonalMovieRequest struct {
	ID     uint   `json:"id" binding:"required"`
	State  string `json:"state" binding:"required"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}
