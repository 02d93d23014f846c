package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/model"
)

type MovieHandler struct {
	app *app.App
}

func NewMovieHandler(app *app.App) *MovieHandler {
	return &MovieHandler{
		app: app,
	}
}

func (h *MovieHandler) HandleGetMovies(c *gin.Context) {
	movies, err := h.app.MovieService.GetAllMovies()
	if err != nil {
		respondError(c, h.app.Logger, "getMovies", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"movies": movies,
	})
}

func (h *MovieHandler) HandleCreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createMovie", err)
		return
	}
	h.app.Logger.Info("creating movie",
		zap.String("title", req.Title), zap.String("director", req.Director))

	movie := &model.Movie{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseDate: req.ReleaseDate,
		GenreIDs:    req.Genres,
	}
	if err := h.app.MovieService.CreateMovie(movie); err != nil {
		respondError(c, h.app.Logger, "createMovie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     movie.ID,
	})
}

func (h *MovieHandler) HandleUpdateMovie(c *gin.Context) {
	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "updateMovie", err)
		return
	}
	h.app.Logger.Info("updating movie", zap.Uint("id", req.ID))

	movie := &model.Movie{
		ID:          req.ID,
		Title:       req.Title,
		Director:    req.Director,
		ReleaseDate: req.ReleaseDate,
	}
	if err := h.app.MovieService.UpdateMovie(movie); err != nil {
		respondError(c, h.app.Logger, "updateMovie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *MovieHandler) HandleDeleteMovie(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "deleteMovie", err)
		return
	}
	h.app.Logger.Info("deleting movie", zap.Uint("id", req.ID))

	if err := h.app.MovieService.DeleteMovie(req.ID); err != nil {
		respondError(c, h.app.Logger, "deleteMovie", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type CreateMovieRequest struct {
	Title       string `json:"title" binding:"required"`
	Director    string `json:"director"`
	ReleaseDate string `json:"releaseDate"`
	Genres      []uint `json:"genres"`
}

type UpdateMovieRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Director    string `json:"director"`
	ReleaseDate string `json:"releaseDate"`
}

// DeleteRequest is shared by every delete operation.
type DeleteRequest struct {
	ID uint `json:"id" binding:"required"`
}
