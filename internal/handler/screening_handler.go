package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/middleware"
	"github.com/irankiai/cinema-admin/internal/model"
	"github.com/irankiai/cinema-admin/internal/service"
)

type ScreeningHandler struct {
	app *app.App
}

func NewScreeningHandler(app *app.App) *ScreeningHandler {
	return &ScreeningHandler{
		app: app,
	}
}

func (h *ScreeningHandler) HandleGetMovieScreenings(c *gin.Context) {
	screenings, err := h.app.ScreeningService.GetAllScreenings()
	if err != nil {
		respondError(c, h.app.Logger, "getMovieScreenings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"movieScreenings": screenings,
	})
}

func (h *ScreeningHandler) HandleCreateMovieScreening(c *gin.Context) {
	actor, ok := middleware.Profile(c)
	if !ok {
		respondError(c, h.app.Logger, "createMovieScreening", service.ErrUnauthenticated)
		return
	}
	var req ScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "createMovieScreening", err)
		return
	}
	h.app.Logger.Info("creating movie screening",
		zap.Uint("movie_id", req.MovieID), zap.Uint("cinema_id", req.CinemaID),
		zap.String("hall", req.Hall))

	screening := &model.Screening{
		MovieID:     req.MovieID,
		CinemaID:    req.CinemaID,
		Date:        req.Date,
		Hall:        req.Hall,
		TicketCount: req.TicketCount,
		PriceCents:  req.PriceCents,
	}
	if err := h.app.ScreeningService.CreateScreening(actor, screening); err != nil {
		respondError(c, h.app.Logger, "createMovieScreening", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"id":     screening.ID,
	})
}

func (h *ScreeningHandler) HandleUpdateMovieScreening(c *gin.Context) {
	actor, ok := middleware.Profile(c)
	if !ok {
		respondError(c, h.app.Logger, "updateMovieScreening", service.ErrUnauthenticated)
		return
	}
	var req UpdateScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "updateMovieScreening", err)
		return
	}
	h.app.Logger.Info("updating movie screening", zap.Uint("id", req.ID))

	screening := &model.Screening{
		ID:          req.ID,
		MovieID:     req.MovieID,
		CinemaID:    req.CinemaID,
		Date:        req.Date,
		Hall:        req.Hall,
		TicketCount: req.TicketCount,
		PriceCents:  req.PriceCents,
	}
	if err := h.app.ScreeningService.UpdateScreening(actor, screening); err != nil {
		respondError(c, h.app.Logger, "updateMovieScreening", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *ScreeningHandler) HandleDeleteMovieScreening(c *gin.Context) {
	actor, ok := middleware.Profile(c)
	if !ok {
		respondError(c, h.app.Logger, "deleteMovieScreening", service.ErrUnauthenticated)
		return
	}
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, h.app.Logger, "deleteMovieScreening", err)
		return
	}
	h.app.Logger.Info("deleting movie screening", zap.Uint("id", req.ID))

	if err := h.app.ScreeningService.DeleteScreening(actor, req.ID); err != nil {
		respondError(c, h.app.Logger, "deleteMovieScreening", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

type ScreeningRequest struct {
	MovieID     uint      `json:"movieId" binding:"required"`
	CinemaID    uint      `json:"cinemaId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Hall        string    `json:"hall"`
	TicketCount int       `json:"ticketCount"`
	PriceCents  int       `json:"priceCents"`
}

type UpdateScreeningRequest struct {
	ID          uint      `json:"id" binding:"required"`
	MovieID     uint      `json:"movieId" binding:"required"`
	CinemaID    uint      `json:"cinemaId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Hall        string    `json:"hall"`
	TicketCount int       `json:"ticketCount"`
	PriceCents  int       `json:"priceCents"`
}
