package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/middleware"
	"github.com/irankiai/cinema-admin/internal/service"
)

type RecommendHandler struct {
	app *app.App
}

func NewRecommendHandler(app *app.App) *RecommendHandler {
	return &RecommendHandler{
		app: app,
	}
}

func (h *RecommendHandler) HandleGetRecommendations(c *gin.Context) {
	principalID, ok := middleware.Principal(c)
	if !ok {
		respondError(c, h.app.Logger, "getRecommendations", service.ErrUnauthenticated)
		return
	}
	// The genre filter is optional; a missing body means no filtering.
	var req RecommendationsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalid(c, h.app.Logger, "getRecommendations", err)
			return
		}
	}

	recommendations, err := h.app.RecommendService.GetRecommendations(principalID, req.GenreIDs)
	if err != nil {
		respondError(c, h.app.Logger, "getRecommendations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"recommendations": recommendations,
	})
}

// RecommendationsRequest carries the optional genre allow-list; an empty or
// absent list means no filtering.
type RecommendationsRequest struct {
	GenreIDs []uint `json:"genreIds"`
}
