package handler

import (
	"errors"
	"net/http"

	"mediashelf/internal/httpapi/dto"
	"mediashelf/internal/suggest"

	"github.com/gin-gonic/gin"
)

// SuggestHandler fronts the text-generation suggestion flow. The upstream
// call can take a while, so it runs on the request context without the
// usual short timeout.
type SuggestHandler struct {
	svc *suggest.Service
}

func NewSuggestHandler(svc *suggest.Service) *SuggestHandler {
	return &SuggestHandler{svc: svc}
}

func (h *SuggestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggest", h.Suggest)
}

func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.Suggest(c.Request.Context(), req.Description)
	switch {
	case errors.Is(err, suggest.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestions are not configured on this server"})
	case errors.Is(err, suggest.ErrDescriptionTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, suggest.ErrModelWarmup):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "the model is warming up; retry shortly"})
	case errors.Is(err, suggest.ErrNoUsableSuggestions):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not understand the model output; try rephrasing"})
	case errors.Is(err, suggest.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "suggestion service error"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, result)
	}
}
