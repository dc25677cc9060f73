package handler

import (
	"net/http"

	"buraq/internal/repository"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler serves logged unserved-request suggestions for admin
// review
type SuggestionHandler struct {
	repo *repository.PostgresRepository
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(repo *repository.PostgresRepository) *SuggestionHandler {
	return &SuggestionHandler{repo: repo}
}

// List handles GET /api/v1/admin/suggestions
func (h *SuggestionHandler) List(c *gin.Context) {
	suggestions, err := h.repo.ListSuggestions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suggestions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
