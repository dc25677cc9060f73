package handler

import (
	"net/http"

	"buraq/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the category catalog
type CategoryHandler struct {
	catalog *service.Catalog
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalog *service.Catalog) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// List handles GET /api/v1/categories. When the database has not been seeded
// yet the bootstrap list is served so the selection UI still renders;
// matching decisions never use it.
func (h *CategoryHandler) List(c *gin.Context) {
	categories := h.catalog.ListAll()
	if len(categories) == 0 {
		categories = service.BootstrapCategories()
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
