package handler

import (
	"net/http"
	"strconv"

	"buraq/internal/model"
	"buraq/internal/repository"
	"buraq/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles listing CRUD and the approval workflow
type ListingHandler struct {
	repo    *repository.PostgresRepository
	catalog *service.Catalog
}

// NewListingHandler creates a new listing handler
func NewListingHandler(repo *repository.PostgresRepository, catalog *service.Catalog) *ListingHandler {
	return &ListingHandler{
		repo:    repo,
		catalog: catalog,
	}
}

// List handles GET /api/v1/listings?category=<id>&limit=<n>
func (h *ListingHandler) List(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing category parameter"})
		return
	}
	if h.catalog.GetByID(categoryID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + categoryID})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	listings, err := h.repo.ListListingsByCategory(c.Request.Context(), categoryID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list listings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// Get handles GET /api/v1/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	listing, err := h.repo.GetListingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listing: " + err.Error()})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Create handles POST /api/v1/listings - provider submissions enter the
// approval queue as pending.
func (h *ListingHandler) Create(c *gin.Context) {
	var req model.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if h.catalog.GetByID(req.CategoryID) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.CategoryID})
		return
	}

	listing, err := h.repo.CreateListing(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// AdminList handles GET /api/v1/admin/listings?status=<status>
func (h *ListingHandler) AdminList(c *gin.Context) {
	status := model.ListingStatus(c.Query("status"))
	switch status {
	case "", model.ListingStatusPending, model.ListingStatusApproved, model.ListingStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	listings, err := h.repo.ListAllListings(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list listings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// Approve handles POST /api/v1/admin/listings/:id/approve
func (h *ListingHandler) Approve(c *gin.Context) {
	h.updateStatus(c, model.ListingStatusApproved)
}

// Reject handles POST /api/v1/admin/listings/:id/reject
func (h *ListingHandler) Reject(c *gin.Context) {
	h.updateStatus(c, model.ListingStatusRejected)
}

func (h *ListingHandler) updateStatus(c *gin.Context, status model.ListingStatus) {
	listing, err := h.repo.UpdateListingStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing: " + err.Error()})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ToggleFeatured handles POST /api/v1/admin/listings/:id/feature
func (h *ListingHandler) ToggleFeatured(c *gin.Context) {
	listing, err := h.repo.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle featured flag: " + err.Error()})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	c.JSON(http.StatusOK, listing)
}
