package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/basketwise/backend/internal/domain"
	"github.com/basketwise/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scrapeService *usecase.ScrapeService
}

// NewHandler creates a new HTTP handler
func NewHandler(scrapeService *usecase.ScrapeService) *Handler {
	return &Handler{
		scrapeService: scrapeService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "basketwise-backend",
		"version": "1.0.0",
	})
}

// SearchProducts scrapes every retailer for the q parameter and returns the comparison
func (h *Handler) SearchProducts(c *gin.Context) {
	term := c.Query("q")

	comparison, err := h.scrapeService.Compare(c.Request.Context(), term)
	if err != nil {
		var scrapeErr *domain.ScrapeError
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "query parameter q is required",
			})
		case errors.As(err, &scrapeErr):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":    "all retailers failed",
				"failures": comparison.Failures,
			})
		default:
			log.Printf("[Handler] Search failed for %q: %v", term, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to compare products",
			})
		}
		return
	}

	c.JSON(http.StatusOK, comparison)
}

// BestChoiceRequest carries one product list per store in retailer table order
type BestChoiceRequest struct {
	Stores [][]domain.Product `json:"stores" binding:"required"`
}

// BestChoice selects the store with the lowest average per-kilo price from posted lists
func (h *Handler) BestChoice(c *gin.Context) {
	var req BestChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	label, err := usecase.BestChoice(req.Stores)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoEligibleRetailer), errors.Is(err, domain.ErrUnknownRetailer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to select best choice",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bestChoice": label,
	})
}
