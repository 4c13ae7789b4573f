// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/catalog"
)

// CatalogHandler handles prompt catalog endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		config:         cfg,
	}
}

// ListPrompts handles GET /prompts
func (h *CatalogHandler) ListPrompts(c *gin.Context) {
	var req catalog.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response := h.catalogService.Query(&req)

	c.JSON(http.StatusOK, gin.H{
		"message": "Prompts retrieved successfully",
		"data":    response,
	})
}

// GetPrompt handles GET /prompts/:id
func (h *CatalogHandler) GetPrompt(c *gin.Context) {
	id := c.Param("id")

	prompt, err := h.catalogService.GetPrompt(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Prompt not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prompt retrieved successfully",
		"data":    prompt,
	})
}

// GetPromptBySlug handles GET /prompts/slug/:slug
func (h *CatalogHandler) GetPromptBySlug(c *gin.Context) {
	slug := c.Param("slug")

	prompt, err := h.catalogService.GetPromptBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Prompt not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Prompt retrieved successfully",
		"data":    prompt,
	})
}

// GetFeaturedPrompts handles GET /prompts/featured
func (h *CatalogHandler) GetFeaturedPrompts(c *gin.Context) {
	prompts := h.catalogService.GetFeaturedPrompts()

	c.JSON(http.StatusOK, gin.H{
		"message": "Featured prompts retrieved successfully",
		"data":    prompts,
	})
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.catalogService.GetCategories()

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetCategory handles GET /categories/:slug
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.catalogService.GetCategoryBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

// GetCategoryPrompts handles GET /categories/:slug/prompts
func (h *CatalogHandler) GetCategoryPrompts(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.catalogService.GetCategoryBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
		return
	}

	prompts := h.catalogService.GetPromptsByCategory(category.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Category prompts retrieved successfully",
		"data":    prompts,
	})
}

// ListBundles handles GET /bundles
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	bundles := h.catalogService.GetBundles()

	c.JSON(http.StatusOK, gin.H{
		"message": "Bundles retrieved successfully",
		"data":    bundles,
	})
}

// GetBundle handles GET /bundles/:id
func (h *CatalogHandler) GetBundle(c *gin.Context) {
	id := c.Param("id")

	bundle, err := h.catalogService.GetBundle(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Bundle not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bundle retrieved successfully",
		"data":    bundle,
	})
}
