// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/analytics"
	"github.com/your-org/promptshop-backend/internal/interfaces/http/middleware"
)

// AnalyticsHandler handles dashboard and admin statistics endpoints
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *analytics.Service, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		config:           cfg,
	}
}

// GetDashboardStats handles GET /dashboard/stats
func (h *AnalyticsHandler) GetDashboardStats(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	stats := h.analyticsService.GetDashboardStats(userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard stats retrieved successfully",
		"data":    stats,
	})
}

// GetAdminStats handles GET /admin/stats
func (h *AnalyticsHandler) GetAdminStats(c *gin.Context) {
	stats := h.analyticsService.GetAdminStats()

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin stats retrieved successfully",
		"data":    stats,
	})
}
