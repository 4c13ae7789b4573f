// internal/interfaces/http/handlers/newsletter.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/promptshop-backend/internal/config"
	"github.com/your-org/promptshop-backend/internal/domain/newsletter"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	newsletterService *newsletter.Service
	config            *config.Config
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterService *newsletter.Service, cfg *config.Config) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		config:            cfg,
	}
}

// Subscribe handles POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	subscriber, err := h.newsletterService.Subscribe(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Subscribed to newsletter successfully",
		"data":    subscriber,
	})
}

// Unsubscribe handles POST /newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.newsletterService.Unsubscribe(req.Email); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Unsubscribed from newsletter successfully",
	})
}
