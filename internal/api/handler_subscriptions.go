package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/model"
)

type putSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	P256DH   string `json:"p256dh" binding:"required"`
	Auth     string `json:"auth" binding:"required"`
}

// GetSubscription handles GET /api/subscriptions?endpoint=...
func (h *Handler) GetSubscription(c *gin.Context) {
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "endpoint query parameter is required"})
		return
	}

	sub, err := h.Subscriptions.Get(c.Request.Context(), endpoint)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// PutSubscription handles the creation or replacement of a subscription.
func (h *Handler) PutSubscription(c *gin.Context) {
	var req putSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.Subscriptions.Upsert(c.Request.Context(), model.PushSubscription{
		Endpoint: req.Endpoint,
		P256DH:   req.P256DH,
		Auth:     req.Auth,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// DeleteSubscription handles DELETE /api/subscriptions?endpoint=...
func (h *Handler) DeleteSubscription(c *gin.Context) {
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "endpoint query parameter is required"})
		return
	}

	if err := h.Subscriptions.Delete(c.Request.Context(), endpoint); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
