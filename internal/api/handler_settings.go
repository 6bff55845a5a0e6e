package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/model"
)

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.Settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/settings. Only the sections present in
// the body are replaced; omitted sections keep their stored values.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var patch model.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Settings.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
