package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/model"
	"blockfix-backend/internal/notification"
	"blockfix-backend/internal/repo"
)

// ListMaintenance handles GET /api/maintenance. Optional query filters:
// status, type, propertyId.
func (h *Handler) ListMaintenance(c *gin.Context) {
	items, err := h.Maintenance.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	status := c.Query("status")
	itemType := c.Query("type")
	propertyID := c.Query("propertyId")

	filtered := make([]model.MaintenanceItem, 0, len(items))
	for _, item := range items {
		if status != "" && string(item.Status) != status {
			continue
		}
		if itemType != "" && string(item.Type) != itemType {
			continue
		}
		if propertyID != "" && item.PropertyID != propertyID {
			continue
		}
		filtered = append(filtered, item)
	}
	c.JSON(http.StatusOK, filtered)
}

// CreateMaintenance handles POST /api/maintenance. When a propertyId is
// supplied, the property's display name is denormalized onto the item.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	var input repo.CreateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.PropertyID != "" {
		property, err := h.Properties.Get(c.Request.Context(), input.PropertyID)
		if err != nil {
			respondError(c, err)
			return
		}
		input.Property = property.Name
	}

	item, err := h.Maintenance.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(notification.EventMaintenanceAlert,
		fmt.Sprintf("New %s priority maintenance: %s", item.Priority, item.Title))
	c.JSON(http.StatusCreated, item)
}

// UpdateMaintenance handles PATCH /api/maintenance/:id.
func (h *Handler) UpdateMaintenance(c *gin.Context) {
	var update repo.MaintenanceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Maintenance.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMaintenance handles DELETE /api/maintenance/:id. Deleting an
// unknown id succeeds silently.
func (h *Handler) DeleteMaintenance(c *gin.Context) {
	if err := h.Maintenance.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdvanceMaintenance handles POST /api/maintenance/:id/advance, moving the
// item one step forward in its lifecycle.
func (h *Handler) AdvanceMaintenance(c *gin.Context) {
	item, err := h.Lifecycle.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if item.Status == model.StatusCompleted {
		h.notify(notification.EventMaintenanceAlert,
			fmt.Sprintf("Maintenance completed: %s", item.Title))
	}
	c.JSON(http.StatusOK, item)
}

// ConvertMaintenance handles POST /api/maintenance/:id/convert, promoting
// a request into a work order.
func (h *Handler) ConvertMaintenance(c *gin.Context) {
	workOrder, err := h.Lifecycle.Convert(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workOrder)
}
