package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/model"
	"blockfix-backend/internal/notification"
	"blockfix-backend/internal/repo"
)

// ListContractors handles GET /api/contractors.
func (h *Handler) ListContractors(c *gin.Context) {
	contractors, err := h.Contractors.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if contractors == nil {
		contractors = []model.Contractor{}
	}
	c.JSON(http.StatusOK, contractors)
}

// CreateContractor handles POST /api/contractors.
func (h *Handler) CreateContractor(c *gin.Context) {
	var input repo.CreateContractorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.Contractors.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

// UpdateContractor handles PATCH /api/contractors/:id.
func (h *Handler) UpdateContractor(c *gin.Context) {
	var update repo.ContractorUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contractor, err := h.Contractors.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(notification.EventContractorUpdate,
		fmt.Sprintf("Contractor updated: %s", contractor.Name))
	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor handles DELETE /api/contractors/:id.
func (h *Handler) DeleteContractor(c *gin.Context) {
	if err := h.Contractors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
