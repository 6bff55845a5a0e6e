package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/mirror"
	"blockfix-backend/internal/model"
	"blockfix-backend/internal/repo"
)

// propertyResponse is a property optionally enriched with its contract
// summary from the mirror.
type propertyResponse struct {
	model.Property
	Contract *mirror.Summary `json:"contract,omitempty"`
}

// ListProperties handles GET /api/properties.
func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.Properties.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if properties == nil {
		properties = []model.Property{}
	}
	c.JSON(http.StatusOK, properties)
}

// CreateProperty handles POST /api/properties.
func (h *Handler) CreateProperty(c *gin.Context) {
	var input repo.CreatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.Properties.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// GetProperty handles GET /api/properties/:id. When the property carries a
// contract address the mirror summary is fetched on the fly; a mirror
// failure degrades to the bare property rather than failing the request.
func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.Properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := propertyResponse{Property: property}
	if property.ContractAddress != "" && h.Mirror != nil {
		summary, err := h.Mirror.FetchContractSummary(c.Request.Context(), property)
		if err != nil {
			log.Printf("mirror fetch failed for property %s: %v", property.ID, err)
		} else {
			response.Contract = &summary
		}
	}
	c.JSON(http.StatusOK, response)
}
