package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/service"
)

// GeocodeHandler serves the reverse-geocoding endpoint.
type GeocodeHandler struct {
	geocodeService service.GeocodeService
}

func NewGeocodeHandler(geocodeService service.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocodeService: geocodeService}
}

// PostReverseGeocode handles POST /api/geocode/reverse.
func (h *GeocodeHandler) PostReverseGeocode(c *gin.Context) {
	var req model.ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "latitude and longitude are required",
			"details": err.Error(),
		})
		return
	}

	result, err := h.geocodeService.ReverseGeocode(*req.Latitude, *req.Longitude)
	if err != nil {
		if errors.Is(err, service.ErrOutsideCoverage) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": InternalErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
