package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/service"
)

// FeesHandler serves the statutory fee estimate endpoint.
type FeesHandler struct {
	feesService service.FeesService
}

func NewFeesHandler(feesService service.FeesService) *FeesHandler {
	return &FeesHandler{feesService: feesService}
}

// PostFeeEstimate handles POST /api/fees/estimate.
func (h *FeesHandler) PostFeeEstimate(c *gin.Context) {
	var req model.FeeEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "category and a positive amount are required",
			"details": err.Error(),
		})
		return
	}

	estimate, err := h.feesService.Estimate(req.Category, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFeeCategory) || errors.Is(err, service.ErrInvalidFeeAmount) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": InternalErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, estimate)
}
