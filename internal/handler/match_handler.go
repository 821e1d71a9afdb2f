package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/usecase"
)

// InternalErrorMessage is the only detail leaked on an internal fault.
const InternalErrorMessage = "Our system encountered an issue. Please try again."

// LawyerMatchHandler serves the lawyer-matching endpoint.
type LawyerMatchHandler struct {
	matchUseCase usecase.LawyerMatchUseCase
}

func NewLawyerMatchHandler(matchUseCase usecase.LawyerMatchUseCase) *LawyerMatchHandler {
	return &LawyerMatchHandler{matchUseCase: matchUseCase}
}

// PostMatchLawyers handles POST /api/lawyers/match.
func (h *LawyerMatchHandler) PostMatchLawyers(c *gin.Context) {
	var req model.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if strings.TrimSpace(req.State) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "state is required",
		})
		return
	}

	response, err := h.matchUseCase.MatchLawyers(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": InternalErrorMessage,
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
