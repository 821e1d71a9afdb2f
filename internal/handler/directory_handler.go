package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ifind-attorney/internal/domain/repository"
)

// DirectoryHandler exposes health and directory introspection endpoints.
type DirectoryHandler struct {
	firmsRepo repository.FirmsRepository
}

func NewDirectoryHandler(firmsRepo repository.FirmsRepository) *DirectoryHandler {
	return &DirectoryHandler{firmsRepo: firmsRepo}
}

// GetHealth handles GET /api/health.
func (h *DirectoryHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ifind-attorney",
		"firms":   h.firmsRepo.TotalFirms(),
	})
}

// GetStates handles GET /api/states: the covered states with firm counts.
func (h *DirectoryHandler) GetStates(c *gin.Context) {
	states := h.firmsRepo.States()
	counts := make([]gin.H, 0, len(states))
	for _, state := range states {
		counts = append(counts, gin.H{
			"state": state,
			"firms": len(h.firmsRepo.FirmsForState(state)),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"states": counts,
		"total":  h.firmsRepo.TotalFirms(),
	})
}
