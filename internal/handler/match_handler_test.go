package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/service"
	"ifind-attorney/internal/repository"
	"ifind-attorney/internal/usecase"
)

func newMatchRouter(matchUseCase usecase.LawyerMatchUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": InternalErrorMessage})
	}))
	router.POST("/api/lawyers/match", NewLawyerMatchHandler(matchUseCase).PostMatchLawyers)
	return router
}

func realMatchUseCase() usecase.LawyerMatchUseCase {
	matcher := service.NewTieredMatcherService(repository.NewStaticFirmsRepository())
	return usecase.NewLawyerMatchUseCase(matcher)
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestPostMatchLawyers_Success(t *testing.T) {
	router := newMatchRouter(realMatchUseCase())

	recorder := postJSON(router, "/api/lawyers/match", gin.H{
		"practiceAreas": []string{"Corporate Law"},
		"state":         "Lagos",
		"lga":           "Victoria Island",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.MatchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.NotEmpty(t, response.MatchID)
	assert.Equal(t, "Lagos", response.Criteria.State)
	assert.True(t, response.GuaranteedResults)
	assert.Equal(t, model.TierKeyExact, response.MatchingTier)
	assert.NotEmpty(t, response.StrategyDetails)

	require.NotEmpty(t, response.MatchingTiers.Tier1.Firms)
	assert.Equal(t, model.TierLabelExact, response.MatchingTiers.Tier1.Name)
	assert.Equal(t, len(response.MatchingTiers.Tier1.Firms), response.MatchingTiers.Tier1.Count)
	assert.Equal(t, "Adekunle & Partners Law Firm", response.MatchingTiers.Tier1.Firms[0].Name)

	// Legacy views mirror the tier buckets.
	assert.Equal(t, response.MatchingTiers.Tier1.Firms, response.ExactMatches)
	assert.Equal(t, len(response.ExactMatches), response.ExactMatchesFound)
	assert.Len(t, response.Recommendations, len(response.ExactMatches)+len(response.Alternatives))
	for _, firm := range response.Recommendations {
		assert.Equal(t, firm.MatchTier, firm.Priority)
	}
}

func TestPostMatchLawyers_UnknownStateStillGuaranteesResults(t *testing.T) {
	router := newMatchRouter(realMatchUseCase())

	recorder := postJSON(router, "/api/lawyers/match", gin.H{"state": "Atlantis"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.MatchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.GuaranteedResults)
	assert.Equal(t, model.TierKeyFallback, response.MatchingTier)
	assert.Equal(t, model.TierLabelFallback, response.MatchingTiers.Tier4.Name,
		"tier-5 fallback occupies the tier4 slot")
	assert.NotEmpty(t, response.MatchingTiers.Tier4.Firms)
}

func TestPostMatchLawyers_MissingState(t *testing.T) {
	router := newMatchRouter(realMatchUseCase())

	for name, body := range map[string]gin.H{
		"absent state": {"practiceAreas": []string{"Tax Law"}},
		"blank state":  {"state": "   "},
	} {
		t.Run(name, func(t *testing.T) {
			recorder := postJSON(router, "/api/lawyers/match", body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "state is required")
		})
	}
}

type failingMatchUseCase struct{ err error }

func (f *failingMatchUseCase) MatchLawyers(ctx context.Context, req *model.MatchRequest) (*model.MatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	panic("matcher blew up")
}

func TestPostMatchLawyers_InternalFaultsAreGeneric(t *testing.T) {
	t.Run("usecase error", func(t *testing.T) {
		router := newMatchRouter(&failingMatchUseCase{err: errors.New("directory corrupted")})
		recorder := postJSON(router, "/api/lawyers/match", gin.H{"state": "Lagos"})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), InternalErrorMessage)
		assert.NotContains(t, recorder.Body.String(), "corrupted", "no internal detail leaks")
	})

	t.Run("panic is recovered", func(t *testing.T) {
		router := newMatchRouter(&failingMatchUseCase{})
		recorder := postJSON(router, "/api/lawyers/match", gin.H{"state": "Lagos"})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), InternalErrorMessage)
	})
}
