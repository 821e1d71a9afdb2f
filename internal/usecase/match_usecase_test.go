package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/service"
	"ifind-attorney/internal/repository"
)

func newTestUseCase() LawyerMatchUseCase {
	matcher := service.NewTieredMatcherService(repository.NewStaticFirmsRepository())
	return NewLawyerMatchUseCase(matcher)
}

func TestMatchLawyersResponseAssembly(t *testing.T) {
	uc := newTestUseCase()

	response, err := uc.MatchLawyers(context.Background(), &model.MatchRequest{
		PracticeAreas: []string{"Corporate Law"},
		State:         "Lagos",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, response.MatchID)
	assert.Equal(t, model.TierLabelExact, response.MatchingTiers.Tier1.Name)
	assert.Equal(t, model.TierLabelGeneral, response.MatchingTiers.Tier4.Name)
	assert.Equal(t, response.MatchingTiers.Tier1.Firms, response.ExactMatches)
	assert.Equal(t, len(response.Alternatives), response.AlternativesFound)
	assert.True(t, response.GuaranteedResults)

	for _, firm := range response.Recommendations {
		assert.Equal(t, firm.MatchTier, firm.Priority, "recommendations mirror their tier label as priority")
	}
}

func TestMatchLawyersFallbackRenamesTier4Slot(t *testing.T) {
	uc := newTestUseCase()

	response, err := uc.MatchLawyers(context.Background(), &model.MatchRequest{State: "Atlantis"})
	require.NoError(t, err)

	assert.Equal(t, model.TierKeyFallback, response.MatchingTier)
	assert.Equal(t, model.TierLabelFallback, response.MatchingTiers.Tier4.Name)
	assert.Equal(t, model.TierDescriptionMap[model.TierKeyFallback], response.MatchingTiers.Tier4.Description)
	assert.NotEmpty(t, response.MatchingTiers.Tier4.Firms)
	assert.Equal(t, response.MatchingTiers.Tier4.Firms, response.Alternatives)
}

func TestMatchIDsAreUniquePerRequest(t *testing.T) {
	uc := newTestUseCase()
	req := &model.MatchRequest{State: "Lagos"}

	first, err := uc.MatchLawyers(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.MatchLawyers(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.MatchID, second.MatchID)
}
