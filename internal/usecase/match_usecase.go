package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/service"
)

// LawyerMatchUseCase runs the tiered matcher and assembles the full response
// payload, including the legacy flattened views.
type LawyerMatchUseCase interface {
	MatchLawyers(ctx context.Context, req *model.MatchRequest) (*model.MatchResponse, error)
}

type lawyerMatchUseCaseImpl struct {
	matcher service.MatcherService
}

func NewLawyerMatchUseCase(matcher service.MatcherService) LawyerMatchUseCase {
	return &lawyerMatchUseCaseImpl{matcher: matcher}
}

func (u *lawyerMatchUseCaseImpl) MatchLawyers(ctx context.Context, req *model.MatchRequest) (*model.MatchResponse, error) {
	result, err := u.matcher.MatchLawyers(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lawyer matching failed: %w", err)
	}

	strategy := service.ExplainStrategy(result, req)

	// The tier4 slot carries the tier-5 fallback set when tiers 1-4 were all
	// empty; it keeps the tier4 key but takes the tier-5 name and description.
	tier4Key := model.TierKeyGeneral
	if result.FallbackUsed {
		tier4Key = model.TierKeyFallback
	}

	recommendations := result.AllMatches()
	for i := range recommendations {
		recommendations[i].Priority = recommendations[i].MatchTier
	}

	alternatives := make([]model.LawFirm, 0, len(result.Tier2)+len(result.Tier3)+len(result.Tier4))
	alternatives = append(alternatives, result.Tier2...)
	alternatives = append(alternatives, result.Tier3...)
	alternatives = append(alternatives, result.Tier4...)

	return &model.MatchResponse{
		MatchID:  uuid.NewString(),
		Criteria: req.Criteria(),
		MatchingTiers: model.MatchingTiers{
			Tier1: tierGroup(model.TierKeyExact, result.Tier1),
			Tier2: tierGroup(model.TierKeyNearby, result.Tier2),
			Tier3: tierGroup(model.TierKeyRegional, result.Tier3),
			Tier4: tierGroup(tier4Key, result.Tier4),
		},
		ExactMatchesFound: len(result.Tier1),
		AlternativesFound: len(alternatives),
		MatchingStrategy:  strategy.Label,
		StrategyDetails:   strategy.Details,
		MatchingTier:      strategy.Tier,
		Recommendations:   recommendations,
		ExactMatches:      emptyIfNil(result.Tier1),
		Alternatives:      alternatives,
		GuaranteedResults: len(recommendations) > 0,
	}, nil
}

func tierGroup(tierKey string, firms []model.LawFirm) model.TierGroup {
	return model.TierGroup{
		Name:        model.TierNameMap[tierKey],
		Description: model.TierDescriptionMap[tierKey],
		Count:       len(firms),
		Firms:       emptyIfNil(firms),
	}
}

func emptyIfNil(firms []model.LawFirm) []model.LawFirm {
	if firms == nil {
		return []model.LawFirm{}
	}
	return firms
}
