package usecase

import (
	"context"
	"fmt"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/service"
)

// RecommendProductUseCase answers product-only queries: the eligibility
// ranking without running the scoring pipeline.
type RecommendProductUseCase struct {
	matcher *service.ProductMatcher
}

// NewRecommendProductUseCase wires dependencies.
func NewRecommendProductUseCase(matcher *service.ProductMatcher) *RecommendProductUseCase {
	return &RecommendProductUseCase{matcher: matcher}
}

// Execute validates the profile and returns the ranked recommendation.
func (uc *RecommendProductUseCase) Execute(_ context.Context, req dto.ApplicantProfile) (dto.ProductRecommendationResponse, error) {
	features, err := req.ToFeatures()
	if err != nil {
		return dto.ProductRecommendationResponse{}, fmt.Errorf("%w: %s", ErrInvalidApplicant, err)
	}

	top1, ranked := uc.matcher.Top3(features)
	info := top1.Info()

	ranking := make([]dto.ProductScoreResponse, 0, len(ranked))
	for _, s := range ranked {
		ranking = append(ranking, dto.ProductScoreResponse{
			Product:  s.Product.String(),
			Priority: s.Priority,
		})
	}

	return dto.ProductRecommendationResponse{
		UserID:      features.UserID,
		Product:     top1.String(),
		ProductName: info.Name,
		Description: info.Description,
		Ranking:     ranking,
	}, nil
}
