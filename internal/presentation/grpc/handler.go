package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/usecase"
)

// ScoringHandler exposes the decision pipeline over gRPC.
type ScoringHandler struct {
	UnimplementedScoringServiceServer
	evaluate  *usecase.EvaluateApplicantUseCase
	recommend *usecase.RecommendProductUseCase
	batch     *usecase.BatchEvaluateUseCase
	logger    *slog.Logger
}

// NewScoringHandler creates a new handler with all use-case dependencies.
func NewScoringHandler(
	evaluate *usecase.EvaluateApplicantUseCase,
	recommend *usecase.RecommendProductUseCase,
	batch *usecase.BatchEvaluateUseCase,
	logger *slog.Logger,
) *ScoringHandler {
	return &ScoringHandler{
		evaluate:  evaluate,
		recommend: recommend,
		batch:     batch,
		logger:    logger,
	}
}

// Score evaluates a single applicant.
func (h *ScoringHandler) Score(ctx context.Context, req *ScoreRequest) (*ScoreResponse, error) {
	decision, err := h.evaluate.Execute(ctx, req.Applicant)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ScoreResponse{Decision: decision}, nil
}

// RecommendProduct returns the product ranking without scoring.
func (h *ScoringHandler) RecommendProduct(ctx context.Context, req *RecommendProductRequest) (*RecommendProductResponse, error) {
	rec, err := h.recommend.Execute(ctx, req.Applicant)
	if err != nil {
		return nil, toStatus(err)
	}
	return &RecommendProductResponse{Recommendation: rec}, nil
}

// BatchScore evaluates many applicants; per-item failures are reported in
// the response rather than failing the call.
func (h *ScoringHandler) BatchScore(ctx context.Context, req *BatchScoreRequest) (*BatchScoreResponse, error) {
	resp, err := h.batch.Execute(ctx, dto.BatchScoreRequest{Applicants: req.Applicants})
	if err != nil {
		return nil, toStatus(err)
	}
	return &BatchScoreResponse{Batch: resp}, nil
}

// toStatus maps validation failures onto InvalidArgument, everything else
// onto Internal.
func toStatus(err error) error {
	if errors.Is(err, usecase.ErrInvalidApplicant) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
