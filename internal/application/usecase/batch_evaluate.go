package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// batchConcurrency bounds the number of records evaluated in parallel.
const batchConcurrency = 8

// BatchEvaluateUseCase scores many applicants concurrently. One malformed
// record never aborts the batch: each record is evaluated independently and
// failures are reported per item.
type BatchEvaluateUseCase struct {
	evaluate *EvaluateApplicantUseCase
}

// NewBatchEvaluateUseCase wires dependencies.
func NewBatchEvaluateUseCase(evaluate *EvaluateApplicantUseCase) *BatchEvaluateUseCase {
	return &BatchEvaluateUseCase{evaluate: evaluate}
}

// Execute evaluates every record in the request and aggregates a summary.
// Result order matches request order; failed records appear only in the
// error list.
func (uc *BatchEvaluateUseCase) Execute(ctx context.Context, req dto.BatchScoreRequest) (dto.BatchScoreResponse, error) {
	type slot struct {
		resp dto.ScoreResponse
		err  error
	}
	slots := make([]slot, len(req.Applicants))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, profile := range req.Applicants {
		i, profile := i, profile
		g.Go(func() error {
			// Each goroutine writes its own slot, no shared state.
			resp, err := uc.evaluate.Execute(ctx, profile)
			slots[i] = slot{resp: resp, err: err}
			return nil
		})
	}
	// Workers never return errors; Wait only propagates context cancellation.
	if err := g.Wait(); err != nil {
		return dto.BatchScoreResponse{}, err
	}

	resp := dto.BatchScoreResponse{
		Results: make([]dto.ScoreResponse, 0, len(slots)),
	}
	pdSum := 0.0
	for i, s := range slots {
		if s.err != nil {
			resp.Errors = append(resp.Errors, dto.BatchItemError{
				Index:  i,
				UserID: req.Applicants[i].UserID,
				Error:  s.err.Error(),
			})
			continue
		}
		resp.Results = append(resp.Results, s.resp)
		pdSum += s.resp.PD

		switch s.resp.Outcome {
		case string(valueobject.OutcomeApprove):
			resp.Summary.Approved++
		case string(valueobject.OutcomeManualReview):
			resp.Summary.ManualReview++
		case string(valueobject.OutcomeDecline):
			resp.Summary.Declined++
		}
	}

	resp.Summary.Total = len(req.Applicants)
	resp.Summary.Failed = len(resp.Errors)
	if n := len(resp.Results); n > 0 {
		resp.Summary.AvgPD = pdSum / float64(n)
	}
	return resp, nil
}
