package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/pkg/testutil"
)

func TestBatchEvaluateScoresAllRecords(t *testing.T) {
	uc := NewBatchEvaluateUseCase(newEvaluateUseCase(&mockPublisher{}))

	req := dto.BatchScoreRequest{}
	for i := 0; i < 20; i++ {
		p := lowRiskProfile()
		p.UserID = fmt.Sprintf("SYNTHETIC_%04d", i)
		req.Applicants = append(req.Applicants, p)
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, resp.Results, 20)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 20, resp.Summary.Total)
	assert.Equal(t, 20, resp.Summary.Approved)
	assert.Equal(t, 0, resp.Summary.Failed)
	assert.Greater(t, resp.Summary.AvgPD, 0.0)

	// Result order matches request order.
	for i, r := range resp.Results {
		assert.Equal(t, fmt.Sprintf("SYNTHETIC_%04d", i), r.UserID)
	}
}

func TestBatchEvaluateReportsPerItemFailures(t *testing.T) {
	uc := NewBatchEvaluateUseCase(newEvaluateUseCase(&mockPublisher{}))

	good := lowRiskProfile()
	bad := lowRiskProfile()
	bad.UserID = "SYNTHETIC_BAD"
	bad.MonthlyIncomeEst = 0
	declined := highRiskProfile()

	resp, err := uc.Execute(context.Background(), dto.BatchScoreRequest{
		Applicants: []dto.ApplicantProfile{good, bad, declined},
	})
	testutil.RequireNoError(t, err)

	assert.Len(t, resp.Results, 2)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 1, resp.Errors[0].Index)
	assert.Equal(t, "SYNTHETIC_BAD", resp.Errors[0].UserID)
	assert.Contains(t, resp.Errors[0].Error, "income")

	assert.Equal(t, 3, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Approved)
	assert.Equal(t, 1, resp.Summary.Declined)
	assert.Equal(t, 1, resp.Summary.Failed)
}

func TestBatchEvaluateEmptyRequest(t *testing.T) {
	uc := NewBatchEvaluateUseCase(newEvaluateUseCase(&mockPublisher{}))

	resp, err := uc.Execute(context.Background(), dto.BatchScoreRequest{})
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 0, resp.Summary.Total)
	assert.Equal(t, 0.0, resp.Summary.AvgPD)
}
