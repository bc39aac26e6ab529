package tests

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/usecase"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/service"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/infrastructure/adapter"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/reporting"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/synthetic"
)

func newEvaluate() *usecase.EvaluateApplicantUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewEvaluateApplicantUseCase(
		service.NewRiskModel(),
		service.NewCalibrator(),
		service.NewProductMatcher(),
		service.NewPolicyEngine(),
		service.NewExplainer(),
		adapter.NewNoopEventPublisher(logger),
		"tenant-agri-demo",
	)
}

// Generate, batch-score, and render a population end to end.
func TestSyntheticPopulationThroughFullPipeline(t *testing.T) {
	rows := synthetic.NewGenerator(synthetic.DefaultSeed).Generate(200)

	evaluate := newEvaluate()
	batch := usecase.NewBatchEvaluateUseCase(evaluate)

	req := dto.BatchScoreRequest{}
	for _, r := range rows {
		f := r.Features
		req.Applicants = append(req.Applicants, dto.ApplicantProfile{
			UserID:              f.UserID,
			Region:              f.Region.String(),
			FarmType:            f.FarmType.String(),
			CropType:            f.CropType.String(),
			FarmSizeHa:          f.FarmSizeHa,
			YearsExperience:     f.YearsExperience,
			MonthlyIncomeEst:    f.MonthlyIncomeEst,
			RecentCashInflows:   f.RecentCashInflows,
			AvgOrderValue:       f.AvgOrderValue,
			DeviceTrustScore:    f.DeviceTrustScore,
			IdentityConsistency: f.IdentityConsistency,
			PriorDefaults:       f.PriorDefaults,
		})
	}

	resp, err := batch.Execute(context.Background(), req)
	require.NoError(t, err)

	// Generated rows always pass boundary validation.
	assert.Empty(t, resp.Errors)
	require.Len(t, resp.Results, 200)

	assert.Equal(t, 200, resp.Summary.Approved+resp.Summary.ManualReview+resp.Summary.Declined)
	assert.Greater(t, resp.Summary.AvgPD, 0.0)
	assert.Less(t, resp.Summary.AvgPD, 1.0)

	// Most of the generated population should be creditworthy.
	assert.Greater(t, resp.Summary.Approved+resp.Summary.ManualReview, resp.Summary.Declined)
}

// The dashboard renders a decision population without losing rows.
func TestScoredPopulationRendersDashboard(t *testing.T) {
	rows := synthetic.NewGenerator(synthetic.DefaultSeed).Generate(100)

	evaluate := newEvaluate()
	scored := make([]reporting.ScoredRow, 0, len(rows))
	for _, r := range rows {
		decision := evaluate.Decide(r.Features)
		scored = append(scored, reporting.FromDecision(r.Features, decision))
	}

	dash := reporting.NewDashboard()
	svg := dash.RenderSVG(scored)
	assert.Equal(t, 100, strings.Count(svg, "<circle"))

	summary := dash.Summary(scored)
	assert.Contains(t, summary, "Portfolio summary (n=100)")
	assert.Contains(t, summary, "Approval rate")
}
