package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/event"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/port"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/service"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
	"github.com/Ismat-Samadov/BNPL-scoring/pkg/events"
)

// ErrInvalidApplicant marks boundary validation failures so transport
// layers can map them onto 422 / InvalidArgument.
var ErrInvalidApplicant = errors.New("invalid applicant profile")

// EvaluateApplicantUseCase orchestrates one applicant through the full
// decision pipeline: scoring, calibration, product matching, policy terms,
// and explanation.
type EvaluateApplicantUseCase struct {
	riskModel  *service.RiskModel
	calibrator *service.Calibrator
	matcher    *service.ProductMatcher
	policy     *service.PolicyEngine
	explainer  *service.Explainer
	publisher  port.EventPublisher
	tenantID   string
}

// NewEvaluateApplicantUseCase wires dependencies.
func NewEvaluateApplicantUseCase(
	riskModel *service.RiskModel,
	calibrator *service.Calibrator,
	matcher *service.ProductMatcher,
	policy *service.PolicyEngine,
	explainer *service.Explainer,
	publisher port.EventPublisher,
	tenantID string,
) *EvaluateApplicantUseCase {
	return &EvaluateApplicantUseCase{
		riskModel:  riskModel,
		calibrator: calibrator,
		matcher:    matcher,
		policy:     policy,
		explainer:  explainer,
		publisher:  publisher,
		tenantID:   tenantID,
	}
}

// Execute validates the profile and runs the decision pipeline. The
// resulting decision is computed fresh per call; nothing is cached between
// evaluations.
func (uc *EvaluateApplicantUseCase) Execute(ctx context.Context, req dto.ApplicantProfile) (dto.ScoreResponse, error) {
	features, err := req.ToFeatures()
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("%w: %s", ErrInvalidApplicant, err)
	}

	decision := uc.Decide(features)
	uc.publishEvents(ctx, decision)

	return dto.FromDecision(decision), nil
}

// Decide runs the pure decision pipeline on an already-validated feature
// record. It is also the entry point for batch scoring and offline tooling.
func (uc *EvaluateApplicantUseCase) Decide(features model.ApplicantFeatures) model.Decision {
	composite, contributions := uc.riskModel.Score(features)
	pd := uc.calibrator.Calibrate(composite)
	tier := uc.calibrator.AssignTier(pd)
	outcome := uc.calibrator.RouteOutcome(pd)

	top1, ranking := uc.matcher.Top3(features)
	terms := uc.policy.Terms(features, top1, pd)
	explanation := uc.explainer.Explain(features, contributions, pd, tier)

	return model.Decision{
		DecisionID:     uuid.New().String(),
		UserID:         features.UserID,
		CompositeRisk:  composite,
		PD:             pd,
		RiskTier:       tier,
		Outcome:        outcome,
		Product:        top1,
		ProductRanking: ranking,
		Terms:          terms,
		Explanation:    explanation,
		EvaluatedAt:    time.Now().UTC(),
	}
}

// publishEvents emits the evaluation events. Publish failures are logged
// and swallowed: the decision has already been made and must reach the
// caller regardless of stream health.
func (uc *EvaluateApplicantUseCase) publishEvents(ctx context.Context, d model.Decision) {
	evts := []events.DomainEvent{
		event.NewApplicantEvaluated(uc.tenantID, d.UserID, d.DecisionID,
			d.PD, d.RiskTier, d.Outcome, d.Product, d.Terms.CreditLimit, d.Terms.TenorMonths),
	}
	if d.Outcome == valueobject.OutcomeDecline {
		topDriver := ""
		if len(d.Explanation.TopDrivers) > 0 {
			topDriver = d.Explanation.TopDrivers[0].Feature
		}
		evts = append(evts, event.NewApplicantDeclined(uc.tenantID, d.UserID, d.DecisionID, d.PD, topDriver))
	}

	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		slog.Warn("failed to publish evaluation events",
			"user_id", d.UserID,
			"decision_id", d.DecisionID,
			"error", err)
	}
}
