package event

import (
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
	"github.com/Ismat-Samadov/BNPL-scoring/pkg/events"
)

// Event types published to the scoring event stream.
const (
	TypeApplicantEvaluated = "bnpl.applicant.evaluated"
	TypeApplicantDeclined  = "bnpl.applicant.declined"
)

const aggregateTypeApplicant = "applicant"

// ApplicantEvaluated is published after every completed evaluation,
// whatever the outcome.
type ApplicantEvaluated struct {
	events.BaseEvent
	DecisionID  string               `json:"decision_id"`
	PD          float64              `json:"pd"`
	RiskTier    valueobject.RiskTier `json:"risk_tier"`
	Outcome     valueobject.Outcome  `json:"outcome"`
	Product     valueobject.Product  `json:"product"`
	CreditLimit int64                `json:"credit_limit"`
	TenorMonths int                  `json:"tenor_months"`
}

// NewApplicantEvaluated builds the evaluation event for one decision.
func NewApplicantEvaluated(tenantID, userID, decisionID string, pd float64, tier valueobject.RiskTier, outcome valueobject.Outcome, product valueobject.Product, creditLimit int64, tenorMonths int) *ApplicantEvaluated {
	return &ApplicantEvaluated{
		BaseEvent:   events.NewBaseEvent(TypeApplicantEvaluated, userID, aggregateTypeApplicant, tenantID),
		DecisionID:  decisionID,
		PD:          pd,
		RiskTier:    tier,
		Outcome:     outcome,
		Product:     product,
		CreditLimit: creditLimit,
		TenorMonths: tenorMonths,
	}
}

// ApplicantDeclined is published in addition to the evaluation event when
// the routing outcome is a hard decline, for downstream review tooling.
type ApplicantDeclined struct {
	events.BaseEvent
	DecisionID string  `json:"decision_id"`
	PD         float64 `json:"pd"`
	TopDriver  string  `json:"top_driver"`
}

// NewApplicantDeclined builds the decline event for one decision.
func NewApplicantDeclined(tenantID, userID, decisionID string, pd float64, topDriver string) *ApplicantDeclined {
	return &ApplicantDeclined{
		BaseEvent:  events.NewBaseEvent(TypeApplicantDeclined, userID, aggregateTypeApplicant, tenantID),
		DecisionID: decisionID,
		PD:         pd,
		TopDriver:  topDriver,
	}
}
