package model

import (
	"time"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Decision – the full evaluation result for one applicant
// ---------------------------------------------------------------------------

// RiskContribution is one feature's share of the composite risk score.
// Contribution is Weight * RawRisk; the contributions across all features
// sum to the composite score.
type RiskContribution struct {
	Feature      string  `json:"feature"`
	Weight       float64 `json:"weight"`
	RawRisk      float64 `json:"raw_risk"`
	Contribution float64 `json:"contribution"`
}

// RiskExplanation is the human-readable breakdown of a score: every
// feature's contribution ordered from largest to smallest, the top drivers
// called out, and a one-paragraph narrative.
type RiskExplanation struct {
	Contributions []RiskContribution `json:"contributions"`
	TopDrivers    []RiskContribution `json:"top_drivers"`
	Narrative     string             `json:"narrative"`
}

// PolicyTerms are the credit terms the policy engine grants. The limit is
// always a whole multiple of 1,000. Both fields are zero when the
// applicant is declined.
type PolicyTerms struct {
	CreditLimit int64 `json:"credit_limit"`
	TenorMonths int   `json:"tenor_months"`
}

// Decision is the complete outcome of evaluating one applicant: the raw and
// calibrated scores, the tier and routing outcome, the matched product with
// its terms, and the explanation.
type Decision struct {
	DecisionID     string               `json:"decision_id"`
	UserID         string               `json:"user_id"`
	CompositeRisk  float64              `json:"composite_risk"`
	PD             float64              `json:"pd"`
	RiskTier       valueobject.RiskTier `json:"risk_tier"`
	Outcome        valueobject.Outcome  `json:"outcome"`
	Product        valueobject.Product  `json:"product"`
	ProductRanking []ProductScore       `json:"product_ranking"`
	Terms          PolicyTerms          `json:"terms"`
	Explanation    RiskExplanation      `json:"explanation"`
	EvaluatedAt    time.Time            `json:"evaluated_at"`
}

// ProductScore is one entry in the ranked product list: a product the
// applicant is eligible for and its final priority after boosts.
type ProductScore struct {
	Product  valueobject.Product `json:"product"`
	Priority int                 `json:"priority"`
}
