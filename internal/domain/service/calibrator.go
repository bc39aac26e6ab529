package service

import (
	"math"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Calibrator – composite score to probability of default
// ---------------------------------------------------------------------------

// Sigmoid calibration parameters. Steepness controls how sharply the curve
// separates applicants around the midpoint.
const (
	calibrationSteepness = 15.0
	calibrationMidpoint  = 0.35
)

// PD thresholds shared by tier assignment, routing, and the policy decline
// gate. Keeping them in one place stops the ladders drifting apart.
const (
	LowRiskMaxPD      = 0.15
	MediumRiskMaxPD   = 0.35
	DeclinePD         = 0.50
	ManualReviewMinPD = 0.15
)

// Calibrator maps the composite risk score onto a probability of default
// and assigns the risk tier and routing outcome. Stateless.
type Calibrator struct{}

// NewCalibrator creates the calibrator.
func NewCalibrator() *Calibrator {
	return &Calibrator{}
}

// Calibrate converts a composite risk score in [0, 1] into a PD in (0, 1)
// via a logistic curve centered at the calibration midpoint.
func (c *Calibrator) Calibrate(composite float64) float64 {
	return 1.0 / (1.0 + math.Exp(-calibrationSteepness*(composite-calibrationMidpoint)))
}

// AssignTier maps a PD onto the four-level risk tier ladder.
func (c *Calibrator) AssignTier(pd float64) valueobject.RiskTier {
	switch {
	case pd < LowRiskMaxPD:
		return valueobject.RiskTierLow
	case pd < MediumRiskMaxPD:
		return valueobject.RiskTierMedium
	case pd < DeclinePD:
		return valueobject.RiskTierHigh
	default:
		return valueobject.RiskTierDecline
	}
}

// RouteOutcome maps a PD onto the three-way routing decision. The routing
// ladder deliberately has fewer levels than the tier ladder: both medium
// and high tier applicants go to manual review.
func (c *Calibrator) RouteOutcome(pd float64) valueobject.Outcome {
	switch {
	case pd < ManualReviewMinPD:
		return valueobject.OutcomeApprove
	case pd < DeclinePD:
		return valueobject.OutcomeManualReview
	default:
		return valueobject.OutcomeDecline
	}
}
