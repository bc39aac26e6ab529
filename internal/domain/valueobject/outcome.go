package valueobject

// ---------------------------------------------------------------------------
// Outcome – approval decision derived from late payment probability
// ---------------------------------------------------------------------------

// Outcome is the approval decision for an application.
type Outcome string

const (
	OutcomeApprove      Outcome = "approve"
	OutcomeManualReview Outcome = "manual_review"
	OutcomeDecline      Outcome = "decline"
)

// String returns the string representation of the outcome.
func (o Outcome) String() string { return string(o) }
