package valueobject

// ---------------------------------------------------------------------------
// RiskTier – risk bucket derived from late payment probability
// ---------------------------------------------------------------------------

// RiskTier is one of four risk buckets derived from the calibrated
// late payment probability.
type RiskTier string

const (
	RiskTierLow     RiskTier = "Low"
	RiskTierMedium  RiskTier = "Medium"
	RiskTierHigh    RiskTier = "High"
	RiskTierDecline RiskTier = "Decline"
)

// String returns the string representation of the tier.
func (t RiskTier) String() string { return string(t) }
