package service

import (
	"fmt"
	"strings"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Explainer – human-readable score breakdowns
// ---------------------------------------------------------------------------

// topDriverCount is how many features the narrative calls out.
const topDriverCount = 3

// featureLabels translate internal feature names into reviewer-facing text.
var featureLabels = map[string]string{
	FeatureRegion:        "operating region",
	FeatureFarmType:      "farm type",
	FeatureExperience:    "years of farming experience",
	FeaturePriorDefaults: "prior defaults",
	FeatureLiquidity:     "cash liquidity",
	FeatureFarmSize:      "farm size",
	FeatureDeviceTrust:   "device trust signals",
	FeatureIdentity:      "identity consistency",
}

// Explainer turns a scored applicant into the narrative and top-driver
// breakdown a credit reviewer reads. Stateless.
type Explainer struct{}

// NewExplainer creates the explainer.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// Explain builds the full explanation from the already-sorted contribution
// list, the calibrated PD, and the assigned tier.
func (e *Explainer) Explain(f model.ApplicantFeatures, contributions []model.RiskContribution, pd float64, tier valueobject.RiskTier) model.RiskExplanation {
	n := topDriverCount
	if n > len(contributions) {
		n = len(contributions)
	}
	top := make([]model.RiskContribution, n)
	copy(top, contributions[:n])

	return model.RiskExplanation{
		Contributions: contributions,
		TopDrivers:    top,
		Narrative:     e.narrative(f, top, pd, tier),
	}
}

func (e *Explainer) narrative(f model.ApplicantFeatures, top []model.RiskContribution, pd float64, tier valueobject.RiskTier) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Applicant %s has an estimated probability of default of %.1f%%, placing them in the %s risk tier. ",
		f.UserID, pd*100, tier)

	if len(top) > 0 {
		labels := make([]string, 0, len(top))
		for _, c := range top {
			labels = append(labels, featureLabel(c.Feature))
		}
		fmt.Fprintf(&b, "The main risk drivers are %s. ", joinWithAnd(labels))
	}

	for _, c := range top {
		b.WriteString(e.driverDetail(f, c))
	}

	return strings.TrimSpace(b.String())
}

// driverDetail writes one sentence grounding a top driver in the applicant's
// actual feature value.
func (e *Explainer) driverDetail(f model.ApplicantFeatures, c model.RiskContribution) string {
	switch c.Feature {
	case FeatureRegion:
		return fmt.Sprintf("The %s region carries elevated weather and market risk. ", f.Region)
	case FeatureFarmType:
		return fmt.Sprintf("A %s operation of %.1f ha contributes %.1f%% of the composite score. ",
			f.FarmType, f.FarmSizeHa, c.Contribution*100)
	case FeatureExperience:
		return fmt.Sprintf("With %d years of farming experience the applicant is %s. ",
			f.YearsExperience, experiencePhrase(f.YearsExperience))
	case FeaturePriorDefaults:
		if f.PriorDefaults == 0 {
			return "The applicant has no prior defaults on record. "
		}
		return fmt.Sprintf("The applicant has %d prior default(s) on record, the strongest single risk signal. ",
			f.PriorDefaults)
	case FeatureLiquidity:
		return fmt.Sprintf("Recent cash inflows cover %.1f months of estimated income. ", f.LiquidityRatio)
	case FeatureFarmSize:
		return fmt.Sprintf("The holding of %.1f ha sits in a higher-risk size band. ", f.FarmSizeHa)
	case FeatureDeviceTrust:
		return fmt.Sprintf("Device trust signals score %.0f out of 100. ", f.DeviceTrustScore)
	case FeatureIdentity:
		return fmt.Sprintf("Identity consistency checks score %.0f out of 100. ", f.IdentityConsistency)
	default:
		return ""
	}
}

func experiencePhrase(years int) string {
	switch {
	case years <= 2:
		return "new to commercial farming"
	case years <= 10:
		return "moderately experienced"
	default:
		return "a seasoned operator"
	}
}

func featureLabel(name string) string {
	if l, ok := featureLabels[name]; ok {
		return l
	}
	return name
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
