package dto

import (
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// ApplicantProfile is the wire-level applicant record. Validation happens
// when it is converted into the domain feature record.
type ApplicantProfile struct {
	UserID              string  `json:"user_id"`
	Region              string  `json:"region"`
	FarmType            string  `json:"farm_type"`
	CropType            string  `json:"crop_type"`
	FarmSizeHa          float64 `json:"farm_size_ha"`
	YearsExperience     int     `json:"years_experience"`
	MonthlyIncomeEst    float64 `json:"monthly_income_est"`
	RecentCashInflows   float64 `json:"recent_cash_inflows"`
	AvgOrderValue       float64 `json:"avg_order_value"`
	DeviceTrustScore    float64 `json:"device_trust_score"`
	IdentityConsistency float64 `json:"identity_consistency"`
	PriorDefaults       int     `json:"prior_defaults"`
}

// ToFeatures validates the profile at the trust boundary and produces the
// immutable domain record.
func (p ApplicantProfile) ToFeatures() (model.ApplicantFeatures, error) {
	return model.NewApplicantFeatures(
		p.UserID,
		p.Region, p.FarmType, p.CropType,
		p.FarmSizeHa,
		p.YearsExperience,
		p.MonthlyIncomeEst, p.RecentCashInflows, p.AvgOrderValue,
		p.DeviceTrustScore, p.IdentityConsistency,
		p.PriorDefaults,
	)
}

// BatchScoreRequest scores many applicants in one call.
type BatchScoreRequest struct {
	Applicants []ApplicantProfile `json:"applicants"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// ContributionResponse mirrors one feature's share of the composite score.
type ContributionResponse struct {
	Feature      string  `json:"feature"`
	Weight       float64 `json:"weight"`
	RawRisk      float64 `json:"raw_risk"`
	Contribution float64 `json:"contribution"`
}

// ExplanationResponse is the reviewer-facing score breakdown.
type ExplanationResponse struct {
	Contributions []ContributionResponse `json:"contributions"`
	TopDrivers    []ContributionResponse `json:"top_drivers"`
	Narrative     string                 `json:"narrative"`
}

// ProductScoreResponse is one ranked product candidate.
type ProductScoreResponse struct {
	Product  string `json:"product"`
	Priority int    `json:"priority"`
}

// ScoreResponse is the full decision for one applicant.
type ScoreResponse struct {
	DecisionID     string                 `json:"decision_id"`
	UserID         string                 `json:"user_id"`
	CompositeRisk  float64                `json:"composite_risk"`
	PD             float64                `json:"pd"`
	RiskTier       string                 `json:"risk_tier"`
	Outcome        string                 `json:"outcome"`
	Product        string                 `json:"product"`
	ProductRanking []ProductScoreResponse `json:"product_ranking"`
	CreditLimit    int64                  `json:"credit_limit"`
	TenorMonths    int                    `json:"tenor_months"`
	Explanation    ExplanationResponse    `json:"explanation"`
	EvaluatedAt    string                 `json:"evaluated_at"`
}

// ProductRecommendationResponse answers a product-only query without the
// full scoring pipeline output.
type ProductRecommendationResponse struct {
	UserID      string                 `json:"user_id"`
	Product     string                 `json:"product"`
	ProductName string                 `json:"product_name"`
	Description string                 `json:"description"`
	Ranking     []ProductScoreResponse `json:"ranking"`
}

// BatchItemError reports one failed record in a batch without aborting the
// rest.
type BatchItemError struct {
	Index  int    `json:"index"`
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

// BatchSummary aggregates batch outcomes for dashboards.
type BatchSummary struct {
	Total        int     `json:"total"`
	Approved     int     `json:"approved"`
	ManualReview int     `json:"manual_review"`
	Declined     int     `json:"declined"`
	Failed       int     `json:"failed"`
	AvgPD        float64 `json:"avg_pd"`
}

// BatchScoreResponse carries per-item results, per-item failures, and the
// aggregate summary.
type BatchScoreResponse struct {
	Results []ScoreResponse  `json:"results"`
	Errors  []BatchItemError `json:"errors,omitempty"`
	Summary BatchSummary     `json:"summary"`
}

// FromDecision maps a domain decision onto the wire response.
func FromDecision(d model.Decision) ScoreResponse {
	ranking := make([]ProductScoreResponse, 0, len(d.ProductRanking))
	for _, s := range d.ProductRanking {
		ranking = append(ranking, ProductScoreResponse{
			Product:  s.Product.String(),
			Priority: s.Priority,
		})
	}
	return ScoreResponse{
		DecisionID:     d.DecisionID,
		UserID:         d.UserID,
		CompositeRisk:  d.CompositeRisk,
		PD:             d.PD,
		RiskTier:       string(d.RiskTier),
		Outcome:        string(d.Outcome),
		Product:        d.Product.String(),
		ProductRanking: ranking,
		CreditLimit:    d.Terms.CreditLimit,
		TenorMonths:    d.Terms.TenorMonths,
		Explanation:    fromExplanation(d.Explanation),
		EvaluatedAt:    d.EvaluatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func fromExplanation(e model.RiskExplanation) ExplanationResponse {
	return ExplanationResponse{
		Contributions: fromContributions(e.Contributions),
		TopDrivers:    fromContributions(e.TopDrivers),
		Narrative:     e.Narrative,
	}
}

func fromContributions(cs []model.RiskContribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, ContributionResponse{
			Feature:      c.Feature,
			Weight:       c.Weight,
			RawRisk:      c.RawRisk,
			Contribution: c.Contribution,
		})
	}
	return out
}
