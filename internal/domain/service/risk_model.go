package service

import (
	"math"
	"sort"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskModel – weighted composite risk scoring
// ---------------------------------------------------------------------------

// Feature names as they appear in contributions and explanations.
const (
	FeatureRegion        = "region"
	FeatureFarmType      = "farm_type"
	FeatureExperience    = "experience"
	FeaturePriorDefaults = "prior_defaults"
	FeatureLiquidity     = "liquidity"
	FeatureFarmSize      = "farm_size"
	FeatureDeviceTrust   = "device_trust"
	FeatureIdentity      = "identity"
)

// Feature weights. They sum to 1.0 so the composite score stays in [0, 1].
var riskWeights = map[string]float64{
	FeatureRegion:        0.12,
	FeatureFarmType:      0.18,
	FeatureExperience:    0.15,
	FeaturePriorDefaults: 0.20,
	FeatureLiquidity:     0.10,
	FeatureFarmSize:      0.08,
	FeatureDeviceTrust:   0.10,
	FeatureIdentity:      0.07,
}

// featureOrder fixes the iteration order so contributions are deterministic.
var featureOrder = []string{
	FeatureRegion,
	FeatureFarmType,
	FeatureExperience,
	FeaturePriorDefaults,
	FeatureLiquidity,
	FeatureFarmSize,
	FeatureDeviceTrust,
	FeatureIdentity,
}

// Per-category raw risks. Categories outside the lookup fall back to a
// moderate default rather than failing, so the model still scores records
// produced before a category was added.
var regionRisk = map[valueobject.Region]float64{
	valueobject.RegionNorth:   0.15,
	valueobject.RegionSouth:   0.25,
	valueobject.RegionEast:    0.15,
	valueobject.RegionWest:    0.30,
	valueobject.RegionCentral: 0.20,
}

const regionRiskDefault = 0.20

var farmTypeRisk = map[valueobject.FarmType]float64{
	valueobject.FarmTypeSmallholder: 0.35,
	valueobject.FarmTypeCommercial:  0.10,
	valueobject.FarmTypeCooperative: 0.20,
}

const farmTypeRiskDefault = 0.25

// RiskModel computes the weighted composite risk score for an applicant.
// It is stateless and safe for concurrent use.
type RiskModel struct{}

// NewRiskModel creates the scoring model.
func NewRiskModel() *RiskModel {
	return &RiskModel{}
}

// Score computes the composite risk in [0, 1] together with the per-feature
// contribution breakdown, ordered by descending contribution.
func (m *RiskModel) Score(f model.ApplicantFeatures) (float64, []model.RiskContribution) {
	raw := map[string]float64{
		FeatureRegion:        m.regionRisk(f.Region),
		FeatureFarmType:      m.farmTypeRisk(f.FarmType),
		FeatureExperience:    m.experienceRisk(f.YearsExperience),
		FeaturePriorDefaults: m.priorDefaultRisk(f.PriorDefaults),
		FeatureLiquidity:     m.liquidityRisk(f.LiquidityRatio),
		FeatureFarmSize:      m.farmSizeRisk(f.FarmSizeHa),
		FeatureDeviceTrust:   trustRisk(f.DeviceTrustScore),
		FeatureIdentity:      trustRisk(f.IdentityConsistency),
	}

	contributions := make([]model.RiskContribution, 0, len(featureOrder))
	composite := 0.0
	for _, name := range featureOrder {
		w := riskWeights[name]
		c := w * raw[name]
		composite += c
		contributions = append(contributions, model.RiskContribution{
			Feature:      name,
			Weight:       w,
			RawRisk:      raw[name],
			Contribution: c,
		})
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].Contribution > contributions[j].Contribution
	})

	return clampUnit(composite), contributions
}

func (m *RiskModel) regionRisk(r valueobject.Region) float64 {
	if v, ok := regionRisk[r]; ok {
		return v
	}
	return regionRiskDefault
}

func (m *RiskModel) farmTypeRisk(ft valueobject.FarmType) float64 {
	if v, ok := farmTypeRisk[ft]; ok {
		return v
	}
	return farmTypeRiskDefault
}

func (m *RiskModel) experienceRisk(years int) float64 {
	switch {
	case years <= 2:
		return 0.40
	case years <= 10:
		return 0.25
	case years <= 20:
		return 0.15
	default:
		return 0.10
	}
}

func (m *RiskModel) priorDefaultRisk(n int) float64 {
	return math.Min(float64(n)*0.15, 0.75)
}

// liquidityRisk maps the inflow-to-income ratio inversely onto [0, 1].
// A ratio of 3 or more months of income on hand reads as no liquidity risk.
func (m *RiskModel) liquidityRisk(ratio float64) float64 {
	return 1.0 - math.Min(ratio/3.0, 1.0)
}

func (m *RiskModel) farmSizeRisk(ha float64) float64 {
	switch {
	case ha < 1:
		return 0.30
	case ha < 10:
		return 0.10
	case ha < 100:
		return 0.05
	default:
		// Very large holdings carry concentration risk.
		return 0.15
	}
}

// trustRisk inverts a 0-100 trust score onto [0, 1].
func trustRisk(score float64) float64 {
	return (100.0 - score) / 100.0
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
