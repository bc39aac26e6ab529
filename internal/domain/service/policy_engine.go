package service

import (
	"github.com/shopspring/decimal"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PolicyEngine – credit limit and tenor assignment
// ---------------------------------------------------------------------------

// Per-product base credit limits. Unknown products get a moderate default
// instead of failing.
var baseLimits = map[valueobject.Product]int64{
	valueobject.ProductSeedsBNPL:      20_000,
	valueobject.ProductFertilizerBNPL: 35_000,
	valueobject.ProductEquipmentLease: 150_000,
	valueobject.ProductInputBundle:    50_000,
	valueobject.ProductCashAdvance:    10_000,
	valueobject.ProductPremiumBNPL:    75_000,
}

const baseLimitDefault = 50_000

// Per-product base tenors in months, aligned to typical repayment horizons.
var baseTenors = map[valueobject.Product]int{
	valueobject.ProductSeedsBNPL:      4,
	valueobject.ProductFertilizerBNPL: 3,
	valueobject.ProductEquipmentLease: 12,
	valueobject.ProductInputBundle:    6,
	valueobject.ProductCashAdvance:    2,
	valueobject.ProductPremiumBNPL:    6,
}

const baseTenorDefault = 6

// Limit computation parameters.
const (
	riskMultiplierFloor = 0.2
	riskDecaySlope      = 2.5
	incomeMultiplierCap = 2.5
	incomeReference     = 50_000.0
	limitRoundingUnit   = 1_000
	minTenorMonths      = 2
)

// PolicyMultipliers is the audit breakdown of a limit computation.
type PolicyMultipliers struct {
	BaseLimit        float64 `json:"base_limit"`
	RiskMultiplier   float64 `json:"risk_multiplier"`
	IncomeMultiplier float64 `json:"income_multiplier"`
	TenureMultiplier float64 `json:"tenure_multiplier"`
	ImpliedBase      float64 `json:"implied_base"`
}

// PolicyEngine converts a matched product and a default probability into
// concrete credit terms. All money arithmetic runs on decimals and the
// final limit rounds to the nearest thousand. Stateless.
type PolicyEngine struct{}

// NewPolicyEngine creates the policy engine.
func NewPolicyEngine() *PolicyEngine {
	return &PolicyEngine{}
}

// Terms computes the credit limit and tenor in one call. Both are zero
// exactly when pd crosses the decline boundary.
func (e *PolicyEngine) Terms(f model.ApplicantFeatures, p valueobject.Product, pd float64) model.PolicyTerms {
	return model.PolicyTerms{
		CreditLimit: e.Limit(f, p, pd),
		TenorMonths: e.Tenor(f, p, pd),
	}
}

// Limit computes the credit limit: the product's base limit scaled by a
// risk decay, an income multiplier, and tenure bonuses, rounded to the
// nearest thousand. Returns 0 at or above the decline boundary.
func (e *PolicyEngine) Limit(f model.ApplicantFeatures, p valueobject.Product, pd float64) int64 {
	if pd >= DeclinePD {
		return 0
	}

	base := decimal.NewFromInt(e.baseLimit(p))
	risk := decimal.NewFromFloat(e.riskMultiplier(pd))
	income := decimal.NewFromFloat(e.incomeMultiplier(f.MonthlyIncomeEst))
	tenure := decimal.NewFromFloat(e.tenureMultiplier(f))

	raw := base.Mul(risk).Mul(income).Mul(tenure)

	// Half-up to the nearest thousand.
	unit := decimal.NewFromInt(limitRoundingUnit)
	rounded := raw.Div(unit).Round(0).Mul(unit)

	// Below the decline boundary the limit must stay strictly positive.
	// Tiny incomes can push the multiplier chain under half a unit, which
	// would otherwise round to zero.
	if rounded.LessThan(unit) {
		rounded = unit
	}

	return rounded.IntPart()
}

// Tenor computes the repayment term in months: base tenor per product,
// shortened as risk rises, then capped to the crop cycle. Returns 0 at or
// above the decline boundary.
func (e *PolicyEngine) Tenor(f model.ApplicantFeatures, p valueobject.Product, pd float64) int {
	if pd >= DeclinePD {
		return 0
	}

	tenor := e.baseTenor(p)
	switch {
	case pd < LowRiskMaxPD:
		// Full term for low risk.
	case pd < 0.30:
		tenor = maxInt(minTenorMonths, tenor-1)
	default:
		tenor = maxInt(minTenorMonths, tenor-2)
	}

	// Crop cycle caps: grain harvests repay within four months,
	// horticulture within three.
	switch {
	case f.CropType.IsGrain():
		tenor = minInt(tenor, 4)
	case f.CropType == valueobject.CropTypeHorticulture:
		tenor = minInt(tenor, 3)
	}
	return tenor
}

// ExplainPolicy reconstructs the multiplier breakdown for audit display.
// ImpliedBase divides the final limit back by the multiplier product; it is
// informational only. The multiplier product cannot reach zero given the
// floors, but a zero guard returns a zero breakdown rather than dividing.
func (e *PolicyEngine) ExplainPolicy(f model.ApplicantFeatures, p valueobject.Product, pd float64, finalLimit int64) PolicyMultipliers {
	m := PolicyMultipliers{
		BaseLimit:        float64(e.baseLimit(p)),
		RiskMultiplier:   e.riskMultiplier(pd),
		IncomeMultiplier: e.incomeMultiplier(f.MonthlyIncomeEst),
		TenureMultiplier: e.tenureMultiplier(f),
	}
	product := m.RiskMultiplier * m.IncomeMultiplier * m.TenureMultiplier
	if product == 0 {
		return m
	}
	m.ImpliedBase = float64(finalLimit) / product
	return m
}

func (e *PolicyEngine) baseLimit(p valueobject.Product) int64 {
	if v, ok := baseLimits[p]; ok {
		return v
	}
	return baseLimitDefault
}

func (e *PolicyEngine) baseTenor(p valueobject.Product) int {
	if v, ok := baseTenors[p]; ok {
		return v
	}
	return baseTenorDefault
}

func (e *PolicyEngine) riskMultiplier(pd float64) float64 {
	m := 1.0 - riskDecaySlope*pd
	if m < riskMultiplierFloor {
		return riskMultiplierFloor
	}
	return m
}

func (e *PolicyEngine) incomeMultiplier(income float64) float64 {
	m := income / incomeReference
	if m > incomeMultiplierCap {
		return incomeMultiplierCap
	}
	return m
}

// tenureMultiplier stacks the establishment bonuses multiplicatively, so
// the order they apply in never matters.
func (e *PolicyEngine) tenureMultiplier(f model.ApplicantFeatures) float64 {
	m := 1.0
	if f.FarmType == valueobject.FarmTypeCommercial {
		m *= 1.3
	}
	if f.YearsExperience > 15 {
		m *= 1.2
	}
	if f.DeviceTrustScore > 85 {
		m *= 1.1
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
