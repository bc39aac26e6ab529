package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

func policyApplicant(t *testing.T, farmType valueobject.FarmType, crop valueobject.CropType, years int, income, trust float64) model.ApplicantFeatures {
	t.Helper()
	f, err := model.ReconstructApplicantFeatures("SYNTHETIC_0001",
		valueobject.RegionNorth, farmType, crop, 10, years, income, income*2, 20_000, trust, 85, 0)
	require.NoError(t, err)
	return f
}

func TestLimitDeclineGate(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeCommercial, valueobject.CropTypeMaize, 20, 100_000, 90)

	assert.Equal(t, int64(0), e.Limit(f, valueobject.ProductSeedsBNPL, 0.50))
	assert.Equal(t, int64(0), e.Limit(f, valueobject.ProductSeedsBNPL, 0.80))
	assert.Greater(t, e.Limit(f, valueobject.ProductSeedsBNPL, 0.4999), int64(0))
}

func TestLimitLowRiskSmallholder(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 8, 50_000, 70)

	// base 20000, risk 1-2.5*0.05=0.875, income 1.0, tenure 1.0
	// raw 17500 rounds to 18000
	limit := e.Limit(f, valueobject.ProductSeedsBNPL, 0.05)
	assert.Equal(t, int64(18_000), limit)
}

func TestLimitStacksTenureBonuses(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 20, 125_000, 90)

	// base 150000, risk 0.75, income capped at 2.5, tenure 1.3*1.2*1.1=1.716
	// raw 482625 rounds to 483000
	limit := e.Limit(f, valueobject.ProductEquipmentLease, 0.10)
	assert.Equal(t, int64(483_000), limit)
}

func TestLimitRiskMultiplierFloor(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 8, 50_000, 70)

	// pd 0.45: raw multiplier would be -0.125, floored to 0.2.
	// base 20000 * 0.2 * 1.0 * 1.0 = 4000
	assert.Equal(t, int64(4_000), e.Limit(f, valueobject.ProductSeedsBNPL, 0.45))
}

func TestLimitUnknownProductDefaultsBase(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 8, 50_000, 70)

	// base defaults to 50000; risk 0.875
	assert.Equal(t, int64(44_000), e.Limit(f, valueobject.Product("Harvester_Loan"), 0.05))
}

func TestLimitStaysPositiveBelowDecline(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeVegetables, 3, 5_554, 72)

	// base 10000, risk 1-2.5*0.2206=0.4485, income 5554/50000=0.111:
	// the raw chain lands near 498 and would round to zero without the
	// one-unit floor.
	limit := e.Limit(f, valueobject.ProductCashAdvance, 0.2206)
	assert.Equal(t, int64(1_000), limit)

	// The floor never fires at or past the decline boundary.
	assert.Equal(t, int64(0), e.Limit(f, valueobject.ProductCashAdvance, 0.50))
}

func TestLimitNonIncreasingInProbability(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeCommercial, valueobject.CropTypeMaize, 20, 100_000, 90)

	prev := int64(math.MaxInt64)
	for pd := 0.0; pd < 0.55; pd += 0.01 {
		limit := e.Limit(f, valueobject.ProductEquipmentLease, pd)
		assert.LessOrEqual(t, limit, prev, "pd=%v", pd)
		prev = limit
	}
}

func TestLimitRoundsToNearestThousand(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 8, 62_500, 70)

	for pd := 0.0; pd < 0.50; pd += 0.037 {
		limit := e.Limit(f, valueobject.ProductPremiumBNPL, pd)
		assert.Zero(t, limit%1_000, "pd=%v limit=%v", pd, limit)
	}
}

func TestTenorDeclineGate(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 20, 100_000, 90)

	assert.Equal(t, 0, e.Tenor(f, valueobject.ProductEquipmentLease, 0.50))
	assert.Greater(t, e.Tenor(f, valueobject.ProductEquipmentLease, 0.4999), 0)
}

func TestTenorRiskAdjustment(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 20, 100_000, 90)

	assert.Equal(t, 12, e.Tenor(f, valueobject.ProductEquipmentLease, 0.10))
	assert.Equal(t, 11, e.Tenor(f, valueobject.ProductEquipmentLease, 0.20))
	assert.Equal(t, 10, e.Tenor(f, valueobject.ProductEquipmentLease, 0.40))
}

func TestTenorNeverDropsBelowTwoMonths(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeLivestock, 8, 40_000, 70)

	// Cash advance base is already the 2-month floor.
	assert.Equal(t, 2, e.Tenor(f, valueobject.ProductCashAdvance, 0.40))
}

func TestTenorCropCycleCaps(t *testing.T) {
	e := NewPolicyEngine()

	maize := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 8, 40_000, 70)
	rice := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeRice, 8, 40_000, 70)
	horti := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeHorticulture, 8, 40_000, 70)

	assert.Equal(t, 4, e.Tenor(maize, valueobject.ProductPremiumBNPL, 0.05))
	assert.Equal(t, 4, e.Tenor(rice, valueobject.ProductEquipmentLease, 0.05))
	assert.Equal(t, 3, e.Tenor(horti, valueobject.ProductPremiumBNPL, 0.05))
}

func TestTermsZeroExactlyAtDecline(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeCommercial, valueobject.CropTypeMaize, 20, 100_000, 90)

	declined := e.Terms(f, valueobject.ProductSeedsBNPL, 0.50)
	assert.Equal(t, int64(0), declined.CreditLimit)
	assert.Equal(t, 0, declined.TenorMonths)

	granted := e.Terms(f, valueobject.ProductSeedsBNPL, 0.49)
	assert.Greater(t, granted.CreditLimit, int64(0))
	assert.Greater(t, granted.TenorMonths, 0)
}

func TestExplainPolicyReconstructsBase(t *testing.T) {
	e := NewPolicyEngine()
	f := policyApplicant(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 8, 50_000, 70)

	limit := e.Limit(f, valueobject.ProductSeedsBNPL, 0.05)
	m := e.ExplainPolicy(f, valueobject.ProductSeedsBNPL, 0.05, limit)

	assert.Equal(t, 20_000.0, m.BaseLimit)
	assert.InDelta(t, 0.875, m.RiskMultiplier, 1e-9)
	assert.InDelta(t, 1.0, m.IncomeMultiplier, 1e-9)
	assert.InDelta(t, 1.0, m.TenureMultiplier, 1e-9)

	// Implied base differs from the true base only by rounding.
	assert.InDelta(t, m.BaseLimit, m.ImpliedBase, 1_000/0.875+1)
}
