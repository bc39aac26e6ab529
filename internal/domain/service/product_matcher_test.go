package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

func applicantWith(t *testing.T, farmType valueobject.FarmType, crop valueobject.CropType, sizeHa, aov, trust float64) model.ApplicantFeatures {
	t.Helper()
	f, err := model.ReconstructApplicantFeatures("SYNTHETIC_0001",
		valueobject.RegionNorth, farmType, crop, sizeHa, 8, 45_000, 60_000, aov, trust, 85, 0)
	require.NoError(t, err)
	return f
}

func TestMatchGrainSmallOrderPrefersSeeds(t *testing.T) {
	m := NewProductMatcher()
	f := applicantWith(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 3.2, 18_500, 76.3)

	top1, top3 := m.Top3(f)
	assert.Equal(t, valueobject.ProductSeedsBNPL, top1)
	assert.LessOrEqual(t, len(top3), 3)
	assert.Equal(t, top1, top3[0].Product)

	// Seeds base 100 plus the smallholder boost.
	assert.Equal(t, 103, top3[0].Priority)
}

func TestMatchCommercialHighOrderPrefersEquipmentLease(t *testing.T) {
	m := NewProductMatcher()
	f := applicantWith(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 120, 95_000, 75)

	top1, top3 := m.Top3(f)
	assert.Equal(t, valueobject.ProductEquipmentLease, top1)

	// Equipment base 90 plus the large-holding boost.
	assert.Equal(t, 95, top3[0].Priority)
}

func TestMatchAlwaysReturnsFallback(t *testing.T) {
	m := NewProductMatcher()

	// Nothing but the unconditional rule fires for this profile.
	f := applicantWith(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 20, 40_000, 50)

	ranked := m.Match(f)
	require.Len(t, ranked, 1)
	assert.Equal(t, valueobject.ProductPremiumBNPL, ranked[0].Product)
	assert.Equal(t, 50, ranked[0].Priority)
}

func TestMatchTrustBoostAppliesToEveryCandidate(t *testing.T) {
	m := NewProductMatcher()
	f := applicantWith(t, valueobject.FarmTypeCommercial, valueobject.CropTypeVegetables, 20, 12_000, 90)

	ranked := m.Match(f)
	byProduct := map[valueobject.Product]int{}
	for _, s := range ranked {
		byProduct[s.Product] = s.Priority
	}

	assert.Equal(t, 97, byProduct[valueobject.ProductFertilizerBNPL])
	assert.Equal(t, 82, byProduct[valueobject.ProductCashAdvance])
	assert.Equal(t, 52, byProduct[valueobject.ProductPremiumBNPL])
}

func TestMatchInputBundleForMixedAndCooperatives(t *testing.T) {
	m := NewProductMatcher()

	mixed := applicantWith(t, valueobject.FarmTypeCommercial, valueobject.CropTypeMixed, 20, 60_000, 50)
	top1, _ := m.Top3(mixed)
	assert.Equal(t, valueobject.ProductInputBundle, top1)

	coop := applicantWith(t, valueobject.FarmTypeCooperative, valueobject.CropTypeLivestock, 5, 60_000, 70)
	top1, _ = m.Top3(coop)
	assert.Equal(t, valueobject.ProductInputBundle, top1)

	// Low trust disqualifies the cooperative path.
	coopLowTrust := applicantWith(t, valueobject.FarmTypeCooperative, valueobject.CropTypeLivestock, 5, 60_000, 40)
	top1, _ = m.Top3(coopLowTrust)
	assert.Equal(t, valueobject.ProductPremiumBNPL, top1)
}

func TestMatchIsDeterministic(t *testing.T) {
	m := NewProductMatcher()
	f := applicantWith(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeVegetables, 3, 12_000, 90)

	first := m.Match(f)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Match(f))
	}
}

func TestPreferredProductAgreesWithMatcherOnFirstRule(t *testing.T) {
	m := NewProductMatcher()
	profiles := []model.ApplicantFeatures{
		applicantWith(t, valueobject.FarmTypeSmallholder, valueobject.CropTypeMaize, 3, 18_000, 76),
		applicantWith(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 120, 95_000, 75),
		applicantWith(t, valueobject.FarmTypeCooperative, valueobject.CropTypeLivestock, 5, 60_000, 70),
		applicantWith(t, valueobject.FarmTypeCommercial, valueobject.CropTypeLivestock, 20, 40_000, 50),
	}
	for _, f := range profiles {
		label := PreferredProduct(f)
		ranked := m.Match(f)
		found := false
		for _, s := range ranked {
			if s.Product == label {
				found = true
			}
		}
		assert.True(t, found, "label %s missing from ranking", label)
	}
}
