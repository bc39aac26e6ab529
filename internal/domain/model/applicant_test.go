package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

func validFeatureArgs() (string, string, string, string, float64, int, float64, float64, float64, float64, float64, int) {
	return "SYNTHETIC_0001", "North", "smallholder", "maize",
		2.5, 8, 45_000, 60_000, 18_000, 72, 88, 0
}

func TestNewApplicantFeatures(t *testing.T) {
	uid, reg, ft, crop, size, exp, inc, inflow, aov, trust, ident, defaults := validFeatureArgs()

	f, err := NewApplicantFeatures(uid, reg, ft, crop, size, exp, inc, inflow, aov, trust, ident, defaults)
	require.NoError(t, err)

	assert.Equal(t, "SYNTHETIC_0001", f.UserID)
	assert.Equal(t, valueobject.RegionNorth, f.Region)
	assert.Equal(t, valueobject.FarmTypeSmallholder, f.FarmType)
	assert.Equal(t, valueobject.CropTypeMaize, f.CropType)
	assert.InDelta(t, 60_000.0/45_000.0, f.LiquidityRatio, 1e-9)
}

func TestNewApplicantFeaturesRejectsNonPositiveIncome(t *testing.T) {
	uid, reg, ft, crop, size, exp, _, inflow, aov, trust, ident, defaults := validFeatureArgs()

	_, err := NewApplicantFeatures(uid, reg, ft, crop, size, exp, 0, inflow, aov, trust, ident, defaults)
	assert.ErrorIs(t, err, ErrNonPositiveIncome)

	_, err = NewApplicantFeatures(uid, reg, ft, crop, size, exp, -100, inflow, aov, trust, ident, defaults)
	assert.ErrorIs(t, err, ErrNonPositiveIncome)
}

func TestNewApplicantFeaturesRejectsOutOfRange(t *testing.T) {
	uid, reg, ft, crop, _, exp, inc, inflow, aov, trust, ident, defaults := validFeatureArgs()

	cases := []struct {
		name string
		run  func() error
	}{
		{"farm size below minimum", func() error {
			_, err := NewApplicantFeatures(uid, reg, ft, crop, 0.1, exp, inc, inflow, aov, trust, ident, defaults)
			return err
		}},
		{"farm size above maximum", func() error {
			_, err := NewApplicantFeatures(uid, reg, ft, crop, 900, exp, inc, inflow, aov, trust, ident, defaults)
			return err
		}},
		{"negative experience", func() error {
			_, err := NewApplicantFeatures(uid, reg, ft, crop, 2.5, -1, inc, inflow, aov, trust, ident, defaults)
			return err
		}},
		{"trust score above 100", func() error {
			_, err := NewApplicantFeatures(uid, reg, ft, crop, 2.5, exp, inc, inflow, aov, 101, ident, defaults)
			return err
		}},
		{"too many prior defaults", func() error {
			_, err := NewApplicantFeatures(uid, reg, ft, crop, 2.5, exp, inc, inflow, aov, trust, ident, 6)
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), ErrOutOfRange)
		})
	}
}

func TestNewApplicantFeaturesRejectsUnknownCategories(t *testing.T) {
	uid, _, ft, crop, size, exp, inc, inflow, aov, trust, ident, defaults := validFeatureArgs()

	_, err := NewApplicantFeatures(uid, "Atlantis", ft, crop, size, exp, inc, inflow, aov, trust, ident, defaults)
	assert.Error(t, err)

	_, err = NewApplicantFeatures(uid, "North", "plantation", crop, size, exp, inc, inflow, aov, trust, ident, defaults)
	assert.Error(t, err)

	_, err = NewApplicantFeatures(uid, "North", ft, "tobacco", size, exp, inc, inflow, aov, trust, ident, defaults)
	assert.Error(t, err)
}

func TestReconstructSkipsBoundsButGuardsIncome(t *testing.T) {
	f, err := ReconstructApplicantFeatures("SYNTHETIC_0002",
		valueobject.Region("Atlantis"), valueobject.FarmTypeCommercial, valueobject.CropTypeRice,
		1000, 50, 45_000, 90_000, 18_000, 80, 90, 0)
	require.NoError(t, err)
	assert.Equal(t, valueobject.Region("Atlantis"), f.Region)
	assert.InDelta(t, 2.0, f.LiquidityRatio, 1e-9)

	_, err = ReconstructApplicantFeatures("SYNTHETIC_0002",
		valueobject.RegionNorth, valueobject.FarmTypeCommercial, valueobject.CropTypeRice,
		10, 5, 0, 90_000, 18_000, 80, 90, 0)
	assert.ErrorIs(t, err, ErrNonPositiveIncome)
}
