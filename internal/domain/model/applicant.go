package model

import (
	"errors"
	"fmt"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ApplicantFeatures – immutable input record
// ---------------------------------------------------------------------------

// Numeric bounds enforced at the trust boundary. Categorical fields are
// validated against their closed enumerations.
const (
	MinFarmSizeHa      = 0.5
	MaxFarmSizeHa      = 500.0
	MaxYearsExperience = 40
	MinMonthlyIncome   = 5_000.0
	MaxMonthlyIncome   = 500_000.0
	MaxCashInflows     = 1_000_000.0
	MinAvgOrderValue   = 1_000.0
	MaxAvgOrderValue   = 200_000.0
	MaxTrustScore      = 100.0
	MaxPriorDefaults   = 5
)

var (
	// ErrNonPositiveIncome is returned when the liquidity ratio would
	// divide by zero (or worse). Upstream validation enforces a positive
	// income minimum, so hitting this means the validated path was skipped.
	ErrNonPositiveIncome = errors.New("monthly income estimate must be positive")

	// ErrOutOfRange wraps all numeric bound violations.
	ErrOutOfRange = errors.New("feature out of range")
)

// ApplicantFeatures is the validated, immutable feature record the decision
// engine reads. It is constructed once per evaluation request and never
// mutated afterwards.
type ApplicantFeatures struct {
	UserID              string
	Region              valueobject.Region
	FarmType            valueobject.FarmType
	CropType            valueobject.CropType
	FarmSizeHa          float64
	YearsExperience     int
	MonthlyIncomeEst    float64
	RecentCashInflows   float64
	AvgOrderValue       float64
	DeviceTrustScore    float64
	IdentityConsistency float64
	PriorDefaults       int

	// LiquidityRatio is derived at construction:
	// recent cash inflows over estimated monthly income.
	LiquidityRatio float64
}

// NewApplicantFeatures validates raw applicant data at the trust boundary,
// parses the categorical enumerations, and derives the liquidity ratio.
func NewApplicantFeatures(
	userID string,
	region, farmType, cropType string,
	farmSizeHa float64,
	yearsExperience int,
	monthlyIncomeEst, recentCashInflows, avgOrderValue float64,
	deviceTrustScore, identityConsistency float64,
	priorDefaults int,
) (ApplicantFeatures, error) {
	if userID == "" {
		return ApplicantFeatures{}, errors.New("user ID is required")
	}

	reg, err := valueobject.ParseRegion(region)
	if err != nil {
		return ApplicantFeatures{}, err
	}
	ft, err := valueobject.ParseFarmType(farmType)
	if err != nil {
		return ApplicantFeatures{}, err
	}
	crop, err := valueobject.ParseCropType(cropType)
	if err != nil {
		return ApplicantFeatures{}, err
	}

	if monthlyIncomeEst <= 0 {
		return ApplicantFeatures{}, ErrNonPositiveIncome
	}
	if err := checkRange("farm_size_ha", farmSizeHa, MinFarmSizeHa, MaxFarmSizeHa); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("years_experience", float64(yearsExperience), 0, MaxYearsExperience); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("monthly_income_est", monthlyIncomeEst, MinMonthlyIncome, MaxMonthlyIncome); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("recent_cash_inflows", recentCashInflows, 0, MaxCashInflows); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("avg_order_value", avgOrderValue, MinAvgOrderValue, MaxAvgOrderValue); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("device_trust_score", deviceTrustScore, 0, MaxTrustScore); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("identity_consistency", identityConsistency, 0, MaxTrustScore); err != nil {
		return ApplicantFeatures{}, err
	}
	if err := checkRange("prior_defaults", float64(priorDefaults), 0, MaxPriorDefaults); err != nil {
		return ApplicantFeatures{}, err
	}

	return ApplicantFeatures{
		UserID:              userID,
		Region:              reg,
		FarmType:            ft,
		CropType:            crop,
		FarmSizeHa:          farmSizeHa,
		YearsExperience:     yearsExperience,
		MonthlyIncomeEst:    monthlyIncomeEst,
		RecentCashInflows:   recentCashInflows,
		AvgOrderValue:       avgOrderValue,
		DeviceTrustScore:    deviceTrustScore,
		IdentityConsistency: identityConsistency,
		PriorDefaults:       priorDefaults,
		LiquidityRatio:      recentCashInflows / monthlyIncomeEst,
	}, nil
}

// ReconstructApplicantFeatures rebuilds a feature record without boundary
// validation, for callers that already hold domain values (the dataset
// generator, tests exercising the engine's unknown-category fallbacks).
// Income must still be positive; the liquidity ratio is never allowed to
// silently become Inf or NaN.
func ReconstructApplicantFeatures(
	userID string,
	region valueobject.Region,
	farmType valueobject.FarmType,
	cropType valueobject.CropType,
	farmSizeHa float64,
	yearsExperience int,
	monthlyIncomeEst, recentCashInflows, avgOrderValue float64,
	deviceTrustScore, identityConsistency float64,
	priorDefaults int,
) (ApplicantFeatures, error) {
	if monthlyIncomeEst <= 0 {
		return ApplicantFeatures{}, ErrNonPositiveIncome
	}
	return ApplicantFeatures{
		UserID:              userID,
		Region:              region,
		FarmType:            farmType,
		CropType:            cropType,
		FarmSizeHa:          farmSizeHa,
		YearsExperience:     yearsExperience,
		MonthlyIncomeEst:    monthlyIncomeEst,
		RecentCashInflows:   recentCashInflows,
		AvgOrderValue:       avgOrderValue,
		DeviceTrustScore:    deviceTrustScore,
		IdentityConsistency: identityConsistency,
		PriorDefaults:       priorDefaults,
		LiquidityRatio:      recentCashInflows / monthlyIncomeEst,
	}, nil
}

func checkRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s=%v outside [%v, %v]", ErrOutOfRange, field, v, lo, hi)
	}
	return nil
}
