package service

import (
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Product rule table – shared by the matcher and the dataset labeler
// ---------------------------------------------------------------------------

// productRule is one eligibility rule: a predicate over applicant features
// and the base priority granted when it matches.
type productRule struct {
	Product      valueobject.Product
	BasePriority int
	Eligible     func(f model.ApplicantFeatures) bool
}

// productRules is the single eligibility table. The matcher ranks with it
// and the dataset generator labels ground truth with it, so the two can
// never disagree about who qualifies for what.
var productRules = []productRule{
	{
		Product:      valueobject.ProductSeedsBNPL,
		BasePriority: 100,
		Eligible: func(f model.ApplicantFeatures) bool {
			return f.CropType.IsGrain() && f.AvgOrderValue < 30_000
		},
	},
	{
		Product:      valueobject.ProductFertilizerBNPL,
		BasePriority: 95,
		Eligible: func(f model.ApplicantFeatures) bool {
			return (f.CropType == valueobject.CropTypeVegetables || f.CropType == valueobject.CropTypeHorticulture) &&
				f.AvgOrderValue < 50_000
		},
	},
	{
		Product:      valueobject.ProductEquipmentLease,
		BasePriority: 90,
		Eligible: func(f model.ApplicantFeatures) bool {
			return f.FarmType == valueobject.FarmTypeCommercial && f.AvgOrderValue > 80_000
		},
	},
	{
		Product:      valueobject.ProductInputBundle,
		BasePriority: 85,
		Eligible: func(f model.ApplicantFeatures) bool {
			return f.CropType == valueobject.CropTypeMixed ||
				(f.FarmType == valueobject.FarmTypeCooperative && f.DeviceTrustScore > 60)
		},
	},
	{
		Product:      valueobject.ProductCashAdvance,
		BasePriority: 80,
		Eligible: func(f model.ApplicantFeatures) bool {
			return f.AvgOrderValue < 15_000 && f.DeviceTrustScore > 70
		},
	},
	{
		// Fallback product, every applicant is eligible.
		Product:      valueobject.ProductPremiumBNPL,
		BasePriority: 50,
		Eligible: func(f model.ApplicantFeatures) bool {
			return true
		},
	},
}

// PreferredProduct returns the first matching rule in priority order. The
// dataset generator uses it to label ground truth.
func PreferredProduct(f model.ApplicantFeatures) valueobject.Product {
	for _, r := range productRules {
		if r.Eligible(f) {
			return r.Product
		}
	}
	return valueobject.ProductPremiumBNPL
}
