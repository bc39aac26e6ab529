package service

import (
	"sort"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ProductMatcher – eligibility ranking with contextual boosts
// ---------------------------------------------------------------------------

// ProductMatcher ranks the credit products an applicant is eligible for.
// Stateless and safe for concurrent use.
type ProductMatcher struct{}

// NewProductMatcher creates the matcher.
func NewProductMatcher() *ProductMatcher {
	return &ProductMatcher{}
}

// Match returns every eligible product ordered by boosted priority, highest
// first. Ties keep rule-table order, so the canonical priority ordering
// breaks them. The list is never empty: the fallback product always matches.
func (m *ProductMatcher) Match(f model.ApplicantFeatures) []model.ProductScore {
	scores := make([]model.ProductScore, 0, len(productRules))
	for _, r := range productRules {
		if !r.Eligible(f) {
			continue
		}
		scores = append(scores, model.ProductScore{
			Product:  r.Product,
			Priority: r.BasePriority + m.boost(r.Product, f),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Priority > scores[j].Priority
	})
	return scores
}

// Best returns the top-ranked product for the applicant.
func (m *ProductMatcher) Best(f model.ApplicantFeatures) valueobject.Product {
	return m.Match(f)[0].Product
}

// Top3 returns the top-ranked product and up to three ranked candidates.
// The ranking always contains the top product.
func (m *ProductMatcher) Top3(f model.ApplicantFeatures) (valueobject.Product, []model.ProductScore) {
	ranked := m.Match(f)
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked[0].Product, ranked
}

// boost applies the contextual priority adjustments on top of a rule's base
// priority.
func (m *ProductMatcher) boost(p valueobject.Product, f model.ApplicantFeatures) int {
	b := 0
	switch p {
	case valueobject.ProductEquipmentLease:
		if f.FarmSizeHa > 50 {
			b += 5
		}
	case valueobject.ProductSeedsBNPL, valueobject.ProductFertilizerBNPL:
		if f.FarmType == valueobject.FarmTypeSmallholder {
			b += 3
		}
	case valueobject.ProductInputBundle:
		if f.FarmSizeHa > 10 {
			b += 4
		}
	}
	if f.DeviceTrustScore > 80 {
		b += 2
	}
	return b
}
