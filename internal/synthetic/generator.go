// Package synthetic generates labeled applicant datasets for offline
// validation of the decision pipeline. All rows are marked SYNTHETIC and
// carry no real applicant data.
package synthetic

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/service"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// DefaultSeed keeps generated datasets reproducible across runs.
const DefaultSeed = 42

// Row is one generated applicant plus its ground-truth product label. The
// label comes from the shared rule table, independently of the matcher's
// boost logic, so matcher accuracy can be measured against it.
type Row struct {
	Features model.ApplicantFeatures
	Label    valueobject.Product
}

// Generator produces reproducible synthetic applicant populations.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator from a seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

var (
	regionChoices = []valueobject.Region{
		valueobject.RegionNorth, valueobject.RegionSouth, valueobject.RegionEast,
		valueobject.RegionWest, valueobject.RegionCentral,
	}
	regionWeights = []float64{0.25, 0.20, 0.25, 0.15, 0.15}

	farmTypeChoices = []valueobject.FarmType{
		valueobject.FarmTypeSmallholder, valueobject.FarmTypeCommercial, valueobject.FarmTypeCooperative,
	}
	farmTypeWeights = []float64{0.60, 0.25, 0.15}

	cropChoices = []valueobject.CropType{
		valueobject.CropTypeMaize, valueobject.CropTypeRice, valueobject.CropTypeVegetables,
		valueobject.CropTypeLivestock, valueobject.CropTypeMixed, valueobject.CropTypeHorticulture,
	}
)

// Generate produces n labeled rows.
func (g *Generator) Generate(n int) []Row {
	rows := make([]Row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, g.row(fmt.Sprintf("SYNTHETIC_%04d", i)))
	}
	return rows
}

func (g *Generator) row(userID string) Row {
	region := weightedChoice(g.rng, regionChoices, regionWeights)
	farmType := weightedChoice(g.rng, farmTypeChoices, farmTypeWeights)
	crop := cropChoices[g.rng.Intn(len(cropChoices))]

	// Farm size: log-normal base scaled by operation type.
	sizeMultiplier := 1.5
	switch farmType {
	case valueobject.FarmTypeSmallholder:
		sizeMultiplier = 0.3
	case valueobject.FarmTypeCommercial:
		sizeMultiplier = 3.0
	}
	farmSize := clamp(g.logNormal(2.0, 1.5)*sizeMultiplier, 0.5, 500.0)

	experience := int(clamp(g.gamma(3, 4), 0, 40))

	// Income correlates with farm size and experience, with noise.
	baseIncome := 5_000 + farmSize*800 + float64(experience)*500
	income := clamp(baseIncome*g.logNormal(0, 0.4), 5_000, 500_000)

	// Cash inflows over the last 90 days, up to three months of income.
	inflows := clamp(income*g.beta(2, 3)*3, 0, 1_000_000)

	baseOrder := 1_000 + farmSize*200
	aov := clamp(baseOrder*g.logNormal(0, 0.5), 1_000, 200_000)

	// Trust scores skew high, defaults skew to zero.
	deviceTrust := clamp(g.beta(6, 2)*100, 0, 100)
	identity := clamp(g.beta(7, 2)*100, 0, 100)
	defaults := int(clamp(float64(g.poisson(g.beta(1, 9)*2)), 0, 5))

	features, err := model.ReconstructApplicantFeatures(userID,
		region, farmType, crop,
		farmSize, experience, income, inflows, aov,
		deviceTrust, identity, defaults)
	if err != nil {
		// Income is clamped to a positive range, so this cannot happen.
		panic(err)
	}

	return Row{
		Features: features,
		Label:    service.PreferredProduct(features),
	}
}

// ---------------------------------------------------------------------------
// Samplers
// ---------------------------------------------------------------------------

func weightedChoice[T any](rng *rand.Rand, choices []T, weights []float64) T {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

func (g *Generator) logNormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*g.rng.NormFloat64())
}

// gamma samples via Marsaglia-Tsang; shape is assumed >= 1 here.
func (g *Generator) gamma(shape, scale float64) float64 {
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		x := g.rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := g.rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// beta samples as a ratio of gamma variates. Shapes below 1 are boosted via
// the standard power transform.
func (g *Generator) beta(a, b float64) float64 {
	x := g.gammaAnyShape(a)
	y := g.gammaAnyShape(b)
	return x / (x + y)
}

func (g *Generator) gammaAnyShape(shape float64) float64 {
	if shape >= 1 {
		return g.gamma(shape, 1)
	}
	// Boost the shape and correct with a uniform power.
	return g.gamma(shape+1, 1) * math.Pow(g.rng.Float64(), 1/shape)
}

// poisson samples via Knuth's multiplication method; the rates used here
// are tiny so the loop stays short.
func (g *Generator) poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= g.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ---------------------------------------------------------------------------
// CSV export
// ---------------------------------------------------------------------------

// CSVHeader is the column order used by WriteCSV.
var CSVHeader = []string{
	"user_id", "region", "farm_type", "crop_type",
	"farm_size_ha", "years_experience", "monthly_income_est",
	"recent_cash_inflows", "avg_order_value", "device_trust_score",
	"identity_consistency", "prior_defaults", "liquidity_ratio",
	"true_preferred_product",
}

// WriteCSV renders rows in the dataset interchange format.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		f := r.Features
		record := []string{
			f.UserID,
			f.Region.String(),
			f.FarmType.String(),
			f.CropType.String(),
			formatFloat(f.FarmSizeHa),
			strconv.Itoa(f.YearsExperience),
			formatFloat(f.MonthlyIncomeEst),
			formatFloat(f.RecentCashInflows),
			formatFloat(f.AvgOrderValue),
			formatFloat(f.DeviceTrustScore),
			formatFloat(f.IdentityConsistency),
			strconv.Itoa(f.PriorDefaults),
			formatFloat(f.LiquidityRatio),
			r.Label.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", f.UserID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
