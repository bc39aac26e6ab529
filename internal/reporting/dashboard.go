// Package reporting renders portfolio-level views of scored applicant
// populations for executive review.
package reporting

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/model"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/valueobject"
)

// ScoredRow is one applicant's dashboard-relevant slice of a decision.
type ScoredRow struct {
	FarmType   valueobject.FarmType
	Region     valueobject.Region
	FarmSizeHa float64
	PD         float64
	Tier       valueobject.RiskTier
	Product    valueobject.Product
}

// FromDecision extracts the dashboard fields from a full decision.
func FromDecision(f model.ApplicantFeatures, d model.Decision) ScoredRow {
	return ScoredRow{
		FarmType:   f.FarmType,
		Region:     f.Region,
		FarmSizeHa: f.FarmSizeHa,
		PD:         d.PD,
		Tier:       d.RiskTier,
		Product:    d.Product,
	}
}

// Tier shading and product palette.
var tierColors = map[valueobject.RiskTier]string{
	valueobject.RiskTierLow:     "#2ecc71",
	valueobject.RiskTierMedium:  "#f39c12",
	valueobject.RiskTierHigh:    "#e74c3c",
	valueobject.RiskTierDecline: "#95a5a6",
}

var farmTypeColors = map[valueobject.FarmType]string{
	valueobject.FarmTypeSmallholder: "#e74c3c",
	valueobject.FarmTypeCommercial:  "#2ecc71",
	valueobject.FarmTypeCooperative: "#3498db",
}

var productColors = map[valueobject.Product]string{
	valueobject.ProductSeedsBNPL:      "#2ecc71",
	valueobject.ProductFertilizerBNPL: "#27ae60",
	valueobject.ProductEquipmentLease: "#e67e22",
	valueobject.ProductInputBundle:    "#9b59b6",
	valueobject.ProductCashAdvance:    "#f39c12",
	valueobject.ProductPremiumBNPL:    "#34495e",
}

// Panel geometry.
const (
	panelWidth   = 560
	panelHeight  = 420
	panelPadding = 60
	histBins     = 40
)

// Dashboard renders scored populations as a three-panel SVG plus a text
// summary. Stateless.
type Dashboard struct{}

// NewDashboard creates the renderer.
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// RenderSVG draws the three panels side by side: the PD histogram shaded
// by risk tier, farm size against PD on a log x axis, and the recommended
// product distribution.
func (d *Dashboard) RenderSVG(rows []ScoredRow) string {
	var b strings.Builder
	totalWidth := 3 * panelWidth

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		totalWidth, panelHeight, totalWidth, panelHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="white"/>`)

	d.renderHistogram(&b, rows, 0)
	d.renderScatter(&b, rows, panelWidth)
	d.renderProductBars(&b, rows, 2*panelWidth)

	b.WriteString(`</svg>`)
	return b.String()
}

func (d *Dashboard) renderHistogram(b *strings.Builder, rows []ScoredRow, xOff int) {
	counts := make([]int, histBins)
	for _, r := range rows {
		bin := int(r.PD * histBins)
		if bin >= histBins {
			bin = histBins - 1
		}
		counts[bin]++
	}
	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	plotW := float64(panelWidth - 2*panelPadding)
	plotH := float64(panelHeight - 2*panelPadding)
	binW := plotW / histBins

	d.panelTitle(b, xOff, "Late Payment Probability Distribution")
	for i, c := range counts {
		if c == 0 {
			continue
		}
		center := (float64(i) + 0.5) / histBins
		color := tierColors[tierForPD(center)]
		h := plotH * float64(c) / float64(maxCount)
		x := float64(xOff+panelPadding) + float64(i)*binW
		y := float64(panelHeight-panelPadding) - h
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black" stroke-width="0.5"/>`,
			x, y, binW, h, color)
	}

	// Tier boundary markers.
	for _, threshold := range []float64{0.15, 0.35, 0.50} {
		x := float64(xOff+panelPadding) + plotW*threshold
		fmt.Fprintf(b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="black" stroke-dasharray="4 3"/>`,
			x, panelPadding, x, panelHeight-panelPadding)
	}
	d.axes(b, xOff, "PD", "count")
}

func (d *Dashboard) renderScatter(b *strings.Builder, rows []ScoredRow, xOff int) {
	plotW := float64(panelWidth - 2*panelPadding)
	plotH := float64(panelHeight - 2*panelPadding)

	// Log x axis over the valid farm size range.
	logMin := math.Log10(model.MinFarmSizeHa)
	logMax := math.Log10(model.MaxFarmSizeHa)

	d.panelTitle(b, xOff, "Farm Size vs Payment Risk")
	for _, r := range rows {
		fx := (math.Log10(r.FarmSizeHa) - logMin) / (logMax - logMin)
		x := float64(xOff+panelPadding) + plotW*fx
		y := float64(panelHeight-panelPadding) - plotH*r.PD
		color, ok := farmTypeColors[r.FarmType]
		if !ok {
			color = "#95a5a6"
		}
		fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s" fill-opacity="0.6" stroke="black" stroke-width="0.3"/>`,
			x, y, color)
	}

	for _, threshold := range []float64{0.15, 0.35, 0.50} {
		y := float64(panelHeight-panelPadding) - plotH*threshold
		fmt.Fprintf(b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="gray" stroke-dasharray="4 3"/>`,
			xOff+panelPadding, y, xOff+panelWidth-panelPadding, y)
	}
	d.axes(b, xOff, "farm size (ha, log)", "PD")
}

func (d *Dashboard) renderProductBars(b *strings.Builder, rows []ScoredRow, xOff int) {
	counts := map[valueobject.Product]int{}
	for _, r := range rows {
		counts[r.Product]++
	}
	products := make([]valueobject.Product, 0, len(counts))
	for p := range counts {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if counts[products[i]] != counts[products[j]] {
			return counts[products[i]] > counts[products[j]]
		}
		return products[i] < products[j]
	})

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	plotW := float64(panelWidth - 2*panelPadding)
	rowH := float64(panelHeight-2*panelPadding) / float64(len(valueobject.AllProducts))

	d.panelTitle(b, xOff, "Recommended Product Distribution")
	for i, p := range products {
		w := plotW * float64(counts[p]) / float64(maxCount)
		y := float64(panelPadding) + float64(i)*rowH
		color, ok := productColors[p]
		if !ok {
			color = "#95a5a6"
		}
		fmt.Fprintf(b, `<rect x="%d" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black"/>`,
			xOff+panelPadding, y, w, rowH*0.7, color)
		pct := 100 * float64(counts[p]) / float64(len(rows))
		fmt.Fprintf(b, `<text x="%d" y="%.1f" font-size="11" font-family="sans-serif">%s: %d (%.1f%%)</text>`,
			xOff+panelPadding, y-3, p, counts[p], pct)
	}
}

func (d *Dashboard) panelTitle(b *strings.Builder, xOff int, title string) {
	fmt.Fprintf(b, `<text x="%d" y="30" font-size="14" font-weight="bold" font-family="sans-serif">%s</text>`,
		xOff+panelPadding, title)
}

func (d *Dashboard) axes(b *strings.Builder, xOff int, xLabel, yLabel string) {
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`,
		xOff+panelPadding, panelHeight-panelPadding, xOff+panelWidth-panelPadding, panelHeight-panelPadding)
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="black"/>`,
		xOff+panelPadding, panelPadding, xOff+panelPadding, panelHeight-panelPadding)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="11" font-family="sans-serif">%s</text>`,
		xOff+panelWidth/2, panelHeight-20, xLabel)
	fmt.Fprintf(b, `<text x="%d" y="%d" font-size="11" font-family="sans-serif" transform="rotate(-90 %d %d)">%s</text>`,
		xOff+20, panelHeight/2, xOff+20, panelHeight/2, yLabel)
}

func tierForPD(pd float64) valueobject.RiskTier {
	switch {
	case pd < 0.15:
		return valueobject.RiskTierLow
	case pd < 0.35:
		return valueobject.RiskTierMedium
	case pd < 0.50:
		return valueobject.RiskTierHigh
	default:
		return valueobject.RiskTierDecline
	}
}

// Summary renders the portfolio statistics block printed alongside the
// dashboard.
func (d *Dashboard) Summary(rows []ScoredRow) string {
	var b strings.Builder
	n := len(rows)

	tiers := map[valueobject.RiskTier]int{}
	products := map[valueobject.Product]int{}
	pdSum := 0.0
	approvable := 0
	autoApprove := 0
	pds := make([]float64, 0, n)
	for _, r := range rows {
		tiers[r.Tier]++
		products[r.Product]++
		pdSum += r.PD
		pds = append(pds, r.PD)
		if r.PD < 0.50 {
			approvable++
		}
		if r.PD < 0.15 {
			autoApprove++
		}
	}

	fmt.Fprintf(&b, "Portfolio summary (n=%d)\n", n)
	b.WriteString("Risk tiers:\n")
	for _, tier := range []valueobject.RiskTier{
		valueobject.RiskTierLow, valueobject.RiskTierMedium,
		valueobject.RiskTierHigh, valueobject.RiskTierDecline,
	} {
		fmt.Fprintf(&b, "  %-8s %d\n", tier, tiers[tier])
	}

	b.WriteString("Products:\n")
	for _, p := range valueobject.AllProducts {
		if products[p] > 0 {
			fmt.Fprintf(&b, "  %-16s %d\n", p, products[p])
		}
	}

	if n > 0 {
		sort.Float64s(pds)
		fmt.Fprintf(&b, "Mean PD: %.2f%%\n", 100*pdSum/float64(n))
		fmt.Fprintf(&b, "Median PD: %.2f%%\n", 100*pds[n/2])
		fmt.Fprintf(&b, "Approval rate (PD < 50%%): %.1f%%\n", 100*float64(approvable)/float64(n))
		fmt.Fprintf(&b, "Auto-approve rate (PD < 15%%): %.1f%%\n", 100*float64(autoApprove)/float64(n))
	}
	return b.String()
}
