// Command dashboard scores a synthetic population and renders the
// three-panel portfolio SVG plus a text summary.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/usecase"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/domain/service"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/infrastructure/adapter"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/reporting"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/synthetic"
	"github.com/Ismat-Samadov/BNPL-scoring/pkg/observability"
)

func main() {
	var (
		n    = flag.Int("n", 1000, "number of applicants to score")
		seed = flag.Int64("seed", synthetic.DefaultSeed, "random seed")
		out  = flag.String("out", "bnpl_dashboard.svg", "output SVG path")
	)
	flag.Parse()

	logger := observability.InitLogger(observability.LogConfig{Level: "info", Format: "text"})
	slog.SetDefault(logger)

	evaluate := usecase.NewEvaluateApplicantUseCase(
		service.NewRiskModel(),
		service.NewCalibrator(),
		service.NewProductMatcher(),
		service.NewPolicyEngine(),
		service.NewExplainer(),
		adapter.NewNoopEventPublisher(logger),
		"tenant-agri-offline",
	)

	rows := synthetic.NewGenerator(*seed).Generate(*n)
	scored := make([]reporting.ScoredRow, 0, len(rows))
	for _, r := range rows {
		decision := evaluate.Decide(r.Features)
		scored = append(scored, reporting.FromDecision(r.Features, decision))
	}

	dash := reporting.NewDashboard()
	if err := os.WriteFile(*out, []byte(dash.RenderSVG(scored)), 0o644); err != nil {
		logger.Error("failed to write dashboard", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Print(dash.Summary(scored))
	logger.Info("dashboard written", "path", *out, "rows", len(scored))
}
