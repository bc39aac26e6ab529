// Command datagen writes a labeled synthetic applicant dataset as CSV for
// offline validation and dashboard rendering.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/synthetic"
	"github.com/Ismat-Samadov/BNPL-scoring/pkg/observability"
)

func main() {
	var (
		n    = flag.Int("n", 1000, "number of applicants to generate")
		seed = flag.Int64("seed", synthetic.DefaultSeed, "random seed")
		out  = flag.String("out", "synthetic_applicants.csv", "output CSV path")
	)
	flag.Parse()

	logger := observability.InitLogger(observability.LogConfig{Level: "info", Format: "text"})
	slog.SetDefault(logger)

	rows := synthetic.NewGenerator(*seed).Generate(*n)

	f, err := os.Create(*out)
	if err != nil {
		logger.Error("failed to create output file", "path", *out, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := synthetic.WriteCSV(f, rows); err != nil {
		logger.Error("failed to write dataset", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("dataset written", "path", *out, "rows", len(rows), "seed", *seed)
}
