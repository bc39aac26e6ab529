package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/dto"
	"github.com/Ismat-Samadov/BNPL-scoring/internal/application/usecase"
)

// ---------------------------------------------------------------------------
// ScoringHandler – REST surface of the decision pipeline
// ---------------------------------------------------------------------------

// ScoringHandler exposes the scoring endpoints over HTTP.
type ScoringHandler struct {
	evaluate  *usecase.EvaluateApplicantUseCase
	recommend *usecase.RecommendProductUseCase
	batch     *usecase.BatchEvaluateUseCase
	logger    *slog.Logger

	decisions metric.Int64Counter
}

// NewScoringHandler creates the HTTP handler and registers its metrics on
// the given meter.
func NewScoringHandler(
	evaluate *usecase.EvaluateApplicantUseCase,
	recommend *usecase.RecommendProductUseCase,
	batch *usecase.BatchEvaluateUseCase,
	meter metric.Meter,
	logger *slog.Logger,
) (*ScoringHandler, error) {
	decisions, err := meter.Int64Counter("scoring_decisions_total",
		metric.WithDescription("Count of scoring decisions by risk tier and outcome"))
	if err != nil {
		return nil, err
	}
	return &ScoringHandler{
		evaluate:  evaluate,
		recommend: recommend,
		batch:     batch,
		logger:    logger,
		decisions: decisions,
	}, nil
}

// RegisterRoutes attaches the scoring routes to the given mux.
func (h *ScoringHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.root)
	mux.HandleFunc("POST /score", h.score)
	mux.HandleFunc("POST /recommend_product", h.recommendProduct)
	mux.HandleFunc("POST /batch_score", h.batchScore)
}

func (h *ScoringHandler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "scoring-service",
		"endpoints": []string{
			"POST /score",
			"POST /recommend_product",
			"POST /batch_score",
			"GET /health",
			"GET /healthz",
			"GET /readyz",
		},
	})
}

func (h *ScoringHandler) score(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplicantProfile
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.evaluate.Execute(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}

	h.countDecision(r.Context(), resp.RiskTier, resp.Outcome)
	writeJSON(w, http.StatusOK, resp)
}

func (h *ScoringHandler) recommendProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplicantProfile
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.recommend.Execute(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ScoringHandler) batchScore(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchScoreRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.batch.Execute(r.Context(), req)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}

	for _, result := range resp.Results {
		h.countDecision(r.Context(), result.RiskTier, result.Outcome)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ScoringHandler) countDecision(ctx context.Context, tier, outcome string) {
	h.decisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("risk_tier", tier),
		attribute.String("outcome", outcome),
	))
}

// writeUseCaseError maps validation failures onto 422 and everything else
// onto 500.
func (h *ScoringHandler) writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrInvalidApplicant) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "scoring request failed",
		"path", r.URL.Path,
		"error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
