package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
)

// Handlers exposes the calculation engine over JSON endpoints.
type Handlers struct {
	engine *calculation.Engine
	cache  Cache
}

func NewHandlers(engine *calculation.Engine, cache Cache) *Handlers {
	return &Handlers{engine: engine, cache: cache}
}

// ProjectRequest mirrors domain.ProjectionInput for the wire.
type ProjectRequest struct {
	Principal           decimal.Decimal `json:"principal"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	AnnualRate          decimal.Decimal `json:"annualRate"`
	RiskProfile         string          `json:"riskProfile,omitempty"`
	Years               int             `json:"years"`
}

func (req ProjectRequest) toInput() domain.ProjectionInput {
	rate := req.AnnualRate
	if rate.IsZero() && req.RiskProfile != "" {
		rate = calculation.RateForRiskProfile(domain.RiskProfile(req.RiskProfile))
	}
	return domain.ProjectionInput{
		Principal:           req.Principal,
		MonthlyContribution: req.MonthlyContribution,
		AnnualRate:          rate,
		Years:               req.Years,
	}
}

// Project handles POST /v1/project.
func (h *Handlers) Project(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, calculation.ProjectGrowth(req.toInput()))
}

// ProjectSeries handles POST /v1/project/series.
func (h *Handlers) ProjectSeries(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, calculation.ProjectGrowthSeries(req.toInput()))
}

// AmortizeRequest is the wire input for the loan calculator.
type AmortizeRequest struct {
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate decimal.Decimal `json:"annualRate"`
	TermYears  int             `json:"termYears"`
}

// Amortize handles POST /v1/amortize. Schedules are cached: they are the one
// response large enough to be worth it.
func (h *Handlers) Amortize(w http.ResponseWriter, r *http.Request) {
	var req AmortizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	canonical := fmt.Sprintf("%s|%s|%d", req.Principal.String(), req.AnnualRate.String(), req.TermYears)
	key := CacheKey("amortize", canonical)

	if h.cache != nil {
		if cached, ok := h.cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			fmt.Fprint(w, cached)
			return
		}
	}

	schedule := calculation.Amortize(req.Principal, req.AnnualRate, req.TermYears)

	data, err := json.Marshal(schedule)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), key, string(data)); err != nil {
			h.engine.Logger.Warnf("amortize cache set failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// ProgressRequest is the wire input for the goal evaluator.
type ProgressRequest struct {
	ProjectedValue decimal.Decimal `json:"projectedValue"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
}

// Progress handles POST /v1/progress.
func (h *Handlers) Progress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, calculation.EvaluateProgress(req.ProjectedValue, req.TargetAmount))
}

// HealthScore handles POST /v1/health-score.
func (h *Handlers) HealthScore(w http.ResponseWriter, r *http.Request) {
	var req domain.HealthScoreInput
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, calculation.ScoreHealth(req))
}

// CompareRequest carries a baseline and alternate input set.
type CompareRequest struct {
	Baseline  ProjectRequest `json:"baseline"`
	Alternate ProjectRequest `json:"alternate"`
}

// Compare handles POST /v1/compare.
func (h *Handlers) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, calculation.CompareScenarios(req.Baseline.toInput(), req.Alternate.toInput()))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
