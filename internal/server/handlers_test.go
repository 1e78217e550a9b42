package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*httptest.Server, *MemoryCache) {
	t.Helper()
	cache := NewMemoryCache()
	handlers := NewHandlers(calculation.NewEngine(), cache)
	mux, limiter := NewMux(handlers, DefaultOptions())
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, cache
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestProjectEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/project", map[string]any{
		"principal":           10000,
		"monthlyContribution": 500,
		"annualRate":          0.08,
		"years":               10,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.ProjectionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.InDelta(t, 113062.27, result.TotalValue.InexactFloat64(), 5.0)
}

func TestProjectEndpoint_RiskProfileFallback(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/project", map[string]any{
		"principal":   1000,
		"riskProfile": "conservative",
		"years":       1,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.ProjectionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.InDelta(t, 1060, result.TotalValue.InexactFloat64(), 0.01, "conservative profile maps to 6%%")
}

func TestProjectSeriesEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/project/series", map[string]any{
		"principal": 1000,
		"years":     5,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var series []domain.YearProjection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&series))
	assert.Len(t, series, 6)
}

func TestAmortizeEndpoint_CachesSchedule(t *testing.T) {
	srv, cache := testServer(t)

	payload := map[string]any{"principal": 25000, "annualRate": 0.07, "termYears": 5}

	first := postJSON(t, srv.URL+"/v1/amortize", payload)
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Empty(t, first.Header.Get("X-Cache"))

	var schedule domain.AmortizationSchedule
	require.NoError(t, json.NewDecoder(first.Body).Decode(&schedule))
	assert.Len(t, schedule.Schedule, 60)
	assert.InDelta(t, 495.03, schedule.MonthlyPayment.InexactFloat64(), 0.05)

	second := postJSON(t, srv.URL+"/v1/amortize", payload)
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "hit", second.Header.Get("X-Cache"), "identical input should be served from cache")

	// The cache holds exactly one entry for the repeated input.
	cache.mu.RLock()
	assert.Len(t, cache.data, 1)
	cache.mu.RUnlock()
}

func TestAmortizeEndpoint_DegenerateInputIsOK(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/amortize", map[string]any{"principal": 0, "termYears": 0})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "degenerate input is zeroed, not rejected")

	var schedule domain.AmortizationSchedule
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schedule))
	assert.Empty(t, schedule.Schedule)
}

func TestProgressEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/progress", map[string]any{
		"projectedValue": 150000,
		"targetAmount":   100000,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress domain.GoalProgress
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&progress))
	assert.Equal(t, "100", progress.Percentage.String())
	assert.Equal(t, "50000", progress.SurplusOrShortfall.String())
}

func TestHealthScoreEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/health-score", map[string]any{
		"savingsRatePercent":  25,
		"goalProgressPercent": 80,
		"emergencyFundMonths": 6,
		"streakDays":          30,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.HealthScoreResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.BandExcellent, result.Band)
}

func TestCompareEndpoint(t *testing.T) {
	srv, _ := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/compare", map[string]any{
		"baseline":  map[string]any{"monthlyContribution": 500, "annualRate": 0.08, "years": 10},
		"alternate": map[string]any{"monthlyContribution": 600, "annualRate": 0.08, "years": 10},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comparison domain.ScenarioComparison
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&comparison))
	assert.True(t, comparison.Delta.IsPositive())
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/v1/project")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestInvalidBody(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/v1/project", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"), "third request in the window is rejected")
	assert.True(t, limiter.Allow("10.0.0.2"), "buckets are per client")
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("amortize", "25000|0.07|5")
	b := CacheKey("amortize", "25000|0.07|5")
	c := CacheKey("amortize", "25000|0.07|6")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
