package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	costtypes "github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
)

func costRouter(svc *fakeCosts) *gin.Engine {
	h := NewCostHandler(testLog, svc)
	r := newEngine()
	r.POST("/api/calculator/estimate", h.Estimate)
	r.GET("/api/calculator/components", h.Components)
	r.POST("/api/calculator/insurance-quote", h.InsuranceQuote)
	return r
}

func TestCostEstimate(t *testing.T) {
	svc := &fakeCosts{}
	rec, env := do(t, costRouter(svc), http.MethodPost, "/api/calculator/estimate", map[string]any{
		"mission_type":                "Communications",
		"satellite_count":             60,
		"insurance_coverage_required": true,
		"cost_categories":             []string{"LAUNCH", "INSURANCE"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cost estimate generated successfully", env.Message)
	assert.Equal(t, 60, svc.estimateIn.SatelliteCount)
	assert.True(t, svc.estimateIn.InsuranceRequired)
	assert.Equal(t, []string{"LAUNCH", "INSURANCE"}, svc.estimateIn.CostCategories)
}

func TestCostEstimateValidation(t *testing.T) {
	svc := &fakeCosts{}
	rec, env := do(t, costRouter(svc), http.MethodPost, "/api/calculator/estimate", map[string]any{
		"mission_type":        "Communications",
		"satellite_count":     200000,
		"satellite_mass_kg":   0,
		"orbital_altitude_km": 100,
		"cost_categories":     []string{"LAUNCH", "marketing"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := fieldMessages(env.Errors)
	assert.Equal(t, "Satellite count cannot exceed 100000", got["satellite_count"])
	assert.Equal(t, "Satellite mass kg must be positive", got["satellite_mass_kg"])
	assert.Equal(t, "Orbital altitude km must be at least 150", got["orbital_altitude_km"])
	assert.Contains(t, got["cost_categories[1]"], "must be one of: DEVELOPMENT")
}

func TestCostComponents(t *testing.T) {
	rec, env := do(t, costRouter(&fakeCosts{}), http.MethodGet, "/api/calculator/components", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cost components retrieved successfully", env.Message)
	assert.Contains(t, string(env.Data), `"component_name":"Bus"`)
}

func TestInsuranceQuote(t *testing.T) {
	svc := &fakeCosts{}
	rec, env := do(t, costRouter(svc), http.MethodPost, "/api/calculator/insurance-quote", map[string]any{
		"coverage_type":           "LAUNCH",
		"satellite_value_usd":     50000000,
		"mission_duration_months": 60,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Insurance quote generated successfully", env.Message)
	assert.Equal(t, costtypes.CoverageType("LAUNCH"), svc.quoteIn.CoverageType)
}

func TestInsuranceQuoteErrors(t *testing.T) {
	rec, env := do(t, costRouter(&fakeCosts{}), http.MethodPost, "/api/calculator/insurance-quote", map[string]any{
		"coverage_type":           "WEATHER",
		"satellite_value_usd":     50000000,
		"mission_duration_months": 601,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := fieldMessages(env.Errors)
	assert.Contains(t, got["coverage_type"], "must be one of: PRE_LAUNCH")
	assert.Equal(t, "Mission duration months cannot exceed 600", got["mission_duration_months"])

	svc := &fakeCosts{err: apierr.NotFound("No insurance model found for coverage type LAUNCH and satellite value $%s", "900000000000")}
	rec, env = do(t, costRouter(svc), http.MethodPost, "/api/calculator/insurance-quote", map[string]any{
		"coverage_type":           "LAUNCH",
		"satellite_value_usd":     900000000000,
		"mission_duration_months": 12,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, env.Message, "No insurance model found")
}
