package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sustainabilityRouter(svc *fakeSustainability) *gin.Engine {
	h := NewSustainabilityHandler(testLog, svc)
	r := newEngine()
	r.POST("/api/sustainability/collision-risk", h.CollisionRisk)
	r.GET("/api/sustainability/debris-density/:altitude", h.DebrisDensity)
	r.POST("/api/sustainability/deorbit-analysis", h.DeorbitAnalysis)
	r.GET("/api/sustainability/active-satellites", h.ActiveSatellites)
	return r
}

func TestCollisionRiskAcceptsZeroInclination(t *testing.T) {
	svc := &fakeSustainability{}
	rec, env := do(t, sustainabilityRouter(svc), http.MethodPost, "/api/sustainability/collision-risk", map[string]any{
		"altitude_km":            550,
		"inclination_deg":        0,
		"satellite_count":        500,
		"mission_duration_years": 5,
	})

	require.Equal(t, http.StatusOK, rec.Code, "errors=%v", env.Errors)
	assert.Equal(t, "Collision risk assessment completed successfully", env.Message)
	require.NotNil(t, svc.collision.InclinationDeg)
	assert.Zero(t, *svc.collision.InclinationDeg)
}

func TestCollisionRiskValidation(t *testing.T) {
	rec, env := do(t, sustainabilityRouter(&fakeSustainability{}), http.MethodPost, "/api/sustainability/collision-risk", map[string]any{
		"altitude_km":             120,
		"satellite_count":         1,
		"mission_duration_years":  51,
		"satellite_size_category": "HUGE",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := fieldMessages(env.Errors)
	assert.Equal(t, "Altitude km must be at least 150", got["altitude_km"])
	assert.Equal(t, "Inclination deg is required", got["inclination_deg"])
	assert.Equal(t, "Mission duration years cannot exceed 50", got["mission_duration_years"])
	assert.Equal(t, "Satellite size category must be one of: SMALL, MEDIUM, LARGE", got["satellite_size_category"])
}

func TestDebrisDensityAltitudeParam(t *testing.T) {
	cases := []struct {
		raw    string
		status int
	}{
		{"abc", http.StatusBadRequest},
		{"NaN", http.StatusBadRequest},
		{"nan", http.StatusBadRequest},
		{"Inf", http.StatusBadRequest},
		{"-Inf", http.StatusBadRequest},
		{"149.9", http.StatusBadRequest},
		{"50001", http.StatusBadRequest},
		{"150", http.StatusOK},
		{"550.5", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			svc := &fakeSustainability{}
			rec, env := do(t, sustainabilityRouter(svc), http.MethodGet, "/api/sustainability/debris-density/"+tc.raw, nil)
			require.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusBadRequest {
				assert.Equal(t, "Invalid altitude parameter", env.Message)
				require.Len(t, env.Errors, 1)
				assert.Equal(t, "altitude", env.Errors[0].Field)
				return
			}
			assert.Equal(t, "Debris density information retrieved successfully", env.Message)
			assert.NotZero(t, svc.altitude)
		})
	}
}

func TestDeorbitAnalysis(t *testing.T) {
	svc := &fakeSustainability{}
	rec, env := do(t, sustainabilityRouter(svc), http.MethodPost, "/api/sustainability/deorbit-analysis", map[string]any{
		"satellite_mass_kg":     260,
		"orbital_altitude_km":   550,
		"propulsion_capability": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deorbit analysis completed successfully", env.Message)
	assert.Equal(t, 260.0, svc.deorbit.SatelliteMassKg)

	rec, env = do(t, sustainabilityRouter(svc), http.MethodPost, "/api/sustainability/deorbit-analysis", map[string]any{
		"satellite_mass_kg":   20000,
		"orbital_altitude_km": 550,
		"satellite_area_m2":   0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := fieldMessages(env.Errors)
	assert.Equal(t, "Satellite mass kg cannot exceed 10000", got["satellite_mass_kg"])
	assert.Equal(t, "Satellite area m2 must be positive", got["satellite_area_m2"])
}

func TestActiveSatellites(t *testing.T) {
	rec, env := do(t, sustainabilityRouter(&fakeSustainability{}), http.MethodGet, "/api/sustainability/active-satellites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Active satellites retrieved successfully", env.Message)
	assert.Contains(t, string(env.Data), `"name":"Sat-7"`)
}
