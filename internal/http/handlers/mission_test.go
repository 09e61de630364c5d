package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/http/response"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
)

func missionRouter(svc *fakeMissions) *gin.Engine {
	h := NewMissionHandler(testLog, svc)
	r := newEngine()
	r.POST("/api/missions/create", h.Create)
	r.GET("/api/missions/:id", h.Get)
	r.PUT("/api/missions/:id/update", h.Update)
	r.DELETE("/api/missions/:id", h.Delete)
	r.POST("/api/missions/:id/simulate", h.Simulate)
	r.GET("/api/missions/:id/report", h.Report)
	r.POST("/api/missions/:id/optimize", h.Optimize)
	return r
}

func TestMissionCreate(t *testing.T) {
	svc := &fakeMissions{mission: &types.Mission{ID: 3, Name: "Aurora", MissionStatus: types.StatusPlanning}}
	rec, env := do(t, missionRouter(svc), http.MethodPost, "/api/missions/create", map[string]any{
		"name":             "Aurora",
		"mission_type":     "Communications",
		"operator":         "Orbital Co",
		"total_satellites": 60,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Mission created successfully", env.Message)
	assert.Equal(t, 60, svc.created.TotalSatellites)

	var m types.Mission
	require.NoError(t, json.Unmarshal(env.Data, &m))
	assert.Equal(t, int64(3), m.ID)
	assert.Equal(t, types.StatusPlanning, m.MissionStatus)
}

func TestMissionCreateValidation(t *testing.T) {
	svc := &fakeMissions{}
	rec, env := do(t, missionRouter(svc), http.MethodPost, "/api/missions/create", map[string]any{
		"mission_type":     "Co",
		"operator":         "Orbital Co",
		"total_satellites": 0,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation error", env.Message)
	got := fieldMessages(env.Errors)
	assert.Equal(t, "Name is required", got["name"])
	assert.Equal(t, "Mission type must be at least 3 characters long", got["mission_type"])
	assert.Equal(t, "Total satellites is required", got["total_satellites"])
	assert.Zero(t, svc.calls)
}

func TestMissionCreateRejectsMalformedBody(t *testing.T) {
	svc := &fakeMissions{}
	for _, body := range []string{"", "{not json"} {
		rec, env := do(t, missionRouter(svc), http.MethodPost, "/api/missions/create", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body=%q", body)
		assert.Equal(t, "Validation error", env.Message)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "body", env.Errors[0].Field)
	}
	assert.Zero(t, svc.calls)
}

func TestMissionIDMustBePositiveInteger(t *testing.T) {
	svc := &fakeMissions{}
	r := missionRouter(svc)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/missions/abc"},
		{http.MethodGet, "/api/missions/0"},
		{http.MethodDelete, "/api/missions/-4"},
		{http.MethodPut, "/api/missions/1.5/update"},
		{http.MethodPost, "/api/missions/x/simulate"},
		{http.MethodGet, "/api/missions/x/report"},
		{http.MethodPost, "/api/missions/x/optimize"},
	}
	for _, tc := range cases {
		rec, env := do(t, r, tc.method, tc.path, map[string]any{"name": "Aurora"})
		require.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		assert.Equal(t, "Invalid mission ID", env.Message, tc.path)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "id", env.Errors[0].Field)
	}
	assert.Zero(t, svc.calls)
}

func TestMissionGetNotFound(t *testing.T) {
	svc := &fakeMissions{err: apierr.NotFound("Mission with ID %d not found", 99)}
	rec, env := do(t, missionRouter(svc), http.MethodGet, "/api/missions/99", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Mission with ID 99 not found", env.Message)
	assert.Equal(t, int64(99), svc.lastID)
}

func TestMissionUpdatePassesOnlySentFields(t *testing.T) {
	svc := &fakeMissions{mission: &types.Mission{ID: 5, DeployedSatellites: 12}}
	rec, env := do(t, missionRouter(svc), http.MethodPut, "/api/missions/5/update", map[string]any{
		"deployed_satellites": 12,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mission updated successfully", env.Message)
	require.NotNil(t, svc.updated.DeployedSatellites)
	assert.Equal(t, 12, *svc.updated.DeployedSatellites)
	assert.Nil(t, svc.updated.Name)
	assert.Nil(t, svc.updated.MissionStatus)
}

func TestMissionUpdateRejectsUnknownStatus(t *testing.T) {
	svc := &fakeMissions{}
	rec, env := do(t, missionRouter(svc), http.MethodPut, "/api/missions/5/update", map[string]any{
		"mission_status": "LAUNCHED",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldMessages(env.Errors)["mission_status"], "must be one of: PLANNING")
	assert.Zero(t, svc.calls)
}

func TestMissionDelete(t *testing.T) {
	svc := &fakeMissions{}
	rec, env := do(t, missionRouter(svc), http.MethodDelete, "/api/missions/8", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mission deleted successfully", env.Message)
	assert.Empty(t, env.Data)
	assert.Equal(t, int64(8), svc.lastID)
}

func TestMissionAnalyses(t *testing.T) {
	svc := &fakeMissions{}
	r := missionRouter(svc)
	cases := []struct {
		method string
		path   string
		msg    string
	}{
		{http.MethodPost, "/api/missions/2/simulate", "Mission simulation completed successfully"},
		{http.MethodGet, "/api/missions/2/report", "Mission report generated successfully"},
		{http.MethodPost, "/api/missions/2/optimize", "Mission optimization completed successfully"},
	}
	for _, tc := range cases {
		rec, env := do(t, r, tc.method, tc.path, nil)
		require.Equal(t, http.StatusOK, rec.Code, tc.path)
		assert.Equal(t, tc.msg, env.Message)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, float64(2), data["mission_id"])
	}
}

func TestInternalErrorsHideCause(t *testing.T) {
	svc := &fakeMissions{err: errors.New("connection refused")}

	rec, env := do(t, missionRouter(svc), http.MethodGet, "/api/missions/1", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", env.Message)
	assert.Empty(t, env.Details)

	response.ExposeDetails = true
	t.Cleanup(func() { response.ExposeDetails = false })

	rec, env = do(t, missionRouter(svc), http.MethodGet, "/api/missions/1", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "connection refused", env.Details)
}
