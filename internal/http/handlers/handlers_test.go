package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	costtypes "github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	types "github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/scoring"
	"github.com/yungbote/orbital-nexus-backend/internal/services"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  []apierr.FieldError `json:"errors"`
	Details string              `json:"details"`
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body=%s", rec.Body.String())
	return rec, env
}

func fieldMessages(errs []apierr.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field] = fe.Message
	}
	return out
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type fakeMissions struct {
	calls   int
	lastID  int64
	created services.CreateMissionInput
	updated services.UpdateMissionInput
	mission *types.Mission
	err     error
}

func (f *fakeMissions) Create(_ context.Context, in services.CreateMissionInput) (*types.Mission, error) {
	f.calls++
	f.created = in
	return f.mission, f.err
}

func (f *fakeMissions) Get(_ context.Context, id int64) (*types.Mission, error) {
	f.calls++
	f.lastID = id
	return f.mission, f.err
}

func (f *fakeMissions) Update(_ context.Context, id int64, in services.UpdateMissionInput) (*types.Mission, error) {
	f.calls++
	f.lastID = id
	f.updated = in
	return f.mission, f.err
}

func (f *fakeMissions) Delete(_ context.Context, id int64) error {
	f.calls++
	f.lastID = id
	return f.err
}

func (f *fakeMissions) Simulate(_ context.Context, id int64) (*services.MissionSimulation, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &services.MissionSimulation{SimulationID: "sim_1", MissionID: id}, nil
}

func (f *fakeMissions) Report(_ context.Context, id int64) (*services.MissionReport, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &services.MissionReport{MissionID: id, ReportType: "summary"}, nil
}

func (f *fakeMissions) Optimize(_ context.Context, id int64) (*services.MissionOptimization, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &services.MissionOptimization{OptimizationID: "opt_1", MissionID: id}, nil
}

type fakeCosts struct {
	estimateIn services.CostEstimateInput
	quoteIn    services.InsuranceQuoteInput
	err        error
}

func (f *fakeCosts) Components(context.Context) ([]*costtypes.CostComponent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*costtypes.CostComponent{{ID: 1, ComponentName: "Bus", ComponentCategory: "MANUFACTURING"}}, nil
}

func (f *fakeCosts) Estimate(_ context.Context, in services.CostEstimateInput) (*scoring.CostEstimate, error) {
	f.estimateIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &scoring.CostEstimate{TotalCostUSD: 1000, CostPerSatelliteUSD: 1000 / float64(in.SatelliteCount)}, nil
}

func (f *fakeCosts) QuoteInsurance(_ context.Context, in services.InsuranceQuoteInput) (*scoring.InsuranceQuote, error) {
	f.quoteIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &scoring.InsuranceQuote{QuoteID: "quote_1", CoverageType: in.CoverageType}, nil
}

type fakeSustainability struct {
	altitude  float64
	collision services.CollisionRiskInput
	deorbit   services.DeorbitInput
	err       error
}

func (f *fakeSustainability) AssessCollisionRisk(_ context.Context, in services.CollisionRiskInput) (*scoring.CollisionAssessment, error) {
	f.collision = in
	if f.err != nil {
		return nil, f.err
	}
	return &scoring.CollisionAssessment{RiskAssessmentID: "risk_1", RiskLevel: scoring.RiskMedium}, nil
}

func (f *fakeSustainability) DebrisDensity(_ context.Context, altitudeKm float64) (*scoring.DebrisDensity, error) {
	f.altitude = altitudeKm
	if f.err != nil {
		return nil, f.err
	}
	return &scoring.DebrisDensity{AltitudeKm: altitudeKm}, nil
}

func (f *fakeSustainability) AnalyzeDeorbit(_ context.Context, in services.DeorbitInput) (*scoring.DeorbitAnalysis, error) {
	f.deorbit = in
	if f.err != nil {
		return nil, f.err
	}
	return &scoring.DeorbitAnalysis{AnalysisID: "deorbit_1"}, nil
}

func (f *fakeSustainability) ActiveSatellites(context.Context) ([]services.SatelliteView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []services.SatelliteView{{ID: 7, Name: "Sat-7"}}, nil
}

var testLog = logger.Nop()
