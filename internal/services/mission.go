package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	missionrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/mission"
	orbitalrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/orbital"
	types "github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/ctxutil"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/idgen"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/validate"
)

type MissionService interface {
	Create(ctx context.Context, in CreateMissionInput) (*types.Mission, error)
	Get(ctx context.Context, id int64) (*types.Mission, error)
	Update(ctx context.Context, id int64, in UpdateMissionInput) (*types.Mission, error)
	Delete(ctx context.Context, id int64) error
	Simulate(ctx context.Context, id int64) (*MissionSimulation, error)
	Report(ctx context.Context, id int64) (*MissionReport, error)
	Optimize(ctx context.Context, id int64) (*MissionOptimization, error)
}

type missionService struct {
	db       *gorm.DB
	log      *logger.Logger
	missions missionrepos.MissionRepo
	shells   orbitalrepos.ShellRepo
	configs  missionrepos.SatelliteConfigRepo
	vehicles missionrepos.LaunchVehicleRepo

	// Placeholder analyses draw from rnd; tests pin both.
	rnd func() float64
	now func() time.Time
}

type MissionServiceOption func(*missionService)

func WithMissionRandom(rnd func() float64) MissionServiceOption {
	return func(s *missionService) { s.rnd = rnd }
}

func WithMissionClock(now func() time.Time) MissionServiceOption {
	return func(s *missionService) { s.now = now }
}

func NewMissionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	missions missionrepos.MissionRepo,
	shells orbitalrepos.ShellRepo,
	configs missionrepos.SatelliteConfigRepo,
	vehicles missionrepos.LaunchVehicleRepo,
	opts ...MissionServiceOption,
) MissionService {
	s := &missionService{
		db:       db,
		log:      baseLog.With("service", "MissionService"),
		missions: missions,
		shells:   shells,
		configs:  configs,
		vehicles: vehicles,
		rnd:      rand.Float64,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *missionService) Create(ctx context.Context, in CreateMissionInput) (*types.Mission, error) {
	m := &types.Mission{
		Name:                      in.Name,
		Description:               in.Description,
		MissionType:               in.MissionType,
		Operator:                  in.Operator,
		TargetOrbitalShellID:      in.TargetOrbitalShellID,
		SatelliteConfigurationID:  in.SatelliteConfigurationID,
		LaunchVehicleID:           in.LaunchVehicleID,
		MissionDurationYears:      in.MissionDurationYears,
		TotalSatellites:           in.TotalSatellites,
		TotalCostUSD:              in.TotalCostUSD,
		MissionStatus:             types.StatusPlanning,
		SustainabilityCommitments: jsonColumn(in.SustainabilityCommitments, "[]"),
		RegulatoryApprovals:       jsonColumn(in.RegulatoryApprovals, "{}"),
	}
	if in.PlannedLaunchDate != nil {
		t, err := validate.ParseDate(*in.PlannedLaunchDate)
		if err != nil {
			return nil, apierr.Validation("Validation error", apierr.FieldError{Field: "planned_launch_date", Message: "Planned launch date must be a valid ISO date"})
		}
		m.PlannedLaunchDate = &t
	}

	var out *types.Mission
	err := dbctx.InTx(ctx, s.db, func(dbc dbctx.Context) error {
		if err := s.checkReferences(dbc, in.TargetOrbitalShellID, in.SatelliteConfigurationID, in.LaunchVehicleID); err != nil {
			return err
		}
		created, err := s.missions.Create(dbc, m)
		if err != nil {
			return fmt.Errorf("insert mission: %w", err)
		}
		out, err = s.missions.GetByID(dbc, created.ID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "create mission", err)
	}
	s.log.Info("Mission created", append(ctxutil.LogFields(ctx), "mission_id", out.ID, "mission_type", out.MissionType)...)
	return out, nil
}

func (s *missionService) Get(ctx context.Context, id int64) (*types.Mission, error) {
	m, err := s.missions.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, s.fail(ctx, "get mission", err)
	}
	if m == nil {
		return nil, missionNotFound(id)
	}
	return m, nil
}

func (s *missionService) Update(ctx context.Context, id int64, in UpdateMissionInput) (*types.Mission, error) {
	updates, err := updateColumns(in)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, apierr.Validation("No valid fields provided for update",
			apierr.FieldError{Field: "body", Message: "At least one field must be provided for update"})
	}

	var out *types.Mission
	err = dbctx.InTx(ctx, s.db, func(dbc dbctx.Context) error {
		exists, err := s.missions.Exists(dbc, id)
		if err != nil {
			return err
		}
		if !exists {
			return missionNotFound(id)
		}
		if err := s.checkReferences(dbc, in.TargetOrbitalShellID, in.SatelliteConfigurationID, in.LaunchVehicleID); err != nil {
			return err
		}
		if _, err := s.missions.UpdateFields(dbc, id, updates); err != nil {
			return fmt.Errorf("update mission: %w", err)
		}
		out, err = s.missions.GetByID(dbc, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "update mission", err)
	}
	s.log.Info("Mission updated", append(ctxutil.LogFields(ctx), "mission_id", id, "fields", len(updates))...)
	return out, nil
}

func (s *missionService) Delete(ctx context.Context, id int64) error {
	err := dbctx.InTx(ctx, s.db, func(dbc dbctx.Context) error {
		deleted, err := s.missions.Delete(dbc, id)
		if err != nil {
			return err
		}
		if !deleted {
			return missionNotFound(id)
		}
		return nil
	})
	if err != nil {
		return s.fail(ctx, "delete mission", err)
	}
	s.log.Info("Mission deleted", append(ctxutil.LogFields(ctx), "mission_id", id)...)
	return nil
}

type SimulationResults struct {
	CollisionRiskAssessment    float64 `json:"collision_risk_assessment"`
	OrbitalCapacityUtilization float64 `json:"orbital_capacity_utilization"`
	MissionSuccessProbability  float64 `json:"mission_success_probability"`
	EstimatedDebrisGeneration  int     `json:"estimated_debris_generation"`
}

type MissionSimulation struct {
	MissionID    int64             `json:"mission_id"`
	SimulationID string            `json:"simulation_id"`
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	Results      SimulationResults `json:"results"`
	Timestamp    time.Time         `json:"timestamp"`
}

func (s *missionService) Simulate(ctx context.Context, id int64) (*MissionSimulation, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	now := s.now()
	return &MissionSimulation{
		MissionID:    id,
		SimulationID: idgen.New("sim", now),
		Status:       "success",
		Message:      "Mission simulation completed successfully",
		Results: SimulationResults{
			CollisionRiskAssessment:    s.rnd() * 0.1,
			OrbitalCapacityUtilization: 0.65 + s.rnd()*0.3,
			MissionSuccessProbability:  0.85 + s.rnd()*0.14,
			EstimatedDebrisGeneration:  int(math.Floor(s.rnd() * 5)),
		},
		Timestamp: now,
	}, nil
}

type MissionOverview struct {
	Name                  string       `json:"name"`
	Status                types.Status `json:"status"`
	ProgressPercentage    float64      `json:"progress_percentage"`
	SatellitesDeployed    int          `json:"satellites_deployed"`
	SatellitesOperational int          `json:"satellites_operational"`
}

type FinancialSummary struct {
	TotalBudget      float64 `json:"total_budget"`
	SpentToDate      float64 `json:"spent_to_date"`
	RemainingBudget  float64 `json:"remaining_budget"`
	CostPerSatellite float64 `json:"cost_per_satellite"`
}

type ReportRisk struct {
	OverallRiskScore float64 `json:"overall_risk_score"`
	CollisionRisk    float64 `json:"collision_risk"`
	TechnicalRisk    float64 `json:"technical_risk"`
	RegulatoryRisk   float64 `json:"regulatory_risk"`
}

type SustainabilityMetrics struct {
	DebrisMitigationScore float64 `json:"debris_mitigation_score"`
	EndOfLifePlanning     float64 `json:"end_of_life_planning"`
	EnvironmentalImpact   float64 `json:"environmental_impact"`
}

type MissionReportData struct {
	MissionOverview       MissionOverview       `json:"mission_overview"`
	FinancialSummary      FinancialSummary      `json:"financial_summary"`
	RiskAssessment        ReportRisk            `json:"risk_assessment"`
	SustainabilityMetrics SustainabilityMetrics `json:"sustainability_metrics"`
}

type MissionReport struct {
	MissionID   int64             `json:"mission_id"`
	ReportType  string            `json:"report_type"`
	GeneratedAt time.Time         `json:"generated_at"`
	Data        MissionReportData `json:"data"`
}

func (s *missionService) Report(ctx context.Context, id int64) (*MissionReport, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	progress := m.ProgressPercentage()
	budget := 0.0
	if m.TotalCostUSD != nil {
		budget = *m.TotalCostUSD
	}
	perSatellite := 0.0
	if m.TotalSatellites > 0 {
		perSatellite = math.Floor(budget / float64(m.TotalSatellites))
	}
	overall := s.rnd() * 100
	if m.RiskAssessmentScore != nil && *m.RiskAssessmentScore != 0 {
		overall = *m.RiskAssessmentScore
	}

	return &MissionReport{
		MissionID:   id,
		ReportType:  "summary",
		GeneratedAt: s.now(),
		Data: MissionReportData{
			MissionOverview: MissionOverview{
				Name:                  m.Name,
				Status:                m.MissionStatus,
				ProgressPercentage:    math.Round(progress*100) / 100,
				SatellitesDeployed:    m.DeployedSatellites,
				SatellitesOperational: m.OperationalSatellites,
			},
			FinancialSummary: FinancialSummary{
				TotalBudget:      budget,
				SpentToDate:      math.Floor(budget * progress / 100),
				RemainingBudget:  math.Floor(budget * (100 - progress) / 100),
				CostPerSatellite: perSatellite,
			},
			RiskAssessment: ReportRisk{
				OverallRiskScore: overall,
				CollisionRisk:    s.rnd() * 30,
				TechnicalRisk:    s.rnd() * 25,
				RegulatoryRisk:   s.rnd() * 20,
			},
			SustainabilityMetrics: SustainabilityMetrics{
				DebrisMitigationScore: 75 + s.rnd()*20,
				EndOfLifePlanning:     80 + s.rnd()*15,
				EnvironmentalImpact:   70 + s.rnd()*25,
			},
		},
	}, nil
}

type LaunchWindow struct {
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	CostSavingsUSD float64   `json:"cost_savings_usd"`
}

type ConfigRecommendation struct {
	RecommendedConfigID   int64   `json:"recommended_config_id"`
	EfficiencyImprovement float64 `json:"efficiency_improvement"`
	CostImpactUSD         float64 `json:"cost_impact_usd"`
}

type ShellRecommendation struct {
	RecommendedShellID     int64   `json:"recommended_shell_id"`
	CollisionRiskReduction float64 `json:"collision_risk_reduction"`
	CapacityUtilization    float64 `json:"capacity_utilization"`
}

type VehicleRecommendation struct {
	RecommendedVehicleID   int64   `json:"recommended_vehicle_id"`
	CostSavingsUSD         float64 `json:"cost_savings_usd"`
	ReliabilityImprovement float64 `json:"reliability_improvement"`
}

type OptimizationRecommendations struct {
	OptimalLaunchWindow    LaunchWindow          `json:"optimal_launch_window"`
	SatelliteConfiguration ConfigRecommendation  `json:"satellite_configuration"`
	OrbitalShell           ShellRecommendation   `json:"orbital_shell"`
	LaunchVehicle          VehicleRecommendation `json:"launch_vehicle"`
}

type MissionOptimization struct {
	MissionID       int64                       `json:"mission_id"`
	OptimizationID  string                      `json:"optimization_id"`
	Status          string                      `json:"status"`
	Message         string                      `json:"message"`
	Recommendations OptimizationRecommendations `json:"recommendations"`
	Timestamp       time.Time                   `json:"timestamp"`
}

func (s *missionService) Optimize(ctx context.Context, id int64) (*MissionOptimization, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	now := s.now()
	day := 24 * time.Hour
	return &MissionOptimization{
		MissionID:      id,
		OptimizationID: idgen.New("opt", now),
		Status:         "success",
		Message:        "Mission optimization analysis completed successfully",
		Recommendations: OptimizationRecommendations{
			OptimalLaunchWindow: LaunchWindow{
				StartDate:      now.Add(30 * day),
				EndDate:        now.Add(90 * day),
				CostSavingsUSD: math.Floor(s.rnd()*5_000_000) + 1_000_000,
			},
			SatelliteConfiguration: ConfigRecommendation{
				RecommendedConfigID:   int64(math.Floor(s.rnd()*10)) + 1,
				EfficiencyImprovement: s.rnd()*15 + 5,
				CostImpactUSD:         math.Floor(s.rnd()*2_000_000) - 1_000_000,
			},
			OrbitalShell: ShellRecommendation{
				RecommendedShellID:     int64(math.Floor(s.rnd()*5)) + 1,
				CollisionRiskReduction: s.rnd()*20 + 10,
				CapacityUtilization:    s.rnd()*30 + 60,
			},
			LaunchVehicle: VehicleRecommendation{
				RecommendedVehicleID:   int64(math.Floor(s.rnd()*8)) + 1,
				CostSavingsUSD:         math.Floor(s.rnd()*10_000_000) + 2_000_000,
				ReliabilityImprovement: s.rnd()*5 + 2,
			},
		},
		Timestamp: now,
	}, nil
}

// checkReferences verifies every referenced row inside the caller's transaction.
func (s *missionService) checkReferences(dbc dbctx.Context, shellID, configID, vehicleID *int64) error {
	if shellID != nil {
		shell, err := s.shells.GetByID(dbc, *shellID)
		if err != nil {
			return err
		}
		if shell == nil {
			return apierr.NotFound("Orbital shell with ID %d not found", *shellID)
		}
	}
	if configID != nil {
		ok, err := s.configs.Exists(dbc, *configID)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("Satellite configuration with ID %d not found", *configID)
		}
	}
	if vehicleID != nil {
		ok, err := s.vehicles.ExistsActive(dbc, *vehicleID)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("Active launch vehicle with ID %d not found", *vehicleID)
		}
	}
	return nil
}

func (s *missionService) fail(ctx context.Context, op string, err error) error {
	if apierr.KindOf(err) == apierr.KindInternal {
		s.log.Error("Mission operation failed", append(ctxutil.LogFields(ctx), "op", op, "error", err)...)
		return fmt.Errorf("%s: %w", op, err)
	}
	return err
}

func missionNotFound(id int64) error {
	return apierr.NotFound("Mission with ID %d not found", id)
}

// updateColumns maps the provided fields onto mission_profiles columns.
func updateColumns(in UpdateMissionInput) (map[string]interface{}, error) {
	u := map[string]interface{}{}
	if in.Name != nil {
		u["mission_name"] = *in.Name
	}
	if in.Description != nil {
		u["description"] = *in.Description
	}
	if in.MissionType != nil {
		u["mission_type"] = *in.MissionType
	}
	if in.Operator != nil {
		u["mission_operator"] = *in.Operator
	}
	if in.TargetOrbitalShellID != nil {
		u["target_orbital_shell_id"] = *in.TargetOrbitalShellID
	}
	if in.SatelliteConfigurationID != nil {
		u["satellite_configuration_id"] = *in.SatelliteConfigurationID
	}
	if in.LaunchVehicleID != nil {
		u["launch_vehicle_id"] = *in.LaunchVehicleID
	}
	if in.PlannedLaunchDate != nil {
		t, err := validate.ParseDate(*in.PlannedLaunchDate)
		if err != nil {
			return nil, apierr.Validation("Validation error", apierr.FieldError{Field: "planned_launch_date", Message: "Planned launch date must be a valid ISO date"})
		}
		u["launch_campaign_start"] = t
	}
	if in.MissionDurationYears != nil {
		u["mission_duration_years"] = *in.MissionDurationYears
	}
	if in.TotalSatellites != nil {
		u["planned_satellites"] = *in.TotalSatellites
	}
	if in.DeployedSatellites != nil {
		u["deployed_satellites"] = *in.DeployedSatellites
	}
	if in.OperationalSatellites != nil {
		u["operational_satellites"] = *in.OperationalSatellites
	}
	if in.TotalCostUSD != nil {
		u["total_mission_cost_usd"] = *in.TotalCostUSD
	}
	if in.MissionStatus != nil {
		u["mission_status"] = string(*in.MissionStatus)
	}
	if in.RiskAssessmentScore != nil {
		u["risk_assessment_score"] = *in.RiskAssessmentScore
	}
	if in.SustainabilityCommitments != nil {
		u["sustainability_commitments"] = jsonColumn(*in.SustainabilityCommitments, "[]")
	}
	if in.RegulatoryApprovals != nil {
		u["regulatory_approvals"] = jsonColumn(*in.RegulatoryApprovals, "{}")
	}
	return u, nil
}

func jsonColumn(v any, empty string) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil || string(raw) == "null" {
		return datatypes.JSON(empty)
	}
	return datatypes.JSON(raw)
}
