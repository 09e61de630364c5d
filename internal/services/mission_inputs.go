package services

import types "github.com/yungbote/orbital-nexus-backend/internal/domain/mission"

type CreateMissionInput struct {
	Name                      string         `json:"name" validate:"required,min=3,max=255"`
	Description               *string        `json:"description,omitempty" validate:"omitempty,max=1000"`
	MissionType               string         `json:"mission_type" validate:"required,min=3,max=100"`
	Operator                  string         `json:"operator" validate:"required,min=2,max=255"`
	TargetOrbitalShellID      *int64         `json:"target_orbital_shell_id,omitempty" validate:"omitempty,gt=0"`
	SatelliteConfigurationID  *int64         `json:"satellite_configuration_id,omitempty" validate:"omitempty,gt=0"`
	LaunchVehicleID           *int64         `json:"launch_vehicle_id,omitempty" validate:"omitempty,gt=0"`
	PlannedLaunchDate         *string        `json:"planned_launch_date,omitempty" validate:"omitempty,isodate,notpast"`
	MissionDurationYears      *float64       `json:"mission_duration_years,omitempty" validate:"omitempty,gt=0,lte=50"`
	TotalSatellites           int            `json:"total_satellites" validate:"required,gte=1,lte=100000"`
	TotalCostUSD              *float64       `json:"total_cost_usd,omitempty" validate:"omitempty,gt=0,lte=1000000000000"`
	SustainabilityCommitments []string       `json:"sustainability_commitments,omitempty" validate:"omitempty,max=20,dive,max=500"`
	RegulatoryApprovals       map[string]any `json:"regulatory_approvals,omitempty"`
}

// UpdateMissionInput carries only the fields the caller sent. Nil means unchanged.
type UpdateMissionInput struct {
	Name                      *string         `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Description               *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	MissionType               *string         `json:"mission_type,omitempty" validate:"omitempty,min=3,max=100"`
	Operator                  *string         `json:"operator,omitempty" validate:"omitempty,min=2,max=255"`
	TargetOrbitalShellID      *int64          `json:"target_orbital_shell_id,omitempty" validate:"omitempty,gt=0"`
	SatelliteConfigurationID  *int64          `json:"satellite_configuration_id,omitempty" validate:"omitempty,gt=0"`
	LaunchVehicleID           *int64          `json:"launch_vehicle_id,omitempty" validate:"omitempty,gt=0"`
	PlannedLaunchDate         *string         `json:"planned_launch_date,omitempty" validate:"omitempty,isodate,notpast"`
	MissionDurationYears      *float64        `json:"mission_duration_years,omitempty" validate:"omitempty,gt=0,lte=50"`
	TotalSatellites           *int            `json:"total_satellites,omitempty" validate:"omitempty,gte=1,lte=100000"`
	DeployedSatellites        *int            `json:"deployed_satellites,omitempty" validate:"omitempty,gte=0"`
	OperationalSatellites     *int            `json:"operational_satellites,omitempty" validate:"omitempty,gte=0"`
	TotalCostUSD              *float64        `json:"total_cost_usd,omitempty" validate:"omitempty,gt=0,lte=1000000000000"`
	MissionStatus             *types.Status   `json:"mission_status,omitempty" validate:"omitempty,oneof=PLANNING APPROVED ACTIVE_DEPLOYMENT OPERATIONAL DECOMMISSIONING COMPLETED CANCELLED"`
	RiskAssessmentScore       *float64        `json:"risk_assessment_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	SustainabilityCommitments *[]string       `json:"sustainability_commitments,omitempty" validate:"omitempty,max=20,dive,max=500"`
	RegulatoryApprovals       *map[string]any `json:"regulatory_approvals,omitempty"`
}
