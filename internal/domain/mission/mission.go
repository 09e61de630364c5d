package mission

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPlanning         Status = "PLANNING"
	StatusApproved         Status = "APPROVED"
	StatusActiveDeployment Status = "ACTIVE_DEPLOYMENT"
	StatusOperational      Status = "OPERATIONAL"
	StatusDecommissioning  Status = "DECOMMISSIONING"
	StatusCompleted        Status = "COMPLETED"
	StatusCancelled        Status = "CANCELLED"
)

// Mission is stored in mission_profiles. Column names keep the historical schema.
type Mission struct {
	ID                        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                      string         `gorm:"not null;column:mission_name" json:"name"`
	Description               *string        `gorm:"column:description" json:"description,omitempty"`
	MissionType               string         `gorm:"not null;column:mission_type" json:"mission_type"`
	Operator                  string         `gorm:"not null;column:mission_operator" json:"operator"`
	TargetOrbitalShellID      *int64         `gorm:"column:target_orbital_shell_id;index" json:"target_orbital_shell_id,omitempty"`
	SatelliteConfigurationID  *int64         `gorm:"column:satellite_configuration_id" json:"satellite_configuration_id,omitempty"`
	LaunchVehicleID           *int64         `gorm:"column:launch_vehicle_id" json:"launch_vehicle_id,omitempty"`
	PlannedLaunchDate         *time.Time     `gorm:"column:launch_campaign_start" json:"planned_launch_date,omitempty"`
	MissionDurationYears      *float64       `gorm:"column:mission_duration_years" json:"mission_duration_years,omitempty"`
	TotalSatellites           int            `gorm:"not null;column:planned_satellites" json:"total_satellites"`
	DeployedSatellites        int            `gorm:"not null;column:deployed_satellites" json:"deployed_satellites"`
	OperationalSatellites     int            `gorm:"not null;column:operational_satellites" json:"operational_satellites"`
	TotalCostUSD              *float64       `gorm:"column:total_mission_cost_usd" json:"total_cost_usd,omitempty"`
	MissionStatus             Status         `gorm:"not null;column:mission_status;index" json:"mission_status"`
	RiskAssessmentScore       *float64       `gorm:"column:risk_assessment_score" json:"risk_assessment_score,omitempty"`
	SustainabilityCommitments datatypes.JSON `gorm:"column:sustainability_commitments" json:"sustainability_commitments"`
	RegulatoryApprovals       datatypes.JSON `gorm:"column:regulatory_approvals" json:"regulatory_approvals"`

	// Read-only names resolved by the detail query.
	OrbitalShellName    *string `gorm:"->;column:orbital_shell_name;-:migration" json:"orbital_shell_name,omitempty"`
	SatelliteConfigName *string `gorm:"->;column:satellite_config_name;-:migration" json:"satellite_config_name,omitempty"`
	LaunchVehicleName   *string `gorm:"->;column:launch_vehicle_name;-:migration" json:"launch_vehicle_name,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Mission) TableName() string { return "mission_profiles" }

// ProgressPercentage is deployed over planned satellites, 0 when nothing is planned.
func (m *Mission) ProgressPercentage() float64 {
	if m.TotalSatellites <= 0 {
		return 0
	}
	return float64(m.DeployedSatellites) / float64(m.TotalSatellites) * 100
}
