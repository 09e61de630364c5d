package orbital

import "time"

type DensityLevel string

const (
	DensityLow      DensityLevel = "LOW"
	DensityMedium   DensityLevel = "MEDIUM"
	DensityHigh     DensityLevel = "HIGH"
	DensityCritical DensityLevel = "CRITICAL"
)

// OrbitalShell is a named altitude band. The band is half-open: [MinAltitudeKm, MaxAltitudeKm).
type OrbitalShell struct {
	ID                 int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string       `gorm:"not null;column:name" json:"name"`
	MinAltitudeKm      float64      `gorm:"not null;column:min_altitude_km;index:idx_shell_altitude,priority:1" json:"min_altitude_km"`
	MaxAltitudeKm      float64      `gorm:"not null;column:max_altitude_km;index:idx_shell_altitude,priority:2" json:"max_altitude_km"`
	InclinationDeg     *float64     `gorm:"column:inclination_deg" json:"inclination_deg,omitempty"`
	DebrisDensityLevel DensityLevel `gorm:"not null;column:debris_density_level;default:'MEDIUM'" json:"debris_density_level"`
	CollisionRiskScore float64      `gorm:"not null;column:collision_risk_score;default:0" json:"collision_risk_score"`
	CapacityLimit      *int         `gorm:"column:capacity_limit" json:"capacity_limit,omitempty"`
	CurrentUtilization *float64     `gorm:"column:current_utilization" json:"current_utilization,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (OrbitalShell) TableName() string { return "orbital_shells" }
