package orbital

import "time"

type OperationalStatus string

const (
	StatusOperational    OperationalStatus = "OPERATIONAL"
	StatusDegraded       OperationalStatus = "DEGRADED"
	StatusNonOperational OperationalStatus = "NON_OPERATIONAL"
	StatusDecommissioned OperationalStatus = "DECOMMISSIONED"
)

type ActiveSatellite struct {
	SatelliteID                  int64             `gorm:"primaryKey;autoIncrement;column:satellite_id" json:"satellite_id"`
	Name                         string            `gorm:"not null;column:name" json:"name"`
	Operator                     string            `gorm:"column:operator" json:"operator"`
	CountryOfOrigin              string            `gorm:"column:country_of_origin" json:"country_of_origin"`
	LaunchDate                   *time.Time        `gorm:"column:launch_date;index" json:"launch_date,omitempty"`
	CurrentAltitudeKm            float64           `gorm:"not null;column:current_altitude_km;index" json:"current_altitude_km"`
	CurrentInclinationDeg        *float64          `gorm:"column:current_inclination_deg" json:"current_inclination_deg,omitempty"`
	CurrentEccentricity          *float64          `gorm:"column:current_eccentricity" json:"current_eccentricity,omitempty"`
	OrbitalPeriodMinutes         *float64          `gorm:"column:orbital_period_minutes" json:"orbital_period_minutes,omitempty"`
	Latitude                     *float64          `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude                    *float64          `gorm:"column:longitude" json:"longitude,omitempty"`
	LastPositionUpdate           *time.Time        `gorm:"column:last_position_update" json:"last_position_update,omitempty"`
	OperationalStatus            OperationalStatus `gorm:"not null;column:operational_status;index" json:"operational_status"`
	MissionType                  string            `gorm:"column:mission_type" json:"mission_type"`
	MassKg                       *float64          `gorm:"column:mass_kg" json:"mass_kg,omitempty"`
	PowerWatts                   *float64          `gorm:"column:power_watts" json:"power_watts,omitempty"`
	CollisionAvoidanceCapability *bool             `gorm:"column:collision_avoidance_capability" json:"collision_avoidance_capability,omitempty"`
	PropulsionCapability         *bool             `gorm:"column:propulsion_capability" json:"propulsion_capability,omitempty"`
	FuelRemainingKg              *float64          `gorm:"column:fuel_remaining_kg" json:"fuel_remaining_kg,omitempty"`
	BatteryHealthPercentage      *float64          `gorm:"column:battery_health_percentage" json:"battery_health_percentage,omitempty"`
	CommunicationStatus          string            `gorm:"column:communication_status" json:"communication_status"`
	LastContactDate              *time.Time        `gorm:"column:last_contact_date" json:"last_contact_date,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ActiveSatellite) TableName() string { return "active_satellites" }
