package mission

import "time"

type SatelliteConfiguration struct {
	ID         int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string   `gorm:"not null;column:name" json:"name"`
	MassKg     *float64 `gorm:"column:mass_kg" json:"mass_kg,omitempty"`
	PowerWatts *float64 `gorm:"column:power_watts" json:"power_watts,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SatelliteConfiguration) TableName() string { return "satellite_configurations" }

type LaunchVehicle struct {
	ID                   int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string   `gorm:"not null;column:name" json:"name"`
	Provider             string   `gorm:"column:provider" json:"provider"`
	PayloadCapacityLeoKg *float64 `gorm:"column:payload_capacity_leo_kg" json:"payload_capacity_leo_kg,omitempty"`
	CostPerLaunchUSD     *float64 `gorm:"column:cost_per_launch_usd" json:"cost_per_launch_usd,omitempty"`
	ActiveStatus         bool     `gorm:"not null;column:active_status" json:"active_status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (LaunchVehicle) TableName() string { return "launch_vehicles" }
