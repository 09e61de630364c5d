package orbital

import "time"

// LargeDebrisThresholdCm is the size above which a fragment counts as large debris.
const LargeDebrisThresholdCm = 10.0

type OrbitalDebris struct {
	ID                int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	NoradID           *int     `gorm:"column:norad_id;uniqueIndex" json:"norad_id,omitempty"`
	CurrentAltitudeKm float64  `gorm:"not null;column:current_altitude_km;index" json:"current_altitude_km"`
	EstimatedSizeCm   *float64 `gorm:"column:estimated_size_cm" json:"estimated_size_cm,omitempty"`
	DebrisType        string   `gorm:"column:debris_type" json:"debris_type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (OrbitalDebris) TableName() string { return "orbital_debris" }

type DebrisCounts struct {
	Total int64 `gorm:"column:debris_count"`
	Large int64 `gorm:"column:large_debris_count"`
}
