package orbital

import "time"

type CollisionEvent struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EventDate            time.Time `gorm:"not null;column:event_date;index" json:"event_date"`
	AltitudeKm           float64   `gorm:"not null;column:altitude_km;index" json:"altitude_km"`
	CollisionProbability float64   `gorm:"not null;column:collision_probability" json:"collision_probability"`
	Object1NoradID       *int      `gorm:"column:object1_norad_id" json:"object1_norad_id,omitempty"`
	Object2NoradID       *int      `gorm:"column:object2_norad_id" json:"object2_norad_id,omitempty"`
	EventType            string    `gorm:"column:event_type" json:"event_type,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CollisionEvent) TableName() string { return "collision_events" }

// EventStats aggregates collision events inside an altitude band and time window.
// AvgProbability and MaxProbability are nil when Count is zero.
type EventStats struct {
	Count          int64    `gorm:"column:event_count"`
	AvgProbability *float64 `gorm:"column:avg_probability"`
	MaxProbability *float64 `gorm:"column:max_probability"`
}
