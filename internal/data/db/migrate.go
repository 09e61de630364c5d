package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		// Orbital environment
		&orbital.OrbitalShell{},
		&orbital.CollisionEvent{},
		&orbital.OrbitalDebris{},
		&orbital.ActiveSatellite{},

		// Cost catalogue
		&cost.CostComponent{},
		&cost.InsuranceModel{},

		// Missions
		&mission.SatelliteConfiguration{},
		&mission.LaunchVehicle{},
		&mission.Mission{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
