package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/services"
)

type Services struct {
	Missions       services.MissionService
	Costs          services.CostService
	Sustainability services.SustainabilityService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Missions: services.NewMissionService(db, log,
			r.Missions,
			r.Shells,
			r.SatelliteConfigs,
			r.LaunchVehicles,
		),
		Costs: services.NewCostService(db, log,
			r.CostComponents,
			r.InsuranceModels,
		),
		Sustainability: services.NewSustainabilityService(db, log,
			r.Shells,
			r.CollisionEvents,
			r.Debris,
			r.Satellites,
		),
	}
}
