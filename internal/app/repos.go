package app

import (
	"gorm.io/gorm"

	costrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/cost"
	missionrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/mission"
	orbitalrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/orbital"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type Repos struct {
	Shells          orbitalrepos.ShellRepo
	CollisionEvents orbitalrepos.CollisionEventRepo
	Debris          orbitalrepos.DebrisRepo
	Satellites      orbitalrepos.SatelliteRepo

	CostComponents  costrepos.CostComponentRepo
	InsuranceModels costrepos.InsuranceModelRepo

	Missions         missionrepos.MissionRepo
	SatelliteConfigs missionrepos.SatelliteConfigRepo
	LaunchVehicles   missionrepos.LaunchVehicleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Shells:          orbitalrepos.NewShellRepo(db, log),
		CollisionEvents: orbitalrepos.NewCollisionEventRepo(db, log),
		Debris:          orbitalrepos.NewDebrisRepo(db, log),
		Satellites:      orbitalrepos.NewSatelliteRepo(db, log),

		CostComponents:  costrepos.NewCostComponentRepo(db, log),
		InsuranceModels: costrepos.NewInsuranceModelRepo(db, log),

		Missions:         missionrepos.NewMissionRepo(db, log),
		SatelliteConfigs: missionrepos.NewSatelliteConfigRepo(db, log),
		LaunchVehicles:   missionrepos.NewLaunchVehicleRepo(db, log),
	}
}
