package mission

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type SatelliteConfigRepo interface {
	Create(dbc dbctx.Context, cfgs []*types.SatelliteConfiguration) ([]*types.SatelliteConfiguration, error)
	Exists(dbc dbctx.Context, id int64) (bool, error)
}

type satelliteConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSatelliteConfigRepo(db *gorm.DB, baseLog *logger.Logger) SatelliteConfigRepo {
	return &satelliteConfigRepo{db: db, log: baseLog.With("repo", "SatelliteConfigRepo")}
}

func (r *satelliteConfigRepo) Create(dbc dbctx.Context, cfgs []*types.SatelliteConfiguration) ([]*types.SatelliteConfiguration, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(cfgs) == 0 {
		return []*types.SatelliteConfiguration{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&cfgs).Error; err != nil {
		return nil, err
	}
	return cfgs, nil
}

func (r *satelliteConfigRepo) Exists(dbc dbctx.Context, id int64) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.SatelliteConfiguration{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type LaunchVehicleRepo interface {
	Create(dbc dbctx.Context, vehicles []*types.LaunchVehicle) ([]*types.LaunchVehicle, error)
	ExistsActive(dbc dbctx.Context, id int64) (bool, error)
}

type launchVehicleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLaunchVehicleRepo(db *gorm.DB, baseLog *logger.Logger) LaunchVehicleRepo {
	return &launchVehicleRepo{db: db, log: baseLog.With("repo", "LaunchVehicleRepo")}
}

func (r *launchVehicleRepo) Create(dbc dbctx.Context, vehicles []*types.LaunchVehicle) ([]*types.LaunchVehicle, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(vehicles) == 0 {
		return []*types.LaunchVehicle{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ExistsActive reports whether the vehicle exists and is still offered.
func (r *launchVehicleRepo) ExistsActive(dbc dbctx.Context, id int64) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.LaunchVehicle{}).
		Where("id = ? AND active_status = ?", id, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
