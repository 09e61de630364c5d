package orbital

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type SatelliteRepo interface {
	Create(dbc dbctx.Context, sats []*types.ActiveSatellite) ([]*types.ActiveSatellite, error)
	CountInBand(dbc dbctx.Context, minKm, maxKm float64, status types.OperationalStatus) (int64, error)
	ListByStatuses(dbc dbctx.Context, statuses []types.OperationalStatus, limit int) ([]*types.ActiveSatellite, error)
}

type satelliteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSatelliteRepo(db *gorm.DB, baseLog *logger.Logger) SatelliteRepo {
	return &satelliteRepo{db: db, log: baseLog.With("repo", "SatelliteRepo")}
}

func (r *satelliteRepo) Create(dbc dbctx.Context, sats []*types.ActiveSatellite) ([]*types.ActiveSatellite, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(sats) == 0 {
		return []*types.ActiveSatellite{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&sats).Error; err != nil {
		return nil, err
	}
	return sats, nil
}

func (r *satelliteRepo) CountInBand(dbc dbctx.Context, minKm, maxKm float64, status types.OperationalStatus) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.ActiveSatellite{}).
		Where("current_altitude_km BETWEEN ? AND ?", minKm, maxKm).
		Where("operational_status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByStatuses returns the most recently launched satellites first.
func (r *satelliteRepo) ListByStatuses(dbc dbctx.Context, statuses []types.OperationalStatus, limit int) ([]*types.ActiveSatellite, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.ActiveSatellite
	if len(statuses) == 0 {
		return out, nil
	}
	q := transaction.WithContext(dbc.Ctx).
		Where("operational_status IN ?", statuses).
		Order("launch_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
