package orbital

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type DebrisRepo interface {
	Create(dbc dbctx.Context, debris []*types.OrbitalDebris) ([]*types.OrbitalDebris, error)
	CountsInBand(dbc dbctx.Context, minKm, maxKm float64) (types.DebrisCounts, error)
}

type debrisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDebrisRepo(db *gorm.DB, baseLog *logger.Logger) DebrisRepo {
	return &debrisRepo{db: db, log: baseLog.With("repo", "DebrisRepo")}
}

func (r *debrisRepo) Create(dbc dbctx.Context, debris []*types.OrbitalDebris) ([]*types.OrbitalDebris, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(debris) == 0 {
		return []*types.OrbitalDebris{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&debris).Error; err != nil {
		return nil, err
	}
	return debris, nil
}

func (r *debrisRepo) CountsInBand(dbc dbctx.Context, minKm, maxKm float64) (types.DebrisCounts, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var counts types.DebrisCounts
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.OrbitalDebris{}).
		Select("COUNT(*) AS debris_count, COUNT(CASE WHEN estimated_size_cm > ? THEN 1 END) AS large_debris_count", types.LargeDebrisThresholdCm).
		Where("current_altitude_km BETWEEN ? AND ?", minKm, maxKm).
		Scan(&counts).Error
	if err != nil {
		return types.DebrisCounts{}, err
	}
	return counts, nil
}
