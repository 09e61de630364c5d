package orbital

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type CollisionEventRepo interface {
	Create(dbc dbctx.Context, events []*types.CollisionEvent) ([]*types.CollisionEvent, error)
	StatsInBand(dbc dbctx.Context, minKm, maxKm float64, since time.Time) (types.EventStats, error)
}

type collisionEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCollisionEventRepo(db *gorm.DB, baseLog *logger.Logger) CollisionEventRepo {
	return &collisionEventRepo{db: db, log: baseLog.With("repo", "CollisionEventRepo")}
}

func (r *collisionEventRepo) Create(dbc dbctx.Context, events []*types.CollisionEvent) ([]*types.CollisionEvent, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(events) == 0 {
		return []*types.CollisionEvent{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// StatsInBand aggregates events with altitude in [minKm, maxKm] dated on or after since.
func (r *collisionEventRepo) StatsInBand(dbc dbctx.Context, minKm, maxKm float64, since time.Time) (types.EventStats, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var stats types.EventStats
	err := transaction.WithContext(dbc.Ctx).
		Model(&types.CollisionEvent{}).
		Select("COUNT(*) AS event_count, AVG(collision_probability) AS avg_probability, MAX(collision_probability) AS max_probability").
		Where("altitude_km BETWEEN ? AND ?", minKm, maxKm).
		Where("event_date >= ?", since).
		Scan(&stats).Error
	if err != nil {
		return types.EventStats{}, err
	}
	return stats, nil
}
