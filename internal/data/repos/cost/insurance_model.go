package cost

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type InsuranceModelRepo interface {
	Create(dbc dbctx.Context, models []*types.InsuranceModel) ([]*types.InsuranceModel, error)
	FindCheapestMatch(dbc dbctx.Context, coverage types.CoverageType, satelliteValueUSD float64) (*types.InsuranceModel, error)
}

type insuranceModelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInsuranceModelRepo(db *gorm.DB, baseLog *logger.Logger) InsuranceModelRepo {
	return &insuranceModelRepo{db: db, log: baseLog.With("repo", "InsuranceModelRepo")}
}

func (r *insuranceModelRepo) Create(dbc dbctx.Context, models []*types.InsuranceModel) ([]*types.InsuranceModel, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(models) == 0 {
		return []*types.InsuranceModel{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// FindCheapestMatch returns the active model for coverage with the lowest base rate whose
// value bounds (NULL meaning open) contain satelliteValueUSD, or nil when none match.
func (r *insuranceModelRepo) FindCheapestMatch(dbc dbctx.Context, coverage types.CoverageType, satelliteValueUSD float64) (*types.InsuranceModel, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.InsuranceModel
	if err := transaction.WithContext(dbc.Ctx).
		Where("coverage_type = ?", coverage).
		Where("active_status = ?", true).
		Where("(minimum_satellite_value_usd IS NULL OR minimum_satellite_value_usd <= ?)", satelliteValueUSD).
		Where("(maximum_satellite_value_usd IS NULL OR maximum_satellite_value_usd >= ?)", satelliteValueUSD).
		Order("base_premium_rate ASC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
