package mission

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type MissionRepo interface {
	Create(dbc dbctx.Context, m *types.Mission) (*types.Mission, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Mission, error)
	Exists(dbc dbctx.Context, id int64) (bool, error)
	UpdateFields(dbc dbctx.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(dbc dbctx.Context, id int64) (bool, error)
}

type missionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMissionRepo(db *gorm.DB, baseLog *logger.Logger) MissionRepo {
	return &missionRepo{db: db, log: baseLog.With("repo", "MissionRepo")}
}

func (r *missionRepo) Create(dbc dbctx.Context, m *types.Mission) (*types.Mission, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// GetByID loads a mission with the names of its shell, configuration and launch vehicle.
// A missing mission yields nil without error.
func (r *missionRepo) GetByID(dbc dbctx.Context, id int64) (*types.Mission, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Mission
	if err := transaction.WithContext(dbc.Ctx).
		Table("mission_profiles AS mp").
		Select("mp.*, os.name AS orbital_shell_name, sc.name AS satellite_config_name, lv.name AS launch_vehicle_name").
		Joins("LEFT JOIN orbital_shells os ON os.id = mp.target_orbital_shell_id").
		Joins("LEFT JOIN satellite_configurations sc ON sc.id = mp.satellite_configuration_id").
		Joins("LEFT JOIN launch_vehicles lv ON lv.id = mp.launch_vehicle_id").
		Where("mp.id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *missionRepo) Exists(dbc dbctx.Context, id int64) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.Mission{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields applies column updates and stamps updated_at. It reports rows affected.
func (r *missionRepo) UpdateFields(dbc dbctx.Context, id int64, updates map[string]interface{}) (int64, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(updates) == 0 {
		return 0, nil
	}
	updates["updated_at"] = time.Now().UTC()
	res := transaction.WithContext(dbc.Ctx).
		Model(&types.Mission{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *missionRepo) Delete(dbc dbctx.Context, id int64) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Delete(&types.Mission{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
