package orbital

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type ShellRepo interface {
	Create(dbc dbctx.Context, shells []*types.OrbitalShell) ([]*types.OrbitalShell, error)
	GetByID(dbc dbctx.Context, id int64) (*types.OrbitalShell, error)
	FindContaining(dbc dbctx.Context, altitudeKm float64) (*types.OrbitalShell, error)
}

type shellRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShellRepo(db *gorm.DB, baseLog *logger.Logger) ShellRepo {
	return &shellRepo{db: db, log: baseLog.With("repo", "ShellRepo")}
}

func (r *shellRepo) Create(dbc dbctx.Context, shells []*types.OrbitalShell) ([]*types.OrbitalShell, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(shells) == 0 {
		return []*types.OrbitalShell{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&shells).Error; err != nil {
		return nil, err
	}
	return shells, nil
}

// GetByID returns nil without error when the shell does not exist.
func (r *shellRepo) GetByID(dbc dbctx.Context, id int64) (*types.OrbitalShell, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out types.OrbitalShell
	err := transaction.WithContext(dbc.Ctx).Where("id = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FindContaining picks the riskiest shell whose [min, max) band holds altitudeKm.
func (r *shellRepo) FindContaining(dbc dbctx.Context, altitudeKm float64) (*types.OrbitalShell, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.OrbitalShell
	if err := transaction.WithContext(dbc.Ctx).
		Where("min_altitude_km <= ? AND max_altitude_km > ?", altitudeKm, altitudeKm).
		Order("collision_risk_score DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
