package cost

import (
	"strings"

	"gorm.io/gorm"

	types "github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type CostComponentRepo interface {
	Create(dbc dbctx.Context, components []*types.CostComponent) ([]*types.CostComponent, error)
	List(dbc dbctx.Context) ([]*types.CostComponent, error)
	ListForMission(dbc dbctx.Context, missionType string, categories []string) ([]*types.CostComponent, error)
}

type costComponentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCostComponentRepo(db *gorm.DB, baseLog *logger.Logger) CostComponentRepo {
	return &costComponentRepo{db: db, log: baseLog.With("repo", "CostComponentRepo")}
}

func (r *costComponentRepo) Create(dbc dbctx.Context, components []*types.CostComponent) ([]*types.CostComponent, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(components) == 0 {
		return []*types.CostComponent{}, nil
	}
	for _, c := range components {
		if c.CostDrivers == nil {
			c.CostDrivers = types.StringList()
		}
		if c.ApplicableMissionTypes == nil {
			c.ApplicableMissionTypes = types.StringList()
		}
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (r *costComponentRepo) List(dbc dbctx.Context) ([]*types.CostComponent, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.CostComponent
	if err := transaction.WithContext(dbc.Ctx).
		Order("component_category ASC").
		Order("component_name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListForMission returns components in the given categories (all when empty) that list
// missionType among their applicable types. Category matching ignores case.
func (r *costComponentRepo) ListForMission(dbc dbctx.Context, missionType string, categories []string) ([]*types.CostComponent, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(dbc.Ctx).Model(&types.CostComponent{})
	if len(categories) > 0 {
		upper := make([]string, 0, len(categories))
		for _, c := range categories {
			upper = append(upper, strings.ToUpper(strings.TrimSpace(c)))
		}
		q = q.Where("UPPER(component_category) IN ?", upper)
	}
	var rows []*types.CostComponent
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	// applicable_mission_types is a JSON column; SQLite has no array operators, so the
	// membership filter runs here for both drivers.
	out := make([]*types.CostComponent, 0, len(rows))
	for _, c := range rows {
		if c.AppliesTo(missionType) {
			out = append(out, c)
		}
	}
	return out, nil
}
