package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	costrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/cost"
	types "github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/ctxutil"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/idgen"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/scoring"
)

type CostEstimateInput struct {
	MissionType          string   `json:"mission_type" validate:"required,min=3,max=100"`
	SatelliteCount       int      `json:"satellite_count" validate:"required,gte=1,lte=100000"`
	SatelliteMassKg      *float64 `json:"satellite_mass_kg,omitempty" validate:"omitempty,gt=0,lte=10000"`
	MissionDurationYears *float64 `json:"mission_duration_years,omitempty" validate:"omitempty,gt=0,lte=50"`
	OrbitalAltitudeKm    *float64 `json:"orbital_altitude_km,omitempty" validate:"omitempty,gte=150,lte=50000"`
	LaunchVehicleType    *string  `json:"launch_vehicle_type,omitempty" validate:"omitempty,max=100"`
	InsuranceRequired    bool     `json:"insurance_coverage_required"`
	CostCategories       []string `json:"cost_categories,omitempty" validate:"omitempty,dive,oneof=DEVELOPMENT MANUFACTURING LAUNCH OPERATIONS INSURANCE DEORBIT REGULATORY"`
}

type InsuranceQuoteInput struct {
	CoverageType          types.CoverageType `json:"coverage_type" validate:"required,oneof=PRE_LAUNCH LAUNCH IN_ORBIT_LIFE THIRD_PARTY_LIABILITY COMPREHENSIVE"`
	SatelliteValueUSD     float64            `json:"satellite_value_usd" validate:"required,gt=0,lte=1000000000000"`
	MissionDurationMonths int                `json:"mission_duration_months" validate:"required,gte=1,lte=600"`
	OrbitalAltitudeKm     *float64           `json:"orbital_altitude_km,omitempty" validate:"omitempty,gte=150,lte=50000"`
	LaunchVehicleType     *string            `json:"launch_vehicle_type,omitempty" validate:"omitempty,max=100"`
	CollisionAvoidance    *bool              `json:"collision_avoidance_capability,omitempty"`
}

type CostService interface {
	Components(ctx context.Context) ([]*types.CostComponent, error)
	Estimate(ctx context.Context, in CostEstimateInput) (*scoring.CostEstimate, error)
	QuoteInsurance(ctx context.Context, in InsuranceQuoteInput) (*scoring.InsuranceQuote, error)
}

type costService struct {
	db         *gorm.DB
	log        *logger.Logger
	components costrepos.CostComponentRepo
	models     costrepos.InsuranceModelRepo
	now        func() time.Time
}

func NewCostService(db *gorm.DB, baseLog *logger.Logger, components costrepos.CostComponentRepo, models costrepos.InsuranceModelRepo) CostService {
	return &costService{
		db:         db,
		log:        baseLog.With("service", "CostService"),
		components: components,
		models:     models,
		now:        time.Now,
	}
}

func (s *costService) Components(ctx context.Context) ([]*types.CostComponent, error) {
	out, err := s.components.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		s.log.Error("List cost components failed", append(ctxutil.LogFields(ctx), "error", err)...)
		return nil, fmt.Errorf("list cost components: %w", err)
	}
	return out, nil
}

func (s *costService) Estimate(ctx context.Context, in CostEstimateInput) (*scoring.CostEstimate, error) {
	components, err := s.components.ListForMission(dbctx.Context{Ctx: ctx}, in.MissionType, in.CostCategories)
	if err != nil {
		s.log.Error("Load cost components failed", append(ctxutil.LogFields(ctx), "mission_type", in.MissionType, "error", err)...)
		return nil, fmt.Errorf("load cost components: %w", err)
	}
	est := scoring.Estimate(scoring.EstimateInput{
		MissionType:          in.MissionType,
		SatelliteCount:       in.SatelliteCount,
		SatelliteMassKg:      in.SatelliteMassKg,
		MissionDurationYears: in.MissionDurationYears,
		InsuranceRequired:    in.InsuranceRequired,
	}, components)
	s.log.Debug("Cost estimate generated",
		append(ctxutil.LogFields(ctx), "mission_type", in.MissionType, "components", len(components), "total_cost_usd", est.TotalCostUSD)...)
	return &est, nil
}

func (s *costService) QuoteInsurance(ctx context.Context, in InsuranceQuoteInput) (*scoring.InsuranceQuote, error) {
	model, err := s.models.FindCheapestMatch(dbctx.Context{Ctx: ctx}, in.CoverageType, in.SatelliteValueUSD)
	if err != nil {
		s.log.Error("Find insurance model failed", append(ctxutil.LogFields(ctx), "coverage_type", in.CoverageType, "error", err)...)
		return nil, fmt.Errorf("find insurance model: %w", err)
	}
	if model == nil {
		return nil, apierr.NotFound("No insurance model found for coverage type %s and satellite value $%s",
			in.CoverageType, strconv.FormatFloat(in.SatelliteValueUSD, 'f', -1, 64))
	}
	now := s.now()
	q := scoring.Quote(model, scoring.QuoteInput{
		CoverageType:          in.CoverageType,
		SatelliteValueUSD:     in.SatelliteValueUSD,
		MissionDurationMonths: in.MissionDurationMonths,
		OrbitalAltitudeKm:     in.OrbitalAltitudeKm,
		LaunchVehicleType:     in.LaunchVehicleType,
		CollisionAvoidance:    in.CollisionAvoidance,
	})
	q.QuoteID = idgen.New("quote", now)
	q.ValidUntil = now.Add(scoring.QuoteValidity)
	return &q, nil
}
