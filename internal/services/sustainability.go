package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	orbitalrepos "github.com/yungbote/orbital-nexus-backend/internal/data/repos/orbital"
	types "github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/ctxutil"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/dbctx"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/idgen"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/scoring"
)

const (
	collisionWindowKm     = 50
	debrisWindowKm        = 100
	activeSatellitesLimit = 500
)

type CollisionRiskInput struct {
	AltitudeKm           float64  `json:"altitude_km" validate:"required,gte=150,lte=50000"`
	InclinationDeg       *float64 `json:"inclination_deg" validate:"required,gte=0,lte=180"`
	SatelliteCount       int      `json:"satellite_count" validate:"required,gte=1,lte=100000"`
	MissionDurationYears float64  `json:"mission_duration_years" validate:"required,gt=0,lte=50"`
	CollisionAvoidance   *bool    `json:"collision_avoidance_capability,omitempty"`
	SizeCategory         *string  `json:"satellite_size_category,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
}

type DeorbitInput struct {
	SatelliteMassKg      float64  `json:"satellite_mass_kg" validate:"required,gt=0,lte=10000"`
	OrbitalAltitudeKm    float64  `json:"orbital_altitude_km" validate:"required,gte=150,lte=50000"`
	SatelliteAreaM2      *float64 `json:"satellite_area_m2,omitempty" validate:"omitempty,gt=0,lte=1000"`
	PropulsionCapability *bool    `json:"propulsion_capability,omitempty"`
	TargetTimelineYears  *float64 `json:"target_deorbit_timeline_years,omitempty" validate:"omitempty,gt=0,lte=50"`
}

type Position struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	AltitudeKm float64 `json:"altitude_km"`
}

type Velocity struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type OrbitalParameters struct {
	InclinationDeg       float64 `json:"inclination_deg"`
	Eccentricity         float64 `json:"eccentricity"`
	OrbitalPeriodMinutes float64 `json:"orbital_period_minutes"`
}

type SatelliteView struct {
	ID                           int64                   `json:"id"`
	Name                         string                  `json:"name"`
	Operator                     string                  `json:"operator"`
	CountryOfOrigin              string                  `json:"country_of_origin"`
	LaunchDate                   *time.Time              `json:"launch_date"`
	Position                     Position                `json:"position"`
	Velocity                     Velocity                `json:"velocity"`
	OrbitalParameters            OrbitalParameters       `json:"orbital_parameters"`
	OperationalStatus            types.OperationalStatus `json:"operational_status"`
	MissionType                  string                  `json:"mission_type"`
	MassKg                       float64                 `json:"mass_kg"`
	PowerWatts                   float64                 `json:"power_watts"`
	CollisionAvoidanceCapability bool                    `json:"collision_avoidance_capability"`
	PropulsionCapability         bool                    `json:"propulsion_capability"`
	FuelRemainingKg              *float64                `json:"fuel_remaining_kg"`
	BatteryHealthPercentage      *float64                `json:"battery_health_percentage"`
	CommunicationStatus          string                  `json:"communication_status"`
	LastContactDate              *time.Time              `json:"last_contact_date"`
	LastPositionUpdate           *time.Time              `json:"last_position_update"`
}

type SustainabilityService interface {
	AssessCollisionRisk(ctx context.Context, in CollisionRiskInput) (*scoring.CollisionAssessment, error)
	DebrisDensity(ctx context.Context, altitudeKm float64) (*scoring.DebrisDensity, error)
	AnalyzeDeorbit(ctx context.Context, in DeorbitInput) (*scoring.DeorbitAnalysis, error)
	ActiveSatellites(ctx context.Context) ([]SatelliteView, error)
}

type sustainabilityService struct {
	db         *gorm.DB
	log        *logger.Logger
	shells     orbitalrepos.ShellRepo
	events     orbitalrepos.CollisionEventRepo
	debris     orbitalrepos.DebrisRepo
	satellites orbitalrepos.SatelliteRepo
	rnd        func() float64
	now        func() time.Time
}

func NewSustainabilityService(
	db *gorm.DB,
	baseLog *logger.Logger,
	shells orbitalrepos.ShellRepo,
	events orbitalrepos.CollisionEventRepo,
	debris orbitalrepos.DebrisRepo,
	satellites orbitalrepos.SatelliteRepo,
) SustainabilityService {
	return &sustainabilityService{
		db:         db,
		log:        baseLog.With("service", "SustainabilityService"),
		shells:     shells,
		events:     events,
		debris:     debris,
		satellites: satellites,
		rnd:        rand.Float64,
		now:        time.Now,
	}
}

func (s *sustainabilityService) AssessCollisionRisk(ctx context.Context, in CollisionRiskInput) (*scoring.CollisionAssessment, error) {
	now := s.now()
	minKm, maxKm := in.AltitudeKm-collisionWindowKm, in.AltitudeKm+collisionWindowKm

	var (
		shell  *types.OrbitalShell
		stats  types.EventStats
		nearby int64
	)
	g, gctx := errgroup.WithContext(ctx)
	dbc := dbctx.Context{Ctx: gctx}
	g.Go(func() error {
		var err error
		shell, err = s.shells.FindContaining(dbc, in.AltitudeKm)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.events.StatsInBand(dbc, minKm, maxKm, now.AddDate(-1, 0, 0))
		return err
	})
	g.Go(func() error {
		var err error
		nearby, err = s.satellites.CountInBand(dbc, minKm, maxKm, types.StatusOperational)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Collision risk inputs failed", append(ctxutil.LogFields(ctx), "altitude_km", in.AltitudeKm, "error", err)...)
		return nil, fmt.Errorf("load collision risk inputs: %w", err)
	}

	c := scoring.CollisionContext{Events: stats, NearbySatellites: nearby}
	if shell != nil {
		c.DensityLevel = shell.DebrisDensityLevel
	}
	size := ""
	if in.SizeCategory != nil {
		size = *in.SizeCategory
	}
	out := scoring.AssessCollision(scoring.CollisionInput{
		AltitudeKm:           in.AltitudeKm,
		InclinationDeg:       valueOr(in.InclinationDeg),
		SatelliteCount:       in.SatelliteCount,
		MissionDurationYears: in.MissionDurationYears,
		CollisionAvoidance:   in.CollisionAvoidance,
		SizeCategory:         size,
	}, c)
	out.RiskAssessmentID = idgen.New("risk", now)
	out.AssessmentTimestamp = now
	return &out, nil
}

func (s *sustainabilityService) DebrisDensity(ctx context.Context, altitudeKm float64) (*scoring.DebrisDensity, error) {
	now := s.now()
	minKm, maxKm := altitudeKm-debrisWindowKm, altitudeKm+debrisWindowKm

	var (
		shell      *types.OrbitalShell
		stats      types.EventStats
		satellites int64
		debris     types.DebrisCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	dbc := dbctx.Context{Ctx: gctx}
	g.Go(func() error {
		var err error
		shell, err = s.shells.FindContaining(dbc, altitudeKm)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.events.StatsInBand(dbc, minKm, maxKm, now.AddDate(-1, 0, 0))
		return err
	})
	g.Go(func() error {
		var err error
		satellites, err = s.satellites.CountInBand(dbc, minKm, maxKm, types.StatusOperational)
		return err
	})
	g.Go(func() error {
		var err error
		debris, err = s.debris.CountsInBand(dbc, minKm, maxKm)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("Debris density inputs failed", append(ctxutil.LogFields(ctx), "altitude_km", altitudeKm, "error", err)...)
		return nil, fmt.Errorf("load debris density inputs: %w", err)
	}

	in := scoring.DebrisInput{
		AltitudeKm:            altitudeKm,
		EventCount:            stats.Count,
		OperationalSatellites: satellites,
		Debris:                debris,
	}
	if shell != nil {
		in.ShellLevel = shell.DebrisDensityLevel
	}
	out := scoring.SummarizeDebris(in)
	return &out, nil
}

func (s *sustainabilityService) AnalyzeDeorbit(ctx context.Context, in DeorbitInput) (*scoring.DeorbitAnalysis, error) {
	out := scoring.AnalyzeDeorbit(scoring.DeorbitInput{
		SatelliteMassKg:      in.SatelliteMassKg,
		OrbitalAltitudeKm:    in.OrbitalAltitudeKm,
		SatelliteAreaM2:      in.SatelliteAreaM2,
		PropulsionCapability: in.PropulsionCapability,
		TargetTimelineYears:  in.TargetTimelineYears,
	})
	out.AnalysisID = idgen.New("deorbit", s.now())
	s.log.Debug("Deorbit analysis generated",
		append(ctxutil.LogFields(ctx), "altitude_km", in.OrbitalAltitudeKm, "recommended", out.RecommendedOption)...)
	return &out, nil
}

func (s *sustainabilityService) ActiveSatellites(ctx context.Context) ([]SatelliteView, error) {
	rows, err := s.satellites.ListByStatuses(dbctx.Context{Ctx: ctx},
		[]types.OperationalStatus{types.StatusOperational, types.StatusDegraded}, activeSatellitesLimit)
	if err != nil {
		s.log.Error("List active satellites failed", append(ctxutil.LogFields(ctx), "error", err)...)
		return nil, fmt.Errorf("list active satellites: %w", err)
	}
	out := make([]SatelliteView, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.view(row))
	}
	return out, nil
}

// view flattens a row for the map. The velocity is a placeholder until ephemerides are stored.
func (s *sustainabilityService) view(r *types.ActiveSatellite) SatelliteView {
	return SatelliteView{
		ID:              r.SatelliteID,
		Name:            r.Name,
		Operator:        r.Operator,
		CountryOfOrigin: r.CountryOfOrigin,
		LaunchDate:      r.LaunchDate,
		Position: Position{
			Latitude:   valueOr(r.Latitude),
			Longitude:  valueOr(r.Longitude),
			AltitudeKm: r.CurrentAltitudeKm,
		},
		Velocity: Velocity{
			X: s.rnd()*8 - 4,
			Y: s.rnd()*8 - 4,
			Z: s.rnd()*8 - 4,
		},
		OrbitalParameters: OrbitalParameters{
			InclinationDeg:       valueOr(r.CurrentInclinationDeg),
			Eccentricity:         valueOr(r.CurrentEccentricity),
			OrbitalPeriodMinutes: valueOr(r.OrbitalPeriodMinutes),
		},
		OperationalStatus:            r.OperationalStatus,
		MissionType:                  r.MissionType,
		MassKg:                       valueOr(r.MassKg),
		PowerWatts:                   valueOr(r.PowerWatts),
		CollisionAvoidanceCapability: r.CollisionAvoidanceCapability != nil && *r.CollisionAvoidanceCapability,
		PropulsionCapability:         r.PropulsionCapability != nil && *r.PropulsionCapability,
		FuelRemainingKg:              nonZero(r.FuelRemainingKg),
		BatteryHealthPercentage:      nonZero(r.BatteryHealthPercentage),
		CommunicationStatus:          r.CommunicationStatus,
		LastContactDate:              r.LastContactDate,
		LastPositionUpdate:           r.LastPositionUpdate,
	}
}

func valueOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// nonZero reports a stored zero as unknown.
func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
