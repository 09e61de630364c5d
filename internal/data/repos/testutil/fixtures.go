package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
	"github.com/yungbote/orbital-nexus-backend/internal/domain/mission"
	"github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
)

func SeedShell(tb testing.TB, ctx context.Context, tx *gorm.DB, minKm, maxKm float64, level orbital.DensityLevel, riskScore float64) *orbital.OrbitalShell {
	tb.Helper()
	s := &orbital.OrbitalShell{
		Name:               "shell",
		MinAltitudeKm:      minKm,
		MaxAltitudeKm:      maxKm,
		DebrisDensityLevel: level,
		CollisionRiskScore: riskScore,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed shell: %v", err)
	}
	return s
}

func SeedCollisionEvent(tb testing.TB, ctx context.Context, tx *gorm.DB, altitudeKm, probability float64, at time.Time) *orbital.CollisionEvent {
	tb.Helper()
	e := &orbital.CollisionEvent{
		EventDate:            at.UTC(),
		AltitudeKm:           altitudeKm,
		CollisionProbability: probability,
		EventType:            "CONJUNCTION",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed collision event: %v", err)
	}
	return e
}

func SeedDebris(tb testing.TB, ctx context.Context, tx *gorm.DB, altitudeKm float64, sizeCm *float64) *orbital.OrbitalDebris {
	tb.Helper()
	d := &orbital.OrbitalDebris{
		CurrentAltitudeKm: altitudeKm,
		EstimatedSizeCm:   sizeCm,
		DebrisType:        "FRAGMENT",
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed debris: %v", err)
	}
	return d
}

func SeedSatellite(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, altitudeKm float64, status orbital.OperationalStatus, launched time.Time) *orbital.ActiveSatellite {
	tb.Helper()
	launchedUTC := launched.UTC()
	s := &orbital.ActiveSatellite{
		Name:              name,
		Operator:          "Operator",
		CountryOfOrigin:   "US",
		LaunchDate:        &launchedUTC,
		CurrentAltitudeKm: altitudeKm,
		OperationalStatus: status,
		MissionType:       "Communications",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed satellite: %v", err)
	}
	return s
}

func SeedCostComponent(tb testing.TB, ctx context.Context, tx *gorm.DB, c *cost.CostComponent) *cost.CostComponent {
	tb.Helper()
	if c.CostDrivers == nil {
		c.CostDrivers = cost.StringList()
	}
	if c.ApplicableMissionTypes == nil {
		c.ApplicableMissionTypes = cost.StringList()
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed cost component: %v", err)
	}
	return c
}

func SeedInsuranceModel(tb testing.TB, ctx context.Context, tx *gorm.DB, m *cost.InsuranceModel) *cost.InsuranceModel {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed insurance model: %v", err)
	}
	return m
}

func SeedSatelliteConfig(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *mission.SatelliteConfiguration {
	tb.Helper()
	c := &mission.SatelliteConfiguration{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed satellite configuration: %v", err)
	}
	return c
}

func SeedLaunchVehicle(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, active bool) *mission.LaunchVehicle {
	tb.Helper()
	v := &mission.LaunchVehicle{Name: name, Provider: "Provider", ActiveStatus: active}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed launch vehicle: %v", err)
	}
	return v
}

func SeedMission(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, total, deployed int) *mission.Mission {
	tb.Helper()
	m := &mission.Mission{
		Name:                      name,
		MissionType:               "Communications",
		Operator:                  "Operator",
		TotalSatellites:           total,
		DeployedSatellites:        deployed,
		MissionStatus:             mission.StatusPlanning,
		SustainabilityCommitments: cost.StringList(),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed mission: %v", err)
	}
	return m
}

func PtrFloat(v float64) *float64 { return &v }

func PtrInt64(v int64) *int64 { return &v }

func PtrBool(v bool) *bool { return &v }
