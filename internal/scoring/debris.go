package scoring

import (
	"math"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
)

type Trend string

const (
	TrendImproving Trend = "IMPROVING"
	TrendStable    Trend = "STABLE"
	TrendWorsening Trend = "WORSENING"
)

const untrackedMultiplier = 2.5

type DebrisInput struct {
	AltitudeKm            float64
	ShellLevel            orbital.DensityLevel
	EventCount            int64
	OperationalSatellites int64
	Debris                orbital.DebrisCounts
}

type DebrisRiskFactors struct {
	LargeDebrisCount      int64 `json:"large_debris_count"`
	SmallDebrisEstimated  int64 `json:"small_debris_estimated"`
	ActiveSatellitesCount int64 `json:"active_satellites_count"`
	RecentBreakupEvents   int64 `json:"recent_breakup_events"`
}

type DebrisDensity struct {
	AltitudeKm                float64              `json:"altitude_km"`
	DebrisDensityLevel        orbital.DensityLevel `json:"debris_density_level"`
	TrackedObjectsCount       int64                `json:"tracked_objects_count"`
	EstimatedUntrackedObjects int64                `json:"estimated_untracked_objects"`
	CollisionEventsLastYear   int64                `json:"collision_events_last_year"`
	RiskFactors               DebrisRiskFactors    `json:"risk_factors"`
	HistoricalTrend           Trend                `json:"historical_trend"`
}

func SummarizeDebris(in DebrisInput) DebrisDensity {
	level := in.ShellLevel
	if level == "" {
		level = EstimateDensityLevel(in.AltitudeKm)
	}
	tracked := in.Debris.Total + in.OperationalSatellites
	untracked := int64(math.Floor(float64(tracked) * untrackedMultiplier))

	return DebrisDensity{
		AltitudeKm:                in.AltitudeKm,
		DebrisDensityLevel:        level,
		TrackedObjectsCount:       tracked,
		EstimatedUntrackedObjects: untracked,
		CollisionEventsLastYear:   in.EventCount,
		RiskFactors: DebrisRiskFactors{
			LargeDebrisCount:      in.Debris.Large,
			SmallDebrisEstimated:  int64(math.Floor(float64(untracked) * 0.8)),
			ActiveSatellitesCount: in.OperationalSatellites,
			RecentBreakupEvents:   int64(math.Floor(float64(in.EventCount) * 0.1)),
		},
		HistoricalTrend: TrendFor(in.EventCount),
	}
}

// EstimateDensityLevel is the fallback when no catalogued shell contains the altitude.
func EstimateDensityLevel(altitudeKm float64) orbital.DensityLevel {
	switch {
	case altitudeKm < 400:
		return orbital.DensityHigh
	case altitudeKm < 600:
		return orbital.DensityCritical
	case altitudeKm < 1000:
		return orbital.DensityHigh
	case altitudeKm < 1500:
		return orbital.DensityMedium
	}
	return orbital.DensityLow
}

func TrendFor(recentEvents int64) Trend {
	switch {
	case recentEvents > 10:
		return TrendWorsening
	case recentEvents > 5:
		return TrendStable
	}
	return TrendImproving
}
