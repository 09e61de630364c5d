package scoring

import (
	"time"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/orbital"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

const (
	// BaseCollisionProbability is the floor applied before the multipliers.
	BaseCollisionProbability = 0.001
	// AssessmentConfidence is a fixed placeholder until a calibrated model exists.
	AssessmentConfidence = 0.75
)

var sizeMultipliers = map[string]float64{
	"SMALL":  0.7,
	"MEDIUM": 1.0,
	"LARGE":  1.4,
}

type CollisionInput struct {
	AltitudeKm           float64
	InclinationDeg       float64
	SatelliteCount       int
	MissionDurationYears float64
	CollisionAvoidance   *bool
	SizeCategory         string
}

// CollisionContext holds the aggregates read around the target altitude.
// DensityLevel is empty when no shell contains the altitude.
type CollisionContext struct {
	DensityLevel     orbital.DensityLevel
	Events           orbital.EventStats
	NearbySatellites int64
}

type ContributingFactors struct {
	DebrisDensityScore    float64 `json:"debris_density_score"`
	TrafficDensityScore   float64 `json:"traffic_density_score"`
	AltitudeRiskScore     float64 `json:"altitude_risk_score"`
	MissionDurationImpact float64 `json:"mission_duration_impact"`
}

type CollisionAssessment struct {
	RiskAssessmentID            string              `json:"risk_assessment_id"`
	OverallCollisionProbability float64             `json:"overall_collision_probability"`
	RiskLevel                   RiskLevel           `json:"risk_level"`
	ContributingFactors         ContributingFactors `json:"contributing_factors"`
	MitigationRecommendations   []string            `json:"mitigation_recommendations"`
	ConfidenceLevel             float64             `json:"confidence_level"`
	AssessmentTimestamp         time.Time           `json:"assessment_timestamp"`
}

// AssessCollision combines the request with the surrounding aggregates. The caller
// stamps the id and timestamp.
func AssessCollision(in CollisionInput, c CollisionContext) CollisionAssessment {
	debris := DebrisDensityScore(c.DensityLevel)
	traffic := TrafficDensityScore(c.NearbySatellites, in.AltitudeKm)
	altitude := AltitudeRiskScore(in.AltitudeKm)
	duration := MissionDurationImpact(in.MissionDurationYears)

	base := BaseCollisionProbability
	if c.Events.AvgProbability != nil && *c.Events.AvgProbability > base {
		base = *c.Events.AvgProbability
	}

	multiplier := (debris / 50) * (traffic / 50) * (altitude / 50) * duration
	multiplier *= float64(in.SatelliteCount) / 100
	if in.CollisionAvoidance != nil {
		if *in.CollisionAvoidance {
			multiplier *= 0.3
		} else {
			multiplier *= 1.5
		}
	}
	if m, ok := sizeMultipliers[in.SizeCategory]; ok {
		multiplier *= m
	}

	probability := clamp(base*multiplier, 0, 1)
	level := RiskLevelFor(probability)

	return CollisionAssessment{
		OverallCollisionProbability: roundTo(probability, 6),
		RiskLevel:                   level,
		ContributingFactors: ContributingFactors{
			DebrisDensityScore:    roundTo(debris, 2),
			TrafficDensityScore:   roundTo(traffic, 2),
			AltitudeRiskScore:     roundTo(altitude, 2),
			MissionDurationImpact: roundTo(duration, 2),
		},
		MitigationRecommendations: mitigations(level, in, debris, traffic),
		ConfidenceLevel:           AssessmentConfidence,
	}
}

func DebrisDensityScore(level orbital.DensityLevel) float64 {
	switch level {
	case orbital.DensityLow:
		return 25
	case orbital.DensityMedium:
		return 50
	case orbital.DensityHigh:
		return 75
	case orbital.DensityCritical:
		return 95
	}
	return 50
}

// TrafficDensityScore scales with nearby operational satellites and boosts the
// crowded Starlink, OneWeb and ISS bands.
func TrafficDensityScore(satellites int64, altitudeKm float64) float64 {
	score := clamp(float64(satellites)/10, 0, 90)
	switch {
	case altitudeKm >= 540 && altitudeKm <= 570:
		score *= 1.5
	case altitudeKm >= 1150 && altitudeKm <= 1250:
		score *= 1.3
	case altitudeKm >= 400 && altitudeKm <= 500:
		score *= 1.2
	}
	return clamp(score, 0, 95)
}

func AltitudeRiskScore(altitudeKm float64) float64 {
	switch {
	case altitudeKm < 400:
		return 85
	case altitudeKm < 600:
		return 75
	case altitudeKm < 1000:
		return 60
	case altitudeKm < 2000:
		return 45
	case altitudeKm > 20000:
		return 30
	}
	return 50
}

func MissionDurationImpact(years float64) float64 {
	impact := 1 + (years-1)*0.1
	if impact > 2 {
		return 2
	}
	return impact
}

// RiskLevelFor buckets a probability. Every threshold is exclusive.
func RiskLevelFor(p float64) RiskLevel {
	switch {
	case p < 0.001:
		return RiskLow
	case p < 0.01:
		return RiskMedium
	case p < 0.1:
		return RiskHigh
	}
	return RiskCritical
}

func mitigations(level RiskLevel, in CollisionInput, debris, traffic float64) []string {
	out := []string{}
	if level == RiskHigh || level == RiskCritical {
		out = append(out,
			"Implement active collision avoidance system",
			"Consider alternative orbital altitude with lower debris density",
			"Enhance tracking and monitoring capabilities",
		)
	}
	if debris > 70 {
		out = append(out,
			"Deploy debris mitigation technologies",
			"Coordinate with space traffic management authorities",
		)
	}
	if traffic > 70 {
		out = append(out,
			"Implement constellation coordination protocols",
			"Consider phased deployment to reduce instantaneous risk",
		)
	}
	if in.CollisionAvoidance == nil || !*in.CollisionAvoidance {
		out = append(out, "Invest in collision avoidance propulsion systems")
	}
	if in.SatelliteCount > 1000 {
		out = append(out,
			"Develop automated fleet management systems",
			"Implement redundancy and graceful degradation strategies",
		)
	}
	return out
}
