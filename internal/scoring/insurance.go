package scoring

import (
	"math"
	"time"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
)

// QuoteValidity is how long a generated quote stays valid.
const QuoteValidity = 30 * 24 * time.Hour

var reliableVehicles = map[string]bool{
	"Falcon 9": true,
	"Atlas V":  true,
	"Ariane 5": true,
}

type QuoteInput struct {
	CoverageType          cost.CoverageType
	SatelliteValueUSD     float64
	MissionDurationMonths int
	OrbitalAltitudeKm     *float64
	LaunchVehicleType     *string
	CollisionAvoidance    *bool
}

type InsuranceQuote struct {
	QuoteID              string             `json:"quote_id"`
	CoverageType         cost.CoverageType  `json:"coverage_type"`
	PremiumUSD           float64            `json:"premium_usd"`
	CoverageAmountUSD    float64            `json:"coverage_amount_usd"`
	DeductibleUSD        float64            `json:"deductible_usd"`
	PolicyDurationMonths int                `json:"policy_duration_months"`
	PremiumRate          float64            `json:"premium_rate"`
	RiskAdjustments      map[string]float64 `json:"risk_adjustments"`
	Exclusions           []string           `json:"exclusions"`
	ValidUntil           time.Time          `json:"valid_until"`
}

// PremiumAdjustments returns the multipliers that apply to the request, keyed by factor name.
func PremiumAdjustments(in QuoteInput) map[string]float64 {
	adj := map[string]float64{}
	if truthy(in.OrbitalAltitudeKm) {
		switch alt := *in.OrbitalAltitudeKm; {
		case alt < 600:
			adj["altitude_risk"] = 1.2
		case alt > 20000:
			adj["altitude_risk"] = 0.9
		}
	}
	if in.CollisionAvoidance != nil {
		if *in.CollisionAvoidance {
			adj["collision_avoidance"] = 0.85
		} else {
			adj["collision_avoidance"] = 1.15
		}
	}
	if in.LaunchVehicleType != nil && reliableVehicles[*in.LaunchVehicleType] {
		adj["launch_vehicle"] = 0.95
	}
	return adj
}

// Quote prices the request against one selected model. The caller stamps the id
// and validity window.
func Quote(model *cost.InsuranceModel, in QuoteInput) InsuranceQuote {
	adj := PremiumAdjustments(in)
	rate := model.BasePremiumRate
	for _, key := range []string{"altitude_risk", "collision_avoidance", "launch_vehicle"} {
		if m, ok := adj[key]; ok {
			rate *= m
		}
	}
	annual := in.SatelliteValueUSD * rate
	total := annual * float64(in.MissionDurationMonths) / 12

	return InsuranceQuote{
		CoverageType:         in.CoverageType,
		PremiumUSD:           math.Round(total),
		CoverageAmountUSD:    model.CoverageAmountUSD,
		DeductibleUSD:        model.DeductibleUSD,
		PolicyDurationMonths: in.MissionDurationMonths,
		PremiumRate:          roundTo(rate, 4),
		RiskAdjustments:      adj,
		Exclusions:           model.Exclusions(),
	}
}
