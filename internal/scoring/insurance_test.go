package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
)

func TestPremiumAdjustments(t *testing.T) {
	got := PremiumAdjustments(QuoteInput{
		OrbitalAltitudeKm:  floatPtr(550),
		CollisionAvoidance: boolPtr(true),
		LaunchVehicleType:  stringPtr("Falcon 9"),
	})
	want := map[string]float64{"altitude_risk": 1.2, "collision_avoidance": 0.85, "launch_vehicle": 0.95}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("adjustments: want=%v got=%v", want, got)
	}

	got = PremiumAdjustments(QuoteInput{
		OrbitalAltitudeKm:  floatPtr(35786),
		CollisionAvoidance: boolPtr(false),
		LaunchVehicleType:  stringPtr("Electron"),
	})
	want = map[string]float64{"altitude_risk": 0.9, "collision_avoidance": 1.15}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("adjustments: want=%v got=%v", want, got)
	}

	if got := PremiumAdjustments(QuoteInput{OrbitalAltitudeKm: floatPtr(1200)}); len(got) != 0 {
		t.Fatalf("mid altitude should not adjust: got=%v", got)
	}
}

func TestQuote(t *testing.T) {
	model := &cost.InsuranceModel{
		BasePremiumRate:   0.05,
		CoverageAmountUSD: 100_000_000,
		DeductibleUSD:     1_000_000,
		ExclusionsJSON:    cost.StringList("war", "nuclear"),
	}
	q := Quote(model, QuoteInput{
		CoverageType:          cost.CoverageLaunch,
		SatelliteValueUSD:     50_000_000,
		MissionDurationMonths: 24,
		OrbitalAltitudeKm:     floatPtr(550),
		CollisionAvoidance:    boolPtr(true),
	})
	rate := 0.05 * 1.2 * 0.85
	if math.Abs(q.PremiumRate-math.Round(rate*10000)/10000) > 1e-12 {
		t.Fatalf("rate: want=%v got=%v", rate, q.PremiumRate)
	}
	if want := math.Round(50_000_000 * rate * 24 / 12); q.PremiumUSD != want {
		t.Fatalf("premium: want=%v got=%v", want, q.PremiumUSD)
	}
	if q.PolicyDurationMonths != 24 || q.CoverageAmountUSD != 100_000_000 || q.DeductibleUSD != 1_000_000 {
		t.Fatalf("model fields not copied: %+v", q)
	}
	if !reflect.DeepEqual(q.Exclusions, []string{"war", "nuclear"}) {
		t.Fatalf("exclusions: got=%v", q.Exclusions)
	}
}
