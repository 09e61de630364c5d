package scoring

import (
	"fmt"
	"math"

	"github.com/yungbote/orbital-nexus-backend/internal/domain/cost"
)

const (
	// Flat insurance add-on assumptions used when an estimate asks for coverage.
	assumedSatelliteValueUSD = 5_000_000
	assumedPremiumRate       = 0.08
	defaultMissionYears      = 5

	defaultUncertaintyShare = 0.15
	defaultEstimateConf     = 0.75
	referenceMassKg         = 500
)

type EstimateInput struct {
	MissionType          string
	SatelliteCount       int
	SatelliteMassKg      *float64
	MissionDurationYears *float64
	InsuranceRequired    bool
}

type CostBreakdown struct {
	Development   float64 `json:"development"`
	Manufacturing float64 `json:"manufacturing"`
	Launch        float64 `json:"launch"`
	Operations    float64 `json:"operations"`
	Insurance     float64 `json:"insurance"`
	Deorbit       float64 `json:"deorbit"`
	Regulatory    float64 `json:"regulatory"`
}

func (b CostBreakdown) Total() float64 {
	return b.Development + b.Manufacturing + b.Launch + b.Operations + b.Insurance + b.Deorbit + b.Regulatory
}

type UncertaintyRange struct {
	MinCostUSD float64 `json:"min_cost_usd"`
	MaxCostUSD float64 `json:"max_cost_usd"`
}

type CostEstimate struct {
	TotalCostUSD        float64          `json:"total_cost_usd"`
	CostBreakdown       CostBreakdown    `json:"cost_breakdown"`
	CostPerSatelliteUSD float64          `json:"cost_per_satellite_usd"`
	UncertaintyRange    UncertaintyRange `json:"uncertainty_range"`
	Assumptions         []string         `json:"assumptions"`
	ConfidenceLevel     float64          `json:"confidence_level"`
}

// Estimate rolls the components into the seven buckets. Buckets are rounded first so
// the breakdown always sums to the reported total.
func Estimate(in EstimateInput, components []*cost.CostComponent) CostEstimate {
	buckets := map[cost.Category]float64{}
	var uncertainty, weightedConf, weight float64
	assumptions := []string{}

	for _, c := range components {
		category, ok := cost.ParseCategory(c.ComponentCategory)
		if !ok {
			continue
		}
		scaled := ScaledComponentCost(c, category, in)
		buckets[category] += scaled

		if truthy(c.CostUncertaintyPercentage) {
			uncertainty += scaled * *c.CostUncertaintyPercentage / 100
		}
		if truthy(c.ConfidenceLevel) {
			weightedConf += *c.ConfidenceLevel * scaled
			weight += scaled
			assumptions = append(assumptions, fmt.Sprintf("%s: Based on %d%% confidence", c.ComponentName, int64(math.Round(*c.ConfidenceLevel*100))))
		} else {
			assumptions = append(assumptions, fmt.Sprintf("%s: Based on industry estimates", c.ComponentName))
		}
	}

	if in.InsuranceRequired {
		buckets[cost.CategoryInsurance] += InsuranceAddOn(in.SatelliteCount, in.MissionDurationYears)
	}

	breakdown := CostBreakdown{
		Development:   math.Round(buckets[cost.CategoryDevelopment]),
		Manufacturing: math.Round(buckets[cost.CategoryManufacturing]),
		Launch:        math.Round(buckets[cost.CategoryLaunch]),
		Operations:    math.Round(buckets[cost.CategoryOperations]),
		Insurance:     math.Round(buckets[cost.CategoryInsurance]),
		Deorbit:       math.Round(buckets[cost.CategoryDeorbit]),
		Regulatory:    math.Round(buckets[cost.CategoryRegulatory]),
	}
	total := breakdown.Total()

	if uncertainty == 0 {
		uncertainty = total * defaultUncertaintyShare
	}
	confidence := defaultEstimateConf
	if weight > 0 {
		confidence = weightedConf / weight
	}
	perSatellite := 0.0
	if in.SatelliteCount > 0 {
		perSatellite = math.Round(total / float64(in.SatelliteCount))
	}

	return CostEstimate{
		TotalCostUSD:        total,
		CostBreakdown:       breakdown,
		CostPerSatelliteUSD: perSatellite,
		UncertaintyRange: UncertaintyRange{
			MinCostUSD: math.Round(math.Max(0, total-uncertainty)),
			MaxCostUSD: math.Round(total + uncertainty),
		},
		Assumptions:     assumptions,
		ConfidenceLevel: roundTo(clamp(confidence, 0, 1), 2),
	}
}

// ScaledComponentCost applies the fleet size, duration and mass adjustments to one component.
func ScaledComponentCost(c *cost.CostComponent, category cost.Category, in EstimateInput) float64 {
	scaled := c.BaseCostUSD
	if truthy(c.CostPerUnit) && in.SatelliteCount > 1 {
		additional := float64(in.SatelliteCount - 1)
		scaled += *c.CostPerUnit * additional * math.Pow(c.CostScalingFactor, math.Log(additional+1))
	}
	if category == cost.CategoryOperations && truthy(in.MissionDurationYears) {
		scaled *= *in.MissionDurationYears
	}
	if (category == cost.CategoryManufacturing || category == cost.CategoryLaunch) && truthy(in.SatelliteMassKg) {
		scaled *= clamp(*in.SatelliteMassKg/referenceMassKg, 0.5, 2.0)
	}
	return scaled
}

// InsuranceAddOn is the flat coverage estimate added to the insurance bucket.
func InsuranceAddOn(satellites int, years *float64) float64 {
	y := float64(defaultMissionYears)
	if truthy(years) {
		y = *years
	}
	months := y * 12
	return float64(satellites) * assumedSatelliteValueUSD * assumedPremiumRate * months / 12
}
