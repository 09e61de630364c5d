package scoring

import "math"

type DeorbitOptionType string

const (
	OptionNaturalDecay      DeorbitOptionType = "NATURAL_DECAY"
	OptionControlledDeorbit DeorbitOptionType = "CONTROLLED_DEORBIT"
	OptionGraveyardOrbit    DeorbitOptionType = "GRAVEYARD_ORBIT"
)

const (
	// FCC25YearRule is the post-mission disposal limit in years.
	FCC25YearRule = 25

	defaultAreaM2       = 10
	scaleHeightKm       = 8.5
	maxDecayYears       = 200
	minDecayYears       = 0.1
	fuelCostPerKgUSD    = 10_000
	controlledFuelShare = 0.05
	graveyardFuelShare  = 0.02
)

type DeorbitInput struct {
	SatelliteMassKg      float64
	OrbitalAltitudeKm    float64
	SatelliteAreaM2      *float64
	PropulsionCapability *bool
	TargetTimelineYears  *float64
}

type DeorbitOption struct {
	OptionType               DeorbitOptionType `json:"option_type"`
	TimelineYears            float64           `json:"timeline_years"`
	CostEstimateUSD          float64           `json:"cost_estimate_usd"`
	SuccessProbability       float64           `json:"success_probability"`
	EnvironmentalImpactScore float64           `json:"environmental_impact_score"`
}

type ComplianceStatus struct {
	FCC25YearRule    bool `json:"fcc_25_year_rule"`
	IADCGuidelines   bool `json:"iadc_guidelines"`
	ISO24113Standard bool `json:"iso_24113_standard"`
}

type DeorbitAnalysis struct {
	AnalysisID                string            `json:"analysis_id"`
	NaturalDecayTimelineYears float64           `json:"natural_decay_timeline_years"`
	ControlledDeorbitFeasible bool              `json:"controlled_deorbit_feasible"`
	DeorbitOptions            []DeorbitOption   `json:"deorbit_options"`
	RecommendedOption         DeorbitOptionType `json:"recommended_option"`
	ComplianceStatus          ComplianceStatus  `json:"compliance_status"`
	SustainabilityScore       float64           `json:"sustainability_score"`
}

// AnalyzeDeorbit builds the disposal options for one satellite. The caller stamps the id.
func AnalyzeDeorbit(in DeorbitInput) DeorbitAnalysis {
	area := float64(defaultAreaM2)
	if truthy(in.SatelliteAreaM2) {
		area = *in.SatelliteAreaM2
	}
	decay := NaturalDecayYears(in.SatelliteMassKg, in.OrbitalAltitudeKm, area)
	feasible := in.PropulsionCapability != nil && *in.PropulsionCapability && in.OrbitalAltitudeKm < 2000

	options := []DeorbitOption{naturalDecayOption(decay)}
	if feasible {
		timeline := 1.0
		if truthy(in.TargetTimelineYears) {
			timeline = *in.TargetTimelineYears
		}
		options = append(options, DeorbitOption{
			OptionType:               OptionControlledDeorbit,
			TimelineYears:            timeline,
			CostEstimateUSD:          in.SatelliteMassKg*controlledFuelShare*fuelCostPerKgUSD + 50_000,
			SuccessProbability:       0.92,
			EnvironmentalImpactScore: 95,
		})
	}
	if in.OrbitalAltitudeKm > 1500 {
		options = append(options, DeorbitOption{
			OptionType:               OptionGraveyardOrbit,
			TimelineYears:            0.1,
			CostEstimateUSD:          in.SatelliteMassKg*graveyardFuelShare*fuelCostPerKgUSD + 25_000,
			SuccessProbability:       0.98,
			EnvironmentalImpactScore: 75,
		})
	}

	compliance := ComplianceStatus{
		FCC25YearRule:  decay <= FCC25YearRule,
		IADCGuidelines: decay <= FCC25YearRule || feasible,
	}
	for _, o := range options {
		if o.SuccessProbability >= 0.9 {
			compliance.ISO24113Standard = true
			break
		}
	}

	return DeorbitAnalysis{
		NaturalDecayTimelineYears: roundTo(decay, 1),
		ControlledDeorbitFeasible: feasible,
		DeorbitOptions:            options,
		RecommendedOption:         RecommendOption(options),
		ComplianceStatus:          compliance,
		SustainabilityScore:       roundTo(SustainabilityScore(options, compliance, decay), 1),
	}
}

// NaturalDecayYears is a simplified drag model: exponential atmosphere over a
// ballistic coefficient, bounded to [0.1, 200] years.
func NaturalDecayYears(massKg, altitudeKm, areaM2 float64) float64 {
	density := math.Exp(-(altitudeKm-200)/scaleHeightKm) * 1e-12
	ballistic := massKg / areaM2
	rate := density / ballistic * 1000
	t := math.Max(minDecayYears, (altitudeKm-100)/(rate*altitudeKm))
	return math.Min(maxDecayYears, t)
}

func naturalDecayOption(decay float64) DeorbitOption {
	o := DeorbitOption{
		OptionType:               OptionNaturalDecay,
		TimelineYears:            decay,
		SuccessProbability:       0.7,
		EnvironmentalImpactScore: 60,
	}
	if decay <= FCC25YearRule {
		o.SuccessProbability = 0.95
		o.EnvironmentalImpactScore = 85
	}
	return o
}

// RecommendOption scores each option and keeps the first strictly better one.
// The first option wins when none scores above zero.
func RecommendOption(options []DeorbitOption) DeorbitOptionType {
	if len(options) == 0 {
		return ""
	}
	best := options[0]
	bestScore := 0.0
	for _, o := range options {
		score := o.SuccessProbability*30 + o.EnvironmentalImpactScore*0.2
		if o.TimelineYears <= FCC25YearRule {
			score += 40
		}
		if o.CostEstimateUSD > 0 {
			score -= math.Log10(o.CostEstimateUSD) * 2
		}
		if score > bestScore {
			bestScore = score
			best = o
		}
	}
	return best.OptionType
}

func SustainabilityScore(options []DeorbitOption, c ComplianceStatus, decay float64) float64 {
	score := 50.0
	if c.FCC25YearRule {
		score += 20
	}
	if c.IADCGuidelines {
		score += 15
	}
	if c.ISO24113Standard {
		score += 10
	}
	switch {
	case decay <= 5:
		score += 15
	case decay <= FCC25YearRule:
		score += 10
	default:
		score -= 10
	}
	for _, o := range options {
		if o.OptionType == OptionControlledDeorbit {
			score += 10
			break
		}
	}
	return clamp(score, 0, 100)
}
