package scoring

import "math"

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// truthy mirrors the optional numeric inputs: unset and zero both mean "not given".
func truthy(v *float64) bool {
	return v != nil && *v != 0
}
