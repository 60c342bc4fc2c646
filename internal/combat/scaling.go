package combat

import "math"

// EvaluateScaling computes the final amount for an effect with a scaling
// descriptor: base plus a counter-derived bonus, rounded to nearest, and
// clamped to [base, base+cap]. Scaling only ever adds.
func EvaluateScaling(sc *ScalingDescriptor, base int, counters *EntityTracker) int {
	if sc == nil || counters == nil {
		return base
	}
	value := counters.Counter(sc.Counter, sc.Scope)
	bonus := int(math.Round(float64(value) * sc.Multiplier))
	if bonus < 0 {
		bonus = 0
	}
	if bonus > sc.Cap {
		bonus = sc.Cap
	}
	return base + bonus
}
