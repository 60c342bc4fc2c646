package combat

// EvaluateCondition is a pure, total function over the closed predicate
// set. Unknown predicates are a configuration error caught by Validate at
// authoring time; at resolution time they simply evaluate to false so that
// resolution never fails. Health-percent comparisons are strict and use
// floored integer percentages.
func EvaluateCondition(cond *ConditionDescriptor, source, target *CombatEntity, counters *EntityTracker) bool {
	if cond == nil {
		return true
	}
	switch cond.Predicate {
	case PredSourceHealthAbovePercent:
		return source.HealthPercent() > cond.Threshold
	case PredSourceHealthBelowPercent:
		return source.HealthPercent() < cond.Threshold
	case PredTargetHealthAbovePercent:
		return target != nil && target.HealthPercent() > cond.Threshold
	case PredTargetHealthBelowPercent:
		return target != nil && target.HealthPercent() < cond.Threshold
	case PredCardsInHandAtLeast:
		return len(source.Hand) >= cond.Threshold
	case PredCardsInDeckAtLeast:
		return len(source.Deck) >= cond.Threshold
	case PredCardsInDiscardAtLeast:
		return len(source.Discard) >= cond.Threshold
	case PredComboCountAtLeast:
		return source.ComboCount >= cond.Threshold
	case PredZeroCostPlayedThisTurnAtLeast:
		return counters != nil && counters.Counter(CounterZeroCostCardsThisTurn, ScopeFight) >= cond.Threshold
	case PredZeroCostPlayedThisFightAtLeast:
		return counters != nil && counters.Counter(CounterZeroCostCardsPlayed, ScopeFight) >= cond.Threshold
	case PredInStance:
		return source.Stance == cond.Stance
	case PredEnergyAtLeast:
		return source.Energy >= cond.Threshold
	default:
		return false
	}
}
