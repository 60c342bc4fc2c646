package combat

// UpgradePredicate names one counter source consulted by the upgrade
// eligibility evaluator. The set is closed: every variant maps to exactly
// one tracked counter (or to per-card play history) via an exhaustive
// switch in internal/upgrade, so adding a variant is a compile-checked
// change there.
type UpgradePredicate int

const (
	UpNone UpgradePredicate = iota

	// Per-card play history.
	UpCardPlayedThisFight
	UpCardPlayedLifetime

	// Fight-scope entity counters.
	UpDamageDealtThisFight
	UpDamageTakenThisFight
	UpHealingGivenThisFight
	UpHealingReceivedThisFight
	UpShieldGrantedThisFight
	UpThornsReflectedThisFight
	UpStatusesAppliedThisFight
	UpStatusesReceivedThisFight
	UpCardsPlayedThisFight
	UpCardsDrawnThisFight
	UpZeroCostPlayedThisFight
	UpZeroCostPlayedThisTurn
	UpEnergySpentThisFight
	UpEnergyRestoredThisFight
	UpCombosBuiltThisFight
	UpHighestComboThisFight
	UpFinishersPlayedThisFight
	UpStancesEnteredThisFight
	UpPerfectTurnStreak
	UpBestPerfectTurnStreakThisFight
	UpTurnsElapsedThisFight
	UpEnemiesDefeatedThisFight

	// Lifetime-scope entity counters.
	UpDamageDealtLifetime
	UpDamageTakenLifetime
	UpHealingGivenLifetime
	UpHealingReceivedLifetime
	UpShieldGrantedLifetime
	UpThornsReflectedLifetime
	UpStatusesAppliedLifetime
	UpStatusesReceivedLifetime
	UpCardsPlayedLifetime
	UpCardsDrawnLifetime
	UpZeroCostPlayedLifetime
	UpEnergySpentLifetime
	UpEnergyRestoredLifetime
	UpCombosBuiltLifetime
	UpHighestComboLifetime
	UpFinishersPlayedLifetime
	UpStancesEnteredLifetime
	UpBestPerfectTurnStreakLifetime
	UpTurnsElapsedLifetime
	UpEnemiesDefeatedLifetime
	UpFightsFinished
	UpFightsWon
)

func (p UpgradePredicate) String() string {
	switch p {
	case UpCardPlayedThisFight:
		return "CardPlayedThisFight"
	case UpCardPlayedLifetime:
		return "CardPlayedLifetime"
	case UpDamageDealtThisFight:
		return "DamageDealtThisFight"
	case UpDamageTakenThisFight:
		return "DamageTakenThisFight"
	case UpHealingGivenThisFight:
		return "HealingGivenThisFight"
	case UpHealingReceivedThisFight:
		return "HealingReceivedThisFight"
	case UpShieldGrantedThisFight:
		return "ShieldGrantedThisFight"
	case UpThornsReflectedThisFight:
		return "ThornsReflectedThisFight"
	case UpStatusesAppliedThisFight:
		return "StatusesAppliedThisFight"
	case UpStatusesReceivedThisFight:
		return "StatusesReceivedThisFight"
	case UpCardsPlayedThisFight:
		return "CardsPlayedThisFight"
	case UpCardsDrawnThisFight:
		return "CardsDrawnThisFight"
	case UpZeroCostPlayedThisFight:
		return "ZeroCostPlayedThisFight"
	case UpZeroCostPlayedThisTurn:
		return "ZeroCostPlayedThisTurn"
	case UpEnergySpentThisFight:
		return "EnergySpentThisFight"
	case UpEnergyRestoredThisFight:
		return "EnergyRestoredThisFight"
	case UpCombosBuiltThisFight:
		return "CombosBuiltThisFight"
	case UpHighestComboThisFight:
		return "HighestComboThisFight"
	case UpFinishersPlayedThisFight:
		return "FinishersPlayedThisFight"
	case UpStancesEnteredThisFight:
		return "StancesEnteredThisFight"
	case UpPerfectTurnStreak:
		return "PerfectTurnStreak"
	case UpBestPerfectTurnStreakThisFight:
		return "BestPerfectTurnStreakThisFight"
	case UpTurnsElapsedThisFight:
		return "TurnsElapsedThisFight"
	case UpEnemiesDefeatedThisFight:
		return "EnemiesDefeatedThisFight"
	case UpDamageDealtLifetime:
		return "DamageDealtLifetime"
	case UpDamageTakenLifetime:
		return "DamageTakenLifetime"
	case UpHealingGivenLifetime:
		return "HealingGivenLifetime"
	case UpHealingReceivedLifetime:
		return "HealingReceivedLifetime"
	case UpShieldGrantedLifetime:
		return "ShieldGrantedLifetime"
	case UpThornsReflectedLifetime:
		return "ThornsReflectedLifetime"
	case UpStatusesAppliedLifetime:
		return "StatusesAppliedLifetime"
	case UpStatusesReceivedLifetime:
		return "StatusesReceivedLifetime"
	case UpCardsPlayedLifetime:
		return "CardsPlayedLifetime"
	case UpCardsDrawnLifetime:
		return "CardsDrawnLifetime"
	case UpZeroCostPlayedLifetime:
		return "ZeroCostPlayedLifetime"
	case UpEnergySpentLifetime:
		return "EnergySpentLifetime"
	case UpEnergyRestoredLifetime:
		return "EnergyRestoredLifetime"
	case UpCombosBuiltLifetime:
		return "CombosBuiltLifetime"
	case UpHighestComboLifetime:
		return "HighestComboLifetime"
	case UpFinishersPlayedLifetime:
		return "FinishersPlayedLifetime"
	case UpStancesEnteredLifetime:
		return "StancesEnteredLifetime"
	case UpBestPerfectTurnStreakLifetime:
		return "BestPerfectTurnStreakLifetime"
	case UpTurnsElapsedLifetime:
		return "TurnsElapsedLifetime"
	case UpEnemiesDefeatedLifetime:
		return "EnemiesDefeatedLifetime"
	case UpFightsFinished:
		return "FightsFinished"
	case UpFightsWon:
		return "FightsWon"
	default:
		return "None"
	}
}

// upgradePredicateCount must stay in sync with the block above. Used by
// authoring validation.
const upgradePredicateCount = int(UpFightsWon) + 1
