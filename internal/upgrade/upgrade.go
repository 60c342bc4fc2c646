// Package upgrade evaluates card upgrade eligibility against tracked
// counters. It is deliberately separate from per-effect conditionals: the
// evaluator only reports eligibility and never performs the swap, so the
// owning layer can defer upgrades to a safe point in the turn lifecycle.
package upgrade

import (
	"github.com/ValleyOfWalls/cardclash/internal/combat"
)

// counterValue maps an upgrade predicate onto one tracked counter value
// for the card's owner. The switch is exhaustive over the closed
// predicate set; a new variant that is not mapped here reads as zero and
// is rejected by authoring validation before it ever gets this far.
func counterValue(pred combat.UpgradePredicate, cardName string, trk *combat.EntityTracker) int {
	switch pred {
	case combat.UpCardPlayedThisFight:
		return trk.CardPlays(cardName, combat.ScopeFight)
	case combat.UpCardPlayedLifetime:
		return trk.CardPlays(cardName, combat.ScopeLifetime)

	case combat.UpDamageDealtThisFight:
		return trk.Counter(combat.CounterDamageDealt, combat.ScopeFight)
	case combat.UpDamageTakenThisFight:
		return trk.Counter(combat.CounterDamageTaken, combat.ScopeFight)
	case combat.UpHealingGivenThisFight:
		return trk.Counter(combat.CounterHealingGiven, combat.ScopeFight)
	case combat.UpHealingReceivedThisFight:
		return trk.Counter(combat.CounterHealingReceived, combat.ScopeFight)
	case combat.UpShieldGrantedThisFight:
		return trk.Counter(combat.CounterShieldGranted, combat.ScopeFight)
	case combat.UpThornsReflectedThisFight:
		return trk.Counter(combat.CounterThornsReflected, combat.ScopeFight)
	case combat.UpStatusesAppliedThisFight:
		return trk.Counter(combat.CounterStatusesApplied, combat.ScopeFight)
	case combat.UpStatusesReceivedThisFight:
		return trk.Counter(combat.CounterStatusesReceived, combat.ScopeFight)
	case combat.UpCardsPlayedThisFight:
		return trk.Counter(combat.CounterCardsPlayed, combat.ScopeFight)
	case combat.UpCardsDrawnThisFight:
		return trk.Counter(combat.CounterCardsDrawn, combat.ScopeFight)
	case combat.UpZeroCostPlayedThisFight:
		return trk.Counter(combat.CounterZeroCostCardsPlayed, combat.ScopeFight)
	case combat.UpZeroCostPlayedThisTurn:
		return trk.Counter(combat.CounterZeroCostCardsThisTurn, combat.ScopeFight)
	case combat.UpEnergySpentThisFight:
		return trk.Counter(combat.CounterEnergySpent, combat.ScopeFight)
	case combat.UpEnergyRestoredThisFight:
		return trk.Counter(combat.CounterEnergyRestored, combat.ScopeFight)
	case combat.UpCombosBuiltThisFight:
		return trk.Counter(combat.CounterCombosBuilt, combat.ScopeFight)
	case combat.UpHighestComboThisFight:
		return trk.Counter(combat.CounterHighestCombo, combat.ScopeFight)
	case combat.UpFinishersPlayedThisFight:
		return trk.Counter(combat.CounterFinishersPlayed, combat.ScopeFight)
	case combat.UpStancesEnteredThisFight:
		return trk.Counter(combat.CounterStancesEntered, combat.ScopeFight)
	case combat.UpPerfectTurnStreak:
		return trk.Counter(combat.CounterPerfectTurnStreak, combat.ScopeFight)
	case combat.UpBestPerfectTurnStreakThisFight:
		return trk.Counter(combat.CounterBestPerfectTurnStreak, combat.ScopeFight)
	case combat.UpTurnsElapsedThisFight:
		return trk.Counter(combat.CounterTurnsElapsed, combat.ScopeFight)
	case combat.UpEnemiesDefeatedThisFight:
		return trk.Counter(combat.CounterEnemiesDefeated, combat.ScopeFight)

	case combat.UpDamageDealtLifetime:
		return trk.Counter(combat.CounterDamageDealt, combat.ScopeLifetime)
	case combat.UpDamageTakenLifetime:
		return trk.Counter(combat.CounterDamageTaken, combat.ScopeLifetime)
	case combat.UpHealingGivenLifetime:
		return trk.Counter(combat.CounterHealingGiven, combat.ScopeLifetime)
	case combat.UpHealingReceivedLifetime:
		return trk.Counter(combat.CounterHealingReceived, combat.ScopeLifetime)
	case combat.UpShieldGrantedLifetime:
		return trk.Counter(combat.CounterShieldGranted, combat.ScopeLifetime)
	case combat.UpThornsReflectedLifetime:
		return trk.Counter(combat.CounterThornsReflected, combat.ScopeLifetime)
	case combat.UpStatusesAppliedLifetime:
		return trk.Counter(combat.CounterStatusesApplied, combat.ScopeLifetime)
	case combat.UpStatusesReceivedLifetime:
		return trk.Counter(combat.CounterStatusesReceived, combat.ScopeLifetime)
	case combat.UpCardsPlayedLifetime:
		return trk.Counter(combat.CounterCardsPlayed, combat.ScopeLifetime)
	case combat.UpCardsDrawnLifetime:
		return trk.Counter(combat.CounterCardsDrawn, combat.ScopeLifetime)
	case combat.UpZeroCostPlayedLifetime:
		return trk.Counter(combat.CounterZeroCostCardsPlayed, combat.ScopeLifetime)
	case combat.UpEnergySpentLifetime:
		return trk.Counter(combat.CounterEnergySpent, combat.ScopeLifetime)
	case combat.UpEnergyRestoredLifetime:
		return trk.Counter(combat.CounterEnergyRestored, combat.ScopeLifetime)
	case combat.UpCombosBuiltLifetime:
		return trk.Counter(combat.CounterCombosBuilt, combat.ScopeLifetime)
	case combat.UpHighestComboLifetime:
		return trk.Counter(combat.CounterHighestCombo, combat.ScopeLifetime)
	case combat.UpFinishersPlayedLifetime:
		return trk.Counter(combat.CounterFinishersPlayed, combat.ScopeLifetime)
	case combat.UpStancesEnteredLifetime:
		return trk.Counter(combat.CounterStancesEntered, combat.ScopeLifetime)
	case combat.UpBestPerfectTurnStreakLifetime:
		return trk.Counter(combat.CounterBestPerfectTurnStreak, combat.ScopeLifetime)
	case combat.UpTurnsElapsedLifetime:
		return trk.Counter(combat.CounterTurnsElapsed, combat.ScopeLifetime)
	case combat.UpEnemiesDefeatedLifetime:
		return trk.Counter(combat.CounterEnemiesDefeated, combat.ScopeLifetime)
	case combat.UpFightsFinished:
		return trk.Counter(combat.CounterFightsFinished, combat.ScopeLifetime)
	case combat.UpFightsWon:
		return trk.Counter(combat.CounterFightsWon, combat.ScopeLifetime)
	default:
		return 0
	}
}

// IsEligible reports whether a card instance currently satisfies its
// upgrade condition. Pure: it mutates nothing and is repeatable, so
// calling it twice without an intervening counter change agrees.
// Cards with no upgrade pair are never eligible.
func IsEligible(ci *combat.CardInstance, trk *combat.EntityTracker) bool {
	if ci == nil || ci.Card == nil || ci.Card.Upgrade == nil || ci.Card.UpgradeTo == "" {
		return false
	}
	cond := ci.Card.Upgrade
	value := counterValue(cond.Predicate, ci.Card.Name, trk)
	return cond.Comparison.Holds(value, cond.RequiredValue)
}

// Candidate is one card flagged for upgrade by Sweep.
type Candidate struct {
	Owner     string
	Instance  *combat.CardInstance
	UpgradeTo string
}

// Sweep walks every card instance in the roster (deck, hand, discard) and
// returns the ones whose upgrade condition currently holds. It performs no
// swaps; the fight driver applies them at a turn boundary.
func Sweep(f *combat.Fight) []Candidate {
	var out []Candidate
	for _, e := range f.Roster {
		trk := f.Tracker.Entity(e.Name)
		for _, zone := range [][]*combat.CardInstance{e.Deck, e.Hand, e.Discard} {
			for _, ci := range zone {
				if IsEligible(ci, trk) {
					out = append(out, Candidate{Owner: e.Name, Instance: ci, UpgradeTo: ci.Card.UpgradeTo})
				}
			}
		}
	}
	return out
}

// Apply swaps a flagged instance's definition for its upgraded
// counterpart, looked up in the given catalog. Returns false if the
// upgraded card is not in the catalog.
func Apply(c Candidate, lookup func(name string) (*combat.Card, bool)) bool {
	upgraded, ok := lookup(c.UpgradeTo)
	if !ok {
		return false
	}
	c.Instance.Card = upgraded
	return true
}
