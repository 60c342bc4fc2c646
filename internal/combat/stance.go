package combat

import "fmt"

// LimitBreakComboCost is the minimum combo count required to enter the
// LimitBreak stance.
const LimitBreakComboCost = 5

// IllegalPlayError reports a card play rejected by the legality check
// before resolution. No state is mutated when this is returned.
type IllegalPlayError struct {
	Card   string
	Reason string
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("illegal play of %s: %s", e.Card, e.Reason)
}

// CheckLegality validates a play before it reaches the resolver: energy
// cost, combo requirement, stance requirement, and the stun gate. Illegal
// plays are rejected here, never silently no-opped mid-resolution.
func CheckLegality(source *CombatEntity, card *Card) error {
	if source.Defeated {
		return &IllegalPlayError{Card: card.Name, Reason: "entity is defeated"}
	}
	if source.Stunned() {
		return &IllegalPlayError{Card: card.Name, Reason: "entity is stunned"}
	}
	if card.Cost > source.Energy {
		return &IllegalPlayError{Card: card.Name, Reason: fmt.Sprintf("costs %d energy, have %d", card.Cost, source.Energy)}
	}
	if card.RequiresCombo > 0 && source.ComboCount < card.RequiresCombo {
		return &IllegalPlayError{Card: card.Name, Reason: fmt.Sprintf("requires combo %d, have %d", card.RequiresCombo, source.ComboCount)}
	}
	if card.RequiredStance != StanceNone && source.Stance != card.RequiredStance {
		return &IllegalPlayError{Card: card.Name, Reason: fmt.Sprintf("requires %s stance", card.RequiredStance)}
	}
	return nil
}

// CanEnterStance reports whether the entity may enter the given stance.
// Entering while already in a stance is always legal and replaces it;
// LimitBreak additionally demands a built-up combo.
func CanEnterStance(e *CombatEntity, s Stance) bool {
	if s == StanceNone {
		return false
	}
	if s == StanceLimitBreak && e.ComboCount < LimitBreakComboCost {
		return false
	}
	return true
}

// EnterStance switches the entity into a new stance, replacing any current
// one (stance modifiers never stack). Returns false if the transition is
// not allowed; the caller treats that as a skipped effect, not an error.
func EnterStance(e *CombatEntity, s Stance) bool {
	if !CanEnterStance(e, s) {
		return false
	}
	e.Stance = s
	return true
}

// ExitStance drops the entity back to no stance. Returns the stance that
// was active, or StanceNone if there was none.
func ExitStance(e *CombatEntity) Stance {
	prev := e.Stance
	e.Stance = StanceNone
	return prev
}

// AdvanceCombo applies the build/reset rule after a card resolves: combo
// builders increment the count by one, everything else resets it to zero.
// Returns the new count and whether the card built combo.
func AdvanceCombo(e *CombatEntity, card *Card) (int, bool) {
	if card.BuildsCombo {
		e.ComboCount++
		return e.ComboCount, true
	}
	e.ComboCount = 0
	return 0, false
}
