package combat

import "fmt"

// StatusInstance is one active status effect on an entity. An entity holds
// at most one instance per kind; reapplication stacks magnitude (pool
// types) or refreshes duration (duration types), never duplicates.
type StatusInstance struct {
	Kind      StatusKind
	Magnitude int
	Remaining int // turns; 0 means "until consumed" for pool types
}

func (si *StatusInstance) String() string {
	if si.Kind.IsPool() {
		return fmt.Sprintf("%s(%d)", si.Kind, si.Magnitude)
	}
	return fmt.Sprintf("%s(%d, %d turns)", si.Kind, si.Magnitude, si.Remaining)
}

// CombatEntity is one participant's mutable combat state. It is mutated
// only by the resolver and the status engine.
type CombatEntity struct {
	Name string
	Team int

	Health    int
	MaxHealth int
	Energy    int
	MaxEnergy int

	Stance     Stance
	ComboCount int

	Statuses map[StatusKind]*StatusInstance
	Defeated bool

	// Card zones. Top of deck is the last element (pop from end).
	Deck    []*CardInstance
	Hand    []*CardInstance
	Discard []*CardInstance
}

// NewCombatEntity creates a participant at full health and energy.
func NewCombatEntity(name string, team, maxHealth, maxEnergy int) *CombatEntity {
	return &CombatEntity{
		Name:      name,
		Team:      team,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		Stance:    StanceNone,
		Statuses:  make(map[StatusKind]*StatusInstance),
	}
}

func (e *CombatEntity) String() string {
	return fmt.Sprintf("%s (%d/%d HP, %d/%d EN)", e.Name, e.Health, e.MaxHealth, e.Energy, e.MaxEnergy)
}

// HealthPercent returns 100*health/maxHealth, floored.
func (e *CombatEntity) HealthPercent() int {
	if e.MaxHealth <= 0 {
		return 0
	}
	return 100 * e.Health / e.MaxHealth
}

// Status returns the active instance of a kind, or nil.
func (e *CombatEntity) Status(kind StatusKind) *StatusInstance {
	return e.Statuses[kind]
}

// StatusMagnitude returns the magnitude of an active status, or 0.
func (e *CombatEntity) StatusMagnitude(kind StatusKind) int {
	if si := e.Statuses[kind]; si != nil {
		return si.Magnitude
	}
	return 0
}

// HasStatus reports whether a status of the given kind is active.
func (e *CombatEntity) HasStatus(kind StatusKind) bool {
	_, ok := e.Statuses[kind]
	return ok
}

// Stunned reports whether the entity is gated from playing cards.
func (e *CombatEntity) Stunned() bool {
	return e.HasStatus(StatusStun)
}

// SpendEnergy deducts cost, reporting false if unaffordable.
func (e *CombatEntity) SpendEnergy(cost int) bool {
	if cost > e.Energy {
		return false
	}
	e.Energy -= cost
	return true
}

// RestoreEnergy adds n energy, clamped at MaxEnergy. Returns the amount
// actually restored.
func (e *CombatEntity) RestoreEnergy(n int) int {
	if n <= 0 {
		return 0
	}
	before := e.Energy
	e.Energy += n
	if e.Energy > e.MaxEnergy {
		e.Energy = e.MaxEnergy
	}
	return e.Energy - before
}

// --- Card zone operations ---

// DrawCard removes the top card from the deck and adds it to the hand.
// Returns the drawn card, or nil if the deck is empty.
func (e *CombatEntity) DrawCard() *CardInstance {
	if len(e.Deck) == 0 {
		return nil
	}
	card := e.Deck[len(e.Deck)-1]
	e.Deck = e.Deck[:len(e.Deck)-1]
	e.Hand = append(e.Hand, card)
	return card
}

// RemoveFromHand removes a card from the hand by instance ID.
func (e *CombatEntity) RemoveFromHand(card *CardInstance) {
	for i, c := range e.Hand {
		if c.ID == card.ID {
			e.Hand = append(e.Hand[:i], e.Hand[i+1:]...)
			return
		}
	}
}

// SendToDiscard moves a card to the discard pile.
func (e *CombatEntity) SendToDiscard(card *CardInstance) {
	e.Discard = append(e.Discard, card)
}

// FindInHand returns the hand card with the given instance ID, or nil.
func (e *CombatEntity) FindInHand(id int) *CardInstance {
	for _, c := range e.Hand {
		if c.ID == id {
			return c
		}
	}
	return nil
}
