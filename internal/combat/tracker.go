package combat

// Scope selects which counter bucket to read or write.
type Scope int

const (
	ScopeFight Scope = iota
	ScopeLifetime
)

func (s Scope) String() string {
	if s == ScopeLifetime {
		return "Lifetime"
	}
	return "Fight"
}

// CounterKind enumerates every tracked statistic. Counters feed the
// condition evaluator, the scaling evaluator, and the upgrade evaluator.
type CounterKind int

const (
	CounterDamageDealt CounterKind = iota
	CounterDamageTaken
	CounterHealingGiven
	CounterHealingReceived
	CounterShieldGranted
	CounterThornsReflected
	CounterStatusesApplied
	CounterStatusesReceived
	CounterCardsPlayed
	CounterCardsDrawn
	CounterZeroCostCardsPlayed
	CounterZeroCostCardsThisTurn
	CounterEnergySpent
	CounterEnergyRestored
	CounterCombosBuilt
	CounterHighestCombo
	CounterFinishersPlayed
	CounterStancesEntered
	CounterPerfectTurnStreak
	CounterBestPerfectTurnStreak
	CounterTurnsElapsed
	CounterEnemiesDefeated
	CounterFightsFinished
	CounterFightsWon
)

func (k CounterKind) String() string {
	switch k {
	case CounterDamageDealt:
		return "DamageDealt"
	case CounterDamageTaken:
		return "DamageTaken"
	case CounterHealingGiven:
		return "HealingGiven"
	case CounterHealingReceived:
		return "HealingReceived"
	case CounterShieldGranted:
		return "ShieldGranted"
	case CounterThornsReflected:
		return "ThornsReflected"
	case CounterStatusesApplied:
		return "StatusesApplied"
	case CounterStatusesReceived:
		return "StatusesReceived"
	case CounterCardsPlayed:
		return "CardsPlayed"
	case CounterCardsDrawn:
		return "CardsDrawn"
	case CounterZeroCostCardsPlayed:
		return "ZeroCostCardsPlayed"
	case CounterZeroCostCardsThisTurn:
		return "ZeroCostCardsThisTurn"
	case CounterEnergySpent:
		return "EnergySpent"
	case CounterEnergyRestored:
		return "EnergyRestored"
	case CounterCombosBuilt:
		return "CombosBuilt"
	case CounterHighestCombo:
		return "HighestCombo"
	case CounterFinishersPlayed:
		return "FinishersPlayed"
	case CounterStancesEntered:
		return "StancesEntered"
	case CounterPerfectTurnStreak:
		return "PerfectTurnStreak"
	case CounterBestPerfectTurnStreak:
		return "BestPerfectTurnStreak"
	case CounterTurnsElapsed:
		return "TurnsElapsed"
	case CounterEnemiesDefeated:
		return "EnemiesDefeated"
	case CounterFightsFinished:
		return "FightsFinished"
	case CounterFightsWon:
		return "FightsWon"
	default:
		return "Unknown"
	}
}

// IsHighWater reports whether the counter tracks a maximum rather than a
// running sum. High-water counters are written with RecordHigh and carry
// max semantics into the lifetime scope.
func (k CounterKind) IsHighWater() bool {
	switch k {
	case CounterHighestCombo, CounterPerfectTurnStreak, CounterBestPerfectTurnStreak:
		return true
	}
	return false
}

// counterKindCount must stay in sync with the CounterKind block above.
// Used by validation to reject out-of-range kinds at authoring time.
const counterKindCount = int(CounterFightsWon) + 1

// AllCounterKinds returns every counter kind, in declaration order.
func AllCounterKinds() []CounterKind {
	kinds := make([]CounterKind, counterKindCount)
	for i := range kinds {
		kinds[i] = CounterKind(i)
	}
	return kinds
}

// EntityTracker holds one entity's rolling statistics in both scopes, plus
// per-card play history. Additive counters write through to the lifetime
// bucket immediately, so lifetime values only ever increase; the fight
// bucket alone is reset when a fight ends.
type EntityTracker struct {
	fight    map[CounterKind]int
	lifetime map[CounterKind]int

	cardPlaysFight    map[string]int
	cardPlaysLifetime map[string]int
}

func NewEntityTracker() *EntityTracker {
	return &EntityTracker{
		fight:             make(map[CounterKind]int),
		lifetime:          make(map[CounterKind]int),
		cardPlaysFight:    make(map[string]int),
		cardPlaysLifetime: make(map[string]int),
	}
}

// Counter returns the current value of a counter in the given scope.
func (t *EntityTracker) Counter(kind CounterKind, scope Scope) int {
	if scope == ScopeLifetime {
		return t.lifetime[kind]
	}
	return t.fight[kind]
}

// Increment adds n to an additive counter in both scopes.
func (t *EntityTracker) Increment(kind CounterKind, n int) {
	if n <= 0 {
		return
	}
	t.fight[kind] += n
	t.lifetime[kind] += n
}

// RecordHigh raises a high-water counter to value if it is a new maximum.
func (t *EntityTracker) RecordHigh(kind CounterKind, value int) {
	if value > t.fight[kind] {
		t.fight[kind] = value
	}
	if value > t.lifetime[kind] {
		t.lifetime[kind] = value
	}
}

// SetGauge overwrites a fight-scope gauge (current streak, per-turn count).
// Gauges never write through to lifetime; their high-water twins do.
func (t *EntityTracker) SetGauge(kind CounterKind, value int) {
	t.fight[kind] = value
}

// CardPlays returns how many times the named card has been played.
func (t *EntityTracker) CardPlays(cardName string, scope Scope) int {
	if scope == ScopeLifetime {
		return t.cardPlaysLifetime[cardName]
	}
	return t.cardPlaysFight[cardName]
}

// RecordCardPlay increments the play count for a card in both scopes.
func (t *EntityTracker) RecordCardPlay(cardName string) {
	t.cardPlaysFight[cardName]++
	t.cardPlaysLifetime[cardName]++
}

// ResetFight zeroes all fight-scope counters and card play history.
// Called when a fight ends; lifetime values are untouched.
func (t *EntityTracker) ResetFight() {
	t.fight = make(map[CounterKind]int)
	t.cardPlaysFight = make(map[string]int)
}

// ResetTurn zeroes the per-turn gauges at the start of an entity's turn.
func (t *EntityTracker) ResetTurn() {
	t.fight[CounterZeroCostCardsThisTurn] = 0
}

// LifetimeSnapshot copies the lifetime counters, for persistence.
func (t *EntityTracker) LifetimeSnapshot() map[CounterKind]int {
	out := make(map[CounterKind]int, len(t.lifetime))
	for k, v := range t.lifetime {
		out[k] = v
	}
	return out
}

// LifetimeCardPlays copies the lifetime per-card play history.
func (t *EntityTracker) LifetimeCardPlays() map[string]int {
	out := make(map[string]int, len(t.cardPlaysLifetime))
	for k, v := range t.cardPlaysLifetime {
		out[k] = v
	}
	return out
}

// SeedLifetime loads persisted lifetime counters, replacing the current
// lifetime bucket. Called once before a fight when restoring a profile.
func (t *EntityTracker) SeedLifetime(counters map[CounterKind]int, cardPlays map[string]int) {
	t.lifetime = make(map[CounterKind]int, len(counters))
	for k, v := range counters {
		t.lifetime[k] = v
	}
	t.cardPlaysLifetime = make(map[string]int, len(cardPlays))
	for k, v := range cardPlays {
		t.cardPlaysLifetime[k] = v
	}
}

// Tracker is the key-value counter boundary consumed by tooling and the
// upgrade evaluator: one EntityTracker per participant, keyed by name.
type Tracker struct {
	entities map[string]*EntityTracker
}

func NewTracker() *Tracker {
	return &Tracker{entities: make(map[string]*EntityTracker)}
}

// Entity returns the tracker for the named entity, creating it on first use.
func (t *Tracker) Entity(name string) *EntityTracker {
	et, ok := t.entities[name]
	if !ok {
		et = NewEntityTracker()
		t.entities[name] = et
	}
	return et
}

// GetCounter reads one counter value; unknown entities read as zero.
func (t *Tracker) GetCounter(entity string, kind CounterKind, scope Scope) int {
	et, ok := t.entities[entity]
	if !ok {
		return 0
	}
	return et.Counter(kind, scope)
}

// Increment adds n to an additive counter for the named entity.
func (t *Tracker) Increment(entity string, kind CounterKind, n int) {
	t.Entity(entity).Increment(kind, n)
}
