package combat

import (
	"fmt"
	"math"

	"github.com/ValleyOfWalls/cardclash/internal/log"
)

// StatusChange describes one status mutation for the resolution report.
type StatusChange struct {
	Kind      StatusKind
	Magnitude int
	Remaining int
	Refreshed bool // true when an existing duration-type instance was refreshed
}

// tickOrder fixes the iteration order for turn-start ticking so multi-status
// resolution is reproducible. On-tick effects (Burn, Salve) come first.
var tickOrder = []StatusKind{
	StatusBurn,
	StatusSalve,
	StatusWeak,
	StatusBreak,
	StatusStun,
	StatusStrength,
	StatusShield,
	StatusThorns,
}

// StatusEngine applies, stacks, ticks and expires status effects, and owns
// the fixed damage pipeline: shield absorption, then thorns reflection,
// then raw damage, then the one-shot defeat check.
type StatusEngine struct {
	Logger  log.EventLogger // optional
	Tracker *Tracker        // optional; counter side effects
	Turn    int             // advanced by the fight at turn boundaries
}

func (se *StatusEngine) emit(ev log.FightEvent) {
	if se.Logger != nil {
		se.Logger.Log(ev)
	}
}

func (se *StatusEngine) track(entity string, kind CounterKind, n int) {
	if se.Tracker != nil {
		se.Tracker.Increment(entity, kind, n)
	}
}

// --- Damage modifiers ---

// OutgoingDamage applies the attacker-side modifiers to a base amount:
// Strength adds flat damage, Weak multiplies by 0.75 (floor), and the
// attacker's stance scales the result.
func OutgoingDamage(source *CombatEntity, base int) int {
	if source == nil || base <= 0 {
		return base
	}
	amt := base + source.StatusMagnitude(StatusStrength)
	if source.HasStatus(StatusWeak) {
		amt = int(math.Floor(float64(amt) * 0.75))
	}
	switch source.Stance {
	case StanceAggressive:
		amt = int(math.Ceil(float64(amt) * 1.25))
	case StanceBerserker, StanceLimitBreak:
		amt = int(math.Ceil(float64(amt) * 1.5))
	}
	if amt < 0 {
		amt = 0
	}
	return amt
}

// IncomingDamage applies the defender-side modifiers: Break multiplies by
// 1.25 (ceil), Defensive stance reduces by 25% (floor, minimum 1 when any
// damage came in), Berserker takes 25% more.
func IncomingDamage(target *CombatEntity, amt int) int {
	if target == nil || amt <= 0 {
		return amt
	}
	if target.HasStatus(StatusBreak) {
		amt = int(math.Ceil(float64(amt) * 1.25))
	}
	switch target.Stance {
	case StanceDefensive:
		amt = int(math.Floor(float64(amt) * 0.75))
		if amt < 1 {
			amt = 1
		}
	case StanceBerserker:
		amt = int(math.Ceil(float64(amt) * 1.25))
	}
	return amt
}

// DealDamage runs an attack amount through both entities' modifiers and
// then the damage pipeline. This is the resolver's entry point for Damage
// effects; ApplyDamage is the raw pipeline used for ticks and reflection.
func (se *StatusEngine) DealDamage(source, target *CombatEntity, base int, reflectable bool) int {
	raw := OutgoingDamage(source, base)
	raw = IncomingDamage(target, raw)
	return se.ApplyDamage(source, target, raw, reflectable)
}

// ApplyDamage applies raw damage to target. Pipeline order is fixed:
//  1. shield pool absorbs first, remainder carries to health
//  2. thorns on the target reflect back to source (reflectable hits only),
//     computed after shield absorption, never before
//  3. remainder hits health, clamped at 0
//  4. a >0 → ≤0 transition emits exactly one defeated event
//
// Damage against an already-defeated entity is a no-op returning 0.
func (se *StatusEngine) ApplyDamage(source, target *CombatEntity, raw int, reflectable bool) int {
	if target == nil || target.Defeated || raw <= 0 {
		return 0
	}

	remainder := raw
	absorbed := 0
	if shield := target.Status(StatusShield); shield != nil && shield.Magnitude > 0 {
		absorbed = remainder
		if absorbed > shield.Magnitude {
			absorbed = shield.Magnitude
		}
		shield.Magnitude -= absorbed
		remainder -= absorbed
		se.emit(log.NewShieldAbsorbEvent(se.Turn, target.Name, absorbed, shield.Magnitude))
		if shield.Magnitude == 0 {
			delete(target.Statuses, StatusShield)
			se.emit(log.NewStatusExpiredEvent(se.Turn, target.Name, StatusShield.String()))
		}
	}

	// Thorns reflect after the shield math, before health is touched.
	var reflect int
	if reflectable && source != nil && !source.Defeated {
		if thorns := target.Status(StatusThorns); thorns != nil && thorns.Magnitude > 0 {
			reflect = thorns.Magnitude
		}
	}

	if remainder > 0 {
		wasAlive := target.Health > 0
		target.Health -= remainder
		if target.Health < 0 {
			target.Health = 0
		}
		breakdown := ""
		if absorbed > 0 {
			breakdown = fmt.Sprintf("%d absorbed by shield", absorbed)
		}
		se.emit(log.NewDamageEvent(se.Turn, target.Name, remainder, breakdown))
		se.track(target.Name, CounterDamageTaken, remainder)
		if source != nil {
			se.track(source.Name, CounterDamageDealt, remainder)
		}
		if wasAlive && target.Health == 0 {
			target.Defeated = true
			se.emit(log.NewDefeatedEvent(se.Turn, target.Name))
			if source != nil && source.Team != target.Team {
				se.track(source.Name, CounterEnemiesDefeated, 1)
			}
		}
	}

	if reflect > 0 {
		se.emit(log.NewThornsReflectEvent(se.Turn, source.Name, reflect))
		se.track(target.Name, CounterThornsReflected, reflect)
		// Reflected damage is never itself reflectable.
		se.ApplyDamage(target, source, reflect, false)
	}

	return remainder
}

// ApplyHeal heals target for raw, adjusted by the healer's stance, clamped
// at max health. Healing a defeated entity is a no-op.
func (se *StatusEngine) ApplyHeal(source, target *CombatEntity, raw int) int {
	if target == nil || target.Defeated || raw <= 0 {
		return 0
	}
	amt := raw
	if source != nil && source.Stance == StanceMystic {
		amt = int(math.Floor(float64(amt) * 1.25))
	}
	before := target.Health
	target.Health += amt
	if target.Health > target.MaxHealth {
		target.Health = target.MaxHealth
	}
	applied := target.Health - before
	if applied > 0 {
		se.emit(log.NewHealEvent(se.Turn, target.Name, applied))
		se.track(target.Name, CounterHealingReceived, applied)
		if source != nil {
			se.track(source.Name, CounterHealingGiven, applied)
		}
	}
	return applied
}

// ApplyStatus applies a status to target, combining with any existing
// instance of the same kind. Pool types (Shield, Thorns) stack magnitude
// additively; duration types refresh remaining turns to the max of old and
// new without summing magnitude. Returns the resulting change, or nil for
// no-ops (defeated target, zero magnitude).
func (se *StatusEngine) ApplyStatus(source, target *CombatEntity, kind StatusKind, magnitude, duration int) *StatusChange {
	if target == nil || target.Defeated || kind == StatusNone {
		return nil
	}
	if magnitude <= 0 {
		return nil
	}

	if kind == StatusShield && source != nil && source.Stance == StanceGuardian && source == target {
		magnitude = int(math.Floor(float64(magnitude) * 1.5))
	}

	existing := target.Statuses[kind]
	var change StatusChange
	switch {
	case existing == nil:
		target.Statuses[kind] = &StatusInstance{Kind: kind, Magnitude: magnitude, Remaining: duration}
		change = StatusChange{Kind: kind, Magnitude: magnitude, Remaining: duration}
		se.emit(log.NewStatusAppliedEvent(se.Turn, target.Name, kind.String(), magnitude, duration))
	case kind.IsPool():
		existing.Magnitude += magnitude
		change = StatusChange{Kind: kind, Magnitude: existing.Magnitude, Remaining: existing.Remaining}
		se.emit(log.NewStatusAppliedEvent(se.Turn, target.Name, kind.String(), existing.Magnitude, existing.Remaining))
	default:
		// Non-stacking refresh: duration becomes the max, magnitude untouched.
		if duration > existing.Remaining {
			existing.Remaining = duration
		}
		change = StatusChange{Kind: kind, Magnitude: existing.Magnitude, Remaining: existing.Remaining, Refreshed: true}
		se.emit(log.NewStatusRefreshedEvent(se.Turn, target.Name, kind.String(), existing.Remaining))
	}

	if kind == StatusShield {
		se.track(target.Name, CounterShieldGranted, magnitude)
	}
	se.track(target.Name, CounterStatusesReceived, 1)
	if source != nil && source != target {
		se.track(source.Name, CounterStatusesApplied, 1)
	}
	return &change
}

// TickTurnStart advances status durations at the start of an entity's turn:
// on-tick values (Burn damage, Salve healing) apply first, then remaining
// turns decrement, and instances reaching zero expire. Pool types with no
// duration persist until consumed.
func (se *StatusEngine) TickTurnStart(e *CombatEntity) {
	if e == nil || e.Defeated {
		return
	}
	for _, kind := range tickOrder {
		si := e.Statuses[kind]
		if si == nil {
			continue
		}
		switch kind {
		case StatusBurn:
			se.emit(log.NewStatusTickEvent(se.Turn, e.Name, kind.String(), si.Magnitude))
			se.ApplyDamage(nil, e, si.Magnitude, false)
			if e.Defeated {
				return
			}
		case StatusSalve:
			se.emit(log.NewStatusTickEvent(se.Turn, e.Name, kind.String(), si.Magnitude))
			se.ApplyHeal(nil, e, si.Magnitude)
		}
		if si.Remaining > 0 {
			si.Remaining--
			if si.Remaining == 0 {
				delete(e.Statuses, kind)
				se.emit(log.NewStatusExpiredEvent(se.Turn, e.Name, kind.String()))
			}
		}
	}
}
