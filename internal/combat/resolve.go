package combat

import (
	"github.com/ValleyOfWalls/cardclash/internal/log"
)

// EffectOutcome is one line of a resolution report: what a single effect
// did to a single target.
type EffectOutcome struct {
	Kind        EffectKind
	Target      string
	Applied     int
	Element     Element
	Statuses    []StatusChange
	Alternative bool // produced by the conditional alternative branch
	Skipped     bool
	Reason      string // why the effect was skipped, if it was
}

// ResolutionReport is the ordered record of everything a card play did,
// consumed by presentation and replication layers.
type ResolutionReport struct {
	Card       string
	Source     string
	Outcomes   []EffectOutcome
	ComboAfter int
	ComboBuilt bool
}

// Empty reports whether the play applied nothing at all.
func (r *ResolutionReport) Empty() bool {
	for _, o := range r.Outcomes {
		if !o.Skipped {
			return false
		}
	}
	return true
}

// Resolve runs a card's ordered effect list against the current roster and
// returns the report. Legality is the caller's responsibility (PlayCard);
// Resolve itself never fails; no-op conditions degrade to skipped
// outcomes. Effects resolve in declared order, and later effects observe
// counters mutated by earlier ones in the same resolution.
func (f *Fight) Resolve(card *Card, source *CombatEntity, explicitTargets []*CombatEntity) *ResolutionReport {
	report := &ResolutionReport{Card: card.Name, Source: source.Name}

	for i := range card.Effects {
		eff := &card.Effects[i]
		targets := f.resolveTargets(eff.Target, source, explicitTargets)
		if len(targets) == 0 {
			report.Outcomes = append(report.Outcomes, EffectOutcome{
				Kind: eff.Kind, Skipped: true, Reason: "no valid target",
			})
			f.emit(log.NewEffectSkippedEvent(f.Turn, source.Name, card.Name, "no valid target"))
			continue
		}
		for _, target := range targets {
			report.Outcomes = append(report.Outcomes, f.resolveEffectFor(card, eff, source, target)...)
		}
	}

	return report
}

// resolveEffectFor applies one effect (and possibly its conditional
// alternative) to one target, honoring the combination policy:
//
//	Replace:    condition true → main; condition false → alternative
//	Additional: main always; condition true → alternative as a bonus
func (f *Fight) resolveEffectFor(card *Card, eff *CardEffect, source, target *CombatEntity) []EffectOutcome {
	if target.Defeated {
		return []EffectOutcome{{Kind: eff.Kind, Target: target.Name, Skipped: true, Reason: "target defeated"}}
	}

	if eff.Condition == nil {
		return []EffectOutcome{f.applyEffect(eff, source, target, false)}
	}

	met := EvaluateCondition(eff.Condition, source, target, f.Tracker.Entity(source.Name))

	switch eff.Policy {
	case CombineAdditional:
		outcomes := []EffectOutcome{f.applyEffect(eff, source, target, false)}
		if met && eff.Alternative != nil {
			outcomes = append(outcomes, f.applyEffect(eff.Alternative, source, target, true))
		}
		return outcomes
	default: // CombineReplace
		if met {
			return []EffectOutcome{f.applyEffect(eff, source, target, false)}
		}
		if eff.Alternative != nil {
			return []EffectOutcome{f.applyEffect(eff.Alternative, source, target, true)}
		}
		out := EffectOutcome{Kind: eff.Kind, Target: target.Name, Skipped: true, Reason: "condition not met"}
		f.emit(log.NewEffectSkippedEvent(f.Turn, source.Name, card.Name, "condition not met"))
		return []EffectOutcome{out}
	}
}

// applyEffect performs a single concrete effect against one target and
// updates counters as a side effect.
func (f *Fight) applyEffect(eff *CardEffect, source, target *CombatEntity, alternative bool) EffectOutcome {
	out := EffectOutcome{Kind: eff.Kind, Target: target.Name, Element: eff.Element, Alternative: alternative}
	amount := EvaluateScaling(eff.Scaling, eff.Amount, f.Tracker.Entity(source.Name))

	switch eff.Kind {
	case EffectDamage:
		out.Applied = f.Engine.DealDamage(source, target, amount, eff.Reflectable)

	case EffectHeal:
		out.Applied = f.Engine.ApplyHeal(source, target, amount)

	case EffectDrawCard:
		drawn := 0
		for i := 0; i < amount; i++ {
			card := target.DrawCard()
			if card == nil {
				break
			}
			drawn++
			f.emit(log.NewDrawEvent(f.Turn, target.Name, card.Card.Name))
		}
		out.Applied = drawn
		f.Tracker.Increment(target.Name, CounterCardsDrawn, drawn)

	case EffectRestoreEnergy:
		if target.Stance == StanceFocused {
			amount++
		}
		out.Applied = target.RestoreEnergy(amount)
		if out.Applied > 0 {
			f.emit(log.NewEnergyRestoreEvent(f.Turn, target.Name, out.Applied))
			f.Tracker.Increment(target.Name, CounterEnergyRestored, out.Applied)
		}

	case EffectApplyStatus:
		if change := f.Engine.ApplyStatus(source, target, eff.Status, amount, eff.Duration); change != nil {
			out.Applied = change.Magnitude
			out.Statuses = append(out.Statuses, *change)
		} else {
			out.Skipped = true
			out.Reason = "status not applied"
		}

	case EffectEnterStance:
		if EnterStance(target, eff.Stance) {
			f.emit(log.NewStanceEnterEvent(f.Turn, target.Name, eff.Stance.String()))
			f.Tracker.Increment(target.Name, CounterStancesEntered, 1)
		} else {
			out.Skipped = true
			out.Reason = "stance requirement not met"
		}

	case EffectExitStance:
		if prev := ExitStance(target); prev != StanceNone {
			f.emit(log.NewStanceExitEvent(f.Turn, target.Name, prev.String()))
		} else {
			out.Skipped = true
			out.Reason = "no stance active"
		}
	}

	return out
}

// resolveTargets expands a selector against the live roster at resolution
// time. Multi-target selectors iterate in roster order so resolution is
// deterministic; Random draws from the fight's seeded RNG.
func (f *Fight) resolveTargets(sel TargetSelector, source *CombatEntity, explicit []*CombatEntity) []*CombatEntity {
	living := func(e *CombatEntity) bool { return e != nil && !e.Defeated }
	enemies := func() []*CombatEntity {
		var out []*CombatEntity
		for _, e := range f.Roster {
			if living(e) && e.Team != source.Team {
				out = append(out, e)
			}
		}
		return out
	}

	switch sel {
	case TargetSelf:
		if living(source) {
			return []*CombatEntity{source}
		}
		return nil

	case TargetOpponent:
		for _, e := range explicit {
			if living(e) && e.Team != source.Team {
				return []*CombatEntity{e}
			}
		}
		if es := enemies(); len(es) > 0 {
			return es[:1]
		}
		return nil

	case TargetAlly:
		for _, e := range explicit {
			if living(e) && e.Team == source.Team && e != source {
				return []*CombatEntity{e}
			}
		}
		for _, e := range f.Roster {
			if living(e) && e.Team == source.Team && e != source {
				return []*CombatEntity{e}
			}
		}
		return nil

	case TargetRandom:
		es := enemies()
		if len(es) == 0 {
			return nil
		}
		return []*CombatEntity{es[f.rng.Intn(len(es))]}

	case TargetAllEnemies:
		return enemies()

	case TargetAllAllies:
		var out []*CombatEntity
		for _, e := range f.Roster {
			if living(e) && e.Team == source.Team {
				out = append(out, e)
			}
		}
		return out

	case TargetEveryone:
		var out []*CombatEntity
		for _, e := range f.Roster {
			if living(e) {
				out = append(out, e)
			}
		}
		return out
	}
	return nil
}
