package combat

import "fmt"

// ValidationError describes a malformed card definition. Validation runs
// at authoring time (registry init, YAML load); a definition that passes
// never produces a config error during a fight.
type ValidationError struct {
	Card   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid card %q: %s", e.Card, e.Detail)
}

func invalid(card, format string, args ...any) error {
	return &ValidationError{Card: card, Detail: fmt.Sprintf(format, args...)}
}

// ValidateCard checks one card definition in isolation. Cross-card checks
// (upgrade targets existing) belong to ValidateCatalog.
func ValidateCard(c *Card) error {
	if c == nil {
		return &ValidationError{Card: "", Detail: "nil card"}
	}
	if c.Name == "" {
		return invalid(c.Name, "missing name")
	}
	if c.Cost < 0 {
		return invalid(c.Name, "negative cost %d", c.Cost)
	}
	if c.RequiresCombo < 0 {
		return invalid(c.Name, "negative combo requirement %d", c.RequiresCombo)
	}
	if c.RequiredStance < StanceNone || c.RequiredStance > StanceLimitBreak {
		return invalid(c.Name, "unknown required stance %d", int(c.RequiredStance))
	}
	if len(c.Effects) == 0 {
		return invalid(c.Name, "no effects")
	}
	for i := range c.Effects {
		if err := validateEffect(c.Name, &c.Effects[i], 0); err != nil {
			return err
		}
	}
	if (c.Upgrade == nil) != (c.UpgradeTo == "") {
		return invalid(c.Name, "upgrade condition and upgrade target must be set together")
	}
	if c.Upgrade != nil {
		if err := validateUpgrade(c.Name, c.Upgrade); err != nil {
			return err
		}
		if c.UpgradeTo == c.Name {
			return invalid(c.Name, "card upgrades into itself")
		}
	}
	return nil
}

// validateEffect checks one effect, recursing into its alternative. Depth
// caps alternative chains; one level is all the authoring model allows.
func validateEffect(card string, eff *CardEffect, depth int) error {
	if eff.Kind < EffectNone || eff.Kind > EffectExitStance {
		return invalid(card, "unknown effect kind %d", int(eff.Kind))
	}
	if eff.Target < TargetSelf || eff.Target > TargetEveryone {
		return invalid(card, "unknown target selector %d", int(eff.Target))
	}
	switch eff.Kind {
	case EffectNone:
		return invalid(card, "effect kind None")
	case EffectDamage, EffectHeal:
		if eff.Amount <= 0 {
			return invalid(card, "%s effect needs a positive amount, got %d", eff.Kind, eff.Amount)
		}
	case EffectDrawCard, EffectRestoreEnergy:
		if eff.Amount <= 0 {
			return invalid(card, "%s effect needs a positive amount, got %d", eff.Kind, eff.Amount)
		}
	case EffectApplyStatus:
		if eff.Status == StatusNone {
			return invalid(card, "ApplyStatus effect needs a status kind")
		}
		if eff.Status < StatusNone || eff.Status > StatusStun {
			return invalid(card, "unknown status kind %d", int(eff.Status))
		}
		if eff.Amount <= 0 {
			return invalid(card, "ApplyStatus %s needs a positive magnitude, got %d", eff.Status, eff.Amount)
		}
		if !eff.Status.IsPool() && eff.Duration <= 0 {
			return invalid(card, "duration status %s needs a positive duration, got %d", eff.Status, eff.Duration)
		}
		if eff.Status.IsPool() && eff.Duration != 0 {
			return invalid(card, "pool status %s must not carry a duration", eff.Status)
		}
	case EffectEnterStance:
		if eff.Stance == StanceNone {
			return invalid(card, "EnterStance effect needs a stance")
		}
		if eff.Stance < StanceNone || eff.Stance > StanceLimitBreak {
			return invalid(card, "unknown stance %d", int(eff.Stance))
		}
	}

	if eff.Condition != nil {
		if err := validateCondition(card, eff.Condition); err != nil {
			return err
		}
	}
	if eff.Alternative != nil {
		if depth >= 1 {
			return invalid(card, "alternative effects do not nest")
		}
		if eff.Condition == nil {
			return invalid(card, "alternative effect without a condition")
		}
		if err := validateEffect(card, eff.Alternative, depth+1); err != nil {
			return err
		}
	}
	if eff.Scaling != nil {
		if err := validateScaling(card, eff.Scaling); err != nil {
			return err
		}
		if eff.Kind != EffectDamage && eff.Kind != EffectHeal && eff.Kind != EffectApplyStatus {
			return invalid(card, "scaling is only valid on Damage, Heal, and ApplyStatus effects")
		}
	}
	return nil
}

func validateCondition(card string, cond *ConditionDescriptor) error {
	if cond.Predicate < PredNone || cond.Predicate > PredEnergyAtLeast {
		return invalid(card, "unknown condition predicate %d", int(cond.Predicate))
	}
	if cond.Predicate == PredNone {
		return invalid(card, "condition with predicate None")
	}
	switch cond.Predicate {
	case PredInStance:
		if cond.Stance == StanceNone {
			return invalid(card, "InStance condition needs a stance")
		}
	case PredSourceHealthAbovePercent, PredSourceHealthBelowPercent,
		PredTargetHealthAbovePercent, PredTargetHealthBelowPercent:
		if cond.Threshold < 0 || cond.Threshold > 100 {
			return invalid(card, "health percent threshold out of range: %d", cond.Threshold)
		}
	default:
		if cond.Threshold < 0 {
			return invalid(card, "negative condition threshold %d", cond.Threshold)
		}
	}
	return nil
}

func validateScaling(card string, sc *ScalingDescriptor) error {
	if int(sc.Counter) < 0 || int(sc.Counter) >= counterKindCount {
		return invalid(card, "unknown scaling counter %d", int(sc.Counter))
	}
	if sc.Scope != ScopeFight && sc.Scope != ScopeLifetime {
		return invalid(card, "unknown scaling scope %d", int(sc.Scope))
	}
	if sc.Multiplier < 0 {
		return invalid(card, "negative scaling multiplier %g", sc.Multiplier)
	}
	if sc.Cap < 0 {
		return invalid(card, "negative scaling cap %d", sc.Cap)
	}
	return nil
}

func validateUpgrade(card string, uc *UpgradeCondition) error {
	if uc.Predicate == UpNone {
		return invalid(card, "upgrade condition with predicate None")
	}
	if int(uc.Predicate) < 0 || int(uc.Predicate) >= upgradePredicateCount {
		return invalid(card, "unknown upgrade predicate %d", int(uc.Predicate))
	}
	if uc.Comparison < CompGTE || uc.Comparison > CompLT {
		return invalid(card, "unknown comparison %d", int(uc.Comparison))
	}
	if uc.RequiredValue < 0 {
		return invalid(card, "negative upgrade requirement %d", uc.RequiredValue)
	}
	return nil
}

// ValidateCatalog checks every card in a catalog and the cross-card
// upgrade references between them.
func ValidateCatalog(cards map[string]*Card) error {
	for name, c := range cards {
		if c.Name != name {
			return invalid(name, "catalog key does not match card name %q", c.Name)
		}
		if err := ValidateCard(c); err != nil {
			return err
		}
	}
	for _, c := range cards {
		if c.UpgradeTo != "" {
			if _, ok := cards[c.UpgradeTo]; !ok {
				return invalid(c.Name, "upgrade target %q not in catalog", c.UpgradeTo)
			}
		}
	}
	return nil
}
