package combat

import "fmt"

// --- Enums ---

// EffectKind is the closed set of things a card effect can do.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectDamage
	EffectHeal
	EffectDrawCard
	EffectRestoreEnergy
	EffectApplyStatus
	EffectEnterStance
	EffectExitStance
)

func (k EffectKind) String() string {
	switch k {
	case EffectDamage:
		return "Damage"
	case EffectHeal:
		return "Heal"
	case EffectDrawCard:
		return "DrawCard"
	case EffectRestoreEnergy:
		return "RestoreEnergy"
	case EffectApplyStatus:
		return "ApplyStatus"
	case EffectEnterStance:
		return "EnterStance"
	case EffectExitStance:
		return "ExitStance"
	default:
		return "None"
	}
}

// TargetSelector picks which entities an effect applies to.
type TargetSelector int

const (
	TargetSelf TargetSelector = iota
	TargetOpponent
	TargetAlly
	TargetRandom
	TargetAllEnemies
	TargetAllAllies
	TargetEveryone
)

func (t TargetSelector) String() string {
	switch t {
	case TargetSelf:
		return "Self"
	case TargetOpponent:
		return "Opponent"
	case TargetAlly:
		return "Ally"
	case TargetRandom:
		return "Random"
	case TargetAllEnemies:
		return "AllEnemies"
	case TargetAllAllies:
		return "AllAllies"
	case TargetEveryone:
		return "Everyone"
	default:
		return "Unknown"
	}
}

// StatusKind enumerates the status effect model.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusShield
	StatusThorns
	StatusStrength
	StatusWeak
	StatusBreak
	StatusBurn
	StatusSalve
	StatusStun
)

func (s StatusKind) String() string {
	switch s {
	case StatusShield:
		return "Shield"
	case StatusThorns:
		return "Thorns"
	case StatusStrength:
		return "Strength"
	case StatusWeak:
		return "Weak"
	case StatusBreak:
		return "Break"
	case StatusBurn:
		return "Burn"
	case StatusSalve:
		return "Salve"
	case StatusStun:
		return "Stun"
	default:
		return "None"
	}
}

// IsPool reports whether this status is a pool type (consumed by amount,
// not ticked down by turns).
func (s StatusKind) IsPool() bool {
	return s == StatusShield || s == StatusThorns
}

// Stance is a mutually-exclusive modal state.
type Stance int

const (
	StanceNone Stance = iota
	StanceAggressive
	StanceDefensive
	StanceFocused
	StanceBerserker
	StanceGuardian
	StanceMystic
	StanceLimitBreak
)

func (s Stance) String() string {
	switch s {
	case StanceAggressive:
		return "Aggressive"
	case StanceDefensive:
		return "Defensive"
	case StanceFocused:
		return "Focused"
	case StanceBerserker:
		return "Berserker"
	case StanceGuardian:
		return "Guardian"
	case StanceMystic:
		return "Mystic"
	case StanceLimitBreak:
		return "LimitBreak"
	default:
		return "None"
	}
}

// Element is an optional flavor tag on effects. It does not alter resolution
// math but is carried through reports for the presentation layer.
type Element int

const (
	ElementNone Element = iota
	ElementFire
	ElementIce
	ElementLightning
	ElementVoid
)

func (e Element) String() string {
	switch e {
	case ElementFire:
		return "Fire"
	case ElementIce:
		return "Ice"
	case ElementLightning:
		return "Lightning"
	case ElementVoid:
		return "Void"
	default:
		return "None"
	}
}

// CombinePolicy governs how a conditional alternative combines with the
// base effect.
//
// Replace: the alternative fires INSTEAD of the base when the condition is
// false. Additional: the base always fires, and the alternative fires as a
// bonus only when the condition is true. The two policies gate the
// alternative on opposite boolean values; this asymmetry is intentional.
type CombinePolicy int

const (
	CombineReplace CombinePolicy = iota
	CombineAdditional
)

func (p CombinePolicy) String() string {
	if p == CombineAdditional {
		return "Additional"
	}
	return "Replace"
}

// Predicate is the closed set of per-effect condition checks.
type Predicate int

const (
	PredNone Predicate = iota
	PredSourceHealthAbovePercent
	PredSourceHealthBelowPercent
	PredTargetHealthAbovePercent
	PredTargetHealthBelowPercent
	PredCardsInHandAtLeast
	PredCardsInDeckAtLeast
	PredCardsInDiscardAtLeast
	PredComboCountAtLeast
	PredZeroCostPlayedThisTurnAtLeast
	PredZeroCostPlayedThisFightAtLeast
	PredInStance
	PredEnergyAtLeast
)

func (p Predicate) String() string {
	switch p {
	case PredSourceHealthAbovePercent:
		return "SourceHealthAbovePercent"
	case PredSourceHealthBelowPercent:
		return "SourceHealthBelowPercent"
	case PredTargetHealthAbovePercent:
		return "TargetHealthAbovePercent"
	case PredTargetHealthBelowPercent:
		return "TargetHealthBelowPercent"
	case PredCardsInHandAtLeast:
		return "CardsInHandAtLeast"
	case PredCardsInDeckAtLeast:
		return "CardsInDeckAtLeast"
	case PredCardsInDiscardAtLeast:
		return "CardsInDiscardAtLeast"
	case PredComboCountAtLeast:
		return "ComboCountAtLeast"
	case PredZeroCostPlayedThisTurnAtLeast:
		return "ZeroCostPlayedThisTurnAtLeast"
	case PredZeroCostPlayedThisFightAtLeast:
		return "ZeroCostPlayedThisFightAtLeast"
	case PredInStance:
		return "InStance"
	case PredEnergyAtLeast:
		return "EnergyAtLeast"
	default:
		return "None"
	}
}

// Comparison is the operator set used by upgrade conditions.
type Comparison int

const (
	CompGTE Comparison = iota
	CompEQ
	CompLTE
	CompGT
	CompLT
)

func (c Comparison) String() string {
	switch c {
	case CompGTE:
		return ">="
	case CompEQ:
		return "=="
	case CompLTE:
		return "<="
	case CompGT:
		return ">"
	case CompLT:
		return "<"
	default:
		return "?"
	}
}

// Holds reports whether "value c required" is true.
func (c Comparison) Holds(value, required int) bool {
	switch c {
	case CompGTE:
		return value >= required
	case CompEQ:
		return value == required
	case CompLTE:
		return value <= required
	case CompGT:
		return value > required
	case CompLT:
		return value < required
	default:
		return false
	}
}

// --- Effect descriptors (authored once per card, immutable at resolution) ---

// ConditionDescriptor is a pure, order-independent predicate over the
// source, one resolved target, and the source's fight counters.
type ConditionDescriptor struct {
	Predicate Predicate
	Threshold int
	Stance    Stance // only for PredInStance
}

// ScalingDescriptor adds a counter-derived bonus to an effect's base amount.
// final = clamp(base + round(counter*Multiplier), base, base+Cap).
type ScalingDescriptor struct {
	Counter    CounterKind
	Scope      Scope
	Multiplier float64
	Cap        int
}

// CardEffect is one declarative step in a card's ordered effect list.
type CardEffect struct {
	Kind     EffectKind
	Amount   int
	Target   TargetSelector
	Duration int        // turns, for ApplyStatus (0 = until consumed, pool types)
	Status   StatusKind // for ApplyStatus
	Stance   Stance     // for EnterStance
	Element  Element

	// Melee-style effects are subject to thorns reflection.
	Reflectable bool

	Condition   *ConditionDescriptor
	Alternative *CardEffect
	Policy      CombinePolicy

	Scaling *ScalingDescriptor
}

// --- Card definition (static, from registry/YAML) ---

type Card struct {
	Name        string
	Description string
	Cost        int
	Effects     []CardEffect

	BuildsCombo    bool
	RequiresCombo  int    // minimum combo count to be legal (0 = none)
	RequiredStance Stance // must be in this stance to play (StanceNone = any)

	// Optional upgrade pair: when Upgrade is met, the owning instance may be
	// swapped for the card named UpgradeTo.
	Upgrade   *UpgradeCondition
	UpgradeTo string
}

func (c *Card) String() string {
	return c.Name
}

// IsZeroCost reports whether the card costs no energy.
func (c *Card) IsZeroCost() bool {
	return c.Cost == 0
}

// --- CardInstance (runtime card in a deck/hand/discard) ---

type CardInstance struct {
	Card  *Card
	ID    int    // unique instance ID within a fight
	Owner string // entity name that owns this card
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (cost %d)", ci.Card.Name, ci.Card.Cost)
}

// UpgradeCondition compares one tracked counter against a required value.
// It never mutates counters; evaluation is repeatable. The predicate set
// lives in upgrade_conditions.go; the evaluator in internal/upgrade.
type UpgradeCondition struct {
	Predicate     UpgradePredicate
	Comparison    Comparison
	RequiredValue int
}
