package combat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure. Custom cards declared
// in the file are validated and become available alongside the built-in
// registry for deck expansion.
type DeckFile struct {
	Cards []CardSpec  `yaml:"cards"`
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// CardSpec is a YAML-authored card definition.
type CardSpec struct {
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description"`
	Cost           int          `yaml:"cost"`
	BuildsCombo    bool         `yaml:"builds_combo"`
	RequiresCombo  int          `yaml:"requires_combo"`
	RequiredStance string       `yaml:"required_stance"`
	Effects        []EffectSpec `yaml:"effects"`
	Upgrade        *UpgradeSpec `yaml:"upgrade"`
	UpgradeTo      string       `yaml:"upgrade_to"`
}

// EffectSpec is one YAML-authored effect.
type EffectSpec struct {
	Kind        string         `yaml:"kind"`
	Amount      int            `yaml:"amount"`
	Target      string         `yaml:"target"`
	Status      string         `yaml:"status"`
	Stance      string         `yaml:"stance"`
	Duration    int            `yaml:"duration"`
	Element     string         `yaml:"element"`
	Reflectable bool           `yaml:"reflectable"`
	Condition   *ConditionSpec `yaml:"condition"`
	Policy      string         `yaml:"policy"`
	Alternative *EffectSpec    `yaml:"alternative"`
	Scaling     *ScalingSpec   `yaml:"scaling"`
}

type ConditionSpec struct {
	Predicate string `yaml:"predicate"`
	Threshold int    `yaml:"threshold"`
	Stance    string `yaml:"stance"`
}

type ScalingSpec struct {
	Counter    string  `yaml:"counter"`
	Scope      string  `yaml:"scope"`
	Multiplier float64 `yaml:"multiplier"`
	Cap        int     `yaml:"cap"`
}

type UpgradeSpec struct {
	Predicate  string `yaml:"predicate"`
	Comparison string `yaml:"comparison"`
	Value      int    `yaml:"value"`
}

// Reverse name lookups built from the enum String methods, so YAML files
// use the same spellings the event log prints.

var targetNames = buildNames(int(TargetEveryone), func(i int) string { return TargetSelector(i).String() })
var effectKindNames = buildNames(int(EffectExitStance), func(i int) string { return EffectKind(i).String() })
var statusNames = buildNames(int(StatusStun), func(i int) string { return StatusKind(i).String() })
var stanceNames = buildNames(int(StanceLimitBreak), func(i int) string { return Stance(i).String() })
var elementNames = buildNames(int(ElementVoid), func(i int) string { return Element(i).String() })
var predicateNames = buildNames(int(PredEnergyAtLeast), func(i int) string { return Predicate(i).String() })
var comparisonNames = buildNames(int(CompLT), func(i int) string { return Comparison(i).String() })
var counterNames = buildNames(counterKindCount-1, func(i int) string { return CounterKind(i).String() })
var upgradePredicateNames = buildNames(upgradePredicateCount-1, func(i int) string { return UpgradePredicate(i).String() })

func buildNames(max int, str func(int) string) map[string]int {
	m := make(map[string]int, max+1)
	for i := 0; i <= max; i++ {
		m[str(i)] = i
	}
	return m
}

func lookupName(kind, name string, names map[string]int) (int, error) {
	if name == "" {
		return 0, nil
	}
	v, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q", kind, name)
	}
	return v, nil
}

// BuildCard converts a YAML card spec into a card definition. The result
// is not yet validated; callers run ValidateCard (or ValidateCatalog for
// cross-card upgrade references) before use.
func BuildCard(spec *CardSpec) (*Card, error) {
	stance, err := lookupName("stance", spec.RequiredStance, stanceNames)
	if err != nil {
		return nil, fmt.Errorf("card %q: %w", spec.Name, err)
	}
	c := &Card{
		Name:           spec.Name,
		Description:    spec.Description,
		Cost:           spec.Cost,
		BuildsCombo:    spec.BuildsCombo,
		RequiresCombo:  spec.RequiresCombo,
		RequiredStance: Stance(stance),
		UpgradeTo:      spec.UpgradeTo,
	}
	for i := range spec.Effects {
		eff, err := buildEffect(&spec.Effects[i])
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", spec.Name, err)
		}
		c.Effects = append(c.Effects, *eff)
	}
	if spec.Upgrade != nil {
		uc, err := buildUpgrade(spec.Upgrade)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", spec.Name, err)
		}
		c.Upgrade = uc
	}
	return c, nil
}

func buildEffect(spec *EffectSpec) (*CardEffect, error) {
	kind, err := lookupName("effect kind", spec.Kind, effectKindNames)
	if err != nil {
		return nil, err
	}
	target, err := lookupName("target", spec.Target, targetNames)
	if err != nil {
		return nil, err
	}
	status, err := lookupName("status", spec.Status, statusNames)
	if err != nil {
		return nil, err
	}
	stance, err := lookupName("stance", spec.Stance, stanceNames)
	if err != nil {
		return nil, err
	}
	element, err := lookupName("element", spec.Element, elementNames)
	if err != nil {
		return nil, err
	}
	eff := &CardEffect{
		Kind:        EffectKind(kind),
		Amount:      spec.Amount,
		Target:      TargetSelector(target),
		Duration:    spec.Duration,
		Status:      StatusKind(status),
		Stance:      Stance(stance),
		Element:     Element(element),
		Reflectable: spec.Reflectable,
	}
	switch spec.Policy {
	case "", "Replace":
		eff.Policy = CombineReplace
	case "Additional":
		eff.Policy = CombineAdditional
	default:
		return nil, fmt.Errorf("unknown combine policy %q", spec.Policy)
	}
	if spec.Condition != nil {
		pred, err := lookupName("condition predicate", spec.Condition.Predicate, predicateNames)
		if err != nil {
			return nil, err
		}
		condStance, err := lookupName("stance", spec.Condition.Stance, stanceNames)
		if err != nil {
			return nil, err
		}
		eff.Condition = &ConditionDescriptor{
			Predicate: Predicate(pred),
			Threshold: spec.Condition.Threshold,
			Stance:    Stance(condStance),
		}
	}
	if spec.Alternative != nil {
		alt, err := buildEffect(spec.Alternative)
		if err != nil {
			return nil, err
		}
		eff.Alternative = alt
	}
	if spec.Scaling != nil {
		counter, err := lookupName("counter", spec.Scaling.Counter, counterNames)
		if err != nil {
			return nil, err
		}
		var scope Scope
		switch spec.Scaling.Scope {
		case "", "Fight":
			scope = ScopeFight
		case "Lifetime":
			scope = ScopeLifetime
		default:
			return nil, fmt.Errorf("unknown scope %q", spec.Scaling.Scope)
		}
		eff.Scaling = &ScalingDescriptor{
			Counter:    CounterKind(counter),
			Scope:      scope,
			Multiplier: spec.Scaling.Multiplier,
			Cap:        spec.Scaling.Cap,
		}
	}
	return eff, nil
}

func buildUpgrade(spec *UpgradeSpec) (*UpgradeCondition, error) {
	pred, err := lookupName("upgrade predicate", spec.Predicate, upgradePredicateNames)
	if err != nil {
		return nil, err
	}
	cmp, err := lookupName("comparison", spec.Comparison, comparisonNames)
	if err != nil {
		return nil, err
	}
	return &UpgradeCondition{
		Predicate:     UpgradePredicate(pred),
		Comparison:    Comparison(cmp),
		RequiredValue: spec.Value,
	}, nil
}

// ParseDeckFile parses a YAML deck file and returns a map of deck name →
// card slice. Custom cards in the file are validated against the combined
// catalog (built-ins plus customs) before any deck is expanded.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	catalog := Catalog()
	for i := range df.Cards {
		c, err := BuildCard(&df.Cards[i])
		if err != nil {
			return nil, err
		}
		if _, exists := catalog[c.Name]; exists {
			return nil, fmt.Errorf("custom card %q shadows an existing card", c.Name)
		}
		catalog[c.Name] = c
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}

	decks := make(map[string][]*Card)
	for _, deck := range df.Decks {
		var cards []*Card
		for _, entry := range deck.Cards {
			def, ok := catalog[entry.Name]
			if !ok {
				return nil, fmt.Errorf("deck %q: card %q not in catalog", deck.Name, entry.Name)
			}
			for i := 0; i < entry.Count; i++ {
				cards = append(cards, def)
			}
		}
		decks[deck.Name] = cards
	}

	return decks, nil
}

// DeckByName returns the named deck from the deck file.
func DeckByName(path, name string) ([]*Card, error) {
	decks, err := ParseDeckFile(path)
	if err != nil {
		return nil, err
	}
	cards, ok := decks[name]
	if !ok {
		return nil, fmt.Errorf("deck %q not found", name)
	}
	return cards, nil
}
