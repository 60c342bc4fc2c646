package combat

import (
	"strings"
	"testing"
)

func validCard() *Card {
	return &Card{
		Name: "test",
		Cost: 1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 6, Target: TargetOpponent},
		},
	}
}

func wantInvalid(t *testing.T, c *Card, detail string) {
	t.Helper()
	err := ValidateCard(c)
	if err == nil {
		t.Fatalf("card %q should be invalid (%s)", c.Name, detail)
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !strings.Contains(verr.Detail, detail) {
		t.Errorf("detail = %q, want it to mention %q", verr.Detail, detail)
	}
}

func TestValidateCardAcceptsWellFormed(t *testing.T) {
	if err := ValidateCard(validCard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCardBasics(t *testing.T) {
	c := validCard()
	c.Name = ""
	wantInvalid(t, c, "missing name")

	c = validCard()
	c.Cost = -1
	wantInvalid(t, c, "negative cost")

	c = validCard()
	c.Effects = nil
	wantInvalid(t, c, "no effects")

	c = validCard()
	c.RequiresCombo = -2
	wantInvalid(t, c, "negative combo requirement")
}

func TestValidateStatusEffects(t *testing.T) {
	c := validCard()
	c.Effects = []CardEffect{{Kind: EffectApplyStatus, Amount: 3, Target: TargetOpponent}}
	wantInvalid(t, c, "needs a status kind")

	// Pool statuses persist until consumed; a duration is a contradiction.
	c = validCard()
	c.Effects = []CardEffect{{Kind: EffectApplyStatus, Status: StatusShield, Amount: 5, Duration: 2, Target: TargetSelf}}
	wantInvalid(t, c, "must not carry a duration")

	c = validCard()
	c.Effects = []CardEffect{{Kind: EffectApplyStatus, Status: StatusBurn, Amount: 2, Target: TargetOpponent}}
	wantInvalid(t, c, "positive duration")
}

func TestValidateAlternatives(t *testing.T) {
	c := validCard()
	c.Effects = []CardEffect{{
		Kind: EffectDamage, Amount: 4, Target: TargetOpponent,
		Alternative: &CardEffect{Kind: EffectDamage, Amount: 9, Target: TargetOpponent},
	}}
	wantInvalid(t, c, "without a condition")

	c = validCard()
	c.Effects = []CardEffect{{
		Kind:      EffectDamage,
		Amount:    4,
		Target:    TargetOpponent,
		Condition: &ConditionDescriptor{Predicate: PredComboCountAtLeast, Threshold: 2},
		Alternative: &CardEffect{
			Kind:      EffectDamage,
			Amount:    9,
			Target:    TargetOpponent,
			Condition: &ConditionDescriptor{Predicate: PredComboCountAtLeast, Threshold: 4},
			Alternative: &CardEffect{
				Kind: EffectDamage, Amount: 20, Target: TargetOpponent,
			},
		},
	}}
	wantInvalid(t, c, "do not nest")
}

func TestValidateConditionsAndScaling(t *testing.T) {
	c := validCard()
	c.Effects[0].Condition = &ConditionDescriptor{Predicate: PredSourceHealthBelowPercent, Threshold: 150}
	wantInvalid(t, c, "out of range")

	c = validCard()
	c.Effects[0].Scaling = &ScalingDescriptor{Counter: CounterDamageDealt, Scope: ScopeFight, Multiplier: 0.5, Cap: -1}
	wantInvalid(t, c, "negative scaling cap")

	c = validCard()
	c.Effects = []CardEffect{{
		Kind:    EffectDrawCard,
		Amount:  1,
		Target:  TargetSelf,
		Scaling: &ScalingDescriptor{Counter: CounterDamageDealt, Scope: ScopeFight, Multiplier: 0.5, Cap: 3},
	}}
	wantInvalid(t, c, "scaling is only valid")
}

func TestValidateUpgradePairing(t *testing.T) {
	c := validCard()
	c.UpgradeTo = "test+"
	wantInvalid(t, c, "must be set together")

	c = validCard()
	c.Upgrade = &UpgradeCondition{Predicate: UpCardPlayedThisFight, Comparison: CompGTE, RequiredValue: 3}
	wantInvalid(t, c, "must be set together")

	c = validCard()
	c.Upgrade = &UpgradeCondition{Predicate: UpCardPlayedThisFight, Comparison: CompGTE, RequiredValue: 3}
	c.UpgradeTo = "test"
	wantInvalid(t, c, "upgrades into itself")
}

func TestValidateCatalogCrossReferences(t *testing.T) {
	base := validCard()
	base.Upgrade = &UpgradeCondition{Predicate: UpCardPlayedThisFight, Comparison: CompGTE, RequiredValue: 3}
	base.UpgradeTo = "missing"
	err := ValidateCatalog(map[string]*Card{"test": base})
	if err == nil {
		t.Fatal("dangling upgrade target should be rejected")
	}

	err = ValidateCatalog(map[string]*Card{"wrongkey": validCard()})
	if err == nil {
		t.Fatal("mismatched catalog key should be rejected")
	}
}

// The built-in registry must always pass its own validation.
func TestBuiltinCatalogIsValid(t *testing.T) {
	if err := ValidateCatalog(Catalog()); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}
