package combat

import "testing"

func conditionalCard(name string, policy CombinePolicy, cond *ConditionDescriptor, baseAmt, altAmt int) *Card {
	return &Card{
		Name: name,
		Cost: 1,
		Effects: []CardEffect{
			{
				Kind:      EffectDamage,
				Amount:    baseAmt,
				Target:    TargetOpponent,
				Condition: cond,
				Policy:    policy,
				Alternative: &CardEffect{
					Kind:   EffectDamage,
					Amount: altAmt,
					Target: TargetOpponent,
				},
			},
		},
	}
}

func TestReplacePolicyConditionTrue(t *testing.T) {
	cond := &ConditionDescriptor{Predicate: PredTargetHealthAbovePercent, Threshold: 50}
	card := conditionalCard("exec", CombineReplace, cond, 10, 4)
	f, _ := newTestFight(t, []*Card{card}, nil)

	report := playByName(t, f, "Avel", "exec")

	brakka := f.EntityByName("Brakka")
	if brakka.Health != 40 {
		t.Errorf("target health = %d, want 40 (main effect only)", brakka.Health)
	}
	if len(report.Outcomes) != 1 || report.Outcomes[0].Alternative {
		t.Errorf("outcomes = %+v, want single main outcome", report.Outcomes)
	}
}

func TestReplacePolicyConditionFalse(t *testing.T) {
	cond := &ConditionDescriptor{Predicate: PredTargetHealthBelowPercent, Threshold: 50}
	card := conditionalCard("exec", CombineReplace, cond, 10, 4)
	f, _ := newTestFight(t, []*Card{card}, nil)

	report := playByName(t, f, "Avel", "exec")

	brakka := f.EntityByName("Brakka")
	if brakka.Health != 46 {
		t.Errorf("target health = %d, want 46 (alternative instead of main)", brakka.Health)
	}
	if len(report.Outcomes) != 1 || !report.Outcomes[0].Alternative {
		t.Errorf("outcomes = %+v, want single alternative outcome", report.Outcomes)
	}
}

func TestAdditionalPolicyConditionTrue(t *testing.T) {
	cond := &ConditionDescriptor{Predicate: PredTargetHealthAbovePercent, Threshold: 50}
	card := conditionalCard("jab", CombineAdditional, cond, 5, 4)
	f, _ := newTestFight(t, []*Card{card}, nil)

	report := playByName(t, f, "Avel", "jab")

	brakka := f.EntityByName("Brakka")
	if brakka.Health != 41 {
		t.Errorf("target health = %d, want 41 (base 5 + bonus 4)", brakka.Health)
	}
	if len(report.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(report.Outcomes))
	}
	if report.Outcomes[0].Alternative || !report.Outcomes[1].Alternative {
		t.Errorf("outcome order wrong: %+v", report.Outcomes)
	}
}

func TestAdditionalPolicyConditionFalse(t *testing.T) {
	cond := &ConditionDescriptor{Predicate: PredTargetHealthBelowPercent, Threshold: 50}
	card := conditionalCard("jab", CombineAdditional, cond, 5, 4)
	f, _ := newTestFight(t, []*Card{card}, nil)

	report := playByName(t, f, "Avel", "jab")

	brakka := f.EntityByName("Brakka")
	if brakka.Health != 45 {
		t.Errorf("target health = %d, want 45 (base only, no bonus)", brakka.Health)
	}
	if len(report.Outcomes) != 1 {
		t.Errorf("outcomes = %d, want 1", len(report.Outcomes))
	}
}

func TestReplaceWithoutAlternativeSkips(t *testing.T) {
	card := &Card{
		Name: "gamble",
		Cost: 1,
		Effects: []CardEffect{
			{
				Kind:      EffectDamage,
				Amount:    14,
				Target:    TargetOpponent,
				Condition: &ConditionDescriptor{Predicate: PredSourceHealthBelowPercent, Threshold: 30},
				Policy:    CombineReplace,
			},
		},
	}
	f, _ := newTestFight(t, []*Card{card}, nil)

	report := playByName(t, f, "Avel", "gamble")

	if f.EntityByName("Brakka").Health != 50 {
		t.Error("unmet condition without alternative should apply nothing")
	}
	if !report.Empty() {
		t.Errorf("report should be all-skipped, got %+v", report.Outcomes)
	}
	// A skipped effect is a recorded no-op, not an error; the card was
	// still legally played and left the hand.
	avel := f.EntityByName("Avel")
	if len(avel.Hand) != 0 || len(avel.Discard) != 1 {
		t.Errorf("hand=%d discard=%d, want card moved to discard", len(avel.Hand), len(avel.Discard))
	}
}

func TestEffectsResolveInDeclaredOrder(t *testing.T) {
	// Shield applied by the first effect absorbs the second effect's
	// self-damage only if order is respected.
	card := &Card{
		Name: "ordered",
		Cost: 1,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusShield, Amount: 5, Target: TargetSelf},
			{Kind: EffectDamage, Amount: 4, Target: TargetSelf},
		},
	}
	f, _ := newTestFight(t, []*Card{card}, nil)

	playByName(t, f, "Avel", "ordered")

	avel := f.EntityByName("Avel")
	if avel.Health != 50 {
		t.Errorf("health = %d, want 50 (shield from effect 1 absorbs effect 2)", avel.Health)
	}
	if got := avel.StatusMagnitude(StatusShield); got != 1 {
		t.Errorf("shield = %d, want 1", got)
	}
}

func TestDrawEffectStopsAtEmptyDeck(t *testing.T) {
	drawCard := &Card{
		Name:    "insight",
		Cost:    0,
		Effects: []CardEffect{{Kind: EffectDrawCard, Amount: 3, Target: TargetSelf}},
	}
	filler := attackCard("filler", 1, false)
	f, _ := newTestFight(t, []*Card{drawCard, filler}, nil)

	// Whole deck is already in hand; drawing from an empty deck is a no-op
	// recorded in the report, not an error.
	report := playByName(t, f, "Avel", "insight")
	if report.Outcomes[0].Applied != 0 {
		t.Errorf("drawn = %d, want 0", report.Outcomes[0].Applied)
	}
}

func TestFocusedStanceBonusEnergy(t *testing.T) {
	restore := &Card{
		Name:    "refresh",
		Cost:    0,
		Effects: []CardEffect{{Kind: EffectRestoreEnergy, Amount: 2, Target: TargetSelf}},
	}
	f, _ := newTestFight(t, []*Card{restore, restore}, nil)
	avel := f.EntityByName("Avel")

	avel.Energy = 3
	playByName(t, f, "Avel", "refresh")
	if avel.Energy != 5 {
		t.Errorf("energy = %d, want 5 (no stance bonus)", avel.Energy)
	}

	avel.Stance = StanceFocused
	avel.Energy = 3
	playByName(t, f, "Avel", "refresh")
	if avel.Energy != 6 {
		t.Errorf("energy = %d, want 6 (focused grants 1 extra)", avel.Energy)
	}
}

func TestTargetSelectorsSkipDefeated(t *testing.T) {
	hitAll := &Card{
		Name:    "nova",
		Cost:    1,
		Effects: []CardEffect{{Kind: EffectDamage, Amount: 3, Target: TargetAllEnemies}},
	}
	f, err := NewFight(FightConfig{
		Participants: []ParticipantConfig{
			{Name: "Avel", Team: 0, MaxHealth: 50, MaxEnergy: 10, Deck: []*Card{hitAll}},
			{Name: "Brakka", Team: 1, MaxHealth: 50, MaxEnergy: 10},
			{Name: "Crull", Team: 1, MaxHealth: 50, MaxEnergy: 10},
		},
		Seed:      1,
		NoShuffle: true,
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()

	brakka := f.EntityByName("Brakka")
	brakka.Health = 0
	brakka.Defeated = true

	report := playByName(t, f, "Avel", "nova")

	if brakka.Health != 0 {
		t.Error("defeated enemy must not be hit")
	}
	if f.EntityByName("Crull").Health != 47 {
		t.Errorf("living enemy health = %d, want 47", f.EntityByName("Crull").Health)
	}
	for _, o := range report.Outcomes {
		if o.Target == "Brakka" && !o.Skipped {
			t.Error("defeated target should not appear as applied outcome")
		}
	}
}

// newThreeFighterFight puts Avel alone on team 0 against Brakka and Crull,
// dealing deckA to Avel in full.
func newThreeFighterFight(t *testing.T, deckA []*Card, seed int64) *Fight {
	t.Helper()
	f, err := NewFight(FightConfig{
		Participants: []ParticipantConfig{
			{Name: "Avel", Team: 0, MaxHealth: 50, MaxEnergy: 10, Deck: deckA},
			{Name: "Brakka", Team: 1, MaxHealth: 50, MaxEnergy: 10},
			{Name: "Crull", Team: 1, MaxHealth: 50, MaxEnergy: 10},
		},
		Seed:         seed,
		NoShuffle:    true,
		StartingHand: len(deckA),
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()
	return f
}

func TestRandomTargetIsSeedDeterministic(t *testing.T) {
	bolt := &Card{
		Name:    "bolt",
		Cost:    1,
		Effects: []CardEffect{{Kind: EffectDamage, Amount: 2, Target: TargetRandom}},
	}
	deck := []*Card{bolt, bolt, bolt, bolt}

	run := func() []string {
		f := newThreeFighterFight(t, deck, 7)
		var targets []string
		for i := 0; i < len(deck); i++ {
			report := playByName(t, f, "Avel", "bolt")
			targets = append(targets, report.Outcomes[0].Target)
		}
		return targets
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("play %d target diverged: %q vs %q (same seed must replay identically)", i, first[i], second[i])
		}
	}
}

func TestAllyTargetFallsBackToRosterAlly(t *testing.T) {
	mend := &Card{
		Name:    "mend",
		Cost:    1,
		Effects: []CardEffect{{Kind: EffectHeal, Amount: 5, Target: TargetAlly}},
	}
	f, err := NewFight(FightConfig{
		Participants: []ParticipantConfig{
			{Name: "Avel", Team: 0, MaxHealth: 50, MaxEnergy: 10, Deck: []*Card{mend}},
			{Name: "Dara", Team: 0, MaxHealth: 50, MaxEnergy: 10},
			{Name: "Brakka", Team: 1, MaxHealth: 50, MaxEnergy: 10},
		},
		Seed:         1,
		NoShuffle:    true,
		StartingHand: 1,
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()
	f.EntityByName("Dara").Health = 40

	report := playByName(t, f, "Avel", "mend")

	if got := f.EntityByName("Dara").Health; got != 45 {
		t.Errorf("ally health = %d, want 45", got)
	}
	if report.Outcomes[0].Target != "Dara" {
		t.Errorf("target = %q, want the teammate, never the caster", report.Outcomes[0].Target)
	}
}

func TestAllyTargetWithoutAllyIsSkipped(t *testing.T) {
	mend := &Card{
		Name:    "mend",
		Cost:    1,
		Effects: []CardEffect{{Kind: EffectHeal, Amount: 5, Target: TargetAlly}},
	}
	f, _ := newTestFight(t, []*Card{mend}, nil)

	// 1v1: the caster has no teammate, so the effect degrades to a
	// recorded no-op rather than an error.
	report := playByName(t, f, "Avel", "mend")

	if !report.Outcomes[0].Skipped || report.Outcomes[0].Reason != "no valid target" {
		t.Errorf("outcome = %+v, want skipped for lack of a target", report.Outcomes[0])
	}
}

func TestAllAlliesExpandsInRosterOrder(t *testing.T) {
	rally := &Card{
		Name:    "rally",
		Cost:    1,
		Effects: []CardEffect{{Kind: EffectApplyStatus, Status: StatusShield, Amount: 4, Target: TargetAllAllies}},
	}
	f, err := NewFight(FightConfig{
		Participants: []ParticipantConfig{
			{Name: "Avel", Team: 0, MaxHealth: 50, MaxEnergy: 10, Deck: []*Card{rally}},
			{Name: "Dara", Team: 0, MaxHealth: 50, MaxEnergy: 10},
			{Name: "Brakka", Team: 1, MaxHealth: 50, MaxEnergy: 10},
		},
		Seed:         1,
		NoShuffle:    true,
		StartingHand: 1,
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()

	report := playByName(t, f, "Avel", "rally")

	if len(report.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want caster and teammate", len(report.Outcomes))
	}
	if report.Outcomes[0].Target != "Avel" || report.Outcomes[1].Target != "Dara" {
		t.Errorf("targets = %q, %q, want roster order Avel, Dara", report.Outcomes[0].Target, report.Outcomes[1].Target)
	}
	for _, name := range []string{"Avel", "Dara"} {
		if got := f.EntityByName(name).StatusMagnitude(StatusShield); got != 4 {
			t.Errorf("%s shield = %d, want 4", name, got)
		}
	}
	if f.EntityByName("Brakka").HasStatus(StatusShield) {
		t.Error("enemy must not be shielded")
	}
}

func TestEveryoneHitsRosterInOrder(t *testing.T) {
	nova := &Card{
		Name:    "nova",
		Cost:    1,
		Effects: []CardEffect{{Kind: EffectDamage, Amount: 3, Target: TargetEveryone}},
	}
	f := newThreeFighterFight(t, []*Card{nova}, 1)

	report := playByName(t, f, "Avel", "nova")

	want := []string{"Avel", "Brakka", "Crull"}
	if len(report.Outcomes) != len(want) {
		t.Fatalf("outcomes = %d, want %d", len(report.Outcomes), len(want))
	}
	for i, name := range want {
		if report.Outcomes[i].Target != name {
			t.Errorf("outcome %d target = %q, want %q (roster order)", i, report.Outcomes[i].Target, name)
		}
		if got := f.EntityByName(name).Health; got != 47 {
			t.Errorf("%s health = %d, want 47 (caster included)", name, got)
		}
	}
}

func TestExplicitTargetOverridesDefault(t *testing.T) {
	hit := attackCard("strike", 5, false)
	f, err := NewFight(FightConfig{
		Participants: []ParticipantConfig{
			{Name: "Avel", Team: 0, MaxHealth: 50, MaxEnergy: 10, Deck: []*Card{hit}},
			{Name: "Brakka", Team: 1, MaxHealth: 50, MaxEnergy: 10},
			{Name: "Crull", Team: 1, MaxHealth: 50, MaxEnergy: 10},
		},
		Seed:         1,
		NoShuffle:    true,
		StartingHand: 1,
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()

	playByName(t, f, "Avel", "strike", "Crull")

	if f.EntityByName("Brakka").Health != 50 {
		t.Error("default opponent should not be hit when a target is named")
	}
	if f.EntityByName("Crull").Health != 45 {
		t.Errorf("named target health = %d, want 45", f.EntityByName("Crull").Health)
	}
}
