package upgrade

import (
	"testing"

	"github.com/ValleyOfWalls/cardclash/internal/combat"
)

func upgradeableCard(name string, pred combat.UpgradePredicate, required int) *combat.Card {
	return &combat.Card{
		Name: name,
		Cost: 1,
		Effects: []combat.CardEffect{
			{Kind: combat.EffectDamage, Amount: 6, Target: combat.TargetOpponent},
		},
		Upgrade: &combat.UpgradeCondition{
			Predicate:     pred,
			Comparison:    combat.CompGTE,
			RequiredValue: required,
		},
		UpgradeTo: name + "+",
	}
}

func instance(c *combat.Card) *combat.CardInstance {
	return &combat.CardInstance{Card: c, ID: 1, Owner: "avel"}
}

func TestIsEligibleFightScopeCounter(t *testing.T) {
	ci := instance(upgradeableCard("strike", combat.UpDamageDealtThisFight, 20))
	trk := combat.NewEntityTracker()

	if IsEligible(ci, trk) {
		t.Error("eligible with zero damage dealt")
	}
	trk.Increment(combat.CounterDamageDealt, 20)
	if !IsEligible(ci, trk) {
		t.Error("not eligible at exactly the required value")
	}
}

func TestIsEligibleLifetimeScopeCounter(t *testing.T) {
	ci := instance(upgradeableCard("veteran", combat.UpFightsWon, 3))
	trk := combat.NewEntityTracker()
	trk.SeedLifetime(map[combat.CounterKind]int{combat.CounterFightsWon: 3}, nil)

	if !IsEligible(ci, trk) {
		t.Error("lifetime predicate should read the seeded bucket")
	}

	// Fight-scope activity must not satisfy a lifetime predicate early.
	ci2 := instance(upgradeableCard("other", combat.UpDamageDealtLifetime, 100))
	trk2 := combat.NewEntityTracker()
	trk2.Increment(combat.CounterDamageDealt, 50)
	if IsEligible(ci2, trk2) {
		t.Error("50 lifetime damage should not satisfy a 100 requirement")
	}
}

func TestIsEligibleCardPlayPredicates(t *testing.T) {
	ci := instance(upgradeableCard("jab", combat.UpCardPlayedThisFight, 2))
	trk := combat.NewEntityTracker()
	trk.RecordCardPlay("jab")
	trk.RecordCardPlay("other")

	if IsEligible(ci, trk) {
		t.Error("plays of other cards must not count")
	}
	trk.RecordCardPlay("jab")
	if !IsEligible(ci, trk) {
		t.Error("two plays of the card should qualify")
	}
}

func TestIsEligibleIsPure(t *testing.T) {
	ci := instance(upgradeableCard("strike", combat.UpCardsPlayedThisFight, 1))
	trk := combat.NewEntityTracker()
	trk.Increment(combat.CounterCardsPlayed, 1)

	first := IsEligible(ci, trk)
	second := IsEligible(ci, trk)
	if first != second {
		t.Error("repeated evaluation with unchanged counters must agree")
	}
	if got := trk.Counter(combat.CounterCardsPlayed, combat.ScopeFight); got != 1 {
		t.Errorf("evaluation mutated a counter: %d", got)
	}
}

func TestIsEligibleRequiresUpgradePair(t *testing.T) {
	plain := &combat.Card{
		Name:    "plain",
		Cost:    1,
		Effects: []combat.CardEffect{{Kind: combat.EffectDamage, Amount: 3, Target: combat.TargetOpponent}},
	}
	trk := combat.NewEntityTracker()
	trk.Increment(combat.CounterDamageDealt, 1000)

	if IsEligible(instance(plain), trk) {
		t.Error("card without an upgrade pair is never eligible")
	}
	if IsEligible(nil, trk) {
		t.Error("nil instance is never eligible")
	}
}

func TestSweepWalksAllZones(t *testing.T) {
	ready := upgradeableCard("ready", combat.UpTurnsElapsedThisFight, 0)
	plain := &combat.Card{
		Name:    "plain",
		Cost:    1,
		Effects: []combat.CardEffect{{Kind: combat.EffectDamage, Amount: 3, Target: combat.TargetOpponent}},
	}
	f, err := combat.NewFight(combat.FightConfig{
		Participants: []combat.ParticipantConfig{
			{Name: "avel", Team: 0, MaxHealth: 30, MaxEnergy: 3, Deck: []*combat.Card{ready, plain}},
			{Name: "brakka", Team: 1, MaxHealth: 30, MaxEnergy: 3, Deck: []*combat.Card{ready}},
		},
		Seed:         1,
		NoShuffle:    true,
		StartingHand: 1,
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()

	// "ready" requires >= 0, so both copies qualify wherever the deal
	// left them; "plain" never does.
	got := Sweep(f)
	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2", len(got))
	}
	for _, c := range got {
		if c.Instance.Card.Name != "ready" || c.UpgradeTo != "ready+" {
			t.Errorf("unexpected candidate %q → %q", c.Instance.Card.Name, c.UpgradeTo)
		}
	}
}

func TestApplySwapsDefinition(t *testing.T) {
	base := upgradeableCard("strike", combat.UpCardsPlayedThisFight, 0)
	upgraded := &combat.Card{
		Name:    "strike+",
		Cost:    1,
		Effects: []combat.CardEffect{{Kind: combat.EffectDamage, Amount: 9, Target: combat.TargetOpponent}},
	}
	catalog := map[string]*combat.Card{"strike": base, "strike+": upgraded}
	lookup := func(name string) (*combat.Card, bool) {
		c, ok := catalog[name]
		return c, ok
	}

	ci := instance(base)
	cand := Candidate{Owner: "avel", Instance: ci, UpgradeTo: "strike+"}
	if !Apply(cand, lookup) {
		t.Fatal("Apply returned false for a catalog card")
	}
	if ci.Card != upgraded {
		t.Error("instance still points at the base definition")
	}

	cand.UpgradeTo = "ghost"
	if Apply(cand, lookup) {
		t.Error("Apply must fail for an unknown target")
	}
}
