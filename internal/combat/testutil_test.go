package combat

import (
	"testing"

	"github.com/ValleyOfWalls/cardclash/internal/log"
)

// --- Test card helpers ---

func attackCard(name string, amount int, reflectable bool) *Card {
	return &Card{
		Name: name,
		Cost: 1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: amount, Target: TargetOpponent, Reflectable: reflectable},
		},
	}
}

func comboAttackCard(name string, amount int) *Card {
	c := attackCard(name, amount, true)
	c.BuildsCombo = true
	return c
}

func statusCard(name string, kind StatusKind, magnitude, duration int, target TargetSelector) *Card {
	return &Card{
		Name: name,
		Cost: 1,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: kind, Amount: magnitude, Duration: duration, Target: target},
		},
	}
}

func healCard(name string, amount int) *Card {
	return &Card{
		Name: name,
		Cost: 1,
		Effects: []CardEffect{
			{Kind: EffectHeal, Amount: amount, Target: TargetSelf},
		},
	}
}

func stanceCard(name string, s Stance) *Card {
	return &Card{
		Name: name,
		Cost: 0,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: s, Target: TargetSelf},
		},
	}
}

// --- Fight helpers ---

// newTestFight builds a deterministic two-fighter fight. Decks are not
// shuffled and the whole deck is dealt as the starting hand, so tests can
// play any listed card immediately.
func newTestFight(t *testing.T, deckA, deckB []*Card) (*Fight, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()

	hand := len(deckA)
	if len(deckB) > hand {
		hand = len(deckB)
	}

	f, err := NewFight(FightConfig{
		Participants: []ParticipantConfig{
			{Name: "Avel", Team: 0, MaxHealth: 50, MaxEnergy: 10, Deck: deckA},
			{Name: "Brakka", Team: 1, MaxHealth: 50, MaxEnergy: 10, Deck: deckB},
		},
		Logger:       logger,
		Seed:         1,
		NoShuffle:    true,
		StartingHand: hand,
	})
	if err != nil {
		t.Fatalf("NewFight: %v", err)
	}
	f.Begin()
	for _, e := range f.Roster {
		e.Energy = e.MaxEnergy
	}
	return f, logger
}

// playByName plays the first hand instance of the named card.
func playByName(t *testing.T, f *Fight, source, card string, targets ...string) *ResolutionReport {
	t.Helper()
	report, err := playByNameErr(f, source, card, targets...)
	if err != nil {
		t.Fatalf("play %s by %s: %v", card, source, err)
	}
	return report
}

func playByNameErr(f *Fight, source, card string, targets ...string) (*ResolutionReport, error) {
	e := f.EntityByName(source)
	for _, ci := range e.Hand {
		if ci.Card.Name == card {
			return f.PlayCard(PlayCardRequest{
				SourceName:     source,
				CardInstanceID: ci.ID,
				TargetNames:    targets,
			})
		}
	}
	return nil, &IllegalPlayError{Card: card, Reason: "not in hand"}
}

// newTestEngine returns a status engine wired to a fresh tracker, plus two
// opposing entities for direct pipeline tests.
func newTestEngine() (*StatusEngine, *CombatEntity, *CombatEntity) {
	tracker := NewTracker()
	se := &StatusEngine{
		Logger:  log.NewMemoryLogger(),
		Tracker: tracker,
	}
	attacker := NewCombatEntity("attacker", 0, 30, 3)
	defender := NewCombatEntity("defender", 1, 30, 3)
	return se, attacker, defender
}
