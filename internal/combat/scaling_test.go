package combat

import "testing"

func TestScalingCapClamps(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterDamageDealt, 100)

	sc := &ScalingDescriptor{Counter: CounterDamageDealt, Scope: ScopeFight, Multiplier: 1.5, Cap: 10}
	if got := EvaluateScaling(sc, 2, trk); got != 12 {
		t.Errorf("EvaluateScaling = %d, want 12 (base 2 + cap 10)", got)
	}
}

func TestScalingRoundsHalfAwayFromZero(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterCardsPlayed, 1)

	sc := &ScalingDescriptor{Counter: CounterCardsPlayed, Scope: ScopeFight, Multiplier: 0.5, Cap: 10}
	if got := EvaluateScaling(sc, 4, trk); got != 5 {
		t.Errorf("EvaluateScaling = %d, want 5 (0.5 rounds up)", got)
	}

	trk.Increment(CounterCardsPlayed, 2) // now 3: 3*0.5 = 1.5 -> 2
	if got := EvaluateScaling(sc, 4, trk); got != 6 {
		t.Errorf("EvaluateScaling = %d, want 6 (1.5 rounds to 2)", got)
	}
}

func TestScalingNeverReducesBase(t *testing.T) {
	trk := NewEntityTracker()

	sc := &ScalingDescriptor{Counter: CounterDamageDealt, Scope: ScopeFight, Multiplier: 2.0, Cap: 10}
	if got := EvaluateScaling(sc, 7, trk); got != 7 {
		t.Errorf("EvaluateScaling with zero counter = %d, want base 7", got)
	}
	if got := EvaluateScaling(nil, 7, trk); got != 7 {
		t.Errorf("EvaluateScaling without descriptor = %d, want base 7", got)
	}
}

func TestScalingScopeSelectsBucket(t *testing.T) {
	trk := NewEntityTracker()
	trk.SeedLifetime(map[CounterKind]int{CounterFightsWon: 6}, nil)

	lifetime := &ScalingDescriptor{Counter: CounterFightsWon, Scope: ScopeLifetime, Multiplier: 1.0, Cap: 10}
	fight := &ScalingDescriptor{Counter: CounterFightsWon, Scope: ScopeFight, Multiplier: 1.0, Cap: 10}

	if got := EvaluateScaling(lifetime, 5, trk); got != 11 {
		t.Errorf("lifetime scaling = %d, want 11", got)
	}
	if got := EvaluateScaling(fight, 5, trk); got != 5 {
		t.Errorf("fight scaling = %d, want 5 (fight bucket is empty)", got)
	}
}
