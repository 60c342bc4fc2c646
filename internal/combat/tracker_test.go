package combat

import "testing"

func TestIncrementWritesThroughBothScopes(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterDamageDealt, 10)
	trk.Increment(CounterDamageDealt, 5)

	if got := trk.Counter(CounterDamageDealt, ScopeFight); got != 15 {
		t.Errorf("fight = %d, want 15", got)
	}
	if got := trk.Counter(CounterDamageDealt, ScopeLifetime); got != 15 {
		t.Errorf("lifetime = %d, want 15", got)
	}
}

func TestIncrementIgnoresNonPositive(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterDamageDealt, 0)
	trk.Increment(CounterDamageDealt, -3)
	if got := trk.Counter(CounterDamageDealt, ScopeFight); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestResetFightPreservesLifetime(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterCardsPlayed, 7)
	trk.RecordCardPlay("strike")

	trk.ResetFight()

	if got := trk.Counter(CounterCardsPlayed, ScopeFight); got != 0 {
		t.Errorf("fight = %d, want 0", got)
	}
	if got := trk.Counter(CounterCardsPlayed, ScopeLifetime); got != 7 {
		t.Errorf("lifetime = %d, want 7", got)
	}
	if got := trk.CardPlays("strike", ScopeFight); got != 0 {
		t.Errorf("fight plays = %d, want 0", got)
	}
	if got := trk.CardPlays("strike", ScopeLifetime); got != 1 {
		t.Errorf("lifetime plays = %d, want 1", got)
	}
}

func TestRecordHighKeepsMaximum(t *testing.T) {
	trk := NewEntityTracker()
	trk.RecordHigh(CounterHighestCombo, 4)
	trk.RecordHigh(CounterHighestCombo, 2)

	if got := trk.Counter(CounterHighestCombo, ScopeFight); got != 4 {
		t.Errorf("fight = %d, want 4", got)
	}
	if got := trk.Counter(CounterHighestCombo, ScopeLifetime); got != 4 {
		t.Errorf("lifetime = %d, want 4", got)
	}

	trk.RecordHigh(CounterHighestCombo, 6)
	if got := trk.Counter(CounterHighestCombo, ScopeLifetime); got != 6 {
		t.Errorf("lifetime = %d, want 6", got)
	}
}

func TestSetGaugeIsFightScopeOnly(t *testing.T) {
	trk := NewEntityTracker()
	trk.SetGauge(CounterPerfectTurnStreak, 3)

	if got := trk.Counter(CounterPerfectTurnStreak, ScopeFight); got != 3 {
		t.Errorf("fight = %d, want 3", got)
	}
	if got := trk.Counter(CounterPerfectTurnStreak, ScopeLifetime); got != 0 {
		t.Errorf("lifetime = %d, want 0 (gauges never write through)", got)
	}

	trk.SetGauge(CounterPerfectTurnStreak, 0)
	if got := trk.Counter(CounterPerfectTurnStreak, ScopeFight); got != 0 {
		t.Errorf("fight = %d, want 0 after overwrite", got)
	}
}

func TestResetTurnClearsPerTurnGauge(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterZeroCostCardsPlayed, 2)
	trk.SetGauge(CounterZeroCostCardsThisTurn, 2)

	trk.ResetTurn()

	if got := trk.Counter(CounterZeroCostCardsThisTurn, ScopeFight); got != 0 {
		t.Errorf("this-turn = %d, want 0", got)
	}
	if got := trk.Counter(CounterZeroCostCardsPlayed, ScopeFight); got != 2 {
		t.Errorf("fight total = %d, want 2", got)
	}
}

func TestSeedLifetimeReplacesBucket(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterFightsWon, 1)

	trk.SeedLifetime(
		map[CounterKind]int{CounterFightsWon: 12, CounterDamageDealt: 900},
		map[string]int{"strike": 40},
	)

	if got := trk.Counter(CounterFightsWon, ScopeLifetime); got != 12 {
		t.Errorf("FightsWon = %d, want 12 (seed replaces, not merges)", got)
	}
	if got := trk.Counter(CounterDamageDealt, ScopeLifetime); got != 900 {
		t.Errorf("DamageDealt = %d, want 900", got)
	}
	if got := trk.CardPlays("strike", ScopeLifetime); got != 40 {
		t.Errorf("plays = %d, want 40", got)
	}
	if got := trk.Counter(CounterFightsWon, ScopeFight); got != 1 {
		t.Errorf("fight bucket = %d, want untouched", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	trk := NewEntityTracker()
	trk.Increment(CounterDamageDealt, 5)

	snap := trk.LifetimeSnapshot()
	snap[CounterDamageDealt] = 999

	if got := trk.Counter(CounterDamageDealt, ScopeLifetime); got != 5 {
		t.Errorf("mutating the snapshot leaked into the tracker: %d", got)
	}
}

func TestTrackerCreatesEntitiesOnFirstUse(t *testing.T) {
	trk := NewTracker()

	if got := trk.GetCounter("nobody", CounterDamageDealt, ScopeFight); got != 0 {
		t.Errorf("unknown entity = %d, want 0", got)
	}

	trk.Increment("avel", CounterDamageDealt, 3)
	if got := trk.GetCounter("avel", CounterDamageDealt, ScopeFight); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if trk.Entity("avel") != trk.Entity("avel") {
		t.Error("Entity must return the same tracker for the same name")
	}
}

func TestAllCounterKindsCoversEnum(t *testing.T) {
	kinds := AllCounterKinds()
	if len(kinds) != counterKindCount {
		t.Fatalf("len = %d, want %d", len(kinds), counterKindCount)
	}
	for _, k := range kinds {
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", int(k))
		}
	}
}
