package combat

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/ValleyOfWalls/cardclash/internal/log"
)

const (
	DefaultStartingHand = 4
	DefaultDrawPerTurn  = 1
)

// ParticipantConfig describes one entity entering a fight.
type ParticipantConfig struct {
	Name      string
	Team      int
	MaxHealth int
	MaxEnergy int
	Deck      []*Card
}

// FightConfig holds configuration for creating a new fight.
type FightConfig struct {
	Participants []ParticipantConfig
	Logger       log.EventLogger
	Seed         int64 // RNG seed (0 for random)
	NoShuffle    bool  // skip deck shuffle (for deterministic tests)
	StartingHand int   // 0 = DefaultStartingHand
	DrawPerTurn  int   // 0 = DefaultDrawPerTurn
}

// PlayCardRequest is the boundary input for playing a card. Legality is
// checked here; the resolver assumes it has been.
type PlayCardRequest struct {
	SourceName     string
	CardInstanceID int
	TargetNames    []string
}

// Fight owns the authoritative combat state for one encounter: the roster,
// the trackers, the status engine, and the turn counter. All resolution
// for one played card runs to completion before the next request; there is
// no concurrent mutation.
type Fight struct {
	ID      string
	Roster  []*CombatEntity
	Tracker *Tracker
	Engine  *StatusEngine
	Logger  log.EventLogger
	Turn    int

	Over       bool
	WinnerTeam int // -1 until decided, or for a draw
	Result     string

	rng          *rand.Rand
	nextID       int
	drawPerTurn  int
	startingHand int

	// Health damage taken snapshot at the start of each entity's turn,
	// used to advance the perfection streak at turn end.
	takenAtTurnStart map[string]int
}

// NewFight builds a fight from config. Decks are instantiated (each card
// definition becomes a CardInstance with a fight-unique ID) and shuffled
// with the seeded RNG unless NoShuffle is set.
func NewFight(cfg FightConfig) (*Fight, error) {
	if len(cfg.Participants) < 2 {
		return nil, fmt.Errorf("a fight needs at least 2 participants, got %d", len(cfg.Participants))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = int64(uuid.New().ID())
	}

	f := &Fight{
		ID:               uuid.NewString(),
		Tracker:          NewTracker(),
		Logger:           logger,
		WinnerTeam:       -1,
		rng:              rand.New(rand.NewSource(seed)),
		drawPerTurn:      cfg.DrawPerTurn,
		startingHand:     cfg.StartingHand,
		takenAtTurnStart: make(map[string]int),
	}
	if f.drawPerTurn == 0 {
		f.drawPerTurn = DefaultDrawPerTurn
	}
	if f.startingHand == 0 {
		f.startingHand = DefaultStartingHand
	}
	f.Engine = &StatusEngine{Logger: logger, Tracker: f.Tracker}

	seen := make(map[string]bool)
	for _, pc := range cfg.Participants {
		if pc.Name == "" {
			return nil, fmt.Errorf("participant with empty name")
		}
		if seen[pc.Name] {
			return nil, fmt.Errorf("duplicate participant name %q", pc.Name)
		}
		seen[pc.Name] = true

		e := NewCombatEntity(pc.Name, pc.Team, pc.MaxHealth, pc.MaxEnergy)
		for _, card := range pc.Deck {
			f.nextID++
			e.Deck = append(e.Deck, &CardInstance{Card: card, ID: f.nextID, Owner: pc.Name})
		}
		if !cfg.NoShuffle {
			f.rng.Shuffle(len(e.Deck), func(i, j int) {
				e.Deck[i], e.Deck[j] = e.Deck[j], e.Deck[i]
			})
		}
		f.Roster = append(f.Roster, e)
	}

	return f, nil
}

// EntityByName returns the roster entity with the given name, or nil.
func (f *Fight) EntityByName(name string) *CombatEntity {
	for _, e := range f.Roster {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (f *Fight) emit(ev log.FightEvent) {
	f.Logger.Log(ev)
}

// Begin starts the fight: emits the start event and deals starting hands.
func (f *Fight) Begin() {
	names := make([]string, 0, len(f.Roster))
	for _, e := range f.Roster {
		names = append(names, e.Name)
	}
	f.emit(log.NewFightStartEvent(f.ID, names))

	for i := 0; i < f.startingHand; i++ {
		for _, e := range f.Roster {
			if card := e.DrawCard(); card != nil {
				f.emit(log.NewDrawEvent(f.Turn, e.Name, card.Card.Name))
				f.Tracker.Increment(e.Name, CounterCardsDrawn, 1)
			}
		}
	}
}

// StartTurn is the turn lifecycle hook for one entity: advances the turn
// counter, ticks statuses (on-tick effects fire before durations drop),
// refills energy, and draws. Called by the orchestration layer.
func (f *Fight) StartTurn(name string) {
	e := f.EntityByName(name)
	if e == nil || e.Defeated || f.Over {
		return
	}
	f.Turn++
	f.Engine.Turn = f.Turn

	f.emit(log.NewTurnStartEvent(f.Turn, e.Name))
	trk := f.Tracker.Entity(e.Name)
	trk.ResetTurn()
	trk.Increment(CounterTurnsElapsed, 1)
	f.takenAtTurnStart[e.Name] = trk.Counter(CounterDamageTaken, ScopeFight)

	f.Engine.TickTurnStart(e)
	f.checkWin()
	if f.Over || e.Defeated {
		return
	}

	if restored := e.RestoreEnergy(e.MaxEnergy); restored > 0 {
		f.emit(log.NewEnergyRestoreEvent(f.Turn, e.Name, restored))
		trk.Increment(CounterEnergyRestored, restored)
	}
	for i := 0; i < f.drawPerTurn; i++ {
		if card := e.DrawCard(); card != nil {
			f.emit(log.NewDrawEvent(f.Turn, e.Name, card.Card.Name))
			trk.Increment(CounterCardsDrawn, 1)
		}
	}
}

// EndTurn is the matching lifecycle hook: advances the perfection streak
// (consecutive turns without taking damage) and emits the turn-end event.
func (f *Fight) EndTurn(name string) {
	e := f.EntityByName(name)
	if e == nil {
		return
	}
	trk := f.Tracker.Entity(e.Name)
	if trk.Counter(CounterDamageTaken, ScopeFight) == f.takenAtTurnStart[e.Name] {
		streak := trk.Counter(CounterPerfectTurnStreak, ScopeFight) + 1
		trk.SetGauge(CounterPerfectTurnStreak, streak)
		trk.RecordHigh(CounterBestPerfectTurnStreak, streak)
	} else {
		trk.SetGauge(CounterPerfectTurnStreak, 0)
	}
	f.emit(log.NewTurnEndEvent(f.Turn, e.Name))
}

// PlayCard validates and resolves one card play. Either the whole card
// resolves or nothing does: an illegal play is rejected before any state
// (including energy) is touched.
func (f *Fight) PlayCard(req PlayCardRequest) (*ResolutionReport, error) {
	if f.Over {
		return nil, &IllegalPlayError{Card: "", Reason: "fight is over"}
	}
	source := f.EntityByName(req.SourceName)
	if source == nil {
		return nil, &IllegalPlayError{Card: "", Reason: fmt.Sprintf("unknown entity %q", req.SourceName)}
	}
	ci := source.FindInHand(req.CardInstanceID)
	if ci == nil {
		return nil, &IllegalPlayError{Card: "", Reason: fmt.Sprintf("card instance %d not in hand", req.CardInstanceID)}
	}
	card := ci.Card

	if err := CheckLegality(source, card); err != nil {
		f.emit(log.NewCardRejectedEvent(f.Turn, source.Name, card.Name, err.Error()))
		return nil, err
	}

	var explicit []*CombatEntity
	for _, name := range req.TargetNames {
		if t := f.EntityByName(name); t != nil {
			explicit = append(explicit, t)
		}
	}

	source.SpendEnergy(card.Cost)
	f.emit(log.NewCardPlayedEvent(f.Turn, source.Name, card.Name, card.Cost))

	trk := f.Tracker.Entity(source.Name)
	trk.Increment(CounterCardsPlayed, 1)
	trk.Increment(CounterEnergySpent, card.Cost)
	trk.RecordCardPlay(card.Name)
	if card.IsZeroCost() {
		trk.Increment(CounterZeroCostCardsPlayed, 1)
		trk.Increment(CounterZeroCostCardsThisTurn, 1)
	}
	if card.RequiresCombo > 0 {
		trk.Increment(CounterFinishersPlayed, 1)
	}

	report := f.Resolve(card, source, explicit)

	prevCombo := source.ComboCount
	combo, built := AdvanceCombo(source, card)
	report.ComboAfter = combo
	report.ComboBuilt = built
	if built {
		f.emit(log.NewComboBuildEvent(f.Turn, source.Name, combo))
		trk.Increment(CounterCombosBuilt, 1)
		trk.RecordHigh(CounterHighestCombo, combo)
	} else if prevCombo > 0 {
		f.emit(log.NewComboResetEvent(f.Turn, source.Name, prevCombo))
	}

	source.RemoveFromHand(ci)
	source.SendToDiscard(ci)

	f.checkWin()
	return report, nil
}

// checkWin ends the fight when at most one team has living members.
func (f *Fight) checkWin() {
	if f.Over {
		return
	}
	aliveTeam := -1
	multiple := false
	anyAlive := false
	for _, e := range f.Roster {
		if e.Defeated {
			continue
		}
		anyAlive = true
		if aliveTeam == -1 {
			aliveTeam = e.Team
		} else if e.Team != aliveTeam {
			multiple = true
		}
	}
	if multiple {
		return
	}
	f.Over = true
	if !anyAlive {
		f.WinnerTeam = -1
		f.Result = "Draw: everyone is defeated"
	} else {
		f.WinnerTeam = aliveTeam
		f.Result = fmt.Sprintf("Team %d wins", aliveTeam)
	}
}

// End is the fight-end lifecycle hook: finalizes win/loss counters, emits
// the end event, and resets every fight-scope counter. Lifetime counters
// survive; persisting them is the caller's concern. Upgrade sweeps that
// read fight-scope counters must run before End.
func (f *Fight) End() {
	if !f.Over {
		f.Over = true
		if f.Result == "" {
			f.Result = "Fight abandoned"
		}
	}
	for _, e := range f.Roster {
		trk := f.Tracker.Entity(e.Name)
		trk.Increment(CounterFightsFinished, 1)
		if f.WinnerTeam >= 0 && e.Team == f.WinnerTeam {
			trk.Increment(CounterFightsWon, 1)
		}
	}
	f.emit(log.NewFightEndEvent(f.Turn, f.Result))
	for _, e := range f.Roster {
		f.Tracker.Entity(e.Name).ResetFight()
	}
}
