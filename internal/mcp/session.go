package mcp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ValleyOfWalls/cardclash/internal/combat"
	"github.com/ValleyOfWalls/cardclash/internal/log"
	"github.com/ValleyOfWalls/cardclash/internal/store"
	"github.com/ValleyOfWalls/cardclash/internal/upgrade"
)

// FightSession holds the state of a single MCP fight session. Tools drive
// the fight synchronously: every mutating call returns the events it
// produced plus a fresh state view, so the client never has to poll.
type FightSession struct {
	fight   *combat.Fight
	logger  *log.MemoryLogger
	cursor  int // index of the first event not yet reported
	catalog map[string]*combat.Card

	db       *store.Store
	profiles map[string]string // fighter name -> profile ID

	finalized       bool
	finalUpgrades   []UpgradeView
	finalCandidates []upgrade.Candidate
}

// NewFightSession builds a fight from the given participants and begins
// it. When db is non-nil, each fighter's lifetime history is loaded before
// the first card is played and saved back when the fight ends.
func NewFightSession(participants []combat.ParticipantConfig, seed int64, db *store.Store) (*FightSession, error) {
	logger := log.NewMemoryLogger()
	f, err := combat.NewFight(combat.FightConfig{
		Participants: participants,
		Logger:       logger,
		Seed:         seed,
	})
	if err != nil {
		return nil, err
	}
	sess := &FightSession{
		fight:    f,
		logger:   logger,
		catalog:  combat.Catalog(),
		db:       db,
		profiles: make(map[string]string),
	}
	if db != nil {
		for _, p := range participants {
			prof, err := db.SeedTracker(p.Name, f.Tracker.Entity(p.Name))
			if err != nil {
				return nil, fmt.Errorf("load profile %q: %w", p.Name, err)
			}
			sess.profiles[p.Name] = prof.ID
		}
	}
	f.Begin()
	return sess, nil
}

// --- View types (the JSON shapes tools return) ---

type CardView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

type StatusView struct {
	Kind      string `json:"kind"`
	Magnitude int    `json:"magnitude"`
	Remaining int    `json:"remaining,omitempty"`
}

type EntityView struct {
	Name      string       `json:"name"`
	Team      int          `json:"team"`
	Health    int          `json:"health"`
	MaxHealth int          `json:"max_health"`
	Energy    int          `json:"energy"`
	MaxEnergy int          `json:"max_energy"`
	Stance    string       `json:"stance,omitempty"`
	Combo     int          `json:"combo"`
	Defeated  bool         `json:"defeated,omitempty"`
	Statuses  []StatusView `json:"statuses,omitempty"`
	Hand      []CardView   `json:"hand,omitempty"`
	DeckCount int          `json:"deck_count"`
	Discard   int          `json:"discard_count"`
}

type StateView struct {
	FightID  string       `json:"fight_id"`
	Turn     int          `json:"turn"`
	Entities []EntityView `json:"entities"`
	Over     bool         `json:"over"`
	Winner   int          `json:"winner,omitempty"`
	Result   string       `json:"result,omitempty"`
}

type UpgradeView struct {
	Owner     string `json:"owner"`
	CardID    int    `json:"card_id"`
	Card      string `json:"card"`
	UpgradeTo string `json:"upgrade_to"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events   []string                 `json:"events"`
	State    *StateView               `json:"state,omitempty"`
	Counters map[string]int           `json:"counters,omitempty"`
	Upgrades []UpgradeView            `json:"upgrades,omitempty"`
	Report   *combat.ResolutionReport `json:"report,omitempty"`
}

func buildEntityView(e *combat.CombatEntity) EntityView {
	v := EntityView{
		Name:      e.Name,
		Team:      e.Team,
		Health:    e.Health,
		MaxHealth: e.MaxHealth,
		Energy:    e.Energy,
		MaxEnergy: e.MaxEnergy,
		Combo:     e.ComboCount,
		Defeated:  e.Defeated,
		DeckCount: len(e.Deck),
		Discard:   len(e.Discard),
	}
	if e.Stance != combat.StanceNone {
		v.Stance = e.Stance.String()
	}
	for kind, st := range e.Statuses {
		v.Statuses = append(v.Statuses, StatusView{
			Kind:      kind.String(),
			Magnitude: st.Magnitude,
			Remaining: st.Remaining,
		})
	}
	for _, ci := range e.Hand {
		v.Hand = append(v.Hand, CardView{
			ID:          ci.ID,
			Name:        ci.Card.Name,
			Cost:        ci.Card.Cost,
			Description: ci.Card.Description,
		})
	}
	return v
}

// buildStateView renders the whole fight. There is no hidden information
// between seats in this engine; all hands are visible.
func (s *FightSession) buildStateView() *StateView {
	f := s.fight
	v := &StateView{
		FightID: f.ID,
		Turn:    f.Turn,
		Over:    f.Over,
		Winner:  f.WinnerTeam,
		Result:  f.Result,
	}
	for _, e := range f.Roster {
		v.Entities = append(v.Entities, buildEntityView(e))
	}
	return v
}

// drainEvents returns the formatted events logged since the last drain.
func (s *FightSession) drainEvents() []string {
	events := s.logger.Events()
	out := []string{}
	for ; s.cursor < len(events); s.cursor++ {
		out = append(out, log.FormatEvent(events[s.cursor]))
	}
	return out
}

func (s *FightSession) respond() *ToolResponse {
	if s.fight.Over && !s.finalized {
		s.finalize()
	}
	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  s.buildStateView(),
	}
	if s.finalized {
		resp.Upgrades = s.finalUpgrades
	}
	return resp
}

// finalize runs once when the fight is decided: it sweeps upgrade
// eligibility while fight-scope counters are still populated, then closes
// out the fight and saves lifetime history. Sweep order matters; End
// resets the fight scope.
func (s *FightSession) finalize() {
	s.finalized = true
	s.finalCandidates = upgrade.Sweep(s.fight)
	s.finalUpgrades = upgradeViews(s.finalCandidates)
	for _, u := range s.finalUpgrades {
		s.logger.Log(log.NewUpgradeFlaggedEvent(s.fight.Turn, u.Owner, u.Card, u.UpgradeTo))
	}
	s.fight.End()
	if s.db != nil {
		for name, profileID := range s.profiles {
			if err := s.db.SaveLifetime(profileID, s.fight.Tracker.Entity(name)); err != nil {
				fmt.Fprintf(os.Stderr, "save profile %q: %v\n", name, err)
			}
		}
	}
}

// applyUpgrade swaps one flagged card instance for its upgraded form. The
// instance must currently satisfy its upgrade condition; the swap logs an
// event so the client sees it in the next drain. After the fight ends the
// candidates captured at finalize time are used, because End has already
// reset the fight-scope counters a fresh sweep would read.
func (s *FightSession) applyUpgrade(owner string, cardID int) error {
	candidates := s.finalCandidates
	if !s.finalized {
		candidates = upgrade.Sweep(s.fight)
	}
	for _, c := range candidates {
		if c.Owner != owner || c.Instance.ID != cardID {
			continue
		}
		from := c.Instance.Card.Name
		if !upgrade.Apply(c, func(name string) (*combat.Card, bool) {
			def, ok := s.catalog[name]
			return def, ok
		}) {
			return fmt.Errorf("upgraded card %q not in catalog", c.UpgradeTo)
		}
		s.logger.Log(log.NewUpgradeAppliedEvent(s.fight.Turn, owner, from, c.UpgradeTo))
		return nil
	}
	return fmt.Errorf("card %d of %q is not flagged for upgrade", cardID, owner)
}

// sweepUpgrades reports currently eligible upgrades without applying them.
func (s *FightSession) sweepUpgrades() []UpgradeView {
	if s.finalized {
		return s.finalUpgrades
	}
	return upgradeViews(upgrade.Sweep(s.fight))
}

func upgradeViews(candidates []upgrade.Candidate) []UpgradeView {
	var out []UpgradeView
	for _, c := range candidates {
		out = append(out, UpgradeView{
			Owner:     c.Owner,
			CardID:    c.Instance.ID,
			Card:      c.Instance.Card.Name,
			UpgradeTo: c.UpgradeTo,
		})
	}
	return out
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
