package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging fight events.
type EventLogger interface {
	Log(event FightEvent)
	Events() []FightEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []FightEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event FightEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []FightEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []FightEvent {
	var result []FightEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() FightEvent {
	if len(l.events) == 0 {
		return FightEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event FightEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e FightEvent) string {
	kind := e.Type.String()
	for len(kind) < 16 {
		kind += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []FightEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewFightStartEvent(fightID string, names []string) FightEvent {
	return FightEvent{
		Type:    EventFightStart,
		Details: fmt.Sprintf("=== Fight %s begins: %s ===", fightID, strings.Join(names, " vs ")),
	}
}

func NewFightEndEvent(turn int, result string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Type:    EventFightEnd,
		Details: fmt.Sprintf("=== %s ===", result),
	}
}

func NewTurnStartEvent(turn int, entity string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventTurnStart,
		Details: fmt.Sprintf("--- Turn %d: %s ---", turn, entity),
	}
}

func NewTurnEndEvent(turn int, entity string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventTurnEnd,
		Details: fmt.Sprintf("%s ends turn %d", entity, turn),
	}
}

func NewCardPlayedEvent(turn int, entity, card string, cost int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventCardPlayed,
		Card:    card,
		Amount:  cost,
		Details: fmt.Sprintf("%s plays %s (cost %d)", entity, card, cost),
	}
}

func NewCardRejectedEvent(turn int, entity, card, reason string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventCardRejected,
		Card:    card,
		Details: fmt.Sprintf("%s cannot play %s: %s", entity, card, reason),
	}
}

func NewEffectSkippedEvent(turn int, entity, card, reason string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventEffectSkipped,
		Card:    card,
		Details: fmt.Sprintf("%s: effect skipped (%s)", card, reason),
	}
}

func NewDamageEvent(turn int, target string, amount int, breakdown string) FightEvent {
	details := fmt.Sprintf("%s takes %d damage", target, amount)
	if breakdown != "" {
		details += " (" + breakdown + ")"
	}
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventDamage,
		Amount:  amount,
		Details: details,
	}
}

func NewHealEvent(turn int, target string, amount int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventHeal,
		Amount:  amount,
		Details: fmt.Sprintf("%s heals %d", target, amount),
	}
}

func NewDrawEvent(turn int, entity, card string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventDraw,
		Card:    card,
		Details: fmt.Sprintf("%s draws %s", entity, card),
	}
}

func NewEnergyRestoreEvent(turn int, entity string, amount int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventEnergyRestore,
		Amount:  amount,
		Details: fmt.Sprintf("%s restores %d energy", entity, amount),
	}
}

func NewStatusAppliedEvent(turn int, target, status string, magnitude, duration int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventStatusApplied,
		Amount:  magnitude,
		Details: fmt.Sprintf("%s gains %s (%d, %d turns)", target, status, magnitude, duration),
	}
}

func NewStatusRefreshedEvent(turn int, target, status string, duration int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventStatusRefreshed,
		Details: fmt.Sprintf("%s: %s refreshed to %d turns", target, status, duration),
	}
}

func NewStatusTickEvent(turn int, target, status string, amount int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventStatusTick,
		Amount:  amount,
		Details: fmt.Sprintf("%s: %s ticks for %d", target, status, amount),
	}
}

func NewStatusExpiredEvent(turn int, target, status string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventStatusExpired,
		Details: fmt.Sprintf("%s: %s expires", target, status),
	}
}

func NewShieldAbsorbEvent(turn int, target string, absorbed, remaining int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  target,
		Type:    EventShieldAbsorb,
		Amount:  absorbed,
		Details: fmt.Sprintf("%s's shield absorbs %d (%d shield left)", target, absorbed, remaining),
	}
}

func NewThornsReflectEvent(turn int, attacker string, amount int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  attacker,
		Type:    EventThornsReflect,
		Amount:  amount,
		Details: fmt.Sprintf("thorns reflect %d back to %s", amount, attacker),
	}
}

func NewStanceEnterEvent(turn int, entity, stance string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventStanceEnter,
		Details: fmt.Sprintf("%s enters %s stance", entity, stance),
	}
}

func NewStanceExitEvent(turn int, entity, stance string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventStanceExit,
		Details: fmt.Sprintf("%s exits %s stance", entity, stance),
	}
}

func NewComboBuildEvent(turn int, entity string, count int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventComboBuild,
		Amount:  count,
		Details: fmt.Sprintf("%s builds combo → %d", entity, count),
	}
}

func NewComboResetEvent(turn int, entity string, from int) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventComboReset,
		Amount:  from,
		Details: fmt.Sprintf("%s's combo breaks (was %d)", entity, from),
	}
}

func NewDefeatedEvent(turn int, entity string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventDefeated,
		Details: fmt.Sprintf("%s is defeated!", entity),
	}
}

func NewUpgradeFlaggedEvent(turn int, entity, card, upgraded string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventUpgradeFlagged,
		Card:    card,
		Details: fmt.Sprintf("%s's %s is eligible to upgrade into %s", entity, card, upgraded),
	}
}

func NewUpgradeAppliedEvent(turn int, entity, card, upgraded string) FightEvent {
	return FightEvent{
		Turn:    turn,
		Entity:  entity,
		Type:    EventUpgradeApplied,
		Card:    card,
		Details: fmt.Sprintf("%s's %s upgrades into %s", entity, card, upgraded),
	}
}
