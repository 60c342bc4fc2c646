package log

// EventType enumerates all observable resolution events.
type EventType int

const (
	EventFightStart EventType = iota
	EventFightEnd
	EventTurnStart
	EventTurnEnd
	EventCardPlayed
	EventCardRejected
	EventEffectSkipped
	EventDamage
	EventHeal
	EventDraw
	EventEnergyRestore
	EventStatusApplied
	EventStatusRefreshed
	EventStatusTick
	EventStatusExpired
	EventShieldAbsorb
	EventThornsReflect
	EventStanceEnter
	EventStanceExit
	EventComboBuild
	EventComboReset
	EventDefeated
	EventUpgradeFlagged
	EventUpgradeApplied
)

func (e EventType) String() string {
	switch e {
	case EventFightStart:
		return "FightStart"
	case EventFightEnd:
		return "FightEnd"
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventCardPlayed:
		return "CardPlayed"
	case EventCardRejected:
		return "CardRejected"
	case EventEffectSkipped:
		return "EffectSkipped"
	case EventDamage:
		return "Damage"
	case EventHeal:
		return "Heal"
	case EventDraw:
		return "Draw"
	case EventEnergyRestore:
		return "EnergyRestore"
	case EventStatusApplied:
		return "StatusApplied"
	case EventStatusRefreshed:
		return "StatusRefreshed"
	case EventStatusTick:
		return "StatusTick"
	case EventStatusExpired:
		return "StatusExpired"
	case EventShieldAbsorb:
		return "ShieldAbsorb"
	case EventThornsReflect:
		return "ThornsReflect"
	case EventStanceEnter:
		return "StanceEnter"
	case EventStanceExit:
		return "StanceExit"
	case EventComboBuild:
		return "ComboBuild"
	case EventComboReset:
		return "ComboReset"
	case EventDefeated:
		return "Defeated"
	case EventUpgradeFlagged:
		return "UpgradeFlagged"
	case EventUpgradeApplied:
		return "UpgradeApplied"
	default:
		return "Unknown"
	}
}

// FightEvent represents a single observable event during a fight.
type FightEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Entity  string    // acting/affected entity name (if applicable)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Amount  int       // numeric payload: damage, heal, stacks, combo count
	Details string    // human-readable detail string
}
