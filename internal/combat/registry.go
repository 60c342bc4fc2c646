package combat

import "fmt"

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Strike":            Strike,
	"Strike+":           StrikePlus,
	"Fireball":          Fireball,
	"Inferno":           Inferno,
	"Guard":             Guard,
	"Bulwark":           Bulwark,
	"Bramble Coat":      BrambleCoat,
	"Mend":              Mend,
	"Renewal":           Renewal,
	"Insight":           Insight,
	"Second Wind":       SecondWind,
	"Crippling Blow":    CripplingBlow,
	"Armor Shatter":     ArmorShatter,
	"Concuss":           Concuss,
	"War Cry":           WarCry,
	"Execute":           Execute,
	"Opportunist Jab":   OpportunistJab,
	"Desperation":       Desperation,
	"Momentum":          Momentum,
	"Veteran":           Veteran,
	"Combo Finisher":    ComboFinisher,
	"Aggressive Stance": AggressiveStance,
	"Defensive Stance":  DefensiveStance,
	"Focused Stance":    FocusedStance,
	"Berserker Stance":  BerserkerStance,
	"Guardian Stance":   GuardianStance,
	"Mystic Stance":     MysticStance,
	"Limit Break":       LimitBreakStance,
	"Center Self":       CenterSelf,
	"Stance Strike":     StanceStrike,
	"Chain Lightning":   ChainLightning,
	"Wild Bolt":         WildBolt,
	"Rally":             Rally,
	"Field Medic":       FieldMedic,
	"Frost Nova":        FrostNova,
	"Flurry":            Flurry,
	"Flurry+":           FlurryPlus,
}

// LookupCard looks up a card by name and returns a new instance.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}

// Catalog materializes the full registry as a name-keyed map, suitable
// for validation and upgrade lookups.
func Catalog() map[string]*Card {
	out := make(map[string]*Card, len(CardRegistry))
	for name, ctor := range CardRegistry {
		out[name] = ctor()
	}
	return out
}

// DefaultDecks returns the built-in starter decks, used when no deck file
// is configured.
func DefaultDecks() map[string][]*Card {
	expand := func(entries ...string) []*Card {
		var cards []*Card
		for _, name := range entries {
			cards = append(cards, LookupCard(name))
		}
		return cards
	}
	return map[string][]*Card{
		"Bruiser": expand(
			"Strike", "Strike", "Strike", "Crippling Blow", "Armor Shatter",
			"Guard", "Guard", "War Cry", "Execute", "Combo Finisher",
			"Aggressive Stance", "Stance Strike", "Momentum", "Flurry", "Flurry",
		),
		"Warden": expand(
			"Strike", "Strike", "Guard", "Guard", "Bulwark",
			"Bramble Coat", "Bramble Coat", "Mend", "Renewal", "Defensive Stance",
			"Guardian Stance", "Rally", "Concuss", "Insight", "Second Wind",
		),
		"Channeler": expand(
			"Fireball", "Fireball", "Chain Lightning", "Wild Bolt", "Frost Nova",
			"Mend", "Field Medic", "Mystic Stance", "Focused Stance", "Second Wind",
			"Insight", "Insight", "Veteran", "Desperation", "Opportunist Jab",
		),
	}
}
