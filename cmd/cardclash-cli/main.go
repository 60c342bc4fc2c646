package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ValleyOfWalls/cardclash/internal/combat"
	"github.com/ValleyOfWalls/cardclash/internal/config"
	"github.com/ValleyOfWalls/cardclash/internal/log"
	"github.com/ValleyOfWalls/cardclash/internal/store"
	"github.com/ValleyOfWalls/cardclash/internal/upgrade"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "fight":
		runFight(os.Args[2:])
	case "decks":
		runDecks(os.Args[2:])
	case "profile":
		runProfile(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  cardclash fight [--a NAME] [--b NAME] [--deck-a DECK] [--deck-b DECK] [--seed N] [--max-turns N]")
	fmt.Println("  cardclash decks")
	fmt.Println("  cardclash profile --name NAME")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  fight    Run an automated fight between two fighters and print the event log")
	fmt.Println("  decks    List the available decks")
	fmt.Println("  profile  Show a fighter's persisted lifetime counters")
}

func loadDecks(cfg *config.Config) (map[string][]*combat.Card, error) {
	decks := combat.DefaultDecks()
	if cfg.DeckFile != "" {
		loaded, err := combat.ParseDeckFile(cfg.DeckFile)
		if err != nil {
			return nil, err
		}
		for name, cards := range loaded {
			decks[name] = cards
		}
	}
	return decks, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runFight(args []string) {
	fs := flag.NewFlagSet("fight", flag.ExitOnError)
	nameA := fs.String("a", "Avel", "name of the first fighter")
	nameB := fs.String("b", "Brakka", "name of the second fighter")
	deckA := fs.String("deck-a", "Bruiser", "deck for the first fighter")
	deckB := fs.String("deck-b", "Warden", "deck for the second fighter")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-seeded)")
	maxTurns := fs.Int("max-turns", 50, "abandon the fight after this many rounds")
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	decks, err := loadDecks(cfg)
	if err != nil {
		fatal(err)
	}
	cardsA, ok := decks[*deckA]
	if !ok {
		fatal(fmt.Errorf("unknown deck %q", *deckA))
	}
	cardsB, ok := decks[*deckB]
	if !ok {
		fatal(fmt.Errorf("unknown deck %q", *deckB))
	}

	if *seed == 0 {
		*seed = cfg.Seed
	}

	logger := log.NewTextLogger(os.Stdout)
	f, err := combat.NewFight(combat.FightConfig{
		Participants: []combat.ParticipantConfig{
			{Name: *nameA, Team: 0, MaxHealth: 50, MaxEnergy: 3, Deck: cardsA},
			{Name: *nameB, Team: 1, MaxHealth: 50, MaxEnergy: 3, Deck: cardsB},
		},
		Logger:       logger,
		Seed:         *seed,
		StartingHand: cfg.StartingHand,
		DrawPerTurn:  cfg.DrawPerTurn,
	})
	if err != nil {
		fatal(err)
	}

	var db *store.Store
	profiles := make(map[string]string)
	if cfg.DBPath != "" {
		db, err = store.OpenAndMigrate(cfg.DBPath)
		if err != nil {
			fatal(err)
		}
		for _, name := range []string{*nameA, *nameB} {
			prof, err := db.SeedTracker(name, f.Tracker.Entity(name))
			if err != nil {
				fatal(err)
			}
			profiles[name] = prof.ID
		}
	}

	f.Begin()
	runAutoFight(f, *maxTurns)

	// Sweep before End: fight-scope upgrade conditions read counters that
	// End resets.
	candidates := upgrade.Sweep(f)
	f.End()

	fmt.Println()
	fmt.Println(f.Result)
	if len(candidates) > 0 {
		fmt.Println("\nEligible upgrades:")
		for _, c := range candidates {
			fmt.Printf("  %s: %s -> %s\n", c.Owner, c.Instance.Card.Name, c.UpgradeTo)
		}
	}

	if db != nil {
		for name, profileID := range profiles {
			if err := db.SaveLifetime(profileID, f.Tracker.Entity(name)); err != nil {
				fatal(err)
			}
		}
	}
}

// runAutoFight drives both fighters with a greedy policy: each turn, keep
// playing the first affordable card in hand until nothing is playable.
func runAutoFight(f *combat.Fight, maxTurns int) {
	for round := 0; round < maxTurns && !f.Over; round++ {
		for _, e := range f.Roster {
			if f.Over {
				return
			}
			if e.Defeated {
				continue
			}
			f.StartTurn(e.Name)
			for played := true; played && !f.Over; {
				played = false
				for _, ci := range append([]*combat.CardInstance(nil), e.Hand...) {
					if combat.CheckLegality(e, ci.Card) != nil {
						continue
					}
					if _, err := f.PlayCard(combat.PlayCardRequest{
						SourceName:     e.Name,
						CardInstanceID: ci.ID,
					}); err == nil {
						played = true
						break
					}
				}
			}
			if f.Over {
				return
			}
			f.EndTurn(e.Name)
		}
	}
}

func runDecks(args []string) {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	decks, err := loadDecks(cfg)
	if err != nil {
		fatal(err)
	}
	for name, cards := range decks {
		fmt.Printf("%s (%d cards)\n", name, len(cards))
		for _, c := range cards {
			fmt.Printf("  [%d] %s: %s\n", c.Cost, c.Name, c.Description)
		}
	}
}

func runProfile(args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "fighter name")
	fs.Parse(args)

	if *name == "" {
		fatal(fmt.Errorf("--name is required"))
	}
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if cfg.DBPath == "" {
		fatal(fmt.Errorf("persistence disabled (CARDCLASH_DB_PATH is empty)"))
	}
	db, err := store.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		fatal(err)
	}
	prof, err := db.EnsureProfile(*name)
	if err != nil {
		fatal(err)
	}
	counters, plays, err := db.LoadLifetime(prof.ID)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s (%s)\n", prof.Name, prof.ID)
	for _, kind := range combat.AllCounterKinds() {
		if v := counters[kind]; v != 0 {
			fmt.Printf("  %-24s %d\n", kind, v)
		}
	}
	if len(plays) > 0 {
		fmt.Println("Card plays:")
		for card, count := range plays {
			fmt.Printf("  %-24s %d\n", card, count)
		}
	}
}
