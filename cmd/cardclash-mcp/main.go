package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ValleyOfWalls/cardclash/internal/combat"
	"github.com/ValleyOfWalls/cardclash/internal/config"
	cardmcp "github.com/ValleyOfWalls/cardclash/internal/mcp"
	"github.com/ValleyOfWalls/cardclash/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	decks := combat.DefaultDecks()
	if cfg.DeckFile != "" {
		loaded, err := combat.ParseDeckFile(cfg.DeckFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for name, cards := range loaded {
			decks[name] = cards
		}
	}
	cardmcp.SetDecks(decks)

	if cfg.DBPath != "" {
		db, err := store.OpenAndMigrate(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cardmcp.SetStore(db)
	}

	s := server.NewMCPServer("cardclash", "1.0.0")
	cardmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
