package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ValleyOfWalls/cardclash/internal/combat"
	"github.com/ValleyOfWalls/cardclash/internal/store"
)

// activeSession is the singleton fight session (one per stdio process).
var activeSession *FightSession

// decks holds the deck catalog available to start_fight, set by main.
var decks map[string][]*combat.Card

// db is the optional lifetime progression store, set by main.
var db *store.Store

// SetDecks sets the deck catalog available to start_fight.
func SetDecks(d map[string][]*combat.Card) {
	decks = d
}

// SetStore sets the lifetime progression store. Nil disables persistence.
func SetStore(s *store.Store) {
	db = s
}

// RegisterTools adds all fight tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startFightTool(), handleStartFight)
	s.AddTool(startTurnTool(), handleStartTurn)
	s.AddTool(playCardTool(), handlePlayCard)
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(getCountersTool(), handleGetCounters)
	s.AddTool(checkUpgradesTool(), handleCheckUpgrades)
	s.AddTool(applyUpgradeTool(), handleApplyUpgrade)
}

// --- Tool definitions ---

func startFightTool() mcp.Tool {
	return mcp.NewTool("start_fight",
		mcp.WithDescription("Start a new fight between two fighters. Returns the opening state and the starting hands. "+
			"Fighter names must be distinct; decks are named entries from the deck file (or built-in deck names)."),
		mcp.WithString("fighter_a", mcp.Required(), mcp.Description("Name of the first fighter (team 0)")),
		mcp.WithString("deck_a", mcp.Required(), mcp.Description("Deck name for the first fighter")),
		mcp.WithString("fighter_b", mcp.Required(), mcp.Description("Name of the second fighter (team 1)")),
		mcp.WithString("deck_b", mcp.Required(), mcp.Description("Deck name for the second fighter")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for deterministic shuffles (0 = time-seeded)")),
	)
}

func startTurnTool() mcp.Tool {
	return mcp.NewTool("start_turn",
		mcp.WithDescription("Begin a fighter's turn: statuses tick (Burn damage, Salve healing, durations count down), "+
			"energy refills, and the fighter draws. Call this before playing cards."),
		mcp.WithString("fighter", mcp.Required(), mcp.Description("Name of the fighter whose turn begins")),
	)
}

func playCardTool() mcp.Tool {
	return mcp.NewTool("play_card",
		mcp.WithDescription("Play a card from a fighter's hand by instance ID. Illegal plays (not enough energy, "+
			"missing combo or stance, stunned) are rejected whole with no state change."),
		mcp.WithString("fighter", mcp.Required(), mcp.Description("Name of the fighter playing the card")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Instance ID of the card in hand (from the state view)")),
		mcp.WithString("targets", mcp.Description("Space-separated fighter names for effects that take explicit targets")),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End a fighter's turn. A turn with no damage taken extends the fighter's perfect turn streak."),
		mcp.WithString("fighter", mcp.Required(), mcp.Description("Name of the fighter whose turn ends")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current fight state and any events since the last call. Read-only."),
	)
}

func getCountersTool() mcp.Tool {
	return mcp.NewTool("get_counters",
		mcp.WithDescription("Get a fighter's tracked counters for one scope. Read-only."),
		mcp.WithString("fighter", mcp.Required(), mcp.Description("Name of the fighter")),
		mcp.WithString("scope", mcp.Description("'fight' (default) or 'lifetime'")),
	)
}

func checkUpgradesTool() mcp.Tool {
	return mcp.NewTool("check_upgrades",
		mcp.WithDescription("List card instances whose upgrade condition is currently met. Read-only; nothing is swapped."),
	)
}

func applyUpgradeTool() mcp.Tool {
	return mcp.NewTool("apply_upgrade",
		mcp.WithDescription("Swap a flagged card instance for its upgraded form. Only instances reported by "+
			"check_upgrades are accepted; call this between turns, not mid-resolution."),
		mcp.WithString("fighter", mcp.Required(), mcp.Description("Name of the fighter who owns the card")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Instance ID of the flagged card")),
	)
}

// --- Tool handlers ---

func handleStartFight(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && !activeSession.fight.Over {
		return mcp.NewToolResultError("A fight is already running. Only one fight at a time is supported."), nil
	}

	fighterA := request.GetString("fighter_a", "")
	fighterB := request.GetString("fighter_b", "")
	deckA := request.GetString("deck_a", "")
	deckB := request.GetString("deck_b", "")
	seed := int64(request.GetInt("seed", 0))

	if fighterA == "" || fighterB == "" {
		return mcp.NewToolResultError("fighter_a and fighter_b are required"), nil
	}
	cardsA, ok := decks[deckA]
	if !ok {
		return mcp.NewToolResultErrorf("Unknown deck %q", deckA), nil
	}
	cardsB, ok := decks[deckB]
	if !ok {
		return mcp.NewToolResultErrorf("Unknown deck %q", deckB), nil
	}

	sess, err := NewFightSession([]combat.ParticipantConfig{
		{Name: fighterA, Team: 0, MaxHealth: 50, MaxEnergy: 3, Deck: cardsA},
		{Name: fighterB, Team: 1, MaxHealth: 50, MaxEnergy: 3, Deck: cardsB},
	}, seed, db)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start fight: %v", err), nil
	}

	activeSession = sess
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleStartTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}
	name := request.GetString("fighter", "")
	if sess.fight.EntityByName(name) == nil {
		return mcp.NewToolResultErrorf("Unknown fighter %q", name), nil
	}
	if sess.fight.Over {
		return mcp.NewToolResultError("The fight is over."), nil
	}

	sess.fight.StartTurn(name)
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handlePlayCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}

	name := request.GetString("fighter", "")
	cardID := request.GetInt("card_id", -1)
	targets := strings.Fields(request.GetString("targets", ""))

	report, err := sess.fight.PlayCard(combat.PlayCardRequest{
		SourceName:     name,
		CardInstanceID: cardID,
		TargetNames:    targets,
	})
	if err != nil {
		// The rejection event stays queued and surfaces on the next drain.
		return mcp.NewToolResultErrorf("Play rejected: %v", err), nil
	}

	resp := sess.respond()
	resp.Report = report
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}
	name := request.GetString("fighter", "")
	if sess.fight.EntityByName(name) == nil {
		return mcp.NewToolResultErrorf("Unknown fighter %q", name), nil
	}

	sess.fight.EndTurn(name)
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}

func handleGetCounters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}
	name := request.GetString("fighter", "")
	if sess.fight.EntityByName(name) == nil {
		return mcp.NewToolResultErrorf("Unknown fighter %q", name), nil
	}

	scope := combat.ScopeFight
	if request.GetString("scope", "fight") == "lifetime" {
		scope = combat.ScopeLifetime
	}

	trk := sess.fight.Tracker.Entity(name)
	counters := make(map[string]int)
	for _, k := range combat.AllCounterKinds() {
		if v := trk.Counter(k, scope); v != 0 {
			counters[k.String()] = v
		}
	}

	resp := &ToolResponse{Events: sess.drainEvents(), Counters: counters}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleCheckUpgrades(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}

	resp := &ToolResponse{Events: sess.drainEvents(), Upgrades: sess.sweepUpgrades()}
	if resp.Upgrades == nil {
		resp.Upgrades = []UpgradeView{}
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleApplyUpgrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No fight is running. Use start_fight first."), nil
	}

	name := request.GetString("fighter", "")
	cardID := request.GetInt("card_id", -1)

	if err := sess.applyUpgrade(name, cardID); err != nil {
		return mcp.NewToolResultErrorf("Upgrade rejected: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(sess.respond())), nil
}
