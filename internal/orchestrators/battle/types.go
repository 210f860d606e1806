package battle

import (
	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/repositories/roster"
)

// SpeciesInfo pairs a species with its stat template
type SpeciesInfo struct {
	Species dino.Species `json:"species"`
	Stats   dino.Stats   `json:"stats"`
}

// ListSpeciesInput defines the request for listing the catalog
type ListSpeciesInput struct{}

// ListSpeciesOutput defines the response for listing the catalog
type ListSpeciesOutput struct {
	Species []SpeciesInfo `json:"species"`
}

// CreateRosterInput defines the request for saving a lineup. An empty Species
// list is filled with a random full team.
type CreateRosterInput struct {
	Name    string
	Species []dino.Species
}

// CreateRosterOutput defines the response for saving a lineup
type CreateRosterOutput struct {
	Lineup *roster.Lineup `json:"lineup"`
}

// GetRosterInput defines the request for loading a lineup
type GetRosterInput struct {
	ID string
}

// GetRosterOutput defines the response for loading a lineup
type GetRosterOutput struct {
	Lineup *roster.Lineup `json:"lineup"`
}

// ListRostersInput defines the request for listing lineups
type ListRostersInput struct{}

// ListRostersOutput defines the response for listing lineups
type ListRostersOutput struct {
	Lineups []*roster.Lineup `json:"lineups"`
}

// DeleteRosterInput defines the request for deleting a lineup
type DeleteRosterInput struct {
	ID string
}

// DeleteRosterOutput defines the response for deleting a lineup
type DeleteRosterOutput struct{}

// SideInput picks one team. Set RosterID to use a saved lineup, Species for an
// explicit lineup, or neither for a random full team. Name labels explicit and
// random teams; saved lineups use their own name.
type SideInput struct {
	Name     string         `json:"name,omitempty"`
	RosterID string         `json:"roster_id,omitempty"`
	Species  []dino.Species `json:"species,omitempty"`
}

// RunBattleInput defines the request for running a battle
type RunBattleInput struct {
	Left  SideInput
	Right SideInput

	// MaxRounds overrides the configured round cap. Zero disables the cap.
	MaxRounds *int

	// Seed replaces the configured roller with a reproducible one for random sides
	Seed *int64
}

// SideResult is one team's part of a finished battle
type SideResult struct {
	Name      string          `json:"name,omitempty"`
	Initial   []dino.Creature `json:"initial"`
	Survivors []dino.Creature `json:"survivors"`
}

// RunBattleOutput defines the response for running a battle
type RunBattleOutput struct {
	BattleID string         `json:"battle_id"`
	Outcome  combat.Outcome `json:"outcome"`
	Rounds   int            `json:"rounds"`
	Left     SideResult     `json:"left"`
	Right    SideResult     `json:"right"`
}
