// Package render turns battle state and events into human-readable text
package render

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
)

// FormatCreature renders a creature as "Species (health)"
func FormatCreature(c dino.Creature) string {
	return fmt.Sprintf("%s (%d)", c.Species, c.Health)
}

// FormatRoster renders the live creatures in order as "[a, b, ...]"
func FormatRoster(r dino.Roster) string {
	return FormatCreatures(r.Creatures())
}

// FormatCreatures renders a creature list the same way as FormatRoster
func FormatCreatures(creatures []dino.Creature) string {
	parts := make([]string, len(creatures))
	for i, c := range creatures {
		parts[i] = FormatCreature(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatOutcome renders a terminal outcome
func FormatOutcome(o combat.Outcome) string {
	switch o {
	case combat.OutcomeLeftWins:
		return "Left team wins!"
	case combat.OutcomeRightWins:
		return "Right team wins!"
	case combat.OutcomeStalemate:
		return "Stalemate!"
	case combat.OutcomeRoundLimitExceeded:
		return "Round limit reached, no winner."
	default:
		return "Battle still running."
	}
}

// FormatResult renders the final line of a battle
func FormatResult(outcome combat.Outcome, rounds int) string {
	return fmt.Sprintf("%s (%d rounds)", FormatOutcome(outcome), rounds)
}
