// Package combat resolves dinosaur battles: the per-round heal, damage and
// infight pipeline and the loop that runs it to a terminal outcome.
package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

// DefaultMaxRounds bounds a battle when the caller does not choose a limit
const DefaultMaxRounds = 10000

// Config holds the inputs for a battle
type Config struct {
	ID    string
	Left  dino.Roster
	Right dino.Roster

	// MaxRounds stops the battle with OutcomeRoundLimitExceeded once this many
	// rounds have been fought. Zero means no limit.
	MaxRounds int

	// EventBus receives battle events. Optional.
	EventBus events.EventBus
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MaxRounds < 0 {
		vb.Fieldf("MaxRounds", "must not be negative, got %d", c.MaxRounds)
	}

	return vb.Build()
}

// Battle owns the current pair of rosters. It is not safe for concurrent use;
// run separate battles in separate goroutines instead.
type Battle struct {
	id        string
	left      dino.Roster
	right     dino.Roster
	round     int
	maxRounds int
	bus       events.EventBus
}

// Result is the terminal state of a battle
type Result struct {
	Outcome Outcome
	Rounds  int
	Left    dino.Roster
	Right   dino.Roster
}

// New creates a battle between two rosters
func New(cfg *Config) (*Battle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Battle{
		id:        cfg.ID,
		left:      cfg.Left,
		right:     cfg.Right,
		maxRounds: cfg.MaxRounds,
		bus:       cfg.EventBus,
	}, nil
}

// Left returns the current left roster
func (b *Battle) Left() dino.Roster { return b.left }

// Right returns the current right roster
func (b *Battle) Right() dino.Roster { return b.right }

// Round returns how many rounds have been fought
func (b *Battle) Round() int { return b.round }

// Outcome runs the terminal check against the current rosters
func (b *Battle) Outcome() Outcome {
	if outcome := Decide(b.left.IsDead(), b.right.IsDead()); outcome.Terminal() {
		return outcome
	}
	if b.maxRounds > 0 && b.round >= b.maxRounds {
		return OutcomeRoundLimitExceeded
	}
	return OutcomeRunning
}

// Step fights one round
func (b *Battle) Step(ctx context.Context) {
	b.round++
	b.publishSnapshot(ctx, EventRoundStarted, OutcomeRunning)

	result := ResolveRound(b.left, b.right)
	b.publishEffects(ctx, result.LeftEffects)
	b.publishEffects(ctx, result.RightEffects)

	b.left = result.Left
	b.right = result.Right

	slog.Debug("Round resolved",
		"battle_id", b.id,
		"round", b.round,
		"left_alive", b.left.Len(),
		"right_alive", b.right.Len(),
	)
}

// Run fights rounds until the battle reaches a terminal outcome. The context is
// checked between rounds.
func (b *Battle) Run(ctx context.Context) (*Result, error) {
	slog.Info("Battle started",
		"battle_id", b.id,
		"left_size", b.left.Len(),
		"right_size", b.right.Len(),
		"max_rounds", b.maxRounds,
	)
	b.publishSnapshot(ctx, EventBattleStarted, OutcomeRunning)

	outcome := b.Outcome()
	for !outcome.Terminal() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "battle interrupted")
		}
		b.Step(ctx)
		outcome = b.Outcome()
	}

	b.publishSnapshot(ctx, EventBattleEnded, outcome)
	slog.Info("Battle finished",
		"battle_id", b.id,
		"outcome", outcome,
		"rounds", b.round,
	)

	return &Result{
		Outcome: outcome,
		Rounds:  b.round,
		Left:    b.left,
		Right:   b.right,
	}, nil
}
