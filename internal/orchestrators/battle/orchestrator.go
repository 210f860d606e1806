// Package battle coordinates lineup storage, lineup generation and the combat
// engine behind the CLI and HTTP surfaces.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/dino-battle/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/engine/lineup"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dino-battle/internal/repositories/roster"
)

// Service defines the battle operations
type Service interface {
	// Catalog
	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)

	// Saved lineups
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error)
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
	ListRosters(ctx context.Context, input *ListRostersInput) (*ListRostersOutput, error)
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error)

	// Battles
	RunBattle(ctx context.Context, input *RunBattleInput) (*RunBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	RosterRepo  roster.Repository
	Roller      dice.Roller
	IDGenerator idgen.Generator

	// EventBus receives battle events. Optional.
	EventBus events.EventBus

	// MaxRounds is the default round cap. Zero disables the cap.
	MaxRounds int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MaxRounds < 0 {
		vb.Fieldf("MaxRounds", "must not be negative, got %d", c.MaxRounds)
	}

	return vb.Build()
}

type orchestrator struct {
	rosterRepo roster.Repository
	lineups    *lineup.Generator
	idGen      idgen.Generator
	eventBus   events.EventBus
	maxRounds  int
}

// NewOrchestrator creates a new battle orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen, err := lineup.New(&lineup.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, err
	}

	return &orchestrator{
		rosterRepo: cfg.RosterRepo,
		lineups:    gen,
		idGen:      cfg.IDGenerator,
		eventBus:   cfg.EventBus,
		maxRounds:  cfg.MaxRounds,
	}, nil
}

func (o *orchestrator) ListSpecies(_ context.Context, _ *ListSpeciesInput) (*ListSpeciesOutput, error) {
	all := dino.AllSpecies()
	out := make([]SpeciesInfo, 0, len(all))
	for _, sp := range all {
		stats, err := sp.Stats()
		if err != nil {
			return nil, errors.Wrapf(err, "catalog entry %d", int(sp))
		}
		out = append(out, SpeciesInfo{Species: sp, Stats: stats})
	}
	return &ListSpeciesOutput{Species: out}, nil
}

func (o *orchestrator) CreateRoster(ctx context.Context, input *CreateRosterInput) (*CreateRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if len(input.Species) > dino.Capacity {
		vb.Fieldf("Species", "at most %d allowed, got %d", dino.Capacity, len(input.Species))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	species := input.Species
	if len(species) == 0 {
		var err error
		species, err = o.lineups.RandomLineup(dino.Capacity)
		if err != nil {
			return nil, err
		}
	}

	out, err := o.rosterRepo.Create(ctx, roster.CreateInput{Lineup: &roster.Lineup{
		ID:      o.idGen.Generate(),
		Name:    input.Name,
		Species: species,
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save roster %q", input.Name)
	}

	slog.Info("Roster created",
		"roster_id", out.Lineup.ID,
		"name", out.Lineup.Name,
		"size", len(out.Lineup.Species),
	)

	return &CreateRosterOutput{Lineup: out.Lineup}, nil
}

func (o *orchestrator) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	out, err := o.rosterRepo.Get(ctx, roster.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &GetRosterOutput{Lineup: out.Lineup}, nil
}

func (o *orchestrator) ListRosters(ctx context.Context, _ *ListRostersInput) (*ListRostersOutput, error) {
	out, err := o.rosterRepo.List(ctx, roster.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rosters")
	}
	return &ListRostersOutput{Lineups: out.Lineups}, nil
}

func (o *orchestrator) DeleteRoster(ctx context.Context, input *DeleteRosterInput) (*DeleteRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("roster ID is required")
	}

	if _, err := o.rosterRepo.Delete(ctx, roster.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	slog.Info("Roster deleted", "roster_id", input.ID)
	return &DeleteRosterOutput{}, nil
}

func (o *orchestrator) RunBattle(ctx context.Context, input *RunBattleInput) (*RunBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	maxRounds := o.maxRounds
	if input.MaxRounds != nil {
		if *input.MaxRounds < 0 {
			return nil, errors.InvalidArgumentf("max rounds must not be negative, got %d", *input.MaxRounds)
		}
		maxRounds = *input.MaxRounds
	}

	gen := o.lineups
	if input.Seed != nil {
		var err error
		gen, err = lineup.New(&lineup.Config{Roller: lineup.NewSeededRoller(*input.Seed)})
		if err != nil {
			return nil, err
		}
	}

	battleID := o.idGen.Generate()

	// left is drawn before right so a seed always produces the same pairing
	left, leftName, err := o.resolveSide(ctx, gen, battleID+"-left", input.Left)
	if err != nil {
		return nil, errors.Wrap(err, "left side")
	}
	right, rightName, err := o.resolveSide(ctx, gen, battleID+"-right", input.Right)
	if err != nil {
		return nil, errors.Wrap(err, "right side")
	}

	b, err := combat.New(&combat.Config{
		ID:        battleID,
		Left:      left,
		Right:     right,
		MaxRounds: maxRounds,
		EventBus:  o.eventBus,
	})
	if err != nil {
		return nil, err
	}

	result, err := b.Run(ctx)
	if err != nil {
		return nil, err
	}

	return &RunBattleOutput{
		BattleID: battleID,
		Outcome:  result.Outcome,
		Rounds:   result.Rounds,
		Left: SideResult{
			Name:      leftName,
			Initial:   left.Creatures(),
			Survivors: result.Left.Creatures(),
		},
		Right: SideResult{
			Name:      rightName,
			Initial:   right.Creatures(),
			Survivors: result.Right.Creatures(),
		},
	}, nil
}

// resolveSide builds the roster for one side and returns it with the saved
// lineup name, if any
func (o *orchestrator) resolveSide(ctx context.Context, gen *lineup.Generator, id string, side SideInput) (dino.Roster, string, error) {
	if side.RosterID != "" && len(side.Species) > 0 {
		return dino.Roster{}, "", errors.InvalidArgument("set either a roster ID or a species list, not both")
	}

	var species []dino.Species
	name := side.Name
	switch {
	case side.RosterID != "":
		out, err := o.rosterRepo.Get(ctx, roster.GetInput{ID: side.RosterID})
		if err != nil {
			return dino.Roster{}, "", err
		}
		species = out.Lineup.Species
		name = out.Lineup.Name
	case len(side.Species) > 0:
		species = side.Species
	default:
		var err error
		species, err = gen.RandomLineup(dino.Capacity)
		if err != nil {
			return dino.Roster{}, "", err
		}
	}

	r, err := lineup.Build(id, species)
	if err != nil {
		return dino.Roster{}, "", err
	}
	return r, name, nil
}
