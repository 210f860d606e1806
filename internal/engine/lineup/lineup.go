// Package lineup draws random species and builds rosters from species lists
package lineup

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

// Config configures a Generator
type Config struct {
	Roller dice.Roller
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Generator samples species with a dice roller
type Generator struct {
	roller dice.Roller
}

// New creates a Generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Generator{roller: cfg.Roller}, nil
}

// RandomSpecies draws one species uniformly from the catalog. A roll outside
// the catalog means the roller is broken and panics.
func (g *Generator) RandomSpecies() (dino.Species, error) {
	all := dino.AllSpecies()
	roll, err := g.roller.Roll(len(all))
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll species")
	}
	return pick(all, roll), nil
}

// RandomLineup draws size species
func (g *Generator) RandomLineup(size int) ([]dino.Species, error) {
	if size < 0 || size > dino.Capacity {
		return nil, errors.InvalidArgumentf("lineup size must be between 0 and %d, got %d", dino.Capacity, size)
	}
	if size == 0 {
		return []dino.Species{}, nil
	}

	all := dino.AllSpecies()
	rolls, err := g.roller.RollN(size, len(all))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll lineup")
	}

	out := make([]dino.Species, len(rolls))
	for i, roll := range rolls {
		out[i] = pick(all, roll)
	}
	return out, nil
}

func pick(all []dino.Species, roll int) dino.Species {
	if roll < 1 || roll > len(all) {
		panic(fmt.Sprintf("lineup: roll %d outside 1..%d", roll, len(all)))
	}
	return all[roll-1]
}

// Build creates a full-health roster. Creature IDs are the roster ID followed
// by the 1-based slot.
func Build(id string, species []dino.Species) (dino.Roster, error) {
	if len(species) > dino.Capacity {
		return dino.Roster{}, errors.InvalidArgumentf("roster %q has %d creatures, at most %d allowed", id, len(species), dino.Capacity)
	}

	creatures := make([]dino.Creature, 0, len(species))
	for i, sp := range species {
		c, err := dino.NewCreature(fmt.Sprintf("%s-%d", id, i+1), sp)
		if err != nil {
			return dino.Roster{}, err
		}
		creatures = append(creatures, c)
	}

	return dino.NewRoster(id, creatures...)
}

// seededRoller is a dice.Roller over math/rand so a seed replays a battle
type seededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller returns a reproducible roller. Seed 0 is treated as 1.
func NewSeededRoller(seed int64) dice.Roller {
	if seed == 0 {
		seed = 1
	}
	return &seededRoller{rng: rand.New(rand.NewSource(seed))} // #nosec G404
}

func (r *seededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(size) + 1, nil
}

func (r *seededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	out := make([]int, count)
	for i := range out {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}
	return out, nil
}
