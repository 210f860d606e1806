// Package dino holds the dinosaur battle domain values: the species catalog,
// creatures and rosters. Every operation here is pure and returns a new value.
package dino

import (
	"strings"

	"github.com/KirkDiggler/dino-battle/internal/errors"
)

// Capacity is the largest number of creatures a roster may start with
const Capacity = 8

// Species identifies one entry of the closed species catalog
type Species int

// Species catalog. Order matters: it is the order the random sampler draws from.
const (
	Tyrannosaurus Species = iota // high health and attack, infight
	Velociraptor                 // high attack, low health and defense
	Triceratops                  // high defense, moderate attack and health
	Brachiosaurus                // high health, low attack
	Pteranodon                   // low everything, heals teammates
	Dilophosaurus                // low everything, splash damage

	speciesCount
)

// Stats is the fixed stat template of a species
type Stats struct {
	Health  int `json:"health"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Heal    int `json:"heal"`
	Splash  int `json:"splash"`
	Infight int `json:"infight"`
}

var catalog = [speciesCount]Stats{
	Tyrannosaurus: {Health: 4, Attack: 5, Defense: 1, Infight: 2},
	Velociraptor:  {Health: 2, Attack: 4},
	Triceratops:   {Health: 4, Attack: 3, Defense: 2},
	Brachiosaurus: {Health: 7, Attack: 1},
	Pteranodon:    {Health: 1, Attack: 1, Heal: 1},
	Dilophosaurus: {Health: 1, Splash: 1},
}

var speciesNames = [speciesCount]string{
	Tyrannosaurus: "Tyrannosaurus",
	Velociraptor:  "Velociraptor",
	Triceratops:   "Triceratops",
	Brachiosaurus: "Brachiosaurus",
	Pteranodon:    "Pteranodon",
	Dilophosaurus: "Dilophosaurus",
}

// AllSpecies returns the catalog in sampling order
func AllSpecies() []Species {
	out := make([]Species, speciesCount)
	for i := range out {
		out[i] = Species(i)
	}
	return out
}

// Valid reports whether s is part of the catalog
func (s Species) Valid() bool {
	return s >= 0 && s < speciesCount
}

func (s Species) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return speciesNames[s]
}

// Stats returns the stat template for s
func (s Species) Stats() (Stats, error) {
	if !s.Valid() {
		return Stats{}, errors.InvalidArgumentf("unknown species %d", int(s))
	}
	return catalog[s], nil
}

// ParseSpecies resolves a species by name, ignoring case and surrounding space
func ParseSpecies(name string) (Species, error) {
	trimmed := strings.TrimSpace(name)
	for i, candidate := range speciesNames {
		if strings.EqualFold(candidate, trimmed) {
			return Species(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown species %q", name)
}

// ParseSpeciesList parses every name, failing on the first unknown one
func ParseSpeciesList(names []string) ([]Species, error) {
	out := make([]Species, 0, len(names))
	for _, name := range names {
		s, err := ParseSpecies(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// MarshalText encodes the species by name
func (s Species) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.InvalidArgumentf("unknown species %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a species name
func (s *Species) UnmarshalText(text []byte) error {
	parsed, err := ParseSpecies(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
