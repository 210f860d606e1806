package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

// RosterFile is a lineup described in YAML:
//
//	name: Big Teeth
//	species: [tyrannosaurus, tyrannosaurus, pteranodon]
type RosterFile struct {
	Name    string
	Species []dino.Species
}

type rosterFileYAML struct {
	Name    string   `yaml:"name"`
	Species []string `yaml:"species"`
}

// LoadRosterFile reads and validates a lineup file
func LoadRosterFile(path string) (*RosterFile, error) {
	b, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("roster file %s not found", path)
		}
		return nil, errors.Wrapf(err, "read roster file %s", path)
	}
	return ParseRosterFile(b)
}

// ParseRosterFile decodes a lineup from YAML bytes
func ParseRosterFile(b []byte) (*RosterFile, error) {
	var raw rosterFileYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "decode roster yaml")
	}

	if len(raw.Species) > dino.Capacity {
		return nil, errors.InvalidArgumentf("roster %q lists %d species, at most %d allowed", raw.Name, len(raw.Species), dino.Capacity)
	}

	species, err := dino.ParseSpeciesList(raw.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "roster %q", raw.Name)
	}

	return &RosterFile{Name: raw.Name, Species: species}, nil
}
