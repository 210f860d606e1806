package dino_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

type SpeciesTestSuite struct {
	suite.Suite
}

func TestSpeciesSuite(t *testing.T) {
	suite.Run(t, new(SpeciesTestSuite))
}

func (s *SpeciesTestSuite) TestCatalog() {
	testCases := []struct {
		species  dino.Species
		expected dino.Stats
	}{
		{dino.Tyrannosaurus, dino.Stats{Health: 4, Attack: 5, Defense: 1, Infight: 2}},
		{dino.Velociraptor, dino.Stats{Health: 2, Attack: 4}},
		{dino.Triceratops, dino.Stats{Health: 4, Attack: 3, Defense: 2}},
		{dino.Brachiosaurus, dino.Stats{Health: 7, Attack: 1}},
		{dino.Pteranodon, dino.Stats{Health: 1, Attack: 1, Heal: 1}},
		{dino.Dilophosaurus, dino.Stats{Health: 1, Splash: 1}},
	}

	s.Len(dino.AllSpecies(), len(testCases))

	for _, tc := range testCases {
		s.Run(tc.species.String(), func() {
			stats, err := tc.species.Stats()
			s.Require().NoError(err)
			s.Equal(tc.expected, stats)
		})
	}
}

func (s *SpeciesTestSuite) TestUnknownSpecies() {
	unknown := dino.Species(42)

	s.False(unknown.Valid())
	s.Equal("Unknown", unknown.String())

	_, err := unknown.Stats()
	s.True(errors.IsInvalidArgument(err))

	_, err = unknown.MarshalText()
	s.Error(err)
}

func (s *SpeciesTestSuite) TestParseSpecies() {
	parsed, err := dino.ParseSpecies("  tyrannosaurus ")
	s.Require().NoError(err)
	s.Equal(dino.Tyrannosaurus, parsed)

	parsed, err = dino.ParseSpecies("DILOPHOSAURUS")
	s.Require().NoError(err)
	s.Equal(dino.Dilophosaurus, parsed)

	_, err = dino.ParseSpecies("stegosaurus")
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "stegosaurus")
}

func (s *SpeciesTestSuite) TestParseSpeciesList() {
	list, err := dino.ParseSpeciesList([]string{"velociraptor", "Pteranodon"})
	s.Require().NoError(err)
	s.Equal([]dino.Species{dino.Velociraptor, dino.Pteranodon}, list)

	_, err = dino.ParseSpeciesList([]string{"velociraptor", "mammoth"})
	s.Error(err)
}

func (s *SpeciesTestSuite) TestJSONUsesNames() {
	data, err := json.Marshal([]dino.Species{dino.Triceratops, dino.Brachiosaurus})
	s.Require().NoError(err)
	s.JSONEq(`["Triceratops","Brachiosaurus"]`, string(data))

	var decoded []dino.Species
	s.Require().NoError(json.Unmarshal([]byte(`["pteranodon","Velociraptor"]`), &decoded))
	s.Equal([]dino.Species{dino.Pteranodon, dino.Velociraptor}, decoded)

	s.Error(json.Unmarshal([]byte(`["unicorn"]`), &decoded))
}
