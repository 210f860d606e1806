package roster

import (
	"sort"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

const (
	errLineupNil     = "lineup cannot be nil"
	errLineupIDEmpty = "lineup ID cannot be empty"
)

func validateLineup(l *Lineup) error {
	if l == nil {
		return errors.InvalidArgument(errLineupNil)
	}

	vb := errors.NewValidationBuilder()
	if l.ID == "" {
		vb.RequiredField("ID")
	}
	if len(l.Species) > dino.Capacity {
		vb.Fieldf("Species", "at most %d allowed, got %d", dino.Capacity, len(l.Species))
	}
	for i, sp := range l.Species {
		if !sp.Valid() {
			vb.Fieldf("Species", "entry %d is not a known species", i)
		}
	}
	return vb.Build()
}

func copyLineup(l *Lineup) *Lineup {
	out := *l
	out.Species = append([]dino.Species(nil), l.Species...)
	return &out
}

func sortLineups(lineups []*Lineup) {
	sort.Slice(lineups, func(i, j int) bool {
		if lineups[i].CreatedAt.Equal(lineups[j].CreatedAt) {
			return lineups[i].ID < lineups[j].ID
		}
		return lineups[i].CreatedAt.Before(lineups[j].CreatedAt)
	})
}
