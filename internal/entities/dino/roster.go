package dino

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/dino-battle/internal/errors"
)

// Roster is an ordered team of live creatures. The front creature is active.
// Dead creatures are dropped as soon as they are detected and survivors keep
// their relative order.
type Roster struct {
	id        string
	creatures []Creature
}

// NewRoster builds a roster of at most Capacity creatures. Creatures that are
// already dead are left out.
func NewRoster(id string, creatures ...Creature) (Roster, error) {
	if len(creatures) > Capacity {
		return Roster{}, errors.InvalidArgumentf("roster %q has %d creatures, at most %d allowed", id, len(creatures), Capacity)
	}

	live := make([]Creature, 0, len(creatures))
	for _, c := range creatures {
		if !c.Species.Valid() {
			return Roster{}, errors.InvalidArgumentf("roster %q: creature %q has unknown species %d", id, c.ID, int(c.Species))
		}
		if !c.IsDead() {
			live = append(live, c)
		}
	}

	return Roster{id: id, creatures: live}, nil
}

// GetID returns the roster's ID
func (r Roster) GetID() string {
	return r.id
}

// GetType returns the entity type for rpg-toolkit
func (r Roster) GetType() string {
	return "roster"
}

// Creatures returns a copy of the live creatures in order
func (r Roster) Creatures() []Creature {
	out := make([]Creature, len(r.creatures))
	copy(out, r.creatures)
	return out
}

// Len returns the number of live creatures
func (r Roster) Len() int {
	return len(r.creatures)
}

// IsDead reports whether no live creature remains
func (r Roster) IsDead() bool {
	return len(r.creatures) == 0
}

// FirstLive returns the active creature
func (r Roster) FirstLive() (Creature, bool) {
	if len(r.creatures) == 0 {
		return Creature{}, false
	}
	return r.creatures[0], true
}

// ApplyDamage hits the i-th live creature with vector[i]. Missing entries count
// as 0, which still deals the minimum of 1.
func (r Roster) ApplyDamage(vector []int) (Roster, []Effect) {
	next := Roster{id: r.id, creatures: make([]Creature, 0, len(r.creatures))}
	var effects []Effect

	for i, c := range r.creatures {
		amount := c.EffectiveDamage(vectorAt(vector, i))
		hit := c.ApplyDamage(vectorAt(vector, i))
		effects = append(effects, Effect{Kind: EffectHit, Creature: hit, Amount: amount})
		if hit.IsDead() {
			effects = append(effects, Effect{Kind: EffectDeath, Creature: hit})
			continue
		}
		next.creatures = append(next.creatures, hit)
	}

	return next, effects
}

// ApplyInfight hits every creature of the given species for amount. A
// non-positive amount means the active creature does not infight and nothing
// happens.
func (r Roster) ApplyInfight(amount int, species Species) (Roster, []Effect) {
	if amount <= 0 {
		return r, nil
	}

	next := Roster{id: r.id, creatures: make([]Creature, 0, len(r.creatures))}
	var effects []Effect

	for _, c := range r.creatures {
		if c.Species != species {
			next.creatures = append(next.creatures, c)
			continue
		}
		hit := c.ApplyDamage(amount)
		effects = append(effects, Effect{Kind: EffectHit, Creature: hit, Amount: c.EffectiveDamage(amount)})
		if hit.IsDead() {
			effects = append(effects, Effect{Kind: EffectDeath, Creature: hit})
			continue
		}
		next.creatures = append(next.creatures, hit)
	}

	return next, effects
}

// ApplyHeal heals the i-th live creature by vector[i]. Nobody is removed.
func (r Roster) ApplyHeal(vector []int) (Roster, []Effect) {
	next := Roster{id: r.id, creatures: make([]Creature, len(r.creatures))}
	var effects []Effect

	for i, c := range r.creatures {
		amount := vectorAt(vector, i)
		next.creatures[i] = c.ApplyHeal(amount)
		if amount > 0 {
			effects = append(effects, Effect{Kind: EffectHeal, Creature: next.creatures[i], Amount: amount})
		}
	}

	return next, effects
}

func vectorAt(vector []int, i int) int {
	if i < len(vector) {
		return vector[i]
	}
	return 0
}

var _ core.Entity = Roster{}
