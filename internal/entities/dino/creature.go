package dino

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Creature is one fighter. Health is signed and may go negative; only IsDead
// interprets it.
type Creature struct {
	ID      string  `json:"id"`
	Species Species `json:"species"`
	Health  int     `json:"health"`
	Attack  int     `json:"attack"`
	Defense int     `json:"defense"`
	Heal    int     `json:"heal"`
	Splash  int     `json:"splash"`
	Infight int     `json:"infight"`
}

// NewCreature creates a full-health creature of the given species
func NewCreature(id string, species Species) (Creature, error) {
	stats, err := species.Stats()
	if err != nil {
		return Creature{}, err
	}

	return Creature{
		ID:      id,
		Species: species,
		Health:  stats.Health,
		Attack:  stats.Attack,
		Defense: stats.Defense,
		Heal:    stats.Heal,
		Splash:  stats.Splash,
		Infight: stats.Infight,
	}, nil
}

// GetID returns the creature's ID
func (c Creature) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c Creature) GetType() string {
	return "creature"
}

// EffectiveDamage is the damage actually taken from an incoming amount.
// Defense reduces it but a hit always deals at least 1.
func (c Creature) EffectiveDamage(amount int) int {
	return max(1, amount-c.Defense)
}

// ApplyDamage returns the creature after taking amount damage
func (c Creature) ApplyDamage(amount int) Creature {
	c.Health -= c.EffectiveDamage(amount)
	return c
}

// ApplyHeal returns the creature after healing amount. Health has no ceiling.
func (c Creature) ApplyHeal(amount int) Creature {
	c.Health += amount
	return c
}

// IsDead reports whether health has dropped to zero or below
func (c Creature) IsDead() bool {
	return c.Health <= 0
}

// DamageVector is what this creature deals to an opposing roster: splash on
// every slot, plus attack on slot 0.
func (c Creature) DamageVector(capacity int) []int {
	if capacity <= 0 {
		return nil
	}
	vector := make([]int, capacity)
	for i := range vector {
		vector[i] = c.Splash
	}
	vector[0] += c.Attack
	return vector
}

// HealVector is what this creature heals its own roster for. Slot 0 is the
// healer itself and is always 0.
func (c Creature) HealVector(capacity int) []int {
	if capacity <= 0 {
		return nil
	}
	vector := make([]int, capacity)
	for i := 1; i < capacity; i++ {
		vector[i] = c.Heal
	}
	return vector
}

var _ core.Entity = Creature{}
