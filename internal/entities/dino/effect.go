package dino

// EffectKind names what happened to a creature during a roster transformation
type EffectKind string

// Effect kinds
const (
	EffectHit   EffectKind = "hit"
	EffectHeal  EffectKind = "heal"
	EffectDeath EffectKind = "death"
)

// Effect records one observable change. Creature is the state after the change;
// Amount is the effective damage or heal applied.
type Effect struct {
	Kind     EffectKind `json:"kind"`
	Creature Creature   `json:"creature"`
	Amount   int        `json:"amount"`
}

// GetID returns the affected creature's ID
func (e Effect) GetID() string {
	return e.Creature.ID
}

// GetType returns the entity type for rpg-toolkit
func (e Effect) GetType() string {
	return "effect"
}
