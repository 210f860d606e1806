package combat

import "github.com/KirkDiggler/dino-battle/internal/entities/dino"

// RoundResult is the pair of rosters after one round plus what happened to each side
type RoundResult struct {
	Left         dino.Roster
	Right        dino.Roster
	LeftEffects  []SideEffect
	RightEffects []SideEffect
}

// SideEffect ties an effect to the creature that caused it
type SideEffect struct {
	Source dino.Creature
	Effect dino.Effect
}

// ResolveRound runs one simultaneous round. Both sides are derived from the
// same pre-round snapshot of the two active creatures. If either side has no
// active creature the rosters are returned untouched.
func ResolveRound(left, right dino.Roster) RoundResult {
	leftActive, leftOK := left.FirstLive()
	rightActive, rightOK := right.FirstLive()
	if !leftOK || !rightOK {
		return RoundResult{Left: left, Right: right}
	}

	nextLeft, leftEffects := resolveSide(left, leftActive, rightActive)
	nextRight, rightEffects := resolveSide(right, rightActive, leftActive)

	return RoundResult{
		Left:         nextLeft,
		Right:        nextRight,
		LeftEffects:  leftEffects,
		RightEffects: rightEffects,
	}
}

// resolveSide applies heal, then enemy damage, then infight to one roster
func resolveSide(team dino.Roster, own, enemy dino.Creature) (dino.Roster, []SideEffect) {
	var out []SideEffect
	collect := func(source dino.Creature, effects []dino.Effect) {
		for _, e := range effects {
			out = append(out, SideEffect{Source: source, Effect: e})
		}
	}

	team, healed := team.ApplyHeal(own.HealVector(dino.Capacity))
	collect(own, healed)

	team, hit := team.ApplyDamage(enemy.DamageVector(dino.Capacity))
	collect(enemy, hit)

	team, infight := team.ApplyInfight(own.Infight, own.Species)
	collect(own, infight)

	return team, out
}
