package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
)

// Event types published on the event bus while a battle runs
const (
	EventBattleStarted  = "dinobattle.battle.started"
	EventRoundStarted   = "dinobattle.round.started"
	EventCreatureHit    = "dinobattle.creature.hit"
	EventCreatureHealed = "dinobattle.creature.healed"
	EventCreatureDied   = "dinobattle.creature.died"
	EventBattleEnded    = "dinobattle.battle.ended"
)

// Snapshot is the target of battle and round events
type Snapshot struct {
	BattleID string
	Round    int
	Left     dino.Roster
	Right    dino.Roster
	Outcome  Outcome
}

// GetID returns the battle ID
func (s *Snapshot) GetID() string {
	return s.BattleID
}

// GetType returns the entity type for rpg-toolkit
func (s *Snapshot) GetType() string {
	return "battle"
}

var _ core.Entity = (*Snapshot)(nil)

func effectEventType(kind dino.EffectKind) string {
	switch kind {
	case dino.EffectHeal:
		return EventCreatureHealed
	case dino.EffectDeath:
		return EventCreatureDied
	default:
		return EventCreatureHit
	}
}

func (b *Battle) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if b.bus == nil {
		return
	}
	if err := b.bus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish battle event",
			"battle_id", b.id,
			"event_type", eventType,
			"error", err,
		)
	}
}

func (b *Battle) publishSnapshot(ctx context.Context, eventType string, outcome Outcome) {
	snapshot := &Snapshot{
		BattleID: b.id,
		Round:    b.round,
		Left:     b.left,
		Right:    b.right,
		Outcome:  outcome,
	}
	b.publish(ctx, eventType, snapshot, snapshot)
}

func (b *Battle) publishEffects(ctx context.Context, effects []SideEffect) {
	for _, e := range effects {
		b.publish(ctx, effectEventType(e.Effect.Kind), e.Source, e.Effect)
	}
}
