package render

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
)

var narratedEvents = []string{
	combat.EventRoundStarted,
	combat.EventCreatureHit,
	combat.EventCreatureHealed,
	combat.EventCreatureDied,
	combat.EventBattleEnded,
}

// Narrator writes a play-by-play of battle events
type Narrator struct {
	mu   sync.Mutex
	w    io.Writer
	bus  events.EventBus
	subs []string
}

// NewNarrator creates a narrator that writes to w
func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{w: w}
}

// Attach subscribes the narrator to battle events on the bus
func (n *Narrator) Attach(bus events.EventBus) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.bus = bus
	for _, eventType := range narratedEvents {
		n.subs = append(n.subs, bus.SubscribeFunc(eventType, 0, n.handle))
	}
}

// Detach removes the narrator's subscriptions
func (n *Narrator) Detach() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.bus == nil {
		return nil
	}
	for _, id := range n.subs {
		if err := n.bus.Unsubscribe(id); err != nil {
			return err
		}
	}
	n.subs = nil
	n.bus = nil
	return nil
}

func (n *Narrator) handle(_ context.Context, e events.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch e.Type() {
	case combat.EventRoundStarted:
		if snap, ok := e.Target().(*combat.Snapshot); ok {
			return n.printf("Left team: %s\nVS\nRight team: %s\n", FormatRoster(snap.Left), FormatRoster(snap.Right))
		}
	case combat.EventBattleEnded:
		if snap, ok := e.Target().(*combat.Snapshot); ok {
			return n.printf("%s\n", FormatOutcome(snap.Outcome))
		}
	default:
		if effect, ok := e.Target().(dino.Effect); ok {
			return n.printf("%s\n", FormatEffect(effect))
		}
	}
	return nil
}

func (n *Narrator) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(n.w, format, args...)
	return err
}

// FormatEffect renders one hit, heal or death
func FormatEffect(e dino.Effect) string {
	switch e.Kind {
	case dino.EffectHeal:
		return fmt.Sprintf("%s was healed for %d", e.Creature.Species, e.Amount)
	case dino.EffectDeath:
		return fmt.Sprintf("%s died!", e.Creature.Species)
	default:
		return fmt.Sprintf("%s was hit for %d damage", e.Creature.Species, e.Amount)
	}
}
