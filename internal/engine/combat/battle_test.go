package combat_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
)

type BattleTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *BattleTestSuite) roster(id string, species ...dino.Species) dino.Roster {
	creatures := make([]dino.Creature, 0, len(species))
	for i, sp := range species {
		c, err := dino.NewCreature(id+"-"+string(rune('a'+i)), sp)
		s.Require().NoError(err)
		creatures = append(creatures, c)
	}
	r, err := dino.NewRoster(id, creatures...)
	s.Require().NoError(err)
	return r
}

func (s *BattleTestSuite) run(left, right dino.Roster, maxRounds int) *combat.Result {
	b, err := combat.New(&combat.Config{ID: "test", Left: left, Right: right, MaxRounds: maxRounds})
	s.Require().NoError(err)

	result, err := b.Run(s.ctx)
	s.Require().NoError(err)
	return result
}

func (s *BattleTestSuite) TestDecide() {
	testCases := []struct {
		name      string
		leftDead  bool
		rightDead bool
		expected  combat.Outcome
	}{
		{name: "both alive", expected: combat.OutcomeRunning},
		{name: "both dead", leftDead: true, rightDead: true, expected: combat.OutcomeStalemate},
		{name: "left dead", leftDead: true, expected: combat.OutcomeRightWins},
		{name: "right dead", rightDead: true, expected: combat.OutcomeLeftWins},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			outcome := combat.Decide(tc.leftDead, tc.rightDead)
			s.Equal(tc.expected, outcome)
			s.Equal(tc.expected != combat.OutcomeRunning, outcome.Terminal())
		})
	}
}

func (s *BattleTestSuite) TestVelociraptorVsBrachiosaurusIsStalemate() {
	result := s.run(s.roster("left", dino.Velociraptor), s.roster("right", dino.Brachiosaurus), 0)

	s.Equal(combat.OutcomeStalemate, result.Outcome)
	s.Equal(2, result.Rounds)
	s.True(result.Left.IsDead())
	s.True(result.Right.IsDead())
}

func (s *BattleTestSuite) TestTriceratopsBeatsVelociraptor() {
	result := s.run(s.roster("left", dino.Triceratops), s.roster("right", dino.Velociraptor), 0)

	s.Equal(combat.OutcomeLeftWins, result.Outcome)
	s.Equal(1, result.Rounds)

	survivor, ok := result.Left.FirstLive()
	s.Require().True(ok)
	s.Equal(2, survivor.Health)
}

func (s *BattleTestSuite) TestInfightHitsEveryTyrannosaurus() {
	left := s.roster("left", dino.Tyrannosaurus, dino.Tyrannosaurus)
	right := s.roster("right", dino.Dilophosaurus)

	result := s.run(left, right, 0)

	s.Equal(combat.OutcomeLeftWins, result.Outcome)
	s.Equal(1, result.Rounds)

	// splash 1 floors to 1, then infight max(1, 2-1) = 1
	creatures := result.Left.Creatures()
	s.Require().Len(creatures, 2)
	s.Equal(2, creatures[0].Health)
	s.Equal(2, creatures[1].Health)
}

func (s *BattleTestSuite) TestEmptyRosters() {
	s.Run("both empty", func() {
		result := s.run(s.roster("left"), s.roster("right"), 0)
		s.Equal(combat.OutcomeStalemate, result.Outcome)
		s.Equal(0, result.Rounds)
	})

	s.Run("left empty", func() {
		result := s.run(s.roster("left"), s.roster("right", dino.Pteranodon), 0)
		s.Equal(combat.OutcomeRightWins, result.Outcome)
		s.Equal(0, result.Rounds)
		s.Equal(1, result.Right.Len())
	})

	s.Run("right empty", func() {
		result := s.run(s.roster("left", dino.Pteranodon), s.roster("right"), 0)
		s.Equal(combat.OutcomeLeftWins, result.Outcome)
		s.Equal(0, result.Rounds)
	})
}

func (s *BattleTestSuite) TestRoundLimit() {
	left := s.roster("left", dino.Brachiosaurus)
	right := s.roster("right", dino.Brachiosaurus)

	result := s.run(left, right, 1)

	s.Equal(combat.OutcomeRoundLimitExceeded, result.Outcome)
	s.Equal(1, result.Rounds)
	first, ok := result.Left.FirstLive()
	s.Require().True(ok)
	s.Equal(6, first.Health)
}

func (s *BattleTestSuite) TestStepIsSimultaneous() {
	b, err := combat.New(&combat.Config{
		Left:  s.roster("left", dino.Velociraptor),
		Right: s.roster("right", dino.Velociraptor),
	})
	s.Require().NoError(err)
	s.Equal(combat.OutcomeRunning, b.Outcome())

	b.Step(s.ctx)

	s.Equal(1, b.Round())
	s.True(b.Left().IsDead())
	s.True(b.Right().IsDead())
	s.Equal(combat.OutcomeStalemate, b.Outcome())
}

func (s *BattleTestSuite) TestRunStopsWhenCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	b, err := combat.New(&combat.Config{
		Left:  s.roster("left", dino.Brachiosaurus),
		Right: s.roster("right", dino.Brachiosaurus),
	})
	s.Require().NoError(err)

	result, err := b.Run(ctx)
	s.Nil(result)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.Equal(0, b.Round())
}

func (s *BattleTestSuite) TestNewValidation() {
	s.Run("nil config", func() {
		b, err := combat.New(nil)
		s.Nil(b)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("negative max rounds", func() {
		b, err := combat.New(&combat.Config{MaxRounds: -1})
		s.Nil(b)
		s.Require().Error(err)
		s.Contains(err.Error(), "MaxRounds")
	})
}

func (s *BattleTestSuite) TestPublishesEvents() {
	bus := events.NewBus()

	var (
		mu   sync.Mutex
		seen []string
	)
	record := func(_ context.Context, e events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e.Type())
		return nil
	}
	for _, eventType := range []string{
		combat.EventBattleStarted,
		combat.EventRoundStarted,
		combat.EventCreatureHit,
		combat.EventCreatureHealed,
		combat.EventCreatureDied,
		combat.EventBattleEnded,
	} {
		bus.SubscribeFunc(eventType, 0, record)
	}

	b, err := combat.New(&combat.Config{
		ID:       "evented",
		Left:     s.roster("left", dino.Triceratops),
		Right:    s.roster("right", dino.Velociraptor),
		EventBus: bus,
	})
	s.Require().NoError(err)

	result, err := b.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(combat.OutcomeLeftWins, result.Outcome)

	mu.Lock()
	defer mu.Unlock()
	s.Equal([]string{
		combat.EventBattleStarted,
		combat.EventRoundStarted,
		combat.EventCreatureHit,
		combat.EventCreatureHit,
		combat.EventCreatureDied,
		combat.EventBattleEnded,
	}, seen)
}
