package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dino-battle/internal/engine/combat"
	"github.com/KirkDiggler/dino-battle/internal/engine/lineup"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/dino-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dino-battle/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/dino-battle/internal/repositories/roster/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *rostermock.MockRepository
	orchestrator battle.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rostermock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orch, err := battle.NewOrchestrator(&battle.Config{
		RosterRepo:  s.mockRepo,
		Roller:      lineup.NewSeededRoller(7),
		IDGenerator: idgen.NewSequential("battle"),
		MaxRounds:   combat.DefaultMaxRounds,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name  string
		cfg   *battle.Config
		field string
	}{
		{name: "nil config", cfg: nil},
		{name: "missing repo", cfg: &battle.Config{Roller: lineup.NewSeededRoller(1), IDGenerator: idgen.NewSequential("")}, field: "RosterRepo"},
		{name: "missing roller", cfg: &battle.Config{RosterRepo: s.mockRepo, IDGenerator: idgen.NewSequential("")}, field: "Roller"},
		{name: "missing id generator", cfg: &battle.Config{RosterRepo: s.mockRepo, Roller: lineup.NewSeededRoller(1)}, field: "IDGenerator"},
		{name: "negative max rounds", cfg: &battle.Config{RosterRepo: s.mockRepo, Roller: lineup.NewSeededRoller(1), IDGenerator: idgen.NewSequential(""), MaxRounds: -1}, field: "MaxRounds"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := battle.NewOrchestrator(tc.cfg)
			s.Nil(svc)
			s.True(errors.IsInvalidArgument(err))
			if tc.field != "" {
				s.Contains(err.Error(), tc.field)
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestListSpecies() {
	out, err := s.orchestrator.ListSpecies(s.ctx, &battle.ListSpeciesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Species, len(dino.AllSpecies()))

	s.Equal(dino.Tyrannosaurus, out.Species[0].Species)
	s.Equal(dino.Stats{Health: 4, Attack: 5, Defense: 1, Infight: 2}, out.Species[0].Stats)
}

func (s *OrchestratorTestSuite) TestCreateRoster() {
	s.Run("explicit species", func() {
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input roster.CreateInput) (*roster.CreateOutput, error) {
				s.Equal("Raptors", input.Lineup.Name)
				s.Equal([]dino.Species{dino.Velociraptor, dino.Velociraptor}, input.Lineup.Species)
				s.NotEmpty(input.Lineup.ID)
				return &roster.CreateOutput{Lineup: input.Lineup}, nil
			})

		out, err := s.orchestrator.CreateRoster(s.ctx, &battle.CreateRosterInput{
			Name:    "Raptors",
			Species: []dino.Species{dino.Velociraptor, dino.Velociraptor},
		})
		s.Require().NoError(err)
		s.Equal("Raptors", out.Lineup.Name)
	})

	s.Run("random fill", func() {
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input roster.CreateInput) (*roster.CreateOutput, error) {
				return &roster.CreateOutput{Lineup: input.Lineup}, nil
			})

		out, err := s.orchestrator.CreateRoster(s.ctx, &battle.CreateRosterInput{Name: "Random"})
		s.Require().NoError(err)
		s.Len(out.Lineup.Species, dino.Capacity)
	})

	s.Run("repository error keeps code", func() {
		s.mockRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExists("taken"))

		_, err := s.orchestrator.CreateRoster(s.ctx, &battle.CreateRosterInput{
			Name:    "Dup",
			Species: []dino.Species{dino.Pteranodon},
		})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *OrchestratorTestSuite) TestCreateRosterValidation() {
	testCases := []struct {
		name  string
		input *battle.CreateRosterInput
	}{
		{name: "nil input"},
		{name: "missing name", input: &battle.CreateRosterInput{Species: []dino.Species{dino.Pteranodon}}},
		{name: "too many species", input: &battle.CreateRosterInput{Name: "big", Species: make([]dino.Species, dino.Capacity+1)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateRoster(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGetListDeleteRoster() {
	saved := &roster.Lineup{ID: "r1", Name: "Saved", Species: []dino.Species{dino.Brachiosaurus}, CreatedAt: time.Unix(0, 0)}

	s.mockRepo.EXPECT().Get(s.ctx, roster.GetInput{ID: "r1"}).Return(&roster.GetOutput{Lineup: saved}, nil)
	got, err := s.orchestrator.GetRoster(s.ctx, &battle.GetRosterInput{ID: "r1"})
	s.Require().NoError(err)
	s.Equal(saved, got.Lineup)

	s.mockRepo.EXPECT().Get(s.ctx, roster.GetInput{ID: "missing"}).Return(nil, errors.NotFound("nope"))
	_, err = s.orchestrator.GetRoster(s.ctx, &battle.GetRosterInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetRoster(s.ctx, &battle.GetRosterInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockRepo.EXPECT().List(s.ctx, roster.ListInput{}).Return(&roster.ListOutput{Lineups: []*roster.Lineup{saved}}, nil)
	list, err := s.orchestrator.ListRosters(s.ctx, &battle.ListRostersInput{})
	s.Require().NoError(err)
	s.Len(list.Lineups, 1)

	s.mockRepo.EXPECT().Delete(s.ctx, roster.DeleteInput{ID: "r1"}).Return(&roster.DeleteOutput{}, nil)
	_, err = s.orchestrator.DeleteRoster(s.ctx, &battle.DeleteRosterInput{ID: "r1"})
	s.Require().NoError(err)

	_, err = s.orchestrator.DeleteRoster(s.ctx, &battle.DeleteRosterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRunBattleExplicitSpecies() {
	out, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{
		Left:  battle.SideInput{Species: []dino.Species{dino.Triceratops}},
		Right: battle.SideInput{Species: []dino.Species{dino.Velociraptor}},
	})
	s.Require().NoError(err)

	s.Equal("battle_1", out.BattleID)
	s.Equal(combat.OutcomeLeftWins, out.Outcome)
	s.Equal(1, out.Rounds)

	s.Require().Len(out.Left.Initial, 1)
	s.Equal("battle_1-left-1", out.Left.Initial[0].ID)
	s.Equal(4, out.Left.Initial[0].Health)
	s.Require().Len(out.Left.Survivors, 1)
	s.Equal(2, out.Left.Survivors[0].Health)
	s.Empty(out.Right.Survivors)
}

func (s *OrchestratorTestSuite) TestRunBattleSavedRoster() {
	s.mockRepo.EXPECT().
		Get(s.ctx, roster.GetInput{ID: "raptors"}).
		Return(&roster.GetOutput{Lineup: &roster.Lineup{
			ID:      "raptors",
			Name:    "Raptors",
			Species: []dino.Species{dino.Velociraptor},
		}}, nil)

	out, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{
		Left:  battle.SideInput{RosterID: "raptors"},
		Right: battle.SideInput{Species: []dino.Species{dino.Brachiosaurus}},
	})
	s.Require().NoError(err)

	s.Equal(combat.OutcomeStalemate, out.Outcome)
	s.Equal(2, out.Rounds)
	s.Equal("Raptors", out.Left.Name)
}

func (s *OrchestratorTestSuite) TestRunBattleErrors() {
	s.Run("nil input", func() {
		_, err := s.orchestrator.RunBattle(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("both roster and species", func() {
		_, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{
			Left: battle.SideInput{RosterID: "x", Species: []dino.Species{dino.Pteranodon}},
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing roster", func() {
		s.mockRepo.EXPECT().Get(s.ctx, roster.GetInput{ID: "gone"}).Return(nil, errors.NotFound("gone"))
		_, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{
			Right: battle.SideInput{RosterID: "gone"},
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("negative max rounds", func() {
		negative := -3
		_, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{MaxRounds: &negative})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRunBattleMaxRoundsOverride() {
	one := 1
	out, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{
		Left:      battle.SideInput{Species: []dino.Species{dino.Brachiosaurus}},
		Right:     battle.SideInput{Species: []dino.Species{dino.Brachiosaurus}},
		MaxRounds: &one,
	})
	s.Require().NoError(err)
	s.Equal(combat.OutcomeRoundLimitExceeded, out.Outcome)
	s.Equal(1, out.Rounds)
}

func (s *OrchestratorTestSuite) TestRunBattleSeedIsReproducible() {
	seed := int64(1234)

	first, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{Seed: &seed})
	s.Require().NoError(err)
	second, err := s.orchestrator.RunBattle(s.ctx, &battle.RunBattleInput{Seed: &seed})
	s.Require().NoError(err)

	s.NotEqual(first.BattleID, second.BattleID)
	s.Equal(first.Outcome, second.Outcome)
	s.Equal(first.Rounds, second.Rounds)
	s.Equal(speciesOf(first.Left.Initial), speciesOf(second.Left.Initial))
	s.Equal(speciesOf(first.Right.Initial), speciesOf(second.Right.Initial))
	s.Len(first.Left.Initial, dino.Capacity)
}

func speciesOf(creatures []dino.Creature) []dino.Species {
	out := make([]dino.Species, len(creatures))
	for i, c := range creatures {
		out[i] = c.Species
	}
	return out
}
