package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dino-battle/internal/config"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/dino-battle/internal/render"
)

type sideFlags struct {
	file     string
	rosterID string
	species  string
}

var (
	leftSide   sideFlags
	rightSide  sideFlags
	seed       int64
	maxRounds  int
	verbose    bool
	jsonOutput bool
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Run one battle",
	Long: `Run one battle between a left and a right team. Each team comes from a YAML
file, a saved roster, a comma separated species list, or is drawn at random.`,
	RunE: runBattle,
}

func init() {
	f := battleCmd.Flags()
	f.StringVar(&leftSide.file, "left-file", "", "YAML lineup file for the left team")
	f.StringVar(&rightSide.file, "right-file", "", "YAML lineup file for the right team")
	f.StringVar(&leftSide.rosterID, "left-roster", "", "saved roster ID for the left team")
	f.StringVar(&rightSide.rosterID, "right-roster", "", "saved roster ID for the right team")
	f.StringVar(&leftSide.species, "left", "", "comma separated species for the left team")
	f.StringVar(&rightSide.species, "right", "", "comma separated species for the right team")
	f.Int64Var(&seed, "seed", 0, "seed for random teams (overrides DINOBATTLE_SEED)")
	f.IntVar(&maxRounds, "max-rounds", 0, "round cap, 0 for none (overrides DINOBATTLE_MAX_ROUNDS)")
	f.BoolVarP(&verbose, "verbose", "v", false, "narrate every round")
	f.BoolVar(&jsonOutput, "json", false, "print the result as JSON")
}

func runBattle(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	bus := events.NewBus()
	if verbose && !jsonOutput {
		narrator := render.NewNarrator(out)
		narrator.Attach(bus)
		defer func() { _ = narrator.Detach() }()
	}

	svc, closeDeps, err := newService(bus)
	if err != nil {
		return err
	}
	defer closeDeps()

	left, err := leftSide.toInput("left")
	if err != nil {
		return err
	}
	right, err := rightSide.toInput("right")
	if err != nil {
		return err
	}

	input := &battle.RunBattleInput{Left: left, Right: right}
	if cmd.Flags().Changed("max-rounds") {
		input.MaxRounds = &maxRounds
	}
	if cmd.Flags().Changed("seed") {
		input.Seed = &seed
	}

	result, err := svc.RunBattle(ctx, input)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return printResult(out, result)
}

func (s sideFlags) toInput(side string) (battle.SideInput, error) {
	set := 0
	for _, v := range []string{s.file, s.rosterID, s.species} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return battle.SideInput{}, errors.InvalidArgumentf("%s team: use only one of --%s-file, --%s-roster or --%s", side, side, side, side)
	}

	switch {
	case s.file != "":
		rf, err := config.LoadRosterFile(s.file)
		if err != nil {
			return battle.SideInput{}, err
		}
		return battle.SideInput{Name: rf.Name, Species: rf.Species}, nil
	case s.rosterID != "":
		return battle.SideInput{RosterID: s.rosterID}, nil
	case s.species != "":
		species, err := dino.ParseSpeciesList(strings.Split(s.species, ","))
		if err != nil {
			return battle.SideInput{}, errors.Wrapf(err, "%s team", side)
		}
		return battle.SideInput{Species: species}, nil
	default:
		return battle.SideInput{}, nil
	}
}

func printResult(w io.Writer, result *battle.RunBattleOutput) error {
	_, err := fmt.Fprintf(w, "%s\n%s\nLeft survivors: %s\nRight survivors: %s\n",
		teamLine("Left", result.Left),
		teamLine("Right", result.Right),
		render.FormatCreatures(result.Left.Survivors),
		render.FormatCreatures(result.Right.Survivors),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, render.FormatResult(result.Outcome, result.Rounds))
	return err
}

func teamLine(label string, side battle.SideResult) string {
	if side.Name != "" {
		label = fmt.Sprintf("%s team (%s)", label, side.Name)
	} else {
		label += " team"
	}
	return fmt.Sprintf("%s: %s", label, render.FormatCreatures(side.Initial))
}
