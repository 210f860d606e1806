package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dino-battle/internal/config"
	"github.com/KirkDiggler/dino-battle/internal/entities/dino"
	"github.com/KirkDiggler/dino-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/dino-battle/internal/repositories/roster"
)

var (
	rosterName    string
	rosterSpecies string
	rosterFile    string
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage saved rosters",
	Long: `Manage saved lineups. Rosters are stored in redis when DINOBATTLE_REDIS_ADDR
is set; otherwise they only live for the current process.`,
}

var rosterCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Save a lineup (random when no species are given)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.RedisAddr == "" {
			slog.Warn("DINOBATTLE_REDIS_ADDR not set, the roster is discarded when this command exits")
		}

		input := &battle.CreateRosterInput{Name: rosterName}

		if rosterFile != "" {
			rf, err := config.LoadRosterFile(rosterFile)
			if err != nil {
				return err
			}
			if input.Name == "" {
				input.Name = rf.Name
			}
			input.Species = rf.Species
		} else if rosterSpecies != "" {
			species, err := dino.ParseSpeciesList(strings.Split(rosterSpecies, ","))
			if err != nil {
				return err
			}
			input.Species = species
		}

		return withService(func(svc battle.Service) error {
			out, err := svc.CreateRoster(cmd.Context(), input)
			if err != nil {
				return err
			}
			return printLineup(cmd.OutOrStdout(), out.Lineup)
		})
	},
}

var rosterGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a saved lineup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc battle.Service) error {
			out, err := svc.GetRoster(cmd.Context(), &battle.GetRosterInput{ID: args[0]})
			if err != nil {
				return err
			}
			return printLineup(cmd.OutOrStdout(), out.Lineup)
		})
	},
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved lineups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(func(svc battle.Service) error {
			out, err := svc.ListRosters(cmd.Context(), &battle.ListRostersInput{})
			if err != nil {
				return err
			}
			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			for _, l := range out.Lineups {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", l.ID, l.Name, speciesNames(l.Species)); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var rosterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved lineup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc battle.Service) error {
			_, err := svc.DeleteRoster(cmd.Context(), &battle.DeleteRosterInput{ID: args[0]})
			return err
		})
	},
}

func init() {
	rosterCreateCmd.Flags().StringVar(&rosterName, "name", "", "roster name")
	rosterCreateCmd.Flags().StringVar(&rosterSpecies, "species", "", "comma separated species")
	rosterCreateCmd.Flags().StringVar(&rosterFile, "file", "", "YAML lineup file")
	rosterCreateCmd.MarkFlagsMutuallyExclusive("species", "file")

	rosterListCmd.Flags().BoolVar(&jsonOutput, "json", false, "print as JSON")

	rosterCmd.AddCommand(rosterCreateCmd, rosterGetCmd, rosterListCmd, rosterDeleteCmd)
}

func withService(fn func(battle.Service) error) error {
	svc, closeDeps, err := newService(nil)
	if err != nil {
		return err
	}
	defer closeDeps()
	return fn(svc)
}

func printLineup(w io.Writer, l *roster.Lineup) error {
	_, err := fmt.Fprintf(w, "ID: %s\nName: %s\nSpecies: %s\nCreated: %s\n",
		l.ID, l.Name, speciesNames(l.Species), l.CreatedAt.Format("2006-01-02 15:04:05"))
	return err
}

func speciesNames(species []dino.Species) string {
	names := make([]string, len(species))
	for i, s := range species {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
