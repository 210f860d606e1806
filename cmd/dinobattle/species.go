package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dino-battle/internal/orchestrators/battle"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "Print the species catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withService(func(svc battle.Service) error {
			out, err := svc.ListSpecies(cmd.Context(), &battle.ListSpeciesInput{})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SPECIES\tHEALTH\tATTACK\tDEFENSE\tHEAL\tSPLASH\tINFIGHT")
			for _, info := range out.Species {
				st := info.Stats
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					info.Species, st.Health, st.Attack, st.Defense, st.Heal, st.Splash, st.Infight)
			}
			return tw.Flush()
		})
	},
}
