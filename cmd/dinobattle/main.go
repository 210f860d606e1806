// Package main is the entry point for the dinobattle CLI and HTTP server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dino-battle/internal/config"
)

var (
	cfg      *config.Config
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "dinobattle",
	Short: "Automatic dinosaur team battles",
	Long: `dinobattle pits two teams of up to eight dinosaurs against each other and
resolves the fight round by round until one or both teams are wiped out.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		})))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error (overrides DINOBATTLE_LOG_LEVEL)")

	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(serveCmd)
}
