package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnakamura/decksched/internal/deck"
)

func newLimitsCommand() *cobra.Command {
	var newPerDay, revPerDay int
	command := &cobra.Command{
		Use:   "limits <deck>",
		Short: "Change a deck's daily new and review limits",
		Long:  "Change a deck's daily limits. Pass -1 for an unlimited limit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if newPerDay < deck.Unlimited || revPerDay < deck.Unlimited {
				return fmt.Errorf("limits must be -1 (unlimited) or non-negative")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			col, err := openCollection(cfg)
			if err != nil {
				return err
			}
			defer col.Close()

			d, err := col.DeckByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("look up deck %q > %w", args[0], err)
			}
			if err := col.UpdateDeckLimits(cmd.Context(), d.ID, newPerDay, revPerDay); err != nil {
				return fmt.Errorf("update limits of deck %q > %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d new/day, %d reviews/day.\n",
				d.Name, newPerDay, revPerDay)
			return nil
		},
	}
	command.Flags().IntVar(&newPerDay, "new", 20, "New cards per day")
	command.Flags().IntVar(&revPerDay, "rev", 200, "Reviews per day")
	return command
}
