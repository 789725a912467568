package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hnakamura/decksched/internal/cli"
	"github.com/hnakamura/decksched/internal/scheduler"
)

func newDecksCommand() *cobra.Command {
	var showStats bool
	command := &cobra.Command{
		Use:   "decks",
		Short: "Show the deck tree with today's due counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			col, err := openCollection(cfg)
			if err != nil {
				return err
			}
			defer col.Close()

			sched := newScheduler(cfg, col)
			tree, err := sched.DueTree(cmd.Context())
			if err != nil {
				return fmt.Errorf("build due tree > %w", err)
			}
			if err := cli.RenderDeckTree(cmd.OutOrStdout(), tree); err != nil {
				return err
			}

			if showStats {
				t := scheduler.TimingFor(time.Now(), cfg.Scheduler.RolloverHour)
				reviewed, err := col.ReviewsToday(cmd.Context(), t.Today)
				if err != nil {
					return fmt.Errorf("count today's reviews > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nStudied %d cards today.\n", reviewed)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&showStats, "stats", false, "Show today's review count")
	return command
}
