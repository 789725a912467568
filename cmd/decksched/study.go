package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnakamura/decksched/internal/cli"
	"github.com/hnakamura/decksched/internal/scheduler"
)

func newStudyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "study [deck]",
		Short: "Study due cards, optionally limited to one deck's subtree",
		Args:  cobra.MaximumNArgs(1),
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

			var opts []scheduler.Option
			if len(args) == 1 {
				d, err := col.DeckByName(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("look up deck %q > %w", args[0], err)
				}
				opts = append(opts, scheduler.WithScope(d.ID))
			}
			sched := newScheduler(cfg, col, opts...)

			session := cli.NewStudySession(&studyBackend{sched: sched, col: col})
			return session.Run(cmd.Context())
		},
	}
}
