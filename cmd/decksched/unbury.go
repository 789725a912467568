package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnburyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unbury",
		Short: "Restore all buried cards to their queues",
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

			if err := col.UnburyAll(cmd.Context()); err != nil {
				return fmt.Errorf("unbury cards > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All buried cards restored.")
			return nil
		},
	}
}
