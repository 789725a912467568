package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnakamura/decksched/internal/database"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database schema and the default deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			if err := database.ApplyMigrations(cmd.Context(), db); err != nil {
				return fmt.Errorf("apply migrations > %w", err)
			}

			col, err := openCollection(cfg)
			if err != nil {
				return err
			}
			defer col.Close()
			if _, err := col.EnsureDeckPath(cmd.Context(), "Default",
				cfg.Decks.DefaultNewPerDay, cfg.Decks.DefaultRevPerDay); err != nil {
				return fmt.Errorf("create default deck > %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Database initialized.")
			return nil
		},
	}
}
