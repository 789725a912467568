package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type importFile struct {
	Deck  string       `yaml:"deck"`
	Cards []importCard `yaml:"cards"`
}

type importCard struct {
	Front   string `yaml:"front"`
	Back    string `yaml:"back"`
	Reverse bool   `yaml:"reverse"`
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import cards from a YAML file",
		Long: `Import cards from a YAML file of the form:

  deck: Spanish::Verbs
  cards:
    - front: hablar
      back: to speak
      reverse: true

Missing decks are created on the fly. A reverse card produces a second
back-to-front sibling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s > %w", args[0], err)
			}
			var file importFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse %s > %w", args[0], err)
			}
			if file.Deck == "" {
				return fmt.Errorf("%s: deck name is required", args[0])
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

			d, err := col.EnsureDeckPath(cmd.Context(), file.Deck,
				cfg.Decks.DefaultNewPerDay, cfg.Decks.DefaultRevPerDay)
			if err != nil {
				return fmt.Errorf("create deck %q > %w", file.Deck, err)
			}

			now := time.Now().Unix()
			for i, c := range file.Cards {
				if c.Front == "" || c.Back == "" {
					return fmt.Errorf("%s: card %d needs both front and back", args[0], i+1)
				}
				if _, err := col.AddNote(cmd.Context(), d.ID, c.Front, c.Back, c.Reverse, now); err != nil {
					return fmt.Errorf("import card %q > %w", c.Front, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d notes into %s.\n", len(file.Cards), d.Name)
			return nil
		},
	}
}
