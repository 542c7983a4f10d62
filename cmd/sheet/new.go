package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/stats"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		name      string
		className string
		level     int
		hp        int
		evasion   int
	)
	cmd := &cobra.Command{
		Use:   "new <character.yaml>",
		Short: "Create a fresh character sheet",
		Long: `new writes a character at full hit points with no stress, the starting hope, and the
unarmored thresholds for its level. The class must exist in the active rules. The file must not
already exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if len(a.rules.ClassDomains(className)) == 0 {
				return fmt.Errorf("unknown class %q (class names are case-sensitive)", className)
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			class := character.ClassData{Name: className, StartingEvasion: evasion}
			if cmd.Flags().Changed("hp") {
				class.StartingHP = &hp
			}
			c, err := character.Build(name, class, level)
			if err != nil {
				return err
			}
			if err := character.SaveFile(path, c); err != nil {
				return err
			}
			a.logger.Info("character created",
				zap.String("character", c.Name),
				zap.String("class", className),
				zap.Int("level", c.Level),
			)
			view := newDeriveView(c, stats.DeriveForCharacter(c))
			return a.render(view, view.table())
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "character name")
	cmd.Flags().StringVar(&className, "class", "", "class name from the active rules")
	cmd.Flags().IntVar(&level, "level", character.MinLevel, "starting level")
	cmd.Flags().IntVar(&hp, "hp", 0, "class starting hit points (default: the class default)")
	cmd.Flags().IntVar(&evasion, "evasion", 0, "class starting evasion")
	_ = cmd.MarkFlagRequired("name")  // nolint:errcheck // flag is defined above
	_ = cmd.MarkFlagRequired("class") // nolint:errcheck // flag is defined above
	return cmd
}
