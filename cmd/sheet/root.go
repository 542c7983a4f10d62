package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/heartsheet/internal/config"
	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/inventory"
	"github.com/cory-johannsen/heartsheet/internal/game/ruleset"
	"github.com/cory-johannsen/heartsheet/internal/observability"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("reported")

// app carries the state shared by every subcommand once the root pre-run has completed.
type app struct {
	out    io.Writer
	errOut io.Writer
	v      *viper.Viper

	configPath string
	cfg        config.Config
	logger     *zap.Logger
	rules      *ruleset.Rules
	items      *inventory.Registry
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, v: config.New()}

	root := &cobra.Command{
		Use:           "sheet",
		Short:         "Character sheet rules engine",
		Long:          `sheet derives combat statistics for a character and validates level-up choices against the tier and advancement rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync() // nolint:errcheck // stderr sync errors are not actionable
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to configuration file")
	flags.String("rules", "", "path to a homebrew rules YAML file (default: embedded core rules)")
	flags.String("items", "", "directory of item definitions referenced by item_id")
	flags.String("log-level", "", "minimum log level: debug, info, warn, error")
	flags.StringP("output", "o", "", "output format: table, json, yaml")
	_ = a.v.BindPFlag("rules.path", flags.Lookup("rules"))
	_ = a.v.BindPFlag("catalog.dir", flags.Lookup("items"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("output"))

	root.AddCommand(
		newNewCmd(a),
		newDeriveCmd(a),
		newMarkCmd(a),
		newLevelUpCmd(a),
		newDiceCmd(a),
		newDomainsCmd(a),
		newCardCmd(a),
		newItemsCmd(a),
	)
	return root
}

// setup loads configuration, builds the logger, and loads the rule set and item catalog.
//
// Postcondition: a.cfg, a.logger, a.rules and a.items are set, or a non-nil error is returned.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		a.v.SetConfigFile(a.configPath)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	cfg, err := config.LoadFromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := observability.NewLoggerTo(cfg.Logging, a.errOut)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	a.logger = logger.With(zap.String("command", cmd.CommandPath()))

	rules, err := ruleset.LoadLogged(cfg.Rules.Path, a.logger)
	if err != nil {
		return err
	}
	a.rules = rules

	a.items = inventory.NewRegistry()
	if cfg.Catalog.Dir != "" {
		items, err := inventory.LoadRegistry(cfg.Catalog.Dir)
		if err != nil {
			return err
		}
		a.items = items
		a.logger.Debug("loaded item catalog",
			zap.String("dir", cfg.Catalog.Dir),
			zap.Int("items", len(items.AllItems())),
		)
	}
	return nil
}

// loadCharacter reads the character at path and resolves its catalog references.
// The first return value is the character as stored; the second carries resolved item
// definitions and is the one to derive from.
func (a *app) loadCharacter(path string) (stored, resolved character.Character, err error) {
	stored, err = character.LoadFile(path)
	if err != nil {
		return stored, resolved, err
	}
	resolved, missing := a.items.Resolve(stored)
	if len(missing) > 0 {
		a.logger.Warn("inventory references unknown items",
			zap.String("character", stored.Name),
			zap.Strings("item_ids", missing),
		)
	}
	return stored, resolved, nil
}

// render prints v in the configured output format.
func (a *app) render(v any, tbl tableFunc) error {
	return render(a.out, a.cfg.Output.Format, v, tbl)
}
