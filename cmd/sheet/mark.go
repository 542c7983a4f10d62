package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/stats"
	"github.com/cory-johannsen/heartsheet/internal/game/vital"
	"github.com/cory-johannsen/heartsheet/internal/optimistic"
)

var vitalKinds = map[string]vital.Kind{
	"hp":     vital.HitPoints,
	"armor":  vital.ArmorSlots,
	"stress": vital.Stress,
	"hope":   vital.Hope,
}

// slot returns a pointer to the current value of kind in v, and its capacity.
func slot(v *character.Vitals, kind vital.Kind) (current *int, limit int) {
	switch kind {
	case vital.HitPoints:
		return &v.HitPointsCurrent, v.HitPointsMax
	case vital.ArmorSlots:
		return &v.ArmorSlots, v.ArmorScore
	case vital.Stress:
		return &v.StressCurrent, v.StressMax
	default:
		return &v.HopeCurrent, v.HopeMax
	}
}

func newMarkCmd(a *app) *cobra.Command {
	var clearMarks bool
	cmd := &cobra.Command{
		Use:   "mark <character.yaml> <hp|armor|stress|hope> [amount]",
		Short: "Mark or clear a vital and save the character",
		Long: `mark applies marks to a vital using the vital's direction: hit points, armor slots and
hope decrease, stress increases. --clear applies the inverse. The change is kept only if the
character file is written successfully.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			kind, ok := vitalKinds[strings.ToLower(args[1])]
			if !ok {
				return fmt.Errorf("unknown vital %q: want hp, armor, stress or hope", args[1])
			}
			amount := 1
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil || n < 0 {
					return fmt.Errorf("amount must be a non-negative integer, got %q", args[2])
				}
				amount = n
			}

			c, resolved, err := a.loadCharacter(path)
			if err != nil {
				return err
			}
			derived := stats.DeriveForCharacter(resolved)
			c.Vitals = derived.Vitals
			c.Thresholds = derived.Thresholds

			cell := optimistic.NewCell(c, a.logger)
			apply := func(cur character.Character) character.Character {
				current, limit := slot(&cur.Vitals, kind)
				if clearMarks {
					*current = vital.Clear(kind, *current, limit, amount)
				} else {
					*current = vital.Mark(kind, *current, limit, amount)
				}
				return cur
			}
			commit := func(_ context.Context, next character.Character) error {
				return character.SaveFile(path, next)
			}
			if err := cell.Update(cmd.Context(), apply, commit); err != nil {
				return err
			}

			saved := cell.Get()
			current, limit := slot(&saved.Vitals, kind)
			a.logger.Info("vital updated",
				zap.String("character", saved.Name),
				zap.Stringer("vital", kind),
				zap.Int("current", *current),
				zap.Int("max", limit),
			)
			view := newDeriveView(resolved, stats.Result{Vitals: saved.Vitals, Thresholds: saved.Thresholds})
			return a.render(view, view.table())
		},
	}
	cmd.Flags().BoolVar(&clearMarks, "clear", false, "clear marks instead of applying them")
	return cmd
}
