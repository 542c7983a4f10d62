package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/heartsheet/internal/game/dice"
)

type diceView struct {
	Input     string      `json:"input" yaml:"input"`
	Canonical string      `json:"canonical" yaml:"canonical"`
	Dice      []string    `json:"dice" yaml:"dice"`
	Terms     []dice.Term `json:"terms" yaml:"terms"`
	Modifier  int         `json:"modifier" yaml:"modifier"`
}

func (v diceView) table() tableFunc {
	return func() *table.Table {
		t := newTable("Term", "Count", "Sides")
		for i, term := range v.Terms {
			t.Row(v.Dice[i], strconv.Itoa(term.Count), strconv.Itoa(term.Sides))
		}
		t.Row("modifier", "", signed(v.Modifier))
		return t
	}
}

func newDiceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dice <notation>",
		Short: "Parse weapon damage notation such as \"2d8+3 phy\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			n := dice.ParseNotation(input)
			view := diceView{
				Input:     input,
				Canonical: n.String(),
				Dice:      n.Dice,
				Terms:     n.Terms(),
				Modifier:  n.Modifier,
			}
			return a.render(view, view.table())
		},
	}
}
