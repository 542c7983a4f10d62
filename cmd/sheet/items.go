package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
)

type itemView struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Score      int    `json:"base_score" yaml:"base_score"`
	Thresholds string `json:"base_thresholds,omitempty" yaml:"base_thresholds,omitempty"`
	Modifiers  int    `json:"modifiers" yaml:"modifiers"`
	Feature    string `json:"feature,omitempty" yaml:"feature,omitempty"`
}

type itemsView []itemView

func newItemsView(defs []*character.ItemDef) itemsView {
	view := make(itemsView, 0, len(defs))
	for _, d := range defs {
		view = append(view, itemView{
			ID:         d.ID,
			Name:       d.Name,
			Score:      d.Score(),
			Thresholds: d.BaseThresholds,
			Modifiers:  len(d.Modifiers),
			Feature:    d.FeatureText(),
		})
	}
	return view
}

func (v itemsView) table() tableFunc {
	return func() *table.Table {
		t := newTable("ID", "Name", "Score", "Thresholds", "Modifiers", "Feature")
		for _, it := range v {
			t.Row(it.ID, it.Name, strconv.Itoa(it.Score), it.Thresholds, strconv.Itoa(it.Modifiers), it.Feature)
		}
		return t
	}
}

func newItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the item catalog selected by --items",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			view := newItemsView(a.items.AllItems())
			return a.render(view, view.table())
		},
	}
}
