package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/modifier"
	"github.com/cory-johannsen/heartsheet/internal/game/stats"
)

type vitalView struct {
	Current int `json:"current" yaml:"current"`
	Max     int `json:"max" yaml:"max"`
}

type thresholdsView struct {
	Minor  int `json:"minor" yaml:"minor"`
	Major  int `json:"major" yaml:"major"`
	Severe int `json:"severe" yaml:"severe"`
}

type modifierView struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target" yaml:"target"`
	Value  int    `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

type deriveView struct {
	Name       string         `json:"name" yaml:"name"`
	Level      int            `json:"level" yaml:"level"`
	HitPoints  vitalView      `json:"hit_points" yaml:"hit_points"`
	Stress     vitalView      `json:"stress" yaml:"stress"`
	Armor      vitalView      `json:"armor" yaml:"armor"`
	Hope       vitalView      `json:"hope" yaml:"hope"`
	Thresholds thresholdsView `json:"damage_thresholds" yaml:"damage_thresholds"`
	Modifiers  []modifierView `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

var derivedStats = []string{
	character.StatArmorScore,
	character.StatHitPoints,
	character.StatStress,
	character.StatDamageThresholds,
}

func newDeriveView(c character.Character, r stats.Result) deriveView {
	v := r.Vitals
	view := deriveView{
		Name:       c.Name,
		Level:      c.Level,
		HitPoints:  vitalView{Current: v.HitPointsCurrent, Max: v.HitPointsMax},
		Stress:     vitalView{Current: v.StressCurrent, Max: v.StressMax},
		Armor:      vitalView{Current: v.ArmorSlots, Max: v.ArmorScore},
		Hope:       vitalView{Current: v.HopeCurrent, Max: v.HopeMax},
		Thresholds: thresholdsView{Minor: r.Thresholds.Minor, Major: r.Thresholds.Major, Severe: r.Thresholds.Severe},
	}
	for _, stat := range derivedStats {
		for _, m := range modifier.Combine(modifier.ResolveSystem(c, stat), modifier.Manual(c, stat)) {
			view.Modifiers = append(view.Modifiers, modifierView{
				ID:     m.ID,
				Name:   m.Name,
				Target: stat,
				Value:  m.Value,
				Source: string(m.Source),
			})
		}
	}
	return view
}

func (d deriveView) table() tableFunc {
	return func() *table.Table {
		t := newTable("Stat", "Current", "Max")
		t.Row("Hit Points", strconv.Itoa(d.HitPoints.Current), strconv.Itoa(d.HitPoints.Max))
		t.Row("Stress", strconv.Itoa(d.Stress.Current), strconv.Itoa(d.Stress.Max))
		t.Row("Armor", strconv.Itoa(d.Armor.Current), strconv.Itoa(d.Armor.Max))
		t.Row("Hope", strconv.Itoa(d.Hope.Current), strconv.Itoa(d.Hope.Max))
		t.Row("Thresholds", "", strconv.Itoa(d.Thresholds.Minor)+" / "+strconv.Itoa(d.Thresholds.Major)+" / "+strconv.Itoa(d.Thresholds.Severe))
		for _, m := range d.Modifiers {
			t.Row("  "+m.Target, m.Name+" ("+m.Source+")", signed(m.Value))
		}
		return t
	}
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func newDeriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <character.yaml>",
		Short: "Derive vitals and damage thresholds for a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, c, err := a.loadCharacter(args[0])
			if err != nil {
				return err
			}
			result := stats.DeriveForCharacter(c)
			a.logger.Info("derived stats",
				zap.String("character", c.Name),
				zap.Int("level", c.Level),
				zap.Int("armor_score", result.Vitals.ArmorScore),
				zap.Int("hit_points_max", result.Vitals.HitPointsMax),
				zap.Int("stress_max", result.Vitals.StressMax),
			)
			view := newDeriveView(c, result)
			return a.render(view, view.table())
		},
	}
}
