package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/heartsheet/internal/game/character"
	"github.com/cory-johannsen/heartsheet/internal/game/levelup"
	"github.com/cory-johannsen/heartsheet/internal/game/ruleset"
)

type advancementView struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	MinTier  int    `json:"min_tier" yaml:"min_tier"`
	SlotCost int    `json:"slot_cost" yaml:"slot_cost"`
}

type levelUpConfigView struct {
	Level               int               `json:"level" yaml:"level"`
	Tier                int               `json:"tier" yaml:"tier"`
	NewExperienceValue  *int              `json:"new_experience_value,omitempty" yaml:"new_experience_value,omitempty"`
	ProficiencyIncrease int               `json:"proficiency_increase" yaml:"proficiency_increase"`
	ClearMarkedTraits   bool              `json:"clear_marked_traits" yaml:"clear_marked_traits"`
	MaxDomainCardLevel  int               `json:"max_domain_card_level" yaml:"max_domain_card_level"`
	SlotBudget          int               `json:"slot_budget" yaml:"slot_budget"`
	Advancements        []advancementView `json:"advancements" yaml:"advancements"`
}

func newLevelUpConfigView(cfg ruleset.LevelUpConfig, budget int) levelUpConfigView {
	view := levelUpConfigView{
		Level:               cfg.Level,
		Tier:                cfg.Tier,
		NewExperienceValue:  cfg.TierAchievements.NewExperienceValue,
		ProficiencyIncrease: cfg.TierAchievements.ProficiencyIncrease,
		ClearMarkedTraits:   cfg.TierAchievements.ShouldClearMarkedTraits,
		MaxDomainCardLevel:  cfg.MaxDomainCardLevel,
		SlotBudget:          budget,
		Advancements:        []advancementView{},
	}
	for _, adv := range cfg.AdvancementsAvailable {
		view.Advancements = append(view.Advancements, advancementView{
			ID:       adv.ID,
			Name:     adv.Name,
			MinTier:  adv.MinTier,
			SlotCost: adv.SlotCost,
		})
	}
	return view
}

func (v levelUpConfigView) table() tableFunc {
	return func() *table.Table {
		t := newTable("Advancement", "Name", "Slots", "From Tier")
		for _, adv := range v.Advancements {
			t.Row(adv.ID, adv.Name, strconv.Itoa(adv.SlotCost), strconv.Itoa(adv.MinTier))
		}
		exp := "none"
		if v.NewExperienceValue != nil {
			exp = signed(*v.NewExperienceValue)
		}
		t.Row("", "", "", "")
		t.Row("level", strconv.Itoa(v.Level), "tier", strconv.Itoa(v.Tier))
		t.Row("new experience", exp, "proficiency", signed(v.ProficiencyIncrease))
		t.Row("clear marked traits", strconv.FormatBool(v.ClearMarkedTraits), "max card level", strconv.Itoa(v.MaxDomainCardLevel))
		return t
	}
}

type validationView struct {
	Valid  bool                `json:"valid" yaml:"valid"`
	Errors []levelup.FieldError `json:"errors" yaml:"errors"`
}

func (v validationView) table() tableFunc {
	return func() *table.Table {
		t := newTable("Field", "Problem")
		if v.Valid {
			t.Row("-", "submission is valid")
		}
		for _, e := range v.Errors {
			t.Row(e.Field, e.Message)
		}
		return t
	}
}

func newLevelUpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levelup",
		Short: "Inspect level-up rules and validate level-up submissions",
	}
	cmd.AddCommand(newLevelUpConfigCmd(a), newLevelUpValidateCmd(a))
	return cmd
}

func newLevelUpConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config <level>",
		Short: "Show the tier, achievements and advancements for a target level",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("level must be an integer, got %q", args[0])
			}
			cfg, err := a.rules.LevelUpConfig(level)
			if err != nil {
				return err
			}
			view := newLevelUpConfigView(cfg, a.rules.SlotBudget)
			return a.render(view, view.table())
		},
	}
}

func newLevelUpValidateCmd(a *app) *cobra.Command {
	var selected bool
	cmd := &cobra.Command{
		Use:   "validate <character.yaml> <submission.yaml>",
		Short: "Validate a level-up submission for a character",
		Long: `validate checks the new level, the advancement slot total and the domain card level.
With --selected it also checks the trait, experience, vital slot and card exchange choices for
the advancements that were picked. Exits with status 1 when the submission is invalid.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := character.LoadFile(args[0])
			if err != nil {
				return err
			}
			sub, err := levelup.LoadSubmission(args[1])
			if err != nil {
				return err
			}
			sub = sub.WithCharacter(c)

			v := levelup.NewValidator(a.rules)
			errs := v.ValidateComplete(sub)
			if selected {
				errs = append(errs, v.ValidateSelected(sub, c)...)
			}

			view := validationView{Valid: errs.Valid(), Errors: []levelup.FieldError(errs)}
			if view.Errors == nil {
				view.Errors = []levelup.FieldError{}
			}
			if err := a.render(view, view.table()); err != nil {
				return err
			}
			if !errs.Valid() {
				a.logger.Info("level-up submission rejected",
					zap.String("character", c.Name),
					zap.Int("new_level", sub.NewLevel),
					zap.String("fields", strings.Join(fieldNames(errs), ",")),
				)
				return errReported
			}
			a.logger.Info("level-up submission accepted",
				zap.String("character", c.Name),
				zap.Int("new_level", sub.NewLevel),
				zap.Strings("advancements", sub.AdvancementIDs),
			)
			return nil
		},
	}
	cmd.Flags().BoolVar(&selected, "selected", false, "also validate the selections made for the picked advancements")
	return cmd
}

func fieldNames(errs levelup.Errors) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range errs {
		if !seen[e.Field] {
			seen[e.Field] = true
			out = append(out, e.Field)
		}
	}
	return out
}
