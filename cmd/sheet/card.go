package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/heartsheet/internal/game/card"
)

type cardView struct {
	card.Summary `yaml:",inline"`
	Available    *bool `json:"available,omitempty" yaml:"available,omitempty"`
	DomainMatch  *bool `json:"domain_match,omitempty" yaml:"domain_match,omitempty"`
}

type cardsView []cardView

func (v cardsView) table() tableFunc {
	return func() *table.Table {
		t := newTable("ID", "Name", "Level", "Domain", "Type", "Recall", "Available", "Domain Match")
		for _, c := range v {
			t.Row(c.ID, c.Name, strconv.Itoa(c.Level), c.Domain, c.Type, strconv.Itoa(c.RecallCost),
				optBool(c.Available), optBool(c.DomainMatch))
		}
		return t
	}
}

func optBool(b *bool) string {
	if b == nil {
		return "-"
	}
	return strconv.FormatBool(*b)
}

func newCardCmd(a *app) *cobra.Command {
	var level int
	var domain string
	cmd := &cobra.Command{
		Use:   "card <cards.json>",
		Short: "Normalize domain card records and check availability",
		Long: `card reads a JSON card object or an array of them. Fields may be stored at the top level
or nested under "data"; missing fields take their defaults. --level reports whether each card
can be taken at that character level and --domain whether it belongs to that domain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			cards, err := card.ParseList(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			view := make(cardsView, 0, len(cards))
			for _, c := range cards {
				cv := cardView{Summary: c.Summarize()}
				if cmd.Flags().Changed("level") {
					ok := c.AvailableAtLevel(level)
					cv.Available = &ok
				}
				if cmd.Flags().Changed("domain") {
					ok := c.DomainMatches(domain)
					cv.DomainMatch = &ok
				}
				view = append(view, cv)
			}
			return a.render(view, view.table())
		},
	}
	cmd.Flags().IntVar(&level, "level", 0, "character level to check availability against")
	cmd.Flags().StringVar(&domain, "domain", "", "domain to match cards against")
	return cmd
}
