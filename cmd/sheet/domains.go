package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

type classDomainsView struct {
	Class   string   `json:"class" yaml:"class"`
	Domains []string `json:"domains" yaml:"domains"`
}

type domainsView []classDomainsView

func (v domainsView) table() tableFunc {
	return func() *table.Table {
		t := newTable("Class", "Domains")
		for _, c := range v {
			t.Row(c.Class, strings.Join(c.Domains, ", "))
		}
		return t
	}
}

func newDomainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "domains [class]",
		Short: "List the domains of one class, or of every class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			names := a.rules.AllClassNames()
			if len(args) == 1 {
				if len(a.rules.ClassDomains(args[0])) == 0 {
					return fmt.Errorf("unknown class %q (class names are case-sensitive)", args[0])
				}
				names = args
			}
			view := make(domainsView, 0, len(names))
			for _, name := range names {
				view = append(view, classDomainsView{Class: name, Domains: a.rules.ClassDomains(name)})
			}
			return a.render(view, view.table())
		},
	}
}
