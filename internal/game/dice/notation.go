// Package dice parses weapon damage notation such as "2d8+3 phy" into dice terms and a flat
// modifier. Rolling is not supported.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Longer keywords come first so "physical" is not reduced to "sical".
	damageTypePattern = regexp.MustCompile(`(?i)physical|magic|phy|mag`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	dieTermPattern    = regexp.MustCompile(`^(\d+)?d(\d+)$`)
)

// Notation is parsed damage notation.
type Notation struct {
	// Dice holds each die term as written, e.g. "2d6", in input order. Duplicates are kept.
	Dice []string `json:"dice" yaml:"dice"`
	// Modifier is the sum of every integer token.
	Modifier int `json:"modifier" yaml:"modifier"`
}

// Term is one die term split into its parts.
type Term struct {
	Count int `json:"count" yaml:"count"`
	Sides int `json:"sides" yaml:"sides"`
}

// ParseNotation parses s. Damage type keywords and whitespace are removed, the rest is
// lower-cased and split on "+". Tokens of the form "[N]dM" become dice terms, integer tokens
// are summed into the modifier, and anything else is dropped.
//
// Postcondition: never fails; unparseable input yields an empty Notation.
func ParseNotation(s string) Notation {
	s = damageTypePattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, "")
	s = strings.ToLower(s)

	n := Notation{Dice: []string{}}
	for _, token := range strings.Split(s, "+") {
		if token == "" {
			continue
		}
		if dieTermPattern.MatchString(token) {
			n.Dice = append(n.Dice, token)
			continue
		}
		if v, err := strconv.Atoi(token); err == nil {
			n.Modifier += v
		}
	}
	return n
}

// Terms splits every die term into count and sides. A missing count is 1.
func (n Notation) Terms() []Term {
	out := make([]Term, 0, len(n.Dice))
	for _, d := range n.Dice {
		m := dieTermPattern.FindStringSubmatch(d)
		if m == nil {
			continue
		}
		count := 1
		if m[1] != "" {
			count, _ = strconv.Atoi(m[1])
		}
		sides, _ := strconv.Atoi(m[2])
		out = append(out, Term{Count: count, Sides: sides})
	}
	return out
}

// String renders n in canonical form, e.g. "2d6+d4+3". A zero modifier is omitted and a
// negative one is rendered with a minus sign.
func (n Notation) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(n.Dice, "+"))
	switch {
	case n.Modifier > 0 && len(n.Dice) > 0:
		fmt.Fprintf(&b, "+%d", n.Modifier)
	case n.Modifier != 0:
		fmt.Fprintf(&b, "%d", n.Modifier)
	}
	return b.String()
}
